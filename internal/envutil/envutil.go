// Package envutil provides helper functions for environment variable handling.
package envutil

import (
	"os"

	"github.com/poruru/lambda-trigger-kit/internal/meta"
)

// Key constructs a tool-scoped environment variable name.
// Example: Key("ENV") returns "TRIGGERKIT_ENV".
func Key(suffix string) string {
	return meta.EnvPrefix + "_" + suffix
}

// Get retrieves a tool-scoped environment variable.
// Example: Get("CONFIG") returns the value of TRIGGERKIT_CONFIG.
func Get(suffix string) string {
	return os.Getenv(Key(suffix))
}
