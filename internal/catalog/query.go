// Where: cli/internal/catalog/query.go
// What: Lookup operations over a loaded Catalog.
// Why: Answer "which triggers fire function X" without re-reading config.
package catalog

// Function returns the stored configuration for the named function.
// Fails with UnknownFunctionError when the name is absent.
func (c *Catalog) Function(name string) (FunctionConfig, error) {
	fn, ok := c.functions[name]
	if !ok {
		return FunctionConfig{}, &UnknownFunctionError{Name: name}
	}
	return fn, nil
}

// EnabledTriggers returns the triggers of the named function whose enabled
// flag is set, in the fixed TriggerTypes order. A trigger type that is absent
// from the function is treated the same as one that is present but disabled.
func (c *Catalog) EnabledTriggers(name string) ([]EnabledTrigger, error) {
	fn, err := c.Function(name)
	if err != nil {
		return nil, err
	}

	enabled := make([]EnabledTrigger, 0, len(fn.Triggers))
	for _, triggerType := range TriggerTypes {
		def, ok := fn.Triggers[triggerType]
		if !ok || !def.Enabled {
			continue
		}
		enabled = append(enabled, EnabledTrigger{Type: triggerType, Definition: def})
	}
	return enabled, nil
}

// Environment returns the settings for the named environment.
// Fails with UnknownEnvironmentError when the name is absent.
func (c *Catalog) Environment(name string) (EnvironmentSettings, error) {
	settings, ok := c.environments[name]
	if !ok {
		return nil, &UnknownEnvironmentError{Name: name}
	}
	return settings, nil
}
