// Where: cli/internal/provisioner/aws_factory.go
// What: AWS client factory for S3/SQS/DynamoDB provisioning.
// Why: Encapsulate SDK configuration for local emulator endpoints.
package provisioner

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/poruru/lambda-trigger-kit/internal/meta"
)

const defaultAWSRegion = "ap-northeast-1"

type ClientFactory interface {
	S3(ctx context.Context, endpoint string) (S3API, error)
	SQS(ctx context.Context, endpoint string) (SQSAPI, error)
	DynamoDB(ctx context.Context, endpoint string) (DynamoDBAPI, error)
}

type awsClientFactory struct{}

func (awsClientFactory) S3(ctx context.Context, endpoint string) (S3API, error) {
	cfg, err := loadAWSConfig(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	client := s3.NewFromConfig(cfg, func(options *s3.Options) {
		options.BaseEndpoint = aws.String(endpoint)
		options.UsePathStyle = true
	})
	return awsS3Client{client: client}, nil
}

func (awsClientFactory) SQS(ctx context.Context, endpoint string) (SQSAPI, error) {
	cfg, err := loadAWSConfig(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	client := sqs.NewFromConfig(cfg, func(options *sqs.Options) {
		options.BaseEndpoint = aws.String(endpoint)
	})
	return awsSQSClient{client: client}, nil
}

func (awsClientFactory) DynamoDB(ctx context.Context, endpoint string) (DynamoDBAPI, error) {
	cfg, err := loadAWSConfig(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	client := dynamodb.NewFromConfig(cfg, func(options *dynamodb.Options) {
		options.BaseEndpoint = aws.String(endpoint)
	})
	return awsDynamoClient{client: client}, nil
}

func loadAWSConfig(ctx context.Context, endpoint string) (aws.Config, error) {
	if endpoint == "" {
		return aws.Config{}, fmt.Errorf("endpoint is required")
	}

	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = defaultAWSRegion
	}

	creds := credentials.NewStaticCredentialsProvider(accessKey(), secretKey(), "")
	cfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(creds),
	)
	if err != nil {
		return aws.Config{}, err
	}
	return cfg, nil
}

func accessKey() string {
	if value := os.Getenv(meta.EnvPrefix + "_ACCESS_KEY"); value != "" {
		return value
	}
	return "dummy"
}

func secretKey() string {
	if value := os.Getenv(meta.EnvPrefix + "_SECRET_KEY"); value != "" {
		return value
	}
	return "dummy"
}
