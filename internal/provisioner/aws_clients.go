// Where: cli/internal/provisioner/aws_clients.go
// What: AWS SDK adapters for S3, SQS, and DynamoDB.
// Why: Map provisioner specs to SDK inputs behind narrow interfaces.
package provisioner

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	dynamotypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

type awsS3Client struct {
	client *s3.Client
}

func (c awsS3Client) ListBuckets(ctx context.Context) ([]string, error) {
	if c.client == nil {
		return nil, fmt.Errorf("s3 client is nil")
	}
	resp, err := c.client.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(resp.Buckets))
	for _, bucket := range resp.Buckets {
		names = append(names, aws.ToString(bucket.Name))
	}
	return names, nil
}

func (c awsS3Client) CreateBucket(ctx context.Context, name string) error {
	if c.client == nil {
		return fmt.Errorf("s3 client is nil")
	}
	_, err := c.client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(name)})
	return err
}

type awsSQSClient struct {
	client *sqs.Client
}

func (c awsSQSClient) ListQueues(ctx context.Context) ([]string, error) {
	if c.client == nil {
		return nil, fmt.Errorf("sqs client is nil")
	}
	resp, err := c.client.ListQueues(ctx, &sqs.ListQueuesInput{})
	if err != nil {
		return nil, err
	}
	// ListQueues returns URLs; the queue name is the final path segment.
	names := make([]string, 0, len(resp.QueueUrls))
	for _, url := range resp.QueueUrls {
		if idx := strings.LastIndex(url, "/"); idx >= 0 {
			names = append(names, url[idx+1:])
		} else {
			names = append(names, url)
		}
	}
	return names, nil
}

func (c awsSQSClient) CreateQueue(ctx context.Context, name string) error {
	if c.client == nil {
		return fmt.Errorf("sqs client is nil")
	}
	_, err := c.client.CreateQueue(ctx, &sqs.CreateQueueInput{QueueName: aws.String(name)})
	return err
}

type awsDynamoClient struct {
	client *dynamodb.Client
}

func (c awsDynamoClient) ListTables(ctx context.Context) ([]string, error) {
	if c.client == nil {
		return nil, fmt.Errorf("dynamodb client is nil")
	}
	resp, err := c.client.ListTables(ctx, &dynamodb.ListTablesInput{})
	if err != nil {
		return nil, err
	}
	return resp.TableNames, nil
}

func (c awsDynamoClient) CreateTable(ctx context.Context, table TableSpec) error {
	if c.client == nil {
		return fmt.Errorf("dynamodb client is nil")
	}
	_, err := c.client.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(table.Name),
		KeySchema: []dynamotypes.KeySchemaElement{
			{AttributeName: aws.String(table.HashKey), KeyType: dynamotypes.KeyTypeHash},
		},
		AttributeDefinitions: []dynamotypes.AttributeDefinition{
			{AttributeName: aws.String(table.HashKey), AttributeType: dynamotypes.ScalarAttributeTypeS},
		},
		BillingMode: dynamotypes.BillingModePayPerRequest,
	})
	return err
}
