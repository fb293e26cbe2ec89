package database

import (
	"context"
	"errors"
	"fmt"

	"tradequote/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ConnectDynamoDB creates a DynamoDB client from the service configuration.
//
// An Endpoint (e.g. http://dynamodb:8000) points the client at DynamoDB Local.
func ConnectDynamoDB(ctx context.Context, cfg config.DynamoConfig) (*dynamodb.Client, error) {
	awsCfg, err := NewDynamoDBConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create dynamodb config: %w", err)
	}
	return dynamodb.NewFromConfig(awsCfg), nil
}

func NewDynamoDBConfig(ctx context.Context, cfg config.DynamoConfig) (aws.Config, error) {
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(creds),
	}

	if cfg.Endpoint != "" {
		endpoint := cfg.Endpoint
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == dynamodb.ServiceID {
				return aws.Endpoint{URL: endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, awsconfig.WithEndpointResolverWithOptions(resolver))
	}

	return awsconfig.LoadDefaultConfig(ctx, loadOpts...)
}

// TableSpec describes a table with an optional GSI keyed by IndexHash/IndexRange.
type TableSpec struct {
	Name       string
	HashKey    string
	IndexName  string
	IndexHash  string
	IndexRange string
}

// TableSpecs returns the key schemas of every table the service writes.
func TableSpecs(cfg config.DynamoConfig) []TableSpec {
	return []TableSpec{
		{Name: cfg.QuoteRequestsTable, HashKey: "id", IndexName: "project_id-index", IndexHash: "project_id", IndexRange: "created_at"},
		{Name: cfg.ImpressionsTable, HashKey: "dedup_key", IndexName: "vendor_email-index", IndexHash: "vendor_email", IndexRange: "created_at"},
		{Name: cfg.VendorPaymentsTable, HashKey: "id", IndexName: "vendor_email-index", IndexHash: "vendor_email"},
	}
}

// TableCreator is the subset of *dynamodb.Client used to provision tables.
type TableCreator interface {
	CreateTable(ctx context.Context, in *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

// EnsureTables creates missing tables with on-demand billing. It reports the
// names it created; tables that already exist are skipped.
func EnsureTables(ctx context.Context, ddb TableCreator, specs []TableSpec) ([]string, error) {
	created := make([]string, 0, len(specs))
	for _, s := range specs {
		_, err := ddb.CreateTable(ctx, createTableInput(s))
		if err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				continue
			}
			return created, fmt.Errorf("create table %s: %w", s.Name, err)
		}
		created = append(created, s.Name)
	}
	return created, nil
}

func createTableInput(s TableSpec) *dynamodb.CreateTableInput {
	in := &dynamodb.CreateTableInput{
		TableName:   aws.String(s.Name),
		BillingMode: types.BillingModePayPerRequest,
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(s.HashKey), KeyType: types.KeyTypeHash},
		},
	}
	attrs := []string{s.HashKey}

	if s.IndexName != "" {
		keys := []types.KeySchemaElement{
			{AttributeName: aws.String(s.IndexHash), KeyType: types.KeyTypeHash},
		}
		attrs = append(attrs, s.IndexHash)
		if s.IndexRange != "" {
			keys = append(keys, types.KeySchemaElement{AttributeName: aws.String(s.IndexRange), KeyType: types.KeyTypeRange})
			attrs = append(attrs, s.IndexRange)
		}
		in.GlobalSecondaryIndexes = []types.GlobalSecondaryIndex{{
			IndexName:  aws.String(s.IndexName),
			KeySchema:  keys,
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		}}
	}

	// Every key attribute is a string.
	for _, name := range attrs {
		in.AttributeDefinitions = append(in.AttributeDefinitions, types.AttributeDefinition{
			AttributeName: aws.String(name),
			AttributeType: types.ScalarAttributeTypeS,
		})
	}
	return in
}
