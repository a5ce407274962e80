package database

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const tableActiveTimeout = 30 * time.Second

// TableAPI is what EnsureTables needs from the DynamoDB client.
type TableAPI interface {
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

// QuoteTables describes the three tables of the quote service:
//   - sessions: PK id, GSI orderIndex (order_id, created_at)
//   - responses: PK session_id, SK supplier_id
//   - suppliers: PK id
func QuoteTables(sessions, responses, suppliers, orderIndex string) []*dynamodb.CreateTableInput {
	return []*dynamodb.CreateTableInput{
		{
			TableName:   aws.String(sessions),
			BillingMode: types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
				{AttributeName: aws.String("order_id"), AttributeType: types.ScalarAttributeTypeS},
				{AttributeName: aws.String("created_at"), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
			},
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
				{
					IndexName: aws.String(orderIndex),
					KeySchema: []types.KeySchemaElement{
						{AttributeName: aws.String("order_id"), KeyType: types.KeyTypeHash},
						{AttributeName: aws.String("created_at"), KeyType: types.KeyTypeRange},
					},
					Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
				},
			},
		},
		{
			TableName:   aws.String(responses),
			BillingMode: types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String("session_id"), AttributeType: types.ScalarAttributeTypeS},
				{AttributeName: aws.String("supplier_id"), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("session_id"), KeyType: types.KeyTypeHash},
				{AttributeName: aws.String("supplier_id"), KeyType: types.KeyTypeRange},
			},
		},
		{
			TableName:   aws.String(suppliers),
			BillingMode: types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
			},
		},
	}
}

// EnsureTables creates the missing tables and waits for them to become
// active. Meant for local DynamoDB; production tables are provisioned apart.
func EnsureTables(ctx context.Context, api TableAPI, tables []*dynamodb.CreateTableInput) error {
	for _, in := range tables {
		name := aws.ToString(in.TableName)

		_, err := api.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: in.TableName})
		if err == nil {
			continue
		}
		var nf *types.ResourceNotFoundException
		if !errors.As(err, &nf) {
			return err
		}

		log.Printf("[database][dynamodb] creating table name=%s", name)
		if _, err := api.CreateTable(ctx, in); err != nil {
			var inUse *types.ResourceInUseException
			if !errors.As(err, &inUse) {
				return err
			}
		}

		waiter := dynamodb.NewTableExistsWaiter(api)
		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: in.TableName}, tableActiveTimeout); err != nil {
			return err
		}
		log.Printf("[database][dynamodb] table ready name=%s", name)
	}
	return nil
}
