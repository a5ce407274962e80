package repository

import (
	"context"

	"mecanica_xpto_quotes/internal/domain/entities"
	"mecanica_xpto_quotes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type supplierItem struct {
	ID     string `dynamodbav:"id"`
	Name   string `dynamodbav:"name"`
	Phone  string `dynamodbav:"phone"`
	Active bool   `dynamodbav:"active"`
}

// SupplierDynamoRepository reads the supplier directory.
//
// Table requirements:
//   - PK: id (string)
//
// The directory is small, so active suppliers are found with a filtered scan.

type SupplierDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ISupplierRepository = (*SupplierDynamoRepository)(nil)

func NewSupplierDynamoRepository(ddb DynamoDBAPI) *SupplierDynamoRepository {
	return &SupplierDynamoRepository{
		ddb:       ddb,
		tableName: SuppliersTableName(),
	}
}

func (r *SupplierDynamoRepository) ListActive(ctx context.Context) ([]entities.SupplierTarget, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#active = :active"),
		ExpressionAttributeNames: map[string]string{
			"#active": "active",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":active": &types.AttributeValueMemberBOOL{Value: true},
		},
	})

	out := make([]entities.SupplierTarget, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []supplierItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, entities.SupplierTarget{ID: it.ID, Name: it.Name, Phone: it.Phone})
		}
	}
	return out, nil
}
