package repository

import (
	"context"
	"errors"

	"mecanica_xpto_quotes/internal/domain/entities"
	"mecanica_xpto_quotes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// supplierResponseItem is one response slot. parsed_price follows the stored
// taxonomy: absent or negative means no price given, zero means no stock.
type supplierResponseItem struct {
	SessionID     string   `dynamodbav:"session_id"`
	SupplierID    string   `dynamodbav:"supplier_id"`
	SupplierName  string   `dynamodbav:"supplier_name,omitempty"`
	SupplierPhone string   `dynamodbav:"supplier_phone,omitempty"`
	Responded     bool     `dynamodbav:"responded"`
	RawMessage    string   `dynamodbav:"raw_message,omitempty"`
	ParsedPrice   *float64 `dynamodbav:"parsed_price,omitempty"`
	ReceivedAt    string   `dynamodbav:"received_at,omitempty"`
}

// SupplierResponseDynamoRepository persists response slots in DynamoDB.
//
// Table requirements:
//   - PK: session_id (string)
//   - SK: supplier_id (string)

type SupplierResponseDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ISupplierResponseRepository = (*SupplierResponseDynamoRepository)(nil)

func NewSupplierResponseDynamoRepository(ddb DynamoDBAPI) *SupplierResponseDynamoRepository {
	return &SupplierResponseDynamoRepository{
		ddb:       ddb,
		tableName: QuoteResponsesTableName(),
	}
}

func (r *SupplierResponseDynamoRepository) ListBySessionID(ctx context.Context, sessionID string) ([]entities.SupplierResponse, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#session_id = :session_id"),
		ExpressionAttributeNames: map[string]string{
			"#session_id": "session_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":session_id": &types.AttributeValueMemberS{Value: sessionID},
		},
		ConsistentRead: aws.Bool(true),
	})

	out := make([]entities.SupplierResponse, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []supplierResponseItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromSupplierResponseItem(it))
		}
	}
	return out, nil
}

// RecordReply overwrites an existing slot. Replies for a supplier that has no
// slot in the session fail the condition and yield a zero value.
func (r *SupplierResponseDynamoRepository) RecordReply(ctx context.Context, resp entities.SupplierResponse) (entities.SupplierResponse, error) {
	it := toSupplierResponseItem(resp)

	expr := "SET #responded = :responded, #raw_message = :raw_message, #received_at = :received_at"
	vals := map[string]types.AttributeValue{
		":responded":   &types.AttributeValueMemberBOOL{Value: it.Responded},
		":raw_message": &types.AttributeValueMemberS{Value: it.RawMessage},
		":received_at": &types.AttributeValueMemberS{Value: it.ReceivedAt},
	}
	names := map[string]string{
		"#responded":    "responded",
		"#raw_message":  "raw_message",
		"#received_at":  "received_at",
		"#parsed_price": "parsed_price",
	}
	if it.ParsedPrice != nil {
		expr += ", #parsed_price = :parsed_price"
		vals[":parsed_price"] = &types.AttributeValueMemberN{Value: floatToString(*it.ParsedPrice)}
	} else {
		expr += " REMOVE #parsed_price"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"session_id":  &types.AttributeValueMemberS{Value: it.SessionID},
			"supplier_id": &types.AttributeValueMemberS{Value: it.SupplierID},
		},
		ConditionExpression:       aws.String("attribute_exists(#session_id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#session_id": "session_id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.SupplierResponse{}, nil
		}
		return entities.SupplierResponse{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.SupplierResponse{}, nil
	}

	var saved supplierResponseItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &saved); err != nil {
		return entities.SupplierResponse{}, err
	}
	return fromSupplierResponseItem(saved), nil
}

func toSupplierResponseItem(r entities.SupplierResponse) supplierResponseItem {
	responded, price := entities.EncodeReplyPrice(r.Reply)
	it := supplierResponseItem{
		SessionID:     r.SessionID,
		SupplierID:    r.Supplier.ID,
		SupplierName:  r.Supplier.Name,
		SupplierPhone: r.Supplier.Phone,
		Responded:     responded,
		RawMessage:    r.RawMessage,
		ParsedPrice:   price,
	}
	if r.ReceivedAt != nil {
		it.ReceivedAt = formatTime(*r.ReceivedAt)
	}
	return it
}

func fromSupplierResponseItem(it supplierResponseItem) entities.SupplierResponse {
	r := entities.SupplierResponse{
		SessionID: it.SessionID,
		Supplier: entities.SupplierTarget{
			ID:    it.SupplierID,
			Name:  it.SupplierName,
			Phone: it.SupplierPhone,
		},
		RawMessage: it.RawMessage,
		Reply:      entities.DecodeReply(it.Responded, it.ParsedPrice, it.RawMessage),
	}
	if it.ReceivedAt != "" {
		at := parseTime(it.ReceivedAt)
		r.ReceivedAt = &at
	}
	return r
}
