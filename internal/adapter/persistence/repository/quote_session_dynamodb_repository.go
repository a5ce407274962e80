package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"mecanica_xpto_quotes/internal/domain/entities"
	"mecanica_xpto_quotes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// A transaction holds at most 100 actions: the session plus its slots.
const maxSuppliersPerSession = 99

var ErrTooManySuppliers = fmt.Errorf("a quote session supports at most %d suppliers", maxSuppliersPerSession)

type supplierTargetItem struct {
	ID    string `dynamodbav:"id"`
	Name  string `dynamodbav:"name,omitempty"`
	Phone string `dynamodbav:"phone,omitempty"`
}

type priceOfferItem struct {
	Description string `dynamodbav:"description"`
	Price       string `dynamodbav:"price"`
}

type quoteSessionItem struct {
	ID               string               `dynamodbav:"id"`
	OrderID          string               `dynamodbav:"order_id"`
	PartDescription  string               `dynamodbav:"part_description"`
	Status           string               `dynamodbav:"status"`
	ExpiresAt        string               `dynamodbav:"expires_at"`
	WinnerSupplierID string               `dynamodbav:"winner_supplier_id,omitempty"`
	WinnerOffer      *priceOfferItem      `dynamodbav:"winner_offer,omitempty"`
	Suppliers        []supplierTargetItem `dynamodbav:"suppliers"`
	CreatedAt        string               `dynamodbav:"created_at"`
	UpdatedAt        string               `dynamodbav:"updated_at"`
}

// QuoteSessionDynamoRepository persists quote sessions in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI order_id-index: PK order_id (string), SK created_at (string)
//
// Starting a session also writes one empty slot per supplier in the responses
// table, in the same transaction, so a session never exists without them.

type QuoteSessionDynamoRepository struct {
	ddb                DynamoDBAPI
	tableName          string
	responsesTableName string
	now                func() time.Time
}

var _ interfaces.IQuoteSessionRepository = (*QuoteSessionDynamoRepository)(nil)

func NewQuoteSessionDynamoRepository(ddb DynamoDBAPI) *QuoteSessionDynamoRepository {
	return &QuoteSessionDynamoRepository{
		ddb:                ddb,
		tableName:          QuoteSessionsTableName(),
		responsesTableName: QuoteResponsesTableName(),
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

func (r *QuoteSessionDynamoRepository) Start(ctx context.Context, s entities.QuoteSession) (entities.QuoteSession, error) {
	if len(s.Suppliers) > maxSuppliersPerSession {
		return entities.QuoteSession{}, ErrTooManySuppliers
	}

	av, err := attributevalue.MarshalMap(toQuoteSessionItem(s))
	if err != nil {
		return entities.QuoteSession{}, err
	}

	items := make([]types.TransactWriteItem, 0, len(s.Suppliers)+1)
	items = append(items, types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		},
	})

	for _, t := range s.Suppliers {
		slot, err := attributevalue.MarshalMap(toSupplierResponseItem(entities.SupplierResponse{
			SessionID: s.ID,
			Supplier:  t,
			Reply:     entities.NotResponded(),
		}))
		if err != nil {
			return entities.QuoteSession{}, err
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{
				TableName:           aws.String(r.responsesTableName),
				Item:                slot,
				ConditionExpression: aws.String("attribute_not_exists(#session_id)"),
				ExpressionAttributeNames: map[string]string{
					"#session_id": "session_id",
				},
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		return entities.QuoteSession{}, err
	}
	return s, nil
}

func (r *QuoteSessionDynamoRepository) GetByID(ctx context.Context, id string) (entities.QuoteSession, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.QuoteSession{}, err
	}
	if len(out.Item) == 0 {
		return entities.QuoteSession{}, nil
	}

	var it quoteSessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.QuoteSession{}, err
	}
	return fromQuoteSessionItem(it), nil
}

// GetLatestByOrderID finds the newest session id through the index (which is
// eventually consistent) and then reads the session itself consistently.
func (r *QuoteSessionDynamoRepository) GetLatestByOrderID(ctx context.Context, orderID string) (entities.QuoteSession, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(OrderIDIndexName),
		KeyConditionExpression: aws.String("#order_id = :order_id"),
		ExpressionAttributeNames: map[string]string{
			"#order_id": "order_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(1),
	})
	if err != nil {
		return entities.QuoteSession{}, err
	}
	if len(out.Items) == 0 {
		return entities.QuoteSession{}, nil
	}

	var it quoteSessionItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.QuoteSession{}, err
	}
	return r.GetByID(ctx, it.ID)
}

func (r *QuoteSessionDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.QuoteSession, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(OrderIDIndexName),
		KeyConditionExpression: aws.String("#order_id = :order_id"),
		ExpressionAttributeNames: map[string]string{
			"#order_id": "order_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		ScanIndexForward: aws.Bool(false),
	})

	out := make([]entities.QuoteSession, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []quoteSessionItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromQuoteSessionItem(it))
		}
	}
	return out, nil
}

// CommitApproval records the winner in one conditional write. A cancelled or
// missing session fails the condition and yields a zero-value session.
func (r *QuoteSessionDynamoRepository) CommitApproval(ctx context.Context, sessionID, supplierID string, offer *entities.PriceOffer) (entities.QuoteSession, error) {
	return r.update(ctx, sessionID, func(now string) (string, map[string]types.AttributeValue, map[string]string, error) {
		expr := "SET #status = :completed, #winner_supplier_id = :winner, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":completed":  &types.AttributeValueMemberS{Value: string(entities.QuoteStatusCompleted)},
			":winner":     &types.AttributeValueMemberS{Value: supplierID},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":             "status",
			"#winner_supplier_id": "winner_supplier_id",
			"#winner_offer":       "winner_offer",
			"#updated_at":         "updated_at",
		}
		if offer != nil {
			av, err := attributevalue.Marshal(toPriceOfferItem(*offer))
			if err != nil {
				return "", nil, nil, err
			}
			expr += ", #winner_offer = :winner_offer"
			vals[":winner_offer"] = av
		} else {
			expr += " REMOVE #winner_offer"
		}
		return expr, vals, names, nil
	})
}

// Cancel clears any winner so that a winner exists only on completed sessions.
func (r *QuoteSessionDynamoRepository) Cancel(ctx context.Context, sessionID string) (entities.QuoteSession, error) {
	return r.update(ctx, sessionID, func(now string) (string, map[string]types.AttributeValue, map[string]string, error) {
		expr := "SET #status = :cancelled_status, #updated_at = :updated_at REMOVE #winner_supplier_id, #winner_offer"
		vals := map[string]types.AttributeValue{
			":cancelled_status": &types.AttributeValueMemberS{Value: string(entities.QuoteStatusCancelled)},
			":updated_at":       &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":             "status",
			"#winner_supplier_id": "winner_supplier_id",
			"#winner_offer":       "winner_offer",
			"#updated_at":         "updated_at",
		}
		return expr, vals, names, nil
	})
}

// update applies build's expression only to an existing, non-cancelled session.
func (r *QuoteSessionDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string, err error),
) (entities.QuoteSession, error) {
	now := r.now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names, err := build(now)
	if err != nil {
		return entities.QuoteSession{}, err
	}
	values[":cancelled"] = &types.AttributeValueMemberS{Value: string(entities.QuoteStatusCancelled)}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status <> :cancelled"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id", "#status": "status"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.QuoteSession{}, nil
		}
		return entities.QuoteSession{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.QuoteSession{}, nil
	}
	var it quoteSessionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.QuoteSession{}, err
	}
	return fromQuoteSessionItem(it), nil
}

func toQuoteSessionItem(s entities.QuoteSession) quoteSessionItem {
	suppliers := make([]supplierTargetItem, 0, len(s.Suppliers))
	for _, t := range s.Suppliers {
		suppliers = append(suppliers, supplierTargetItem{ID: t.ID, Name: t.Name, Phone: t.Phone})
	}
	it := quoteSessionItem{
		ID:               s.ID,
		OrderID:          s.OrderID,
		PartDescription:  s.PartDescription,
		Status:           string(s.Status),
		ExpiresAt:        formatTime(s.ExpiresAt),
		WinnerSupplierID: s.WinnerSupplierID,
		Suppliers:        suppliers,
		CreatedAt:        formatTime(s.CreatedAt),
		UpdatedAt:        formatTime(s.UpdatedAt),
	}
	if s.WinnerOffer != nil {
		o := toPriceOfferItem(*s.WinnerOffer)
		it.WinnerOffer = &o
	}
	return it
}

func fromQuoteSessionItem(it quoteSessionItem) entities.QuoteSession {
	suppliers := make([]entities.SupplierTarget, 0, len(it.Suppliers))
	for _, t := range it.Suppliers {
		suppliers = append(suppliers, entities.SupplierTarget{ID: t.ID, Name: t.Name, Phone: t.Phone})
	}
	s := entities.QuoteSession{
		ID:               it.ID,
		OrderID:          it.OrderID,
		PartDescription:  it.PartDescription,
		Status:           entities.QuoteStatus(it.Status),
		ExpiresAt:        parseTime(it.ExpiresAt),
		WinnerSupplierID: it.WinnerSupplierID,
		Suppliers:        suppliers,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
	if it.WinnerOffer != nil {
		price, _ := strconv.ParseFloat(it.WinnerOffer.Price, 64)
		s.WinnerOffer = &entities.PriceOffer{Description: it.WinnerOffer.Description, Price: price}
	}
	return s
}

func toPriceOfferItem(o entities.PriceOffer) priceOfferItem {
	return priceOfferItem{Description: o.Description, Price: floatToString(o.Price)}
}
