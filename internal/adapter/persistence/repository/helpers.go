package repository

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const (
	defaultQuoteSessionsTableName  = "quote_sessions"
	defaultQuoteResponsesTableName = "quote_responses"
	defaultSuppliersTableName      = "suppliers"

	// OrderIDIndexName is the GSI of the sessions table (PK order_id, SK created_at).
	OrderIDIndexName = "order_id-index"
)

// DynamoDBAPI is the subset of *dynamodb.Client the repositories use.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ DynamoDBAPI = (*dynamodb.Client)(nil)

// Table names, overridable through the environment.
func QuoteSessionsTableName() string {
	return getenvDefault("QUOTE_SESSIONS_TABLE", defaultQuoteSessionsTableName)
}

func QuoteResponsesTableName() string {
	return getenvDefault("QUOTE_RESPONSES_TABLE", defaultQuoteResponsesTableName)
}

func SuppliersTableName() string {
	return getenvDefault("SUPPLIERS_TABLE", defaultSuppliersTableName)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// storedTimeLayout is fixed width so stored timestamps sort lexically in
// time order (created_at is the range key of the order index).
const storedTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(storedTimeLayout)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
