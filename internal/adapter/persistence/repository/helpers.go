package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"brokerage_crm/internal/config"
	"brokerage_crm/internal/domain/domainerr"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// Uniqueness in DynamoDB is enforced with guard items in a dedicated table:
//
//	PK: key (string), e.g. "account_name#Acme Corp"
//	owner: id of the entity holding the key
//
// A guard is written in the same transaction as its entity, conditioned on not existing.

const (
	guardAccountName     = "account_name#"
	guardOpportunityName = "opportunity_name#"
	guardQuoteNumber     = "quote_number#"
	guardSessionID       = "session_id#"
)

type guardItem struct {
	Key   string `dynamodbav:"key"`
	Owner string `dynamodbav:"owner"`
}

// Tables names the tables and indexes the DynamoDB repositories use.
type Tables struct {
	Accounts         string
	Opportunities    string
	Quotes           string
	AutomationRuns   string
	UniqueKeys       string
	OpportunityIndex string
	RunsByQuoteIndex string
}

func TablesFromConfig(cfg config.DynamoDBConfig) Tables {
	return Tables{
		Accounts:         cfg.AccountsTable,
		Opportunities:    cfg.OpportunitiesTable,
		Quotes:           cfg.QuotesTable,
		AutomationRuns:   cfg.AutomationRunsTable,
		UniqueKeys:       cfg.UniqueKeysTable,
		OpportunityIndex: cfg.OpportunityIndex,
		RunsByQuoteIndex: cfg.RunsByQuoteIndex,
	}
}

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}}
}

func guardKey(key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{"key": &types.AttributeValueMemberS{Value: key}}
}

// putGuard claims key for owner. Re-claiming a key the owner already holds succeeds.
func putGuard(table, key, owner string) types.TransactWriteItem {
	return types.TransactWriteItem{
		Put: &types.Put{
			TableName: aws.String(table),
			Item: map[string]types.AttributeValue{
				"key":   &types.AttributeValueMemberS{Value: key},
				"owner": &types.AttributeValueMemberS{Value: owner},
			},
			ConditionExpression:       aws.String("attribute_not_exists(#key) OR #owner = :owner"),
			ExpressionAttributeNames:  map[string]string{"#key": "key", "#owner": "owner"},
			ExpressionAttributeValues: map[string]types.AttributeValue{":owner": &types.AttributeValueMemberS{Value: owner}},
		},
	}
}

func deleteGuard(table, key, owner string) types.TransactWriteItem {
	return types.TransactWriteItem{
		Delete: &types.Delete{
			TableName:                 aws.String(table),
			Key:                       guardKey(key),
			ConditionExpression:       aws.String("attribute_not_exists(#key) OR #owner = :owner"),
			ExpressionAttributeNames:  map[string]string{"#key": "key", "#owner": "owner"},
			ExpressionAttributeValues: map[string]types.AttributeValue{":owner": &types.AttributeValueMemberS{Value: owner}},
		},
	}
}

// conflictOnCancel maps a cancelled transaction whose conditions failed to
// domainerr.ErrPersistenceConflict. Other errors pass through.
func conflictOnCancel(err error, what string) error {
	if err == nil {
		return nil
	}
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		for _, reason := range tce.CancellationReasons {
			if aws.ToString(reason.Code) == "ConditionalCheckFailed" {
				return fmt.Errorf("%s: %w", what, domainerr.ErrPersistenceConflict)
			}
		}
	}
	if isConditionalFailure(err) {
		return fmt.Errorf("%s: %w", what, domainerr.ErrPersistenceConflict)
	}
	return err
}

func isConditionalFailure(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

// lookupGuard resolves a unique key to its owner id, or "" when unclaimed.
func lookupGuard(ctx context.Context, ddb *dynamodb.Client, table, key string) (string, error) {
	out, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            guardKey(key),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", err
	}
	if len(out.Item) == 0 {
		return "", nil
	}
	var g guardItem
	if err := attributevalue.UnmarshalMap(out.Item, &g); err != nil {
		return "", err
	}
	return g.Owner, nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	return &t
}

func decimalToString(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.String()
}

func stringToDecimal(s string) decimal.NullDecimal {
	if s == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}
