package repository

import (
	"context"
	"fmt"
	"time"

	"brokerage_crm/internal/domain/domainerr"
	"brokerage_crm/internal/domain/entities"
	"brokerage_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type automationRunItem struct {
	ID             string         `dynamodbav:"id"`
	SessionID      string         `dynamodbav:"session_id,omitempty"`
	CarrierName    string         `dynamodbav:"carrier_name"`
	QuoteID        string         `dynamodbav:"quote_id"`
	Status         string         `dynamodbav:"status"`
	PortalURL      string         `dynamodbav:"portal_url"`
	HasCredentials bool           `dynamodbav:"has_credentials"`
	FormFields     []string       `dynamodbav:"form_fields"`
	FormData       map[string]any `dynamodbav:"form_data,omitempty"`
	OutputData     map[string]any `dynamodbav:"output_data,omitempty"`
	ScreenshotURLs []string       `dynamodbav:"screenshot_urls,omitempty"`
	Logs           string         `dynamodbav:"logs,omitempty"`
	ErrorMessage   string         `dynamodbav:"error_message,omitempty"`
	RetryCount     int            `dynamodbav:"retry_count"`
	RetryOf        string         `dynamodbav:"retry_of,omitempty"`
	StartedAt      string         `dynamodbav:"started_at"`
	CompletedAt    string         `dynamodbav:"completed_at,omitempty"`
}

// AutomationRunDynamoRepository persists AutomationRun entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quote_id (string) + started_at (string), for attempt history
//
// session_id uniqueness and lookup go through a "session_id#<id>" guard item.

type AutomationRunDynamoRepository struct {
	ddb    *dynamodb.Client
	tables Tables
}

var _ interfaces.IAutomationRunRepository = (*AutomationRunDynamoRepository)(nil)

func NewAutomationRunDynamoRepository(ddb *dynamodb.Client, tables Tables) *AutomationRunDynamoRepository {
	return &AutomationRunDynamoRepository{ddb: ddb, tables: tables}
}

func (r *AutomationRunDynamoRepository) Create(ctx context.Context, run entities.AutomationRun) (entities.AutomationRun, error) {
	av, err := attributevalue.MarshalMap(toAutomationRunItem(run))
	if err != nil {
		return entities.AutomationRun{}, err
	}

	items := []types.TransactWriteItem{
		{
			Put: &types.Put{
				TableName:                aws.String(r.tables.AutomationRuns),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			},
		},
	}
	if run.SessionID != "" {
		items = append(items, putGuard(r.tables.UniqueKeys, guardSessionID+run.SessionID, run.ID))
	}

	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items}); err != nil {
		return entities.AutomationRun{}, conflictOnCancel(err, "automation run "+run.ID)
	}
	return run, nil
}

func (r *AutomationRunDynamoRepository) GetByID(ctx context.Context, id string) (entities.AutomationRun, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tables.AutomationRuns),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.AutomationRun{}, err
	}
	if len(out.Item) == 0 {
		return entities.AutomationRun{}, nil
	}

	var it automationRunItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.AutomationRun{}, err
	}
	return fromAutomationRunItem(it), nil
}

func (r *AutomationRunDynamoRepository) GetBySessionID(ctx context.Context, sessionID string) (entities.AutomationRun, error) {
	id, err := lookupGuard(ctx, r.ddb, r.tables.UniqueKeys, guardSessionID+sessionID)
	if err != nil || id == "" {
		return entities.AutomationRun{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *AutomationRunDynamoRepository) AssignSession(ctx context.Context, runID, sessionID string) (entities.AutomationRun, error) {
	run, err := r.GetByID(ctx, runID)
	if err != nil || run.ID == "" {
		return entities.AutomationRun{}, err
	}
	if run.SessionID == sessionID {
		return run, nil
	}

	items := []types.TransactWriteItem{
		{
			Update: &types.Update{
				TableName:                 aws.String(r.tables.AutomationRuns),
				Key:                       idKey(runID),
				ConditionExpression:       aws.String("attribute_exists(#id)"),
				UpdateExpression:          aws.String("SET #session_id = :session_id"),
				ExpressionAttributeNames:  map[string]string{"#id": "id", "#session_id": "session_id"},
				ExpressionAttributeValues: map[string]types.AttributeValue{":session_id": &types.AttributeValueMemberS{Value: sessionID}},
			},
		},
		putGuard(r.tables.UniqueKeys, guardSessionID+sessionID, runID),
	}
	if run.SessionID != "" {
		items = append(items, deleteGuard(r.tables.UniqueKeys, guardSessionID+run.SessionID, runID))
	}

	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items}); err != nil {
		return entities.AutomationRun{}, conflictOnCancel(err, "session_id "+sessionID)
	}
	run.SessionID = sessionID
	return run, nil
}

// Complete moves a running run to its terminal status. The write is conditioned on the stored
// status still being running, so only the first completion wins.
func (r *AutomationRunDynamoRepository) Complete(ctx context.Context, sessionID string, result entities.AutomationResult, completedAt time.Time) (entities.AutomationRun, error) {
	id, err := lookupGuard(ctx, r.ddb, r.tables.UniqueKeys, guardSessionID+sessionID)
	if err != nil || id == "" {
		return entities.AutomationRun{}, err
	}

	values := map[string]types.AttributeValue{
		":running":      &types.AttributeValueMemberS{Value: string(entities.AutomationStatusRunning)},
		":status":       &types.AttributeValueMemberS{Value: string(result.Status)},
		":completed_at": &types.AttributeValueMemberS{Value: formatTime(completedAt)},
		":logs":         &types.AttributeValueMemberS{Value: result.Logs},
		":error":        &types.AttributeValueMemberS{Value: result.ErrorMessage},
	}
	output, err := attributevalue.Marshal(result.OutputData)
	if err != nil {
		return entities.AutomationRun{}, err
	}
	values[":output"] = output
	shots, err := attributevalue.Marshal(result.ScreenshotURLs)
	if err != nil {
		return entities.AutomationRun{}, err
	}
	values[":shots"] = shots

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tables.AutomationRuns),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :running"),
		UpdateExpression: aws.String("SET #status = :status, #completed_at = :completed_at, #output_data = :output, " +
			"#screenshot_urls = :shots, #logs = :logs, #error_message = :error"),
		ExpressionAttributeNames: map[string]string{
			"#id":              "id",
			"#status":          "status",
			"#completed_at":    "completed_at",
			"#output_data":     "output_data",
			"#screenshot_urls": "screenshot_urls",
			"#logs":            "logs",
			"#error_message":   "error_message",
		},
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalFailure(err) {
			return entities.AutomationRun{}, fmt.Errorf("session %s: %w", sessionID, domainerr.ErrSessionAlreadyCompleted)
		}
		return entities.AutomationRun{}, err
	}

	var it automationRunItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.AutomationRun{}, err
	}
	return fromAutomationRunItem(it), nil
}

// ListByQuoteID reads the quote index in descending started_at order.
func (r *AutomationRunDynamoRepository) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.AutomationRun, error) {
	out := []entities.AutomationRun{}
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:                aws.String(r.tables.AutomationRuns),
		IndexName:                aws.String(r.tables.RunsByQuoteIndex),
		KeyConditionExpression:   aws.String("#quote_id = :quote_id"),
		ExpressionAttributeNames: map[string]string{"#quote_id": "quote_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":quote_id": &types.AttributeValueMemberS{Value: quoteID},
		},
		ScanIndexForward: aws.Bool(false),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []automationRunItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromAutomationRunItem(it))
		}
	}
	return out, nil
}

func toAutomationRunItem(run entities.AutomationRun) automationRunItem {
	return automationRunItem{
		ID:             run.ID,
		SessionID:      run.SessionID,
		CarrierName:    run.CarrierName,
		QuoteID:        run.QuoteID,
		Status:         string(run.Status),
		PortalURL:      run.InputData.PortalURL,
		HasCredentials: run.InputData.HasCredentials,
		FormFields:     run.InputData.FormFields,
		FormData:       run.InputData.FormData,
		OutputData:     run.OutputData,
		ScreenshotURLs: run.ScreenshotURLs,
		Logs:           run.Logs,
		ErrorMessage:   run.ErrorMessage,
		RetryCount:     run.RetryCount,
		RetryOf:        run.RetryOf,
		StartedAt:      formatTime(run.StartedAt),
		CompletedAt:    formatTimePtr(run.CompletedAt),
	}
}

func fromAutomationRunItem(it automationRunItem) entities.AutomationRun {
	return entities.AutomationRun{
		ID:          it.ID,
		SessionID:   it.SessionID,
		CarrierName: it.CarrierName,
		QuoteID:     it.QuoteID,
		Status:      entities.AutomationStatus(it.Status),
		InputData: entities.AutomationInput{
			PortalURL:      it.PortalURL,
			HasCredentials: it.HasCredentials,
			FormFields:     it.FormFields,
			FormData:       it.FormData,
		},
		OutputData:     it.OutputData,
		ScreenshotURLs: it.ScreenshotURLs,
		Logs:           it.Logs,
		ErrorMessage:   it.ErrorMessage,
		RetryCount:     it.RetryCount,
		RetryOf:        it.RetryOf,
		StartedAt:      parseTime(it.StartedAt),
		CompletedAt:    parseTimePtr(it.CompletedAt),
	}
}
