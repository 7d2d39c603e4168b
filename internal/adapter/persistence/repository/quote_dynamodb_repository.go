package repository

import (
	"context"
	"sort"

	"brokerage_crm/internal/domain/entities"
	"brokerage_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type quoteItem struct {
	ID               string         `dynamodbav:"id"`
	OpportunityID    string         `dynamodbav:"opportunity_id"`
	CarrierName      string         `dynamodbav:"carrier_name"`
	ProductLine      string         `dynamodbav:"product_line"`
	Status           string         `dynamodbav:"status"`
	Outcome          string         `dynamodbav:"outcome,omitempty"`
	QuoteNumber      string         `dynamodbav:"quote_number,omitempty"`
	CarrierQuoteID   string         `dynamodbav:"carrier_quote_id,omitempty"`
	Premium          string         `dynamodbav:"premium,omitempty"`
	EffectiveDate    string         `dynamodbav:"effective_date,omitempty"`
	ExpirationDate   string         `dynamodbav:"expiration_date,omitempty"`
	CoverageDetails  map[string]any `dynamodbav:"coverage_details,omitempty"`
	DeclineReason    string         `dynamodbav:"decline_reason,omitempty"`
	ErrorMessage     string         `dynamodbav:"error_message,omitempty"`
	SubmissionMethod string         `dynamodbav:"submission_method,omitempty"`
	QuoteDocumentURL string         `dynamodbav:"quote_document_url,omitempty"`
	SubmittedAt      string         `dynamodbav:"submitted_at,omitempty"`
	QuotedAt         string         `dynamodbav:"quoted_at,omitempty"`
	CreatedAt        string         `dynamodbav:"created_at"`
	UpdatedAt        string         `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: opportunity_id (string)
//
// quote_number uniqueness is held by a "quote_number#<number>" guard item, moved in the same
// transaction when an update changes the number.

type QuoteDynamoRepository struct {
	ddb    *dynamodb.Client
	tables Tables
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client, tables Tables) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{ddb: ddb, tables: tables}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}

	items := []types.TransactWriteItem{
		{
			Put: &types.Put{
				TableName:                aws.String(r.tables.Quotes),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			},
		},
	}
	if q.QuoteNumber != "" {
		items = append(items, putGuard(r.tables.UniqueKeys, guardQuoteNumber+q.QuoteNumber, q.ID))
	}

	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items}); err != nil {
		return entities.Quote{}, conflictOnCancel(err, "quote_number "+q.QuoteNumber)
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tables.Quotes),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) GetByQuoteNumber(ctx context.Context, quoteNumber string) (entities.Quote, error) {
	if quoteNumber == "" {
		return entities.Quote{}, nil
	}
	id, err := lookupGuard(ctx, r.ddb, r.tables.UniqueKeys, guardQuoteNumber+quoteNumber)
	if err != nil || id == "" {
		return entities.Quote{}, err
	}
	return r.GetByID(ctx, id)
}

// Update replaces the stored quote. OpportunityID and CreatedAt are immutable.
func (r *QuoteDynamoRepository) Update(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	current, err := r.GetByID(ctx, q.ID)
	if err != nil || current.ID == "" {
		return entities.Quote{}, err
	}
	q.OpportunityID = current.OpportunityID
	q.CreatedAt = current.CreatedAt

	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}

	items := []types.TransactWriteItem{
		{
			Put: &types.Put{
				TableName:                aws.String(r.tables.Quotes),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			},
		},
	}
	if q.QuoteNumber != current.QuoteNumber {
		if q.QuoteNumber != "" {
			items = append(items, putGuard(r.tables.UniqueKeys, guardQuoteNumber+q.QuoteNumber, q.ID))
		}
		if current.QuoteNumber != "" {
			items = append(items, deleteGuard(r.tables.UniqueKeys, guardQuoteNumber+current.QuoteNumber, q.ID))
		}
	}

	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items}); err != nil {
		return entities.Quote{}, conflictOnCancel(err, "quote_number "+q.QuoteNumber)
	}
	return q, nil
}

// ListByOpportunityID reads the opportunity index, newest first.
func (r *QuoteDynamoRepository) ListByOpportunityID(ctx context.Context, opportunityID string) ([]entities.Quote, error) {
	out := []entities.Quote{}
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:                aws.String(r.tables.Quotes),
		IndexName:                aws.String(r.tables.OpportunityIndex),
		KeyConditionExpression:   aws.String("#opp = :opp"),
		ExpressionAttributeNames: map[string]string{"#opp": "opportunity_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":opp": &types.AttributeValueMemberS{Value: opportunityID},
		},
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []quoteItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromQuoteItem(it))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		ID:               q.ID,
		OpportunityID:    q.OpportunityID,
		CarrierName:      q.CarrierName,
		ProductLine:      q.ProductLine,
		Status:           string(q.Status),
		Outcome:          string(q.Outcome),
		QuoteNumber:      q.QuoteNumber,
		CarrierQuoteID:   q.CarrierQuoteID,
		Premium:          decimalToString(q.Premium),
		EffectiveDate:    q.EffectiveDate,
		ExpirationDate:   q.ExpirationDate,
		CoverageDetails:  q.CoverageDetails,
		DeclineReason:    q.DeclineReason,
		ErrorMessage:     q.ErrorMessage,
		SubmissionMethod: string(q.SubmissionMethod),
		QuoteDocumentURL: q.QuoteDocumentURL,
		SubmittedAt:      formatTimePtr(q.SubmittedAt),
		QuotedAt:         formatTimePtr(q.QuotedAt),
		CreatedAt:        formatTime(q.CreatedAt),
		UpdatedAt:        formatTime(q.UpdatedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	return entities.Quote{
		ID:               it.ID,
		OpportunityID:    it.OpportunityID,
		CarrierName:      it.CarrierName,
		ProductLine:      it.ProductLine,
		Status:           entities.QuoteStatus(it.Status),
		Outcome:          entities.QuoteOutcome(it.Outcome),
		QuoteNumber:      it.QuoteNumber,
		CarrierQuoteID:   it.CarrierQuoteID,
		Premium:          stringToDecimal(it.Premium),
		EffectiveDate:    it.EffectiveDate,
		ExpirationDate:   it.ExpirationDate,
		CoverageDetails:  it.CoverageDetails,
		DeclineReason:    it.DeclineReason,
		ErrorMessage:     it.ErrorMessage,
		SubmissionMethod: entities.SubmissionMethod(it.SubmissionMethod),
		QuoteDocumentURL: it.QuoteDocumentURL,
		SubmittedAt:      parseTimePtr(it.SubmittedAt),
		QuotedAt:         parseTimePtr(it.QuotedAt),
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
