package repository

import (
	"context"
	"time"

	"brokerage_crm/internal/domain/entities"
	"brokerage_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type opportunityItem struct {
	ID              string   `dynamodbav:"id"`
	AccountID       string   `dynamodbav:"account_id"`
	Name            string   `dynamodbav:"name"`
	Stage           string   `dynamodbav:"stage"`
	ProductLines    []string `dynamodbav:"product_lines"`
	ExpectedPremium string   `dynamodbav:"expected_premium,omitempty"`
	Probability     int      `dynamodbav:"probability"`
	CloseDate       string   `dynamodbav:"close_date,omitempty"`
	CreatedAt       string   `dynamodbav:"created_at"`
	UpdatedAt       string   `dynamodbav:"updated_at"`
}

// OpportunityDynamoRepository persists Opportunity entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// (account_id, name) uniqueness is held by an "opportunity_name#<account_id>#<name>" guard item.

type OpportunityDynamoRepository struct {
	ddb    *dynamodb.Client
	tables Tables
}

var _ interfaces.IOpportunityRepository = (*OpportunityDynamoRepository)(nil)

func NewOpportunityDynamoRepository(ddb *dynamodb.Client, tables Tables) *OpportunityDynamoRepository {
	return &OpportunityDynamoRepository{ddb: ddb, tables: tables}
}

func opportunityGuard(accountID, name string) string {
	return guardOpportunityName + accountID + "#" + name
}

func (r *OpportunityDynamoRepository) Create(ctx context.Context, o entities.Opportunity) (entities.Opportunity, error) {
	av, err := attributevalue.MarshalMap(toOpportunityItem(o))
	if err != nil {
		return entities.Opportunity{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:                aws.String(r.tables.Opportunities),
					Item:                     av,
					ConditionExpression:      aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{"#id": "id"},
				},
			},
			putGuard(r.tables.UniqueKeys, opportunityGuard(o.AccountID, o.Name), o.ID),
		},
	})
	if err != nil {
		return entities.Opportunity{}, conflictOnCancel(err, "opportunity "+o.Name+" for account "+o.AccountID)
	}
	return o, nil
}

func (r *OpportunityDynamoRepository) GetByID(ctx context.Context, id string) (entities.Opportunity, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tables.Opportunities),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Opportunity{}, err
	}
	if len(out.Item) == 0 {
		return entities.Opportunity{}, nil
	}

	var it opportunityItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Opportunity{}, err
	}
	return fromOpportunityItem(it), nil
}

func (r *OpportunityDynamoRepository) GetByAccountAndName(ctx context.Context, accountID, name string) (entities.Opportunity, error) {
	id, err := lookupGuard(ctx, r.ddb, r.tables.UniqueKeys, opportunityGuard(accountID, name))
	if err != nil || id == "" {
		return entities.Opportunity{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *OpportunityDynamoRepository) UpdateStage(ctx context.Context, id string, stage entities.OpportunityStage) (entities.Opportunity, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tables.Opportunities),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #stage = :stage, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":stage":      &types.AttributeValueMemberS{Value: string(stage)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#stage":      "stage",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalFailure(err) {
			return entities.Opportunity{}, nil
		}
		return entities.Opportunity{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Opportunity{}, nil
	}
	var it opportunityItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Opportunity{}, err
	}
	return fromOpportunityItem(it), nil
}

func toOpportunityItem(o entities.Opportunity) opportunityItem {
	return opportunityItem{
		ID:              o.ID,
		AccountID:       o.AccountID,
		Name:            o.Name,
		Stage:           string(o.Stage),
		ProductLines:    o.ProductLines,
		ExpectedPremium: decimalToString(o.ExpectedPremium),
		Probability:     o.Probability,
		CloseDate:       o.CloseDate,
		CreatedAt:       formatTime(o.CreatedAt),
		UpdatedAt:       formatTime(o.UpdatedAt),
	}
}

func fromOpportunityItem(it opportunityItem) entities.Opportunity {
	return entities.Opportunity{
		ID:              it.ID,
		AccountID:       it.AccountID,
		Name:            it.Name,
		Stage:           entities.OpportunityStage(it.Stage),
		ProductLines:    it.ProductLines,
		ExpectedPremium: stringToDecimal(it.ExpectedPremium),
		Probability:     it.Probability,
		CloseDate:       it.CloseDate,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}
