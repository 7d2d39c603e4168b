package repository

import (
	"context"

	"brokerage_crm/internal/domain/entities"
	"brokerage_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type accountItem struct {
	ID            string `dynamodbav:"id"`
	Name          string `dynamodbav:"name"`
	Industry      string `dynamodbav:"industry,omitempty"`
	Address       string `dynamodbav:"address,omitempty"`
	AnnualRevenue string `dynamodbav:"annual_revenue,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// AccountDynamoRepository persists Account entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Name uniqueness is held by an "account_name#<name>" guard item in the unique keys table.

type AccountDynamoRepository struct {
	ddb    *dynamodb.Client
	tables Tables
}

var _ interfaces.IAccountRepository = (*AccountDynamoRepository)(nil)

func NewAccountDynamoRepository(ddb *dynamodb.Client, tables Tables) *AccountDynamoRepository {
	return &AccountDynamoRepository{ddb: ddb, tables: tables}
}

func (r *AccountDynamoRepository) Create(ctx context.Context, a entities.Account) (entities.Account, error) {
	av, err := attributevalue.MarshalMap(toAccountItem(a))
	if err != nil {
		return entities.Account{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:                aws.String(r.tables.Accounts),
					Item:                     av,
					ConditionExpression:      aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{"#id": "id"},
				},
			},
			putGuard(r.tables.UniqueKeys, guardAccountName+a.Name, a.ID),
		},
	})
	if err != nil {
		return entities.Account{}, conflictOnCancel(err, "account name "+a.Name)
	}
	return a, nil
}

func (r *AccountDynamoRepository) GetByID(ctx context.Context, id string) (entities.Account, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tables.Accounts),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Account{}, err
	}
	if len(out.Item) == 0 {
		return entities.Account{}, nil
	}

	var it accountItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Account{}, err
	}
	return fromAccountItem(it), nil
}

func (r *AccountDynamoRepository) GetByName(ctx context.Context, name string) (entities.Account, error) {
	id, err := lookupGuard(ctx, r.ddb, r.tables.UniqueKeys, guardAccountName+name)
	if err != nil || id == "" {
		return entities.Account{}, err
	}
	return r.GetByID(ctx, id)
}

func toAccountItem(a entities.Account) accountItem {
	return accountItem{
		ID:            a.ID,
		Name:          a.Name,
		Industry:      a.Industry,
		Address:       a.Address,
		AnnualRevenue: decimalToString(a.AnnualRevenue),
		CreatedAt:     formatTime(a.CreatedAt),
		UpdatedAt:     formatTime(a.UpdatedAt),
	}
}

func fromAccountItem(it accountItem) entities.Account {
	return entities.Account{
		ID:            it.ID,
		Name:          it.Name,
		Industry:      it.Industry,
		Address:       it.Address,
		AnnualRevenue: stringToDecimal(it.AnnualRevenue),
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
