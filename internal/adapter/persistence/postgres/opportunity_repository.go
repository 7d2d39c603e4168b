package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"brokerage_crm/internal/domain/entities"
	"brokerage_crm/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OpportunityRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.IOpportunityRepository = (*OpportunityRepository)(nil)

func NewOpportunityRepository(pool *pgxpool.Pool) *OpportunityRepository {
	return &OpportunityRepository{pool: pool}
}

const opportunityColumns = `id, account_id, name, stage, product_lines, expected_premium::text, probability, close_date, created_at, updated_at`

func (r *OpportunityRepository) Create(ctx context.Context, o entities.Opportunity) (entities.Opportunity, error) {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO opportunities (id, account_id, name, stage, product_lines, expected_premium, probability, close_date, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6::numeric, $7, $8, $9, $10)`,
		o.ID, o.AccountID, o.Name, string(o.Stage), nonNilStrings(o.ProductLines), decimalArg(o.ExpectedPremium), o.Probability, o.CloseDate, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return entities.Opportunity{}, conflictOrErr(err, "create opportunity "+o.Name)
	}
	return o, nil
}

func (r *OpportunityRepository) GetByID(ctx context.Context, id string) (entities.Opportunity, error) {
	return r.scan(r.pool.QueryRow(ctx, `SELECT `+opportunityColumns+` FROM opportunities WHERE id = $1`, id))
}

func (r *OpportunityRepository) GetByAccountAndName(ctx context.Context, accountID, name string) (entities.Opportunity, error) {
	return r.scan(r.pool.QueryRow(ctx,
		`SELECT `+opportunityColumns+` FROM opportunities WHERE account_id = $1 AND name = $2`,
		accountID, name,
	))
}

func (r *OpportunityRepository) UpdateStage(ctx context.Context, id string, stage entities.OpportunityStage) (entities.Opportunity, error) {
	return r.scan(r.pool.QueryRow(ctx,
		`UPDATE opportunities SET stage = $2, updated_at = $3 WHERE id = $1
		 RETURNING `+opportunityColumns,
		id, string(stage), time.Now().UTC(),
	))
}

func (r *OpportunityRepository) scan(row pgx.Row) (entities.Opportunity, error) {
	var (
		o       entities.Opportunity
		stage   string
		premium *string
	)
	err := row.Scan(&o.ID, &o.AccountID, &o.Name, &stage, &o.ProductLines, &premium, &o.Probability, &o.CloseDate, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Opportunity{}, nil
		}
		return entities.Opportunity{}, fmt.Errorf("failed to scan opportunity: %w", err)
	}
	o.Stage = entities.OpportunityStage(stage)
	o.ExpectedPremium = decimalFromText(premium)
	return o, nil
}
