package postgres

import (
	"context"
	"errors"
	"fmt"

	"brokerage_crm/internal/domain/entities"
	"brokerage_crm/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AccountRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.IAccountRepository = (*AccountRepository)(nil)

func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

const accountColumns = `id, name, industry, address, annual_revenue::text, created_at, updated_at`

func (r *AccountRepository) Create(ctx context.Context, a entities.Account) (entities.Account, error) {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO accounts (id, name, industry, address, annual_revenue, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5::numeric, $6, $7)`,
		a.ID, a.Name, a.Industry, a.Address, decimalArg(a.AnnualRevenue), a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return entities.Account{}, conflictOrErr(err, "create account "+a.Name)
	}
	return a, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id string) (entities.Account, error) {
	return r.get(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)
}

func (r *AccountRepository) GetByName(ctx context.Context, name string) (entities.Account, error) {
	return r.get(ctx, `SELECT `+accountColumns+` FROM accounts WHERE name = $1`, name)
}

func (r *AccountRepository) get(ctx context.Context, query string, arg string) (entities.Account, error) {
	var (
		a       entities.Account
		revenue *string
	)
	err := r.pool.QueryRow(ctx, query, arg).Scan(&a.ID, &a.Name, &a.Industry, &a.Address, &revenue, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Account{}, nil
		}
		return entities.Account{}, fmt.Errorf("failed to get account: %w", err)
	}
	a.AnnualRevenue = decimalFromText(revenue)
	return a, nil
}
