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

type QuoteRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.IQuoteRepository = (*QuoteRepository)(nil)

func NewQuoteRepository(pool *pgxpool.Pool) *QuoteRepository {
	return &QuoteRepository{pool: pool}
}

const quoteColumns = `id, opportunity_id, carrier_name, product_line, status, outcome, quote_number, carrier_quote_id,
	premium::text, effective_date, expiration_date, coverage_details, decline_reason, error_message,
	submission_method, quote_document_url, submitted_at, quoted_at, created_at, updated_at`

func (r *QuoteRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO quotes (id, opportunity_id, carrier_name, product_line, status, outcome, quote_number, carrier_quote_id,
			premium, effective_date, expiration_date, coverage_details, decline_reason, error_message,
			submission_method, quote_document_url, submitted_at, quoted_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::numeric, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`,
		q.ID, q.OpportunityID, q.CarrierName, q.ProductLine, string(q.Status), string(q.Outcome),
		nullIfEmpty(q.QuoteNumber), q.CarrierQuoteID, decimalArg(q.Premium), q.EffectiveDate, q.ExpirationDate,
		q.CoverageDetails, q.DeclineReason, q.ErrorMessage, string(q.SubmissionMethod), q.QuoteDocumentURL,
		q.SubmittedAt, q.QuotedAt, q.CreatedAt, q.UpdatedAt,
	)
	if err != nil {
		return entities.Quote{}, conflictOrErr(err, "create quote "+q.QuoteNumber)
	}
	return q, nil
}

func (r *QuoteRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	return scanQuote(r.pool.QueryRow(ctx, `SELECT `+quoteColumns+` FROM quotes WHERE id = $1`, id))
}

func (r *QuoteRepository) GetByQuoteNumber(ctx context.Context, quoteNumber string) (entities.Quote, error) {
	if quoteNumber == "" {
		return entities.Quote{}, nil
	}
	return scanQuote(r.pool.QueryRow(ctx, `SELECT `+quoteColumns+` FROM quotes WHERE quote_number = $1`, quoteNumber))
}

// Update replaces the mutable columns. opportunity_id and created_at are never written.
func (r *QuoteRepository) Update(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE quotes SET carrier_name = $2, product_line = $3, status = $4, outcome = $5, quote_number = $6,
			carrier_quote_id = $7, premium = $8::numeric, effective_date = $9, expiration_date = $10,
			coverage_details = $11, decline_reason = $12, error_message = $13, submission_method = $14,
			quote_document_url = $15, submitted_at = $16, quoted_at = $17, updated_at = $18
		 WHERE id = $1
		 RETURNING `+quoteColumns,
		q.ID, q.CarrierName, q.ProductLine, string(q.Status), string(q.Outcome), nullIfEmpty(q.QuoteNumber),
		q.CarrierQuoteID, decimalArg(q.Premium), q.EffectiveDate, q.ExpirationDate, q.CoverageDetails,
		q.DeclineReason, q.ErrorMessage, string(q.SubmissionMethod), q.QuoteDocumentURL,
		q.SubmittedAt, q.QuotedAt, q.UpdatedAt,
	)
	out, err := scanQuote(row)
	if err != nil {
		return entities.Quote{}, conflictOrErr(err, "update quote "+q.ID)
	}
	return out, nil
}

func (r *QuoteRepository) ListByOpportunityID(ctx context.Context, opportunityID string) ([]entities.Quote, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+quoteColumns+` FROM quotes WHERE opportunity_id = $1 ORDER BY created_at DESC`,
		opportunityID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	defer rows.Close()

	out := []entities.Quote{}
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

// scanQuote returns a zero Quote and nil error for pgx.ErrNoRows.
func scanQuote(row pgx.Row) (entities.Quote, error) {
	var (
		q                       entities.Quote
		status, outcome, method string
		number, premium         *string
	)
	err := row.Scan(&q.ID, &q.OpportunityID, &q.CarrierName, &q.ProductLine, &status, &outcome, &number, &q.CarrierQuoteID,
		&premium, &q.EffectiveDate, &q.ExpirationDate, &q.CoverageDetails, &q.DeclineReason, &q.ErrorMessage,
		&method, &q.QuoteDocumentURL, &q.SubmittedAt, &q.QuotedAt, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	q.Status = entities.QuoteStatus(status)
	q.Outcome = entities.QuoteOutcome(outcome)
	q.SubmissionMethod = entities.SubmissionMethod(method)
	q.QuoteNumber = derefString(number)
	q.Premium = decimalFromText(premium)
	return q, nil
}
