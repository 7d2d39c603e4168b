package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"brokerage_crm/internal/domain/domainerr"
	"brokerage_crm/internal/domain/entities"
	"brokerage_crm/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AutomationRunRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.IAutomationRunRepository = (*AutomationRunRepository)(nil)

func NewAutomationRunRepository(pool *pgxpool.Pool) *AutomationRunRepository {
	return &AutomationRunRepository{pool: pool}
}

const automationRunColumns = `id, session_id, carrier_name, quote_id, status, input_data, output_data, screenshot_urls,
	logs, error_message, retry_count, retry_of, started_at, completed_at`

func (r *AutomationRunRepository) Create(ctx context.Context, run entities.AutomationRun) (entities.AutomationRun, error) {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO automation_runs (id, session_id, carrier_name, quote_id, status, input_data, output_data,
			screenshot_urls, logs, error_message, retry_count, retry_of, started_at, completed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		run.ID, nullIfEmpty(run.SessionID), run.CarrierName, run.QuoteID, string(run.Status), run.InputData,
		run.OutputData, nonNilStrings(run.ScreenshotURLs), run.Logs, run.ErrorMessage, run.RetryCount, run.RetryOf,
		run.StartedAt, run.CompletedAt,
	)
	if err != nil {
		return entities.AutomationRun{}, conflictOrErr(err, "create automation run "+run.ID)
	}
	return run, nil
}

func (r *AutomationRunRepository) GetByID(ctx context.Context, id string) (entities.AutomationRun, error) {
	return scanAutomationRun(r.pool.QueryRow(ctx, `SELECT `+automationRunColumns+` FROM automation_runs WHERE id = $1`, id))
}

func (r *AutomationRunRepository) GetBySessionID(ctx context.Context, sessionID string) (entities.AutomationRun, error) {
	if sessionID == "" {
		return entities.AutomationRun{}, nil
	}
	return scanAutomationRun(r.pool.QueryRow(ctx,
		`SELECT `+automationRunColumns+` FROM automation_runs WHERE session_id = $1`, sessionID,
	))
}

func (r *AutomationRunRepository) AssignSession(ctx context.Context, runID, sessionID string) (entities.AutomationRun, error) {
	run, err := scanAutomationRun(r.pool.QueryRow(ctx,
		`UPDATE automation_runs SET session_id = $2 WHERE id = $1 RETURNING `+automationRunColumns,
		runID, sessionID,
	))
	if err != nil {
		return entities.AutomationRun{}, conflictOrErr(err, "assign session_id "+sessionID)
	}
	return run, nil
}

// Complete moves a running run to its terminal status. Only the first completion matches
// the status predicate; later ones find the row but no running run.
func (r *AutomationRunRepository) Complete(ctx context.Context, sessionID string, result entities.AutomationResult, completedAt time.Time) (entities.AutomationRun, error) {
	run, err := scanAutomationRun(r.pool.QueryRow(ctx,
		`UPDATE automation_runs SET status = $2, completed_at = $3, output_data = $4, screenshot_urls = $5,
			logs = $6, error_message = $7
		 WHERE session_id = $1 AND status = $8
		 RETURNING `+automationRunColumns,
		sessionID, string(result.Status), completedAt, result.OutputData, nonNilStrings(result.ScreenshotURLs),
		result.Logs, result.ErrorMessage, string(entities.AutomationStatusRunning),
	))
	if err != nil {
		return entities.AutomationRun{}, fmt.Errorf("complete session %s: %w", sessionID, err)
	}
	if run.ID != "" {
		return run, nil
	}

	existing, err := r.GetBySessionID(ctx, sessionID)
	if err != nil || existing.ID == "" {
		return entities.AutomationRun{}, err
	}
	return entities.AutomationRun{}, fmt.Errorf("session %s: %w", sessionID, domainerr.ErrSessionAlreadyCompleted)
}

func (r *AutomationRunRepository) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.AutomationRun, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+automationRunColumns+` FROM automation_runs WHERE quote_id = $1 ORDER BY started_at DESC`,
		quoteID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list automation runs: %w", err)
	}
	defer rows.Close()

	out := []entities.AutomationRun{}
	for rows.Next() {
		run, err := scanAutomationRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, rows.Err()
}

// scanAutomationRun returns a zero AutomationRun and nil error for pgx.ErrNoRows.
func scanAutomationRun(row pgx.Row) (entities.AutomationRun, error) {
	var (
		run       entities.AutomationRun
		sessionID *string
		status    string
	)
	err := row.Scan(&run.ID, &sessionID, &run.CarrierName, &run.QuoteID, &status, &run.InputData, &run.OutputData,
		&run.ScreenshotURLs, &run.Logs, &run.ErrorMessage, &run.RetryCount, &run.RetryOf, &run.StartedAt, &run.CompletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.AutomationRun{}, nil
		}
		return entities.AutomationRun{}, err
	}
	run.SessionID = derefString(sessionID)
	run.Status = entities.AutomationStatus(status)
	return run, nil
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
