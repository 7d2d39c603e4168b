package memory

import (
	"context"
	"fmt"
	"time"

	"brokerage_crm/internal/domain/domainerr"
	"brokerage_crm/internal/domain/entities"
	"brokerage_crm/internal/usecase/interfaces"
)

type AutomationRunRepository struct {
	s *Store
}

var _ interfaces.IAutomationRunRepository = (*AutomationRunRepository)(nil)

func (r *AutomationRunRepository) Create(ctx context.Context, run entities.AutomationRun) (entities.AutomationRun, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.runs[run.ID]; ok {
		return entities.AutomationRun{}, fmt.Errorf("automation run %s: %w", run.ID, domainerr.ErrPersistenceConflict)
	}
	if run.SessionID != "" {
		if _, ok := r.s.runBySession[run.SessionID]; ok {
			return entities.AutomationRun{}, fmt.Errorf("session_id %s: %w", run.SessionID, domainerr.ErrPersistenceConflict)
		}
		r.s.runBySession[run.SessionID] = run.ID
	}
	r.s.runs[run.ID] = run
	r.s.runsByQuote[run.QuoteID] = append(r.s.runsByQuote[run.QuoteID], run.ID)
	return run, nil
}

func (r *AutomationRunRepository) GetByID(ctx context.Context, id string) (entities.AutomationRun, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.runs[id], nil
}

func (r *AutomationRunRepository) GetBySessionID(ctx context.Context, sessionID string) (entities.AutomationRun, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	id, ok := r.s.runBySession[sessionID]
	if !ok {
		return entities.AutomationRun{}, nil
	}
	return r.s.runs[id], nil
}

func (r *AutomationRunRepository) AssignSession(ctx context.Context, runID, sessionID string) (entities.AutomationRun, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	run, ok := r.s.runs[runID]
	if !ok {
		return entities.AutomationRun{}, nil
	}
	if owner, taken := r.s.runBySession[sessionID]; taken && owner != runID {
		return entities.AutomationRun{}, fmt.Errorf("session_id %s: %w", sessionID, domainerr.ErrPersistenceConflict)
	}
	if run.SessionID != "" && run.SessionID != sessionID {
		delete(r.s.runBySession, run.SessionID)
	}
	run.SessionID = sessionID
	r.s.runs[runID] = run
	r.s.runBySession[sessionID] = runID
	return run, nil
}

func (r *AutomationRunRepository) Complete(ctx context.Context, sessionID string, result entities.AutomationResult, completedAt time.Time) (entities.AutomationRun, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	id, ok := r.s.runBySession[sessionID]
	if !ok {
		return entities.AutomationRun{}, nil
	}
	run := r.s.runs[id]
	if run.Status != entities.AutomationStatusRunning {
		return entities.AutomationRun{}, fmt.Errorf("session %s is %s: %w", sessionID, run.Status, domainerr.ErrSessionAlreadyCompleted)
	}
	run.Status = result.Status
	run.OutputData = result.OutputData
	run.ScreenshotURLs = append([]string(nil), result.ScreenshotURLs...)
	run.Logs = result.Logs
	run.ErrorMessage = result.ErrorMessage
	run.CompletedAt = &completedAt
	r.s.runs[id] = run
	return run, nil
}

// ListByQuoteID returns the attempt history for a quote, newest first.
func (r *AutomationRunRepository) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.AutomationRun, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ids := r.s.runsByQuote[quoteID]
	out := make([]entities.AutomationRun, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		out = append(out, r.s.runs[ids[i]])
	}
	return out, nil
}
