package interfaces

import (
	"context"
	"time"

	"brokerage_crm/internal/domain/entities"
)

// IAutomationRunRepository abstracts persistence for AutomationRun.
//
// Complete is a conditional transition: it only succeeds while the run is still running
// and returns domainerr.ErrSessionAlreadyCompleted otherwise. Missing runs yield a zero
// AutomationRun and nil error, as for every other lookup.

type IAutomationRunRepository interface {
	Create(ctx context.Context, r entities.AutomationRun) (entities.AutomationRun, error)
	GetByID(ctx context.Context, id string) (entities.AutomationRun, error)
	GetBySessionID(ctx context.Context, sessionID string) (entities.AutomationRun, error)
	AssignSession(ctx context.Context, runID, sessionID string) (entities.AutomationRun, error)
	Complete(ctx context.Context, sessionID string, result entities.AutomationResult, completedAt time.Time) (entities.AutomationRun, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.AutomationRun, error)
}
