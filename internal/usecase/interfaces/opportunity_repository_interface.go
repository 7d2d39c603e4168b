package interfaces

import (
	"context"

	"brokerage_crm/internal/domain/entities"
)

// IOpportunityRepository abstracts persistence for Opportunity.
//
// Create returns domainerr.ErrPersistenceConflict when (account_id, name) already exists.
// UpdateStage returns a zero Opportunity when the id does not exist.

type IOpportunityRepository interface {
	Create(ctx context.Context, o entities.Opportunity) (entities.Opportunity, error)
	GetByID(ctx context.Context, id string) (entities.Opportunity, error)
	GetByAccountAndName(ctx context.Context, accountID, name string) (entities.Opportunity, error)
	UpdateStage(ctx context.Context, id string, stage entities.OpportunityStage) (entities.Opportunity, error)
}
