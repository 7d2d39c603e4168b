package interfaces

import (
	"context"

	"brokerage_crm/internal/domain/entities"
)

// IQuoteRepository abstracts persistence for Quote.
//
// quote_number is unique when present: Create and Update return
// domainerr.ErrPersistenceConflict when another quote already owns it.
// Update replaces the mutable fields of an existing quote and returns a zero Quote
// when the id does not exist.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	GetByQuoteNumber(ctx context.Context, quoteNumber string) (entities.Quote, error)
	Update(ctx context.Context, q entities.Quote) (entities.Quote, error)
	ListByOpportunityID(ctx context.Context, opportunityID string) ([]entities.Quote, error)
}
