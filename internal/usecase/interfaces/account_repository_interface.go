package interfaces

import (
	"context"

	"brokerage_crm/internal/domain/entities"
)

// IAccountRepository abstracts persistence for Account.
//
// Lookups return a zero Account (empty ID) and nil error when nothing matches.
// Create returns domainerr.ErrPersistenceConflict when the name is already taken.

type IAccountRepository interface {
	Create(ctx context.Context, a entities.Account) (entities.Account, error)
	GetByID(ctx context.Context, id string) (entities.Account, error)
	GetByName(ctx context.Context, name string) (entities.Account, error)
}
