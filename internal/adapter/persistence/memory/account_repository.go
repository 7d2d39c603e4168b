package memory

import (
	"context"
	"fmt"

	"brokerage_crm/internal/domain/domainerr"
	"brokerage_crm/internal/domain/entities"
	"brokerage_crm/internal/usecase/interfaces"
)

type AccountRepository struct {
	s *Store
}

var _ interfaces.IAccountRepository = (*AccountRepository)(nil)

func (r *AccountRepository) Create(ctx context.Context, a entities.Account) (entities.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.accounts[a.ID]; ok {
		return entities.Account{}, fmt.Errorf("account id %s: %w", a.ID, domainerr.ErrPersistenceConflict)
	}
	if _, ok := r.s.accountByName[a.Name]; ok {
		return entities.Account{}, fmt.Errorf("account name %q: %w", a.Name, domainerr.ErrPersistenceConflict)
	}
	r.s.accounts[a.ID] = a
	r.s.accountByName[a.Name] = a.ID
	return a, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id string) (entities.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.accounts[id], nil
}

func (r *AccountRepository) GetByName(ctx context.Context, name string) (entities.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	id, ok := r.s.accountByName[name]
	if !ok {
		return entities.Account{}, nil
	}
	return r.s.accounts[id], nil
}
