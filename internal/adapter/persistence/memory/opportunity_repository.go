package memory

import (
	"context"
	"fmt"
	"time"

	"brokerage_crm/internal/domain/domainerr"
	"brokerage_crm/internal/domain/entities"
	"brokerage_crm/internal/usecase/interfaces"
)

type OpportunityRepository struct {
	s *Store
}

var _ interfaces.IOpportunityRepository = (*OpportunityRepository)(nil)

func (r *OpportunityRepository) Create(ctx context.Context, o entities.Opportunity) (entities.Opportunity, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := oppKey{accountID: o.AccountID, name: o.Name}
	if _, ok := r.s.opportunities[o.ID]; ok {
		return entities.Opportunity{}, fmt.Errorf("opportunity id %s: %w", o.ID, domainerr.ErrPersistenceConflict)
	}
	if _, ok := r.s.oppByKey[key]; ok {
		return entities.Opportunity{}, fmt.Errorf("opportunity %q for account %s: %w", o.Name, o.AccountID, domainerr.ErrPersistenceConflict)
	}
	o.ProductLines = append([]string(nil), o.ProductLines...)
	r.s.opportunities[o.ID] = o
	r.s.oppByKey[key] = o.ID
	return o, nil
}

func (r *OpportunityRepository) GetByID(ctx context.Context, id string) (entities.Opportunity, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.opportunities[id], nil
}

func (r *OpportunityRepository) GetByAccountAndName(ctx context.Context, accountID, name string) (entities.Opportunity, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	id, ok := r.s.oppByKey[oppKey{accountID: accountID, name: name}]
	if !ok {
		return entities.Opportunity{}, nil
	}
	return r.s.opportunities[id], nil
}

func (r *OpportunityRepository) UpdateStage(ctx context.Context, id string, stage entities.OpportunityStage) (entities.Opportunity, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.opportunities[id]
	if !ok {
		return entities.Opportunity{}, nil
	}
	o.Stage = stage
	o.UpdatedAt = time.Now().UTC()
	r.s.opportunities[id] = o
	return o, nil
}
