package memory

import (
	"context"
	"fmt"
	"sort"

	"brokerage_crm/internal/domain/domainerr"
	"brokerage_crm/internal/domain/entities"
	"brokerage_crm/internal/usecase/interfaces"
)

type QuoteRepository struct {
	s *Store
}

var _ interfaces.IQuoteRepository = (*QuoteRepository)(nil)

func (r *QuoteRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.quotes[q.ID]; ok {
		return entities.Quote{}, fmt.Errorf("quote id %s: %w", q.ID, domainerr.ErrPersistenceConflict)
	}
	if q.QuoteNumber != "" {
		if _, ok := r.s.quoteByNumber[q.QuoteNumber]; ok {
			return entities.Quote{}, fmt.Errorf("quote_number %s: %w", q.QuoteNumber, domainerr.ErrPersistenceConflict)
		}
		r.s.quoteByNumber[q.QuoteNumber] = q.ID
	}
	r.s.quotes[q.ID] = q
	return q, nil
}

func (r *QuoteRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.quotes[id], nil
}

func (r *QuoteRepository) GetByQuoteNumber(ctx context.Context, quoteNumber string) (entities.Quote, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	id, ok := r.s.quoteByNumber[quoteNumber]
	if !ok {
		return entities.Quote{}, nil
	}
	return r.s.quotes[id], nil
}

func (r *QuoteRepository) Update(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.quotes[q.ID]
	if !ok {
		return entities.Quote{}, nil
	}
	if q.QuoteNumber != current.QuoteNumber {
		if owner, taken := r.s.quoteByNumber[q.QuoteNumber]; taken && q.QuoteNumber != "" && owner != q.ID {
			return entities.Quote{}, fmt.Errorf("quote_number %s: %w", q.QuoteNumber, domainerr.ErrPersistenceConflict)
		}
		if current.QuoteNumber != "" {
			delete(r.s.quoteByNumber, current.QuoteNumber)
		}
		if q.QuoteNumber != "" {
			r.s.quoteByNumber[q.QuoteNumber] = q.ID
		}
	}
	q.OpportunityID = current.OpportunityID
	q.CreatedAt = current.CreatedAt
	r.s.quotes[q.ID] = q
	return q, nil
}

func (r *QuoteRepository) ListByOpportunityID(ctx context.Context, opportunityID string) ([]entities.Quote, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []entities.Quote{}
	for _, q := range r.s.quotes {
		if q.OpportunityID == opportunityID {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
