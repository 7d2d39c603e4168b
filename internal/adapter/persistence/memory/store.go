package memory

import (
	"sync"

	"brokerage_crm/internal/domain/entities"
)

// Store is an in-memory implementation of every repository port, used when
// STORAGE_DRIVER=memory and as the storage fake in use case tests.
//
// It enforces the same uniqueness constraints as the durable drivers:
// account name, (account_id, opportunity name), quote_number and session_id.
type Store struct {
	mu sync.Mutex

	accounts      map[string]entities.Account // id -> account
	accountByName map[string]string           // name -> id

	opportunities map[string]entities.Opportunity // id -> opportunity
	oppByKey      map[oppKey]string               // (account_id, name) -> id

	quotes        map[string]entities.Quote // id -> quote
	quoteByNumber map[string]string         // quote_number -> id

	runs         map[string]entities.AutomationRun // id -> run
	runBySession map[string]string                 // session_id -> id
	runsByQuote  map[string][]string               // quote_id -> run ids, insertion order
}

type oppKey struct {
	accountID string
	name      string
}

func NewStore() *Store {
	return &Store{
		accounts:      map[string]entities.Account{},
		accountByName: map[string]string{},
		opportunities: map[string]entities.Opportunity{},
		oppByKey:      map[oppKey]string{},
		quotes:        map[string]entities.Quote{},
		quoteByNumber: map[string]string{},
		runs:          map[string]entities.AutomationRun{},
		runBySession:  map[string]string{},
		runsByQuote:   map[string][]string{},
	}
}

func (s *Store) Accounts() *AccountRepository { return &AccountRepository{s: s} }

func (s *Store) Opportunities() *OpportunityRepository { return &OpportunityRepository{s: s} }

func (s *Store) Quotes() *QuoteRepository { return &QuoteRepository{s: s} }

func (s *Store) AutomationRuns() *AutomationRunRepository { return &AutomationRunRepository{s: s} }

// Counts reports how many records of each kind exist. Used by tests.
func (s *Store) Counts() (accounts, opportunities, quotes, runs int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.accounts), len(s.opportunities), len(s.quotes), len(s.runs)
}
