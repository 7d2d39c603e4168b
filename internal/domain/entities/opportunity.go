package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OpportunityStage is the sales pipeline position of an opportunity.
//
// Stages move forward only: intake -> quote -> uw_review -> bind.
// lost is terminal and reachable from any non-terminal stage.

type OpportunityStage string

const (
	StageIntake   OpportunityStage = "intake"
	StageQuote    OpportunityStage = "quote"
	StageUWReview OpportunityStage = "uw_review"
	StageBind     OpportunityStage = "bind"
	StageLost     OpportunityStage = "lost"
)

var stageRank = map[OpportunityStage]int{
	StageIntake:   0,
	StageQuote:    1,
	StageUWReview: 2,
	StageBind:     3,
}

func (s OpportunityStage) Valid() bool {
	_, ok := stageRank[s]
	return ok || s == StageLost
}

// Rank returns the position in the forward pipeline, or -1 for lost/unknown stages.
func (s OpportunityStage) Rank() int {
	if r, ok := stageRank[s]; ok {
		return r
	}
	return -1
}

func (s OpportunityStage) IsTerminal() bool {
	return s == StageBind || s == StageLost
}

// CanTransitionTo reports whether moving from s to next respects pipeline monotonicity.
func (s OpportunityStage) CanTransitionTo(next OpportunityStage) bool {
	if !s.Valid() || !next.Valid() || s.IsTerminal() {
		return false
	}
	if next == StageLost {
		return true
	}
	return next.Rank() > s.Rank()
}

// Opportunity is a sales pursuit tied to exactly one Account.
//
// Storage model:
//   - PK: id
//   - Unique: (account_id, name), used by ingestion find-or-create

type Opportunity struct {
	ID              string              `json:"id"`
	AccountID       string              `json:"account_id"`
	Name            string              `json:"name"`
	Stage           OpportunityStage    `json:"stage"`
	ProductLines    []string            `json:"product_lines"`
	ExpectedPremium decimal.NullDecimal `json:"expected_premium,omitempty"`
	Probability     int                 `json:"probability,omitempty"`
	CloseDate       string              `json:"close_date,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}
