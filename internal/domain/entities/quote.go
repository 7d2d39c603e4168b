package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteStatus is the workflow position of a quote attempt.

type QuoteStatus string

const (
	QuoteStatusDraft          QuoteStatus = "draft"
	QuoteStatusSubmittedAPI   QuoteStatus = "submitted_api"
	QuoteStatusSubmittedAgent QuoteStatus = "submitted_agent"
	QuoteStatusAwaitingUW     QuoteStatus = "awaiting_uw"
	QuoteStatusQuoted         QuoteStatus = "quoted"
	QuoteStatusAccepted       QuoteStatus = "accepted"
	QuoteStatusRejected       QuoteStatus = "rejected"
	QuoteStatusExpired        QuoteStatus = "expired"
)

func (s QuoteStatus) Valid() bool {
	switch s {
	case QuoteStatusDraft, QuoteStatusSubmittedAPI, QuoteStatusSubmittedAgent, QuoteStatusAwaitingUW,
		QuoteStatusQuoted, QuoteStatusAccepted, QuoteStatusRejected, QuoteStatusExpired:
		return true
	}
	return false
}

// QuoteOutcome is the terminal disposition of a quote attempt. The empty value means no outcome yet.

type QuoteOutcome string

const (
	OutcomeNone     QuoteOutcome = ""
	OutcomeQuoted   QuoteOutcome = "quoted"
	OutcomeDeclined QuoteOutcome = "declined"
	OutcomeError    QuoteOutcome = "error"
	OutcomeNoOffer  QuoteOutcome = "no_offer"
)

func (o QuoteOutcome) Valid() bool {
	switch o {
	case OutcomeNone, OutcomeQuoted, OutcomeDeclined, OutcomeError, OutcomeNoOffer:
		return true
	}
	return false
}

func (o QuoteOutcome) IsTerminal() bool {
	return o != OutcomeNone
}

type SubmissionMethod string

const (
	SubmissionMethodNone  SubmissionMethod = ""
	SubmissionMethodAPI   SubmissionMethod = "api"
	SubmissionMethodAgent SubmissionMethod = "agent"
)

func (m SubmissionMethod) Valid() bool {
	return m == SubmissionMethodNone || m == SubmissionMethodAPI || m == SubmissionMethodAgent
}

// Quote is one carrier submission attempt for one Opportunity.
//
// Storage model:
//   - PK: id
//   - Unique: quote_number (when present), the ingestion idempotency key
//   - Secondary: opportunity_id
//
// Outcome coherence (see ApplyOutcome):
//   - QuotedAt is set iff Outcome == quoted
//   - DeclineReason only when Outcome == declined
//   - ErrorMessage only when Outcome == error

type Quote struct {
	ID               string              `json:"id"`
	OpportunityID    string              `json:"opportunity_id"`
	CarrierName      string              `json:"carrier_name"`
	ProductLine      string              `json:"product_line"`
	Status           QuoteStatus         `json:"status"`
	Outcome          QuoteOutcome        `json:"outcome,omitempty"`
	QuoteNumber      string              `json:"quote_number,omitempty"`
	CarrierQuoteID   string              `json:"carrier_quote_id,omitempty"`
	Premium          decimal.NullDecimal `json:"premium,omitempty"`
	EffectiveDate    string              `json:"effective_date,omitempty"`
	ExpirationDate   string              `json:"expiration_date,omitempty"`
	CoverageDetails  map[string]any      `json:"coverage_details,omitempty"`
	DeclineReason    string              `json:"decline_reason,omitempty"`
	ErrorMessage     string              `json:"error_message,omitempty"`
	SubmissionMethod SubmissionMethod    `json:"submission_method,omitempty"`
	QuoteDocumentURL string              `json:"quote_document_url,omitempty"`
	SubmittedAt      *time.Time          `json:"submitted_at,omitempty"`
	QuotedAt         *time.Time          `json:"quoted_at,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

// ApplyOutcome sets the outcome and normalizes the fields that depend on it.
// An existing QuotedAt is kept when the quote stays quoted.
func (q *Quote) ApplyOutcome(outcome QuoteOutcome, declineReason, errorMessage string, now time.Time) {
	q.Outcome = outcome

	q.DeclineReason = ""
	if outcome == OutcomeDeclined {
		q.DeclineReason = declineReason
	}

	q.ErrorMessage = ""
	if outcome == OutcomeError {
		q.ErrorMessage = errorMessage
	}

	if outcome != OutcomeQuoted {
		q.QuotedAt = nil
		return
	}
	if q.QuotedAt == nil {
		t := now
		q.QuotedAt = &t
	}
}

func (q Quote) IsTerminal() bool {
	return q.Outcome.IsTerminal()
}
