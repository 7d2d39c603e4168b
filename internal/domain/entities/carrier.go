package entities

import "github.com/shopspring/decimal"

// QuoteRequest is what a carrier adapter receives for one submission.
//
// QuoteRef is the persisted Quote id. Automation carriers need it because every
// AutomationRun is owned by a Quote; API carriers ignore it.
type QuoteRequest struct {
	AccountID            string         `json:"account_id" validate:"required"`
	OpportunityID        string         `json:"opportunity_id" validate:"required"`
	QuoteRef             string         `json:"quote_ref,omitempty"`
	ProductLine          string         `json:"product_line" validate:"required"`
	EffectiveDate        string         `json:"effective_date" validate:"required,datetime=2006-01-02"`
	ExpirationDate       string         `json:"expiration_date" validate:"required,datetime=2006-01-02"`
	CoverageRequirements map[string]any `json:"coverage_requirements,omitempty"`
	ApplicantData        map[string]any `json:"applicant_data,omitempty"`
}

// ApplicantPortalURLKey is the ApplicantData key carrying a per-request portal URL override
// for automation carriers. It is stripped before the data reaches the portal form.
const ApplicantPortalURLKey = "_portal_url"

// QuoteResponse is a carrier decision. Status is empty while the carrier has not decided yet
// (automation sessions still running); SessionID is set for automation carriers.
type QuoteResponse struct {
	QuoteID          string              `json:"quote_id"`
	CarrierName      string              `json:"carrier_name"`
	ProductLine      string              `json:"product_line"`
	Status           QuoteOutcome        `json:"status,omitempty"`
	QuoteNumber      string              `json:"quote_number,omitempty"`
	Premium          decimal.NullDecimal `json:"premium,omitempty"`
	EffectiveDate    string              `json:"effective_date,omitempty"`
	ExpirationDate   string              `json:"expiration_date,omitempty"`
	CoverageDetails  map[string]any      `json:"coverage_details,omitempty"`
	DeclineReason    string              `json:"decline_reason,omitempty"`
	ErrorMessage     string              `json:"error_message,omitempty"`
	QuoteDocumentURL string              `json:"quote_document_url,omitempty"`
	SessionID        string              `json:"session_id,omitempty"`
}

func (r QuoteResponse) Pending() bool {
	return r.Status == OutcomeNone
}
