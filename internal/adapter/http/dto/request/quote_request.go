package request

import (
	"strings"

	"brokerage_crm/internal/usecase"

	"github.com/shopspring/decimal"
)

// IngestQuoteRequest is the body of POST /v1/quotes/ingest. carrier_name and product_line are
// checked by the ingestion gateway so the caller gets its explicit validation message.
type IngestQuoteRequest struct {
	AccountID        string              `json:"account_id"`
	AccountName      string              `json:"account_name"`
	OpportunityID    string              `json:"opportunity_id"`
	OpportunityName  string              `json:"opportunity_name"`
	CarrierName      string              `json:"carrier_name"`
	ProductLine      string              `json:"product_line"`
	Status           string              `json:"status"`
	QuoteNumber      string              `json:"quote_number"`
	CarrierQuoteID   string              `json:"carrier_quote_id"`
	Premium          decimal.NullDecimal `json:"premium" swaggertype:"number"`
	EffectiveDate    string              `json:"effective_date"`
	ExpirationDate   string              `json:"expiration_date"`
	CoverageDetails  map[string]any      `json:"coverage_details"`
	SubmissionMethod string              `json:"submission_method"`
	Outcome          string              `json:"outcome"`
	DeclineReason    string              `json:"decline_reason"`
	ErrorMessage     string              `json:"error_message"`
	QuoteDocumentURL string              `json:"quote_document_url"`
}

func (r IngestQuoteRequest) ToInput() usecase.IngestQuoteInput {
	return usecase.IngestQuoteInput{
		AccountID:        r.AccountID,
		AccountName:      r.AccountName,
		OpportunityID:    r.OpportunityID,
		OpportunityName:  r.OpportunityName,
		CarrierName:      r.CarrierName,
		ProductLine:      r.ProductLine,
		Status:           r.Status,
		QuoteNumber:      r.QuoteNumber,
		CarrierQuoteID:   r.CarrierQuoteID,
		Premium:          r.Premium,
		EffectiveDate:    r.EffectiveDate,
		ExpirationDate:   r.ExpirationDate,
		CoverageDetails:  r.CoverageDetails,
		SubmissionMethod: r.SubmissionMethod,
		Outcome:          r.Outcome,
		DeclineReason:    r.DeclineReason,
		ErrorMessage:     r.ErrorMessage,
		QuoteDocumentURL: r.QuoteDocumentURL,
	}
}

// SubmitQuotesRequest is the body of POST /v1/carriers/submissions.
type SubmitQuotesRequest struct {
	Carriers             []string          `json:"carriers" binding:"required,min=1"`
	AccountID            string            `json:"account_id"`
	AccountName          string            `json:"account_name"`
	OpportunityID        string            `json:"opportunity_id"`
	OpportunityName      string            `json:"opportunity_name"`
	ProductLine          string            `json:"product_line" binding:"required"`
	EffectiveDate        string            `json:"effective_date" binding:"required"`
	ExpirationDate       string            `json:"expiration_date" binding:"required"`
	CoverageRequirements map[string]any    `json:"coverage_requirements"`
	ApplicantData        map[string]any    `json:"applicant_data"`
	PortalURLs           map[string]string `json:"portal_urls"`
}

func (r SubmitQuotesRequest) ToInput() usecase.SubmissionInput {
	carriers := make([]string, 0, len(r.Carriers))
	for _, c := range r.Carriers {
		if c = strings.TrimSpace(c); c != "" {
			carriers = append(carriers, c)
		}
	}
	return usecase.SubmissionInput{
		Carriers:             carriers,
		AccountID:            r.AccountID,
		AccountName:          r.AccountName,
		OpportunityID:        r.OpportunityID,
		OpportunityName:      r.OpportunityName,
		ProductLine:          r.ProductLine,
		EffectiveDate:        r.EffectiveDate,
		ExpirationDate:       r.ExpirationDate,
		CoverageRequirements: r.CoverageRequirements,
		ApplicantData:        r.ApplicantData,
		PortalURLs:           r.PortalURLs,
	}
}
