package response

import (
	"time"

	"brokerage_crm/internal/domain/entities"
	"brokerage_crm/internal/usecase"

	"github.com/shopspring/decimal"
)

type QuoteResponse struct {
	ID               string              `json:"id"`
	OpportunityID    string              `json:"opportunity_id"`
	CarrierName      string              `json:"carrier_name"`
	ProductLine      string              `json:"product_line"`
	Status           string              `json:"status"`
	Outcome          *string             `json:"outcome"`
	QuoteNumber      *string             `json:"quote_number"`
	CarrierQuoteID   string              `json:"carrier_quote_id,omitempty"`
	Premium          decimal.NullDecimal `json:"premium" swaggertype:"string" example:"4200.50"`
	EffectiveDate    string              `json:"effective_date,omitempty"`
	ExpirationDate   string              `json:"expiration_date,omitempty"`
	CoverageDetails  map[string]any      `json:"coverage_details,omitempty"`
	DeclineReason    *string             `json:"decline_reason"`
	ErrorMessage     *string             `json:"error_message"`
	SubmissionMethod *string             `json:"submission_method"`
	QuoteDocumentURL string              `json:"quote_document_url,omitempty"`
	SubmittedAt      *time.Time          `json:"submitted_at"`
	QuotedAt         *time.Time          `json:"quoted_at"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

// FromQuote renders empty optional fields as null so outcome coherence is visible to callers.
func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:               q.ID,
		OpportunityID:    q.OpportunityID,
		CarrierName:      q.CarrierName,
		ProductLine:      q.ProductLine,
		Status:           string(q.Status),
		Outcome:          optional(string(q.Outcome)),
		QuoteNumber:      optional(q.QuoteNumber),
		CarrierQuoteID:   q.CarrierQuoteID,
		Premium:          q.Premium,
		EffectiveDate:    q.EffectiveDate,
		ExpirationDate:   q.ExpirationDate,
		CoverageDetails:  q.CoverageDetails,
		DeclineReason:    optional(q.DeclineReason),
		ErrorMessage:     optional(q.ErrorMessage),
		SubmissionMethod: optional(string(q.SubmissionMethod)),
		QuoteDocumentURL: q.QuoteDocumentURL,
		SubmittedAt:      q.SubmittedAt,
		QuotedAt:         q.QuotedAt,
		CreatedAt:        q.CreatedAt,
		UpdatedAt:        q.UpdatedAt,
	}
}

type IngestResponse struct {
	Success bool          `json:"success"`
	Quote   QuoteResponse `json:"quote"`
	Action  string        `json:"action"`
}

func FromIngestResult(res usecase.IngestQuoteResult) IngestResponse {
	return IngestResponse{
		Success: true,
		Quote:   FromQuote(res.Quote),
		Action:  string(res.Action),
	}
}

type IngestHealthResponse struct {
	Status   string   `json:"status"`
	Endpoint string   `json:"endpoint"`
	Methods  []string `json:"methods"`
}

type CarrierResponse struct {
	Name        string `json:"name"`
	SupportsAPI bool   `json:"supports_api"`
}

func FromCarriers(infos []usecase.CarrierInfo) []CarrierResponse {
	out := make([]CarrierResponse, 0, len(infos))
	for _, c := range infos {
		out = append(out, CarrierResponse{Name: c.Name, SupportsAPI: c.SupportsAPI})
	}
	return out
}

type CarrierSubmissionResponse struct {
	Carrier   string         `json:"carrier"`
	Quote     *QuoteResponse `json:"quote,omitempty"`
	Action    string         `json:"action,omitempty"`
	SessionID string         `json:"session_id,omitempty"`
	Error     string         `json:"error,omitempty"`
}

type SubmissionResponse struct {
	Results []CarrierSubmissionResponse `json:"results"`
}

func FromSubmissions(subs []usecase.CarrierSubmission) SubmissionResponse {
	out := SubmissionResponse{Results: make([]CarrierSubmissionResponse, 0, len(subs))}
	for _, s := range subs {
		item := CarrierSubmissionResponse{
			Carrier:   s.Carrier,
			Action:    string(s.Action),
			SessionID: s.SessionID,
			Error:     s.Error,
		}
		if s.Quote.ID != "" {
			q := FromQuote(s.Quote)
			item.Quote = &q
		}
		out.Results = append(out.Results, item)
	}
	return out
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
