// Package carriers implements the carrier adapters, the registry that resolves them and the
// transports API carriers use to reach their rating endpoints.
package carriers

import (
	"context"
	"strings"

	"brokerage_crm/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Transport is the external-call boundary of a direct-API carrier. The HTTP and mock
// implementations share this contract, so adapter behavior does not depend on which is wired.
//
// Status returns a domainerr.ErrNotFound error for ids the carrier does not know.
// Document returns "" while no document exists.
type Transport interface {
	Submit(ctx context.Context, req SubmitPayload) (QuoteRecord, error)
	Status(ctx context.Context, quoteID string) (QuoteRecord, error)
	Document(ctx context.Context, quoteID string) (string, error)
}

// SubmitPayload is the rating request body sent to a carrier API.
type SubmitPayload struct {
	PartnerID            string         `json:"partner_id,omitempty"`
	ProductLine          string         `json:"product_line"`
	EffectiveDate        string         `json:"effective_date"`
	ExpirationDate       string         `json:"expiration_date"`
	CoverageRequirements map[string]any `json:"coverage_requirements,omitempty"`
	ApplicantData        map[string]any `json:"applicant_data,omitempty"`
	Reference            string         `json:"reference,omitempty"`
}

// QuoteRecord is a carrier's view of one quote. Status is one of pending, quoted, declined,
// no_offer or error.
type QuoteRecord struct {
	QuoteID         string              `json:"quote_id"`
	Status          string              `json:"status"`
	QuoteNumber     string              `json:"quote_number,omitempty"`
	Premium         decimal.NullDecimal `json:"premium"`
	ProductLine     string              `json:"product_line,omitempty"`
	EffectiveDate   string              `json:"effective_date,omitempty"`
	ExpirationDate  string              `json:"expiration_date,omitempty"`
	CoverageDetails map[string]any      `json:"coverage_details,omitempty"`
	DeclineReason   string              `json:"decline_reason,omitempty"`
	ErrorMessage    string              `json:"error_message,omitempty"`
	DocumentURL     string              `json:"document_url,omitempty"`
}

const statusPending = "pending"

func newSubmitPayload(partnerID string, req entities.QuoteRequest) SubmitPayload {
	applicant := make(map[string]any, len(req.ApplicantData))
	for k, v := range req.ApplicantData {
		if strings.HasPrefix(k, "_") {
			continue
		}
		applicant[k] = v
	}
	return SubmitPayload{
		PartnerID:            partnerID,
		ProductLine:          req.ProductLine,
		EffectiveDate:        req.EffectiveDate,
		ExpirationDate:       req.ExpirationDate,
		CoverageRequirements: req.CoverageRequirements,
		ApplicantData:        applicant,
		Reference:            req.OpportunityID,
	}
}

// toResponse maps a carrier record onto the adapter contract. Unknown statuses are reported
// as errors rather than guessed.
func (r QuoteRecord) toResponse(carrier string) entities.QuoteResponse {
	resp := entities.QuoteResponse{
		QuoteID:          r.QuoteID,
		CarrierName:      carrier,
		ProductLine:      r.ProductLine,
		QuoteNumber:      r.QuoteNumber,
		Premium:          r.Premium,
		EffectiveDate:    r.EffectiveDate,
		ExpirationDate:   r.ExpirationDate,
		CoverageDetails:  r.CoverageDetails,
		QuoteDocumentURL: r.DocumentURL,
	}

	switch status := strings.ToLower(strings.TrimSpace(r.Status)); status {
	case "", statusPending:
		resp.Status = entities.OutcomeNone
	case string(entities.OutcomeQuoted), string(entities.OutcomeDeclined), string(entities.OutcomeNoOffer):
		resp.Status = entities.QuoteOutcome(status)
		if resp.Status == entities.OutcomeDeclined {
			resp.DeclineReason = r.DeclineReason
		}
	case string(entities.OutcomeError):
		resp.Status = entities.OutcomeError
		resp.ErrorMessage = r.ErrorMessage
	default:
		resp.Status = entities.OutcomeError
		resp.ErrorMessage = "unrecognized carrier status " + r.Status
	}
	return resp
}
