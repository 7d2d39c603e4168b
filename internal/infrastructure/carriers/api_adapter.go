package carriers

import (
	"context"
	"fmt"

	"brokerage_crm/internal/domain/entities"
	"brokerage_crm/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// APIAdapter is a carrier reached through its rating API.
type APIAdapter struct {
	name      string
	partnerID string
	transport Transport
	log       *zap.Logger
}

var _ interfaces.ICarrierAdapter = (*APIAdapter)(nil)

func NewAPIAdapter(name, partnerID string, transport Transport, log *zap.Logger) *APIAdapter {
	if log == nil {
		log = zap.NewNop()
	}
	return &APIAdapter{name: name, partnerID: partnerID, transport: transport, log: log}
}

func (a *APIAdapter) Name() string      { return a.name }
func (a *APIAdapter) SupportsAPI() bool { return true }

func (a *APIAdapter) SubmitQuote(ctx context.Context, req entities.QuoteRequest) (entities.QuoteResponse, error) {
	rec, err := a.transport.Submit(ctx, newSubmitPayload(a.partnerID, req))
	if err != nil {
		return entities.QuoteResponse{}, fmt.Errorf("%s submit: %w", a.name, err)
	}
	resp := rec.toResponse(a.name)
	if resp.ProductLine == "" {
		resp.ProductLine = req.ProductLine
	}
	if resp.EffectiveDate == "" {
		resp.EffectiveDate = req.EffectiveDate
	}
	if resp.ExpirationDate == "" {
		resp.ExpirationDate = req.ExpirationDate
	}
	a.log.Info("carrier quote submitted",
		zap.String("carrier_quote_id", resp.QuoteID),
		zap.String("outcome", string(resp.Status)),
		zap.String("quote_number", resp.QuoteNumber),
	)
	return resp, nil
}

func (a *APIAdapter) CheckQuoteStatus(ctx context.Context, quoteID string) (entities.QuoteResponse, error) {
	rec, err := a.transport.Status(ctx, quoteID)
	if err != nil {
		return entities.QuoteResponse{}, fmt.Errorf("%s status: %w", a.name, err)
	}
	return rec.toResponse(a.name), nil
}

func (a *APIAdapter) RetrieveQuoteDocument(ctx context.Context, quoteID string) (string, error) {
	url, err := a.transport.Document(ctx, quoteID)
	if err != nil {
		return "", fmt.Errorf("%s document: %w", a.name, err)
	}
	return url, nil
}
