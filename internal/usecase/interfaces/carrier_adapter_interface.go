package interfaces

import (
	"context"

	"brokerage_crm/internal/domain/entities"
)

// ICarrierAdapter is the per-carrier quoting strategy.
//
// SupportsAPI only drives labeling (submission_method api vs agent); the contract is the
// same for direct-API and automation-only carriers. RetrieveQuoteDocument returns an empty
// string, not an error, while no document exists yet. CheckQuoteStatus returns a
// domainerr.ErrNotFound error when the carrier has no record of quoteID.

type ICarrierAdapter interface {
	Name() string
	SupportsAPI() bool
	SubmitQuote(ctx context.Context, req entities.QuoteRequest) (entities.QuoteResponse, error)
	CheckQuoteStatus(ctx context.Context, quoteID string) (entities.QuoteResponse, error)
	RetrieveQuoteDocument(ctx context.Context, quoteID string) (string, error)
}

// ICarrierRegistry maps carrier identifiers to adapters. It is read-only after construction.

type ICarrierRegistry interface {
	Resolve(carrier string) (ICarrierAdapter, error)
	ListSupported() []string
}
