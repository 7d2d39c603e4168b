package interfaces

import (
	"context"

	"brokerage_crm/internal/domain/entities"
)

// StartSessionInput is the request to open an automation session for a quote.
type StartSessionInput struct {
	CarrierName string
	QuoteID     string
	PortalURL   string
	Credentials *PortalCredentials
	FormData    map[string]any
}

// IAutomationSessions is the part of the session manager automation-only carrier
// adapters depend on.

type IAutomationSessions interface {
	Start(ctx context.Context, in StartSessionInput) (entities.Session, error)
	CheckStatus(ctx context.Context, sessionID string) (entities.Session, error)
}
