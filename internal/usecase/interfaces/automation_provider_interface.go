package interfaces

import (
	"context"

	"brokerage_crm/internal/domain/entities"
)

// PortalCredentials are passed through to the provider and never persisted.
type PortalCredentials struct {
	Username string
	Password string
}

// AutomationSpec describes a remote browser session to open against a carrier portal.
type AutomationSpec struct {
	RunID       string
	CarrierName string
	QuoteID     string
	PortalURL   string
	Credentials *PortalCredentials
	FormData    map[string]any
}

// RemoteSession is what the provider hands back once a session has been requested.
// ConnectURL is a CDP websocket endpoint; it is empty when the provider runs the portal
// script itself and reports completion out of band.
type RemoteSession struct {
	SessionID  string
	ConnectURL string
}

// IAutomationProvider requests remote browser sessions (Browserbase or a mock).

type IAutomationProvider interface {
	CreateSession(ctx context.Context, spec AutomationSpec) (RemoteSession, error)
}

// IPortalDriver drives a carrier portal inside an already-open remote browser session.

type IPortalDriver interface {
	Run(ctx context.Context, session RemoteSession, spec AutomationSpec) (entities.AutomationResult, error)
}

// ICredentialResolver looks up stored portal credentials for a carrier, used on retries
// because credentials are never persisted with a run.

type ICredentialResolver interface {
	PortalCredentials(carrier string) *PortalCredentials
}
