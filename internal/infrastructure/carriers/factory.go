package carriers

import (
	"fmt"
	"net/http"
	"strings"

	"brokerage_crm/internal/config"
	"brokerage_crm/internal/infrastructure/upstream"
	"brokerage_crm/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Deps are the collaborators carrier constructors may need.
type Deps struct {
	Gateway     config.CarrierGatewayConfig
	Sessions    interfaces.IAutomationSessions
	Credentials interfaces.ICredentialResolver
	HTTPClient  *http.Client
	Log         *zap.Logger
}

type constructor func(cc config.CarrierConfig, deps Deps) (interfaces.ICarrierAdapter, error)

// constructors is the compiled-in set of carriers. Configuration chooses among these; it
// cannot add new ones.
var constructors = map[string]constructor{
	"btis":    apiCarrier("BTIS", "BTIS", 1000, 4000, 1000),
	"coterie": apiCarrier("Coterie", "COT", 800, 4000, 500),
	"markel":  automationCarrier("Markel"),
}

// Known reports whether a carrier id has a compiled-in constructor.
func Known(id string) bool {
	_, ok := constructors[normalize(id)]
	return ok
}

// Build creates the registry for the configured carriers, in configuration order.
func Build(carriers []config.CarrierConfig, deps Deps) (*Registry, error) {
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	adapters := make([]interfaces.ICarrierAdapter, 0, len(carriers))
	for _, cc := range carriers {
		ctor, ok := constructors[normalize(cc.ID)]
		if !ok {
			return nil, fmt.Errorf("no adapter constructor for carrier %q", cc.ID)
		}
		a, err := ctor(cc, deps)
		if err != nil {
			return nil, fmt.Errorf("carrier %s: %w", cc.ID, err)
		}
		adapters = append(adapters, a)
	}
	return NewRegistry(adapters...)
}

func apiCarrier(name, prefix string, basePremium, spread int64, deductible int) constructor {
	return func(cc config.CarrierConfig, deps Deps) (interfaces.ICarrierAdapter, error) {
		log := deps.Log.Named("carriers." + cc.ID)

		var transport Transport
		if deps.Gateway.Mock || cc.APIURL == "" {
			log.Warn("carrier API not configured, using mock transport")
			transport = NewMockTransport(name, prefix, basePremium, spread, deductible)
		} else {
			timeout := cc.Timeout
			if timeout <= 0 {
				timeout = deps.Gateway.Timeout
			}
			transport = NewHTTPTransport(HTTPTransportConfig{
				Carrier:   name,
				BaseURL:   cc.APIURL,
				APIKey:    cc.APIKey,
				PartnerID: cc.PartnerID,
				RateLimit: cc.RateLimit,
				Burst:     cc.Burst,
				Timeout:   timeout,
				Retry: upstream.RetryPolicy{
					MaxAttempts: deps.Gateway.MaxAttempts,
					BaseDelay:   deps.Gateway.BaseDelay,
					MaxDelay:    deps.Gateway.MaxDelay,
					Jitter:      true,
				},
			}, deps.HTTPClient, log)
		}
		return NewAPIAdapter(name, cc.PartnerID, transport, log), nil
	}
}

func automationCarrier(name string) constructor {
	return func(cc config.CarrierConfig, deps Deps) (interfaces.ICarrierAdapter, error) {
		if deps.Sessions == nil {
			return nil, fmt.Errorf("automation sessions are required")
		}
		return NewAutomationAdapter(name, cc.PortalURL, deps.Sessions, deps.Credentials), nil
	}
}

// CredentialStore serves portal credentials from configuration.
type CredentialStore struct {
	creds map[string]interfaces.PortalCredentials
}

var _ interfaces.ICredentialResolver = (*CredentialStore)(nil)

func NewCredentialStore(carriers []config.CarrierConfig) *CredentialStore {
	s := &CredentialStore{creds: map[string]interfaces.PortalCredentials{}}
	for _, cc := range carriers {
		if strings.TrimSpace(cc.PortalUsername) == "" {
			continue
		}
		s.creds[normalize(cc.ID)] = interfaces.PortalCredentials{Username: cc.PortalUsername, Password: cc.PortalPassword}
	}
	return s
}

// PortalCredentials returns a copy of the carrier's credentials, or nil when none are configured.
func (s *CredentialStore) PortalCredentials(carrier string) *interfaces.PortalCredentials {
	c, ok := s.creds[normalize(carrier)]
	if !ok {
		return nil
	}
	return &c
}
