package carriers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"brokerage_crm/internal/domain/domainerr"
	"brokerage_crm/internal/domain/entities"
	"brokerage_crm/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// AutomationAdapter is a carrier without an API; quotes are produced by a browser automation
// session against the carrier portal. Its adapter-level quote id is the session id.
type AutomationAdapter struct {
	name        string
	portalURL   string
	sessions    interfaces.IAutomationSessions
	credentials interfaces.ICredentialResolver
}

var _ interfaces.ICarrierAdapter = (*AutomationAdapter)(nil)

func NewAutomationAdapter(name, portalURL string, sessions interfaces.IAutomationSessions, credentials interfaces.ICredentialResolver) *AutomationAdapter {
	return &AutomationAdapter{name: name, portalURL: portalURL, sessions: sessions, credentials: credentials}
}

func (a *AutomationAdapter) Name() string      { return a.name }
func (a *AutomationAdapter) SupportsAPI() bool { return false }

// SubmitQuote starts a portal session for req.QuoteRef and returns a pending response.
func (a *AutomationAdapter) SubmitQuote(ctx context.Context, req entities.QuoteRequest) (entities.QuoteResponse, error) {
	if req.QuoteRef == "" {
		return entities.QuoteResponse{}, domainerr.NewValidationError("quote_ref", "quote_ref is required for automation carriers")
	}

	portalURL := a.portalURL
	if override, ok := req.ApplicantData[entities.ApplicantPortalURLKey].(string); ok && strings.TrimSpace(override) != "" {
		portalURL = strings.TrimSpace(override)
	}
	if portalURL == "" {
		return entities.QuoteResponse{}, domainerr.NewValidationError("portal_url", fmt.Sprintf("no portal url configured for %s", a.name))
	}

	var creds *interfaces.PortalCredentials
	if a.credentials != nil {
		creds = a.credentials.PortalCredentials(a.name)
	}

	session, err := a.sessions.Start(ctx, interfaces.StartSessionInput{
		CarrierName: a.name,
		QuoteID:     req.QuoteRef,
		PortalURL:   portalURL,
		Credentials: creds,
		FormData:    formData(req),
	})
	if err != nil {
		return entities.QuoteResponse{}, fmt.Errorf("%s automation: %w", a.name, err)
	}

	resp := sessionToResponse(a.name, session)
	resp.ProductLine = req.ProductLine
	resp.EffectiveDate = req.EffectiveDate
	resp.ExpirationDate = req.ExpirationDate
	return resp, nil
}

func (a *AutomationAdapter) CheckQuoteStatus(ctx context.Context, sessionID string) (entities.QuoteResponse, error) {
	session, err := a.sessions.CheckStatus(ctx, sessionID)
	if err != nil {
		return entities.QuoteResponse{}, err
	}
	return sessionToResponse(a.name, session), nil
}

func (a *AutomationAdapter) RetrieveQuoteDocument(ctx context.Context, sessionID string) (string, error) {
	session, err := a.sessions.CheckStatus(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if session.Status != entities.AutomationStatusSuccess {
		return "", nil
	}
	url, _ := session.OutputData[entities.OutputKeyDocumentURL].(string)
	return url, nil
}

// formData is what the portal form is filled with: applicant data plus the coverage window.
func formData(req entities.QuoteRequest) map[string]any {
	out := make(map[string]any, len(req.ApplicantData)+4)
	for k, v := range req.ApplicantData {
		if strings.HasPrefix(k, "_") {
			continue
		}
		out[k] = v
	}
	out["product_line"] = req.ProductLine
	out["effective_date"] = req.EffectiveDate
	out["expiration_date"] = req.ExpirationDate
	if len(req.CoverageRequirements) > 0 {
		out["coverage_requirements"] = req.CoverageRequirements
	}
	return out
}

// sessionToResponse maps a session onto the adapter contract: running is pending, error is
// outcome error, success reads the decision from the run output data.
func sessionToResponse(carrier string, s entities.Session) entities.QuoteResponse {
	resp := entities.QuoteResponse{
		QuoteID:     s.SessionID,
		CarrierName: carrier,
		SessionID:   s.SessionID,
	}

	switch s.Status {
	case entities.AutomationStatusRunning:
		return resp
	case entities.AutomationStatusError:
		resp.Status = entities.OutcomeError
		resp.ErrorMessage = s.ErrorMessage
		if resp.ErrorMessage == "" {
			resp.ErrorMessage = "automation session failed"
		}
		return resp
	}

	out := s.OutputData
	outcome := entities.QuoteOutcome(strings.ToLower(stringValue(out[entities.OutputKeyOutcome])))
	if outcome == entities.OutcomeNone {
		outcome = entities.OutcomeQuoted
	}
	if !outcome.Valid() {
		resp.Status = entities.OutcomeError
		resp.ErrorMessage = "unrecognized portal outcome " + string(outcome)
		return resp
	}

	resp.Status = outcome
	resp.QuoteNumber = stringValue(out[entities.OutputKeyQuoteNumber])
	resp.Premium = decimalValue(out[entities.OutputKeyPremium])
	resp.QuoteDocumentURL = stringValue(out[entities.OutputKeyDocumentURL])
	resp.EffectiveDate = stringValue(out["effective_date"])
	resp.ExpirationDate = stringValue(out["expiration_date"])
	if details, ok := out[entities.OutputKeyCoverageDetails].(map[string]any); ok {
		resp.CoverageDetails = details
	}
	if outcome == entities.OutcomeDeclined {
		resp.DeclineReason = stringValue(out[entities.OutputKeyDeclineReason])
	}
	return resp
}

func stringValue(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case fmt.Stringer:
		return t.String()
	}
	return ""
}

// decimalValue accepts the shapes a premium takes after a JSON round trip or page scrape.
func decimalValue(v any) decimal.NullDecimal {
	switch t := v.(type) {
	case float64:
		return decimal.NewNullDecimal(decimal.NewFromFloat(t))
	case int:
		return decimal.NewNullDecimal(decimal.NewFromInt(int64(t)))
	case int64:
		return decimal.NewNullDecimal(decimal.NewFromInt(t))
	case json.Number:
		if d, err := decimal.NewFromString(t.String()); err == nil {
			return decimal.NewNullDecimal(d)
		}
	case string:
		cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(t)
		if d, err := decimal.NewFromString(cleaned); err == nil {
			return decimal.NewNullDecimal(d)
		}
	case decimal.Decimal:
		return decimal.NewNullDecimal(t)
	}
	return decimal.NullDecimal{}
}
