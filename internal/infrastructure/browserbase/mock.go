package browserbase

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strings"

	"brokerage_crm/internal/domain/entities"
	"brokerage_crm/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// MockConnectScheme prefixes connect URLs handed out by MockProvider. Only MockDriver
// understands them.
const MockConnectScheme = "mock://"

// MockProvider hands out local session ids. With Drive set, sessions get a mock connect URL
// so MockDriver completes them; otherwise they stay running until completed out of band.
type MockProvider struct {
	Drive bool
}

var _ interfaces.IAutomationProvider = (*MockProvider)(nil)

func (p *MockProvider) CreateSession(_ context.Context, _ interfaces.AutomationSpec) (interfaces.RemoteSession, error) {
	id := "bb_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	s := interfaces.RemoteSession{SessionID: id}
	if p.Drive {
		s.ConnectURL = MockConnectScheme + id
	}
	return s, nil
}

// MockDriver fills no real portal; it derives a decision from the form data. The form data
// key "mock_outcome" forces declined, no_offer or error.
type MockDriver struct{}

var _ interfaces.IPortalDriver = MockDriver{}

func (MockDriver) Run(ctx context.Context, session interfaces.RemoteSession, spec interfaces.AutomationSpec) (entities.AutomationResult, error) {
	if err := ctx.Err(); err != nil {
		return entities.AutomationResult{}, err
	}
	if !strings.HasPrefix(session.ConnectURL, MockConnectScheme) {
		return entities.AutomationResult{}, fmt.Errorf("mock driver cannot connect to %q", session.ConnectURL)
	}

	key, err := json.Marshal(spec.FormData)
	if err != nil {
		return entities.AutomationResult{}, err
	}
	id := uuid.NewSHA1(uuid.NameSpaceOID, append([]byte(spec.CarrierName+"|"+spec.QuoteID+"|"), key...))
	logs := fmt.Sprintf("mock portal %s: filled %d fields", spec.PortalURL, len(spec.FormData))

	switch forced, _ := spec.FormData["mock_outcome"].(string); forced {
	case "error":
		return entities.AutomationResult{Status: entities.AutomationStatusError, ErrorMessage: "portal rejected the submission", Logs: logs}, nil
	case "declined":
		return entities.AutomationResult{
			Status:     entities.AutomationStatusSuccess,
			OutputData: map[string]any{entities.OutputKeyOutcome: "declined", entities.OutputKeyDeclineReason: "class of business not written"},
			Logs:       logs,
		}, nil
	case "no_offer":
		return entities.AutomationResult{
			Status:     entities.AutomationStatusSuccess,
			OutputData: map[string]any{entities.OutputKeyOutcome: "no_offer"},
			Logs:       logs,
		}, nil
	}

	hexID := strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))
	premium := 1500 + int64(binary.BigEndian.Uint64(id[8:16])>>1)%5000
	return entities.AutomationResult{
		Status: entities.AutomationStatusSuccess,
		OutputData: map[string]any{
			entities.OutputKeyOutcome:     "quoted",
			entities.OutputKeyQuoteNumber: prefix(spec.CarrierName) + "-" + hexID[:6],
			entities.OutputKeyPremium:     fmt.Sprintf("%d.00", premium),
		},
		Logs: logs,
	}, nil
}

func prefix(carrier string) string {
	p := strings.ToUpper(strings.TrimSpace(carrier))
	if len(p) > 3 {
		p = p[:3]
	}
	if p == "" {
		return "MOCK"
	}
	return p
}
