package carriers

import (
	"context"
	"errors"
	"testing"
	"time"

	"brokerage_crm/internal/domain/domainerr"
	"brokerage_crm/internal/domain/entities"
	"brokerage_crm/internal/usecase/interfaces"
	mock_interfaces "brokerage_crm/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAutomationAdapter_SubmitQuote(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := mock_interfaces.NewMockIAutomationSessions(ctrl)
	creds := mock_interfaces.NewMockICredentialResolver(ctrl)
	adapter := NewAutomationAdapter("Markel", "https://portal.example/quote", sessions, creds)

	req := entities.QuoteRequest{
		AccountID:      "acc-1",
		OpportunityID:  "opp-1",
		QuoteRef:       "quote-1",
		ProductLine:    "GL",
		EffectiveDate:  "2026-01-01",
		ExpirationDate: "2027-01-01",
		ApplicantData: map[string]any{
			"business_name":                "Acme",
			entities.ApplicantPortalURLKey: "https://override.example/quote",
		},
	}

	t.Run("starts a session against the override portal", func(t *testing.T) {
		creds.EXPECT().PortalCredentials("Markel").Return(&interfaces.PortalCredentials{Username: "u", Password: "p"})
		sessions.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in interfaces.StartSessionInput) (entities.Session, error) {
				assert.Equal(t, "quote-1", in.QuoteID)
				assert.Equal(t, "https://override.example/quote", in.PortalURL)
				require.NotNil(t, in.Credentials)
				assert.Equal(t, "Acme", in.FormData["business_name"])
				assert.Equal(t, "GL", in.FormData["product_line"])
				_, leaked := in.FormData[entities.ApplicantPortalURLKey]
				assert.False(t, leaked)
				return entities.Session{SessionID: "bb_1", Status: entities.AutomationStatusRunning}, nil
			})

		resp, err := adapter.SubmitQuote(context.Background(), req)
		require.NoError(t, err)
		assert.True(t, resp.Pending())
		assert.Equal(t, "bb_1", resp.QuoteID)
		assert.Equal(t, "bb_1", resp.SessionID)
		assert.Equal(t, "GL", resp.ProductLine)
	})

	t.Run("requires quote ref", func(t *testing.T) {
		noRef := req
		noRef.QuoteRef = ""
		_, err := adapter.SubmitQuote(context.Background(), noRef)
		assert.True(t, errors.Is(err, domainerr.ErrValidation))
	})

	t.Run("requires a portal url", func(t *testing.T) {
		bare := NewAutomationAdapter("Markel", "", sessions, nil)
		noPortal := req
		noPortal.ApplicantData = map[string]any{}
		_, err := bare.SubmitQuote(context.Background(), noPortal)
		assert.True(t, errors.Is(err, domainerr.ErrValidation))
	})

	t.Run("propagates start failures", func(t *testing.T) {
		creds.EXPECT().PortalCredentials("Markel").Return(nil)
		sessions.EXPECT().Start(gomock.Any(), gomock.Any()).Return(entities.Session{}, &domainerr.UpstreamError{Service: "browserbase", Transient: true})
		_, err := adapter.SubmitQuote(context.Background(), req)
		assert.True(t, errors.Is(err, domainerr.ErrTransientUpstream))
	})
}

func TestAutomationAdapter_CheckQuoteStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := mock_interfaces.NewMockIAutomationSessions(ctrl)
	adapter := NewAutomationAdapter("Markel", "https://portal.example/quote", sessions, nil)
	done := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("running is pending", func(t *testing.T) {
		sessions.EXPECT().CheckStatus(gomock.Any(), "bb_1").Return(entities.Session{SessionID: "bb_1", Status: entities.AutomationStatusRunning}, nil)
		resp, err := adapter.CheckQuoteStatus(context.Background(), "bb_1")
		require.NoError(t, err)
		assert.True(t, resp.Pending())
	})

	t.Run("success reads output data", func(t *testing.T) {
		sessions.EXPECT().CheckStatus(gomock.Any(), "bb_2").Return(entities.Session{
			SessionID:   "bb_2",
			Status:      entities.AutomationStatusSuccess,
			CompletedAt: &done,
			OutputData: map[string]any{
				entities.OutputKeyQuoteNumber: "MKL-77",
				entities.OutputKeyPremium:     "$3,150.00",
				entities.OutputKeyDocumentURL: "https://docs.example/mkl-77.pdf",
			},
		}, nil)
		resp, err := adapter.CheckQuoteStatus(context.Background(), "bb_2")
		require.NoError(t, err)
		assert.Equal(t, entities.OutcomeQuoted, resp.Status)
		assert.Equal(t, "MKL-77", resp.QuoteNumber)
		assert.Equal(t, "3150", resp.Premium.Decimal.String())
		assert.Equal(t, "https://docs.example/mkl-77.pdf", resp.QuoteDocumentURL)
	})

	t.Run("declined keeps reason", func(t *testing.T) {
		sessions.EXPECT().CheckStatus(gomock.Any(), "bb_3").Return(entities.Session{
			SessionID:  "bb_3",
			Status:     entities.AutomationStatusSuccess,
			OutputData: map[string]any{entities.OutputKeyOutcome: "declined", entities.OutputKeyDeclineReason: "class not written"},
		}, nil)
		resp, err := adapter.CheckQuoteStatus(context.Background(), "bb_3")
		require.NoError(t, err)
		assert.Equal(t, entities.OutcomeDeclined, resp.Status)
		assert.Equal(t, "class not written", resp.DeclineReason)
	})

	t.Run("error session", func(t *testing.T) {
		sessions.EXPECT().CheckStatus(gomock.Any(), "bb_4").Return(entities.Session{SessionID: "bb_4", Status: entities.AutomationStatusError, ErrorMessage: "login failed"}, nil)
		resp, err := adapter.CheckQuoteStatus(context.Background(), "bb_4")
		require.NoError(t, err)
		assert.Equal(t, entities.OutcomeError, resp.Status)
		assert.Equal(t, "login failed", resp.ErrorMessage)
	})

	t.Run("unknown session", func(t *testing.T) {
		sessions.EXPECT().CheckStatus(gomock.Any(), "nope").Return(entities.Session{}, domainerr.NewNotFoundError("automation session", "nope"))
		_, err := adapter.CheckQuoteStatus(context.Background(), "nope")
		assert.True(t, errors.Is(err, domainerr.ErrNotFound))
	})
}

func TestAutomationAdapter_RetrieveQuoteDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := mock_interfaces.NewMockIAutomationSessions(ctrl)
	adapter := NewAutomationAdapter("Markel", "", sessions, nil)

	sessions.EXPECT().CheckStatus(gomock.Any(), "bb_1").Return(entities.Session{Status: entities.AutomationStatusRunning}, nil)
	url, err := adapter.RetrieveQuoteDocument(context.Background(), "bb_1")
	require.NoError(t, err)
	assert.Empty(t, url)

	sessions.EXPECT().CheckStatus(gomock.Any(), "bb_2").Return(entities.Session{
		Status:     entities.AutomationStatusSuccess,
		OutputData: map[string]any{entities.OutputKeyDocumentURL: "https://docs.example/x.pdf"},
	}, nil)
	url, err = adapter.RetrieveQuoteDocument(context.Background(), "bb_2")
	require.NoError(t, err)
	assert.Equal(t, "https://docs.example/x.pdf", url)
}

func TestDecimalValue(t *testing.T) {
	assert.Equal(t, "1200.5", decimalValue(1200.5).Decimal.String())
	assert.Equal(t, "900", decimalValue("900").Decimal.String())
	assert.Equal(t, "1234.56", decimalValue("$1,234.56").Decimal.String())
	assert.False(t, decimalValue("n/a").Valid)
	assert.False(t, decimalValue(nil).Valid)
}
