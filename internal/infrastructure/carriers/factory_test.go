package carriers

import (
	"context"
	"testing"

	"brokerage_crm/internal/config"
	"brokerage_crm/internal/domain/entities"
	mock_interfaces "brokerage_crm/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBuild(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := mock_interfaces.NewMockIAutomationSessions(ctrl)

	t.Run("default carriers", func(t *testing.T) {
		r, err := Build(config.DefaultCarriers(), Deps{Gateway: config.CarrierGatewayConfig{Mock: true}, Sessions: sessions})
		require.NoError(t, err)
		assert.Equal(t, []string{"btis", "coterie", "markel"}, r.ListSupported())

		btis, err := r.Resolve("BTIS")
		require.NoError(t, err)
		assert.True(t, btis.SupportsAPI())
		markel, err := r.Resolve("markel")
		require.NoError(t, err)
		assert.False(t, markel.SupportsAPI())
	})

	t.Run("mock api carrier answers deterministically", func(t *testing.T) {
		r, err := Build([]config.CarrierConfig{{ID: "btis"}}, Deps{})
		require.NoError(t, err)
		a, _ := r.Resolve("btis")

		req := entities.QuoteRequest{AccountID: "a", OpportunityID: "o", ProductLine: "GL", EffectiveDate: "2026-01-01", ExpirationDate: "2027-01-01"}
		resp, err := a.SubmitQuote(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, entities.OutcomeQuoted, resp.Status)
		assert.Equal(t, "BTIS", resp.CarrierName)

		status, err := a.CheckQuoteStatus(context.Background(), resp.QuoteID)
		require.NoError(t, err)
		assert.Equal(t, resp.QuoteNumber, status.QuoteNumber)
	})

	t.Run("unknown carrier id", func(t *testing.T) {
		_, err := Build([]config.CarrierConfig{{ID: "hiscox"}}, Deps{})
		require.Error(t, err)
		assert.False(t, Known("hiscox"))
		assert.True(t, Known("Markel"))
	})

	t.Run("automation carrier needs sessions", func(t *testing.T) {
		_, err := Build([]config.CarrierConfig{{ID: "markel"}}, Deps{})
		require.Error(t, err)
	})
}

func TestCredentialStore(t *testing.T) {
	s := NewCredentialStore([]config.CarrierConfig{
		{ID: "markel", PortalUsername: "broker", PortalPassword: "pw"},
		{ID: "btis"},
	})

	c := s.PortalCredentials("Markel")
	require.NotNil(t, c)
	assert.Equal(t, "broker", c.Username)
	assert.Nil(t, s.PortalCredentials("btis"))

	c.Password = "changed"
	assert.Equal(t, "pw", s.PortalCredentials("markel").Password)
}
