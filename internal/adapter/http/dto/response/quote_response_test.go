package response

import (
	"encoding/json"
	"testing"
	"time"

	"brokerage_crm/internal/domain/entities"
	"brokerage_crm/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestFromQuote(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("quoted", func(t *testing.T) {
		q := entities.Quote{
			ID:            "q-1",
			OpportunityID: "opp-1",
			CarrierName:   "BTIS",
			ProductLine:   "GL",
			Status:        entities.QuoteStatusQuoted,
			Outcome:       entities.OutcomeQuoted,
			QuoteNumber:   "BTIS-XYZ",
			Premium:       decimal.NewNullDecimal(decimal.RequireFromString("4200")),
			QuotedAt:      &now,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		res := FromQuote(q)
		if !res.Premium.Valid || !res.Premium.Decimal.Equal(decimal.NewFromInt(4200)) {
			t.Fatalf("unexpected premium: %v", res.Premium)
		}
		if res.Outcome == nil || *res.Outcome != "quoted" || res.QuoteNumber == nil || *res.QuoteNumber != "BTIS-XYZ" {
			t.Fatalf("unexpected mapped fields: %+v", res)
		}
		if res.DeclineReason != nil || res.ErrorMessage != nil {
			t.Fatalf("expected null reasons: %+v", res)
		}
	})

	t.Run("empty optionals render as null", func(t *testing.T) {
		res := FromQuote(entities.Quote{ID: "q-2", Status: entities.QuoteStatusDraft})
		raw, err := json.Marshal(res)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var body map[string]any
		_ = json.Unmarshal(raw, &body)
		for _, key := range []string{"outcome", "premium", "quote_number", "quoted_at", "decline_reason"} {
			v, ok := body[key]
			if !ok || v != nil {
				t.Fatalf("expected %s to be null, got %v (present=%v)", key, v, ok)
			}
		}
	})
}

func TestQuoteResponse_PremiumIsExact(t *testing.T) {
	for _, v := range []string{"4200", "1250.35", "98765432109876.13"} {
		t.Run(v, func(t *testing.T) {
			raw, err := json.Marshal(FromQuote(entities.Quote{ID: "q-1", Premium: decimal.NewNullDecimal(decimal.RequireFromString(v))}))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			var body struct {
				Premium decimal.NullDecimal `json:"premium"`
			}
			if err := json.Unmarshal(raw, &body); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !body.Premium.Valid || body.Premium.Decimal.String() != v {
				t.Fatalf("expected premium %s, got %s", v, raw)
			}
		})
	}
}

func TestFromIngestResult(t *testing.T) {
	res := FromIngestResult(usecase.IngestQuoteResult{Quote: entities.Quote{ID: "q-1"}, Action: usecase.IngestionActionCreated})
	if !res.Success || res.Action != "created" || res.Quote.ID != "q-1" {
		t.Fatalf("unexpected response: %+v", res)
	}
}

func TestFromSubmissions(t *testing.T) {
	res := FromSubmissions([]usecase.CarrierSubmission{
		{Carrier: "btis", Quote: entities.Quote{ID: "q-1"}, Action: usecase.IngestionActionCreated},
		{Carrier: "nope", Error: "no adapter found for carrier: nope"},
	})
	if len(res.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(res.Results))
	}
	if res.Results[0].Quote == nil || res.Results[0].Quote.ID != "q-1" {
		t.Fatalf("unexpected first result: %+v", res.Results[0])
	}
	if res.Results[1].Quote != nil || res.Results[1].Error == "" {
		t.Fatalf("unexpected second result: %+v", res.Results[1])
	}
}

func TestFromAutomationRuns(t *testing.T) {
	runs := []entities.AutomationRun{{
		ID:         "run-2",
		QuoteID:    "q-1",
		Status:     entities.AutomationStatusRunning,
		InputData:  entities.AutomationInput{PortalURL: "https://portal.test", FormFields: []string{"business_name"}},
		RetryCount: 1,
		RetryOf:    "run-1",
	}}
	res := FromAutomationRuns(runs)
	if len(res) != 1 || res[0].PortalURL != "https://portal.test" || res[0].RetryOf != "run-1" || res[0].RetryCount != 1 {
		t.Fatalf("unexpected runs: %+v", res)
	}
}
