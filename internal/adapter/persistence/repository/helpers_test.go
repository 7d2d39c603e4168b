package repository

import (
	"errors"
	"testing"
	"time"

	"brokerage_crm/internal/domain/domainerr"
	"brokerage_crm/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

func TestConflictOnCancel(t *testing.T) {
	t.Run("condition failure is a conflict", func(t *testing.T) {
		err := &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{
				{Code: aws.String("None")},
				{Code: aws.String("ConditionalCheckFailed")},
			},
		}
		got := conflictOnCancel(err, "quote_number Q-1")
		if !errors.Is(got, domainerr.ErrPersistenceConflict) {
			t.Fatalf("expected conflict, got %v", got)
		}
	})

	t.Run("other cancellations pass through", func(t *testing.T) {
		err := &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{{Code: aws.String("ThrottlingError")}},
		}
		got := conflictOnCancel(err, "x")
		if errors.Is(got, domainerr.ErrPersistenceConflict) {
			t.Fatalf("expected non-conflict error, got %v", got)
		}
	})

	t.Run("plain conditional failure", func(t *testing.T) {
		got := conflictOnCancel(&types.ConditionalCheckFailedException{}, "x")
		if !errors.Is(got, domainerr.ErrPersistenceConflict) {
			t.Fatalf("expected conflict, got %v", got)
		}
	})

	t.Run("nil", func(t *testing.T) {
		if conflictOnCancel(nil, "x") != nil {
			t.Fatalf("expected nil")
		}
	})
}

func TestQuoteItemConversion(t *testing.T) {
	quotedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	q := entities.Quote{
		ID:               "q-1",
		OpportunityID:    "o-1",
		CarrierName:      "BTIS",
		ProductLine:      "GL",
		Status:           entities.QuoteStatusQuoted,
		Outcome:          entities.OutcomeQuoted,
		QuoteNumber:      "BTIS-XYZ",
		Premium:          decimal.NewNullDecimal(decimal.RequireFromString("4500.25")),
		CoverageDetails:  map[string]any{"limits": "1M/2M"},
		SubmissionMethod: entities.SubmissionMethodAPI,
		QuotedAt:         &quotedAt,
		CreatedAt:        quotedAt,
		UpdatedAt:        quotedAt,
	}

	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if _, ok := av["decline_reason"]; ok {
		t.Fatalf("expected empty fields to be omitted")
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got := fromQuoteItem(it)
	if !got.Premium.Decimal.Equal(q.Premium.Decimal) || got.QuotedAt == nil || !got.QuotedAt.Equal(quotedAt) {
		t.Fatalf("unexpected quote: %+v", got)
	}
	if got.SubmittedAt != nil || got.Outcome != entities.OutcomeQuoted {
		t.Fatalf("unexpected quote: %+v", got)
	}
}

func TestAutomationRunItemConversion(t *testing.T) {
	run := entities.AutomationRun{
		ID:          "run-1",
		CarrierName: "Markel",
		QuoteID:     "q-1",
		Status:      entities.AutomationStatusRunning,
		InputData: entities.AutomationInput{
			PortalURL:      "https://portal.example",
			HasCredentials: true,
			FormFields:     []string{"business_name"},
			FormData:       map[string]any{"business_name": "Acme"},
		},
		StartedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	it := toAutomationRunItem(run)
	if it.SessionID != "" || it.CompletedAt != "" {
		t.Fatalf("unexpected item: %+v", it)
	}
	got := fromAutomationRunItem(it)
	if !got.InputData.HasCredentials || got.InputData.FormData["business_name"] != "Acme" || got.CompletedAt != nil {
		t.Fatalf("unexpected run: %+v", got)
	}
}

func TestDecimalHelpers(t *testing.T) {
	if decimalToString(decimal.NullDecimal{}) != "" {
		t.Fatalf("expected empty string for null decimal")
	}
	if stringToDecimal("").Valid || stringToDecimal("abc").Valid {
		t.Fatalf("expected invalid decimals")
	}
	if got := stringToDecimal("12.50"); !got.Valid || got.Decimal.String() != "12.5" {
		t.Fatalf("expected 12.5, got %v", got)
	}
}
