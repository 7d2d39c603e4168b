package entities

import (
	"testing"
	"time"
)

func TestQuote_ApplyOutcome(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("quoted sets quoted_at and clears reasons", func(t *testing.T) {
		q := Quote{DeclineReason: "old", ErrorMessage: "old"}
		q.ApplyOutcome(OutcomeQuoted, "ignored", "ignored", now)
		if q.QuotedAt == nil || !q.QuotedAt.Equal(now) {
			t.Fatalf("expected quoted_at=%v, got %v", now, q.QuotedAt)
		}
		if q.DeclineReason != "" || q.ErrorMessage != "" {
			t.Fatalf("expected reasons cleared: %+v", q)
		}
	})

	t.Run("quoted keeps an existing quoted_at", func(t *testing.T) {
		earlier := now.Add(-time.Hour)
		q := Quote{Outcome: OutcomeQuoted, QuotedAt: &earlier}
		q.ApplyOutcome(OutcomeQuoted, "", "", now)
		if !q.QuotedAt.Equal(earlier) {
			t.Fatalf("expected quoted_at preserved, got %v", q.QuotedAt)
		}
	})

	t.Run("declined keeps only decline reason", func(t *testing.T) {
		q := Quote{}
		q.ApplyOutcome(OutcomeDeclined, "outside appetite", "boom", now)
		if q.DeclineReason != "outside appetite" || q.ErrorMessage != "" || q.QuotedAt != nil {
			t.Fatalf("unexpected quote: %+v", q)
		}
	})

	t.Run("error keeps only error message", func(t *testing.T) {
		q := Quote{QuotedAt: &now, Outcome: OutcomeQuoted}
		q.ApplyOutcome(OutcomeError, "nope", "timeout", now)
		if q.ErrorMessage != "timeout" || q.DeclineReason != "" || q.QuotedAt != nil {
			t.Fatalf("unexpected quote: %+v", q)
		}
	})

	t.Run("no outcome", func(t *testing.T) {
		q := Quote{}
		q.ApplyOutcome(OutcomeNone, "x", "y", now)
		if q.IsTerminal() || q.QuotedAt != nil || q.DeclineReason != "" || q.ErrorMessage != "" {
			t.Fatalf("unexpected quote: %+v", q)
		}
	})
}

func TestEnumsValid(t *testing.T) {
	if !QuoteStatusAwaitingUW.Valid() || QuoteStatus("pending").Valid() {
		t.Fatalf("unexpected quote status validity")
	}
	if !OutcomeNoOffer.Valid() || QuoteOutcome("maybe").Valid() {
		t.Fatalf("unexpected outcome validity")
	}
	if !SubmissionMethodAgent.Valid() || SubmissionMethod("fax").Valid() {
		t.Fatalf("unexpected submission method validity")
	}
}
