package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"brokerage_crm/internal/adapter/persistence/memory"
	"brokerage_crm/internal/domain/domainerr"
	"brokerage_crm/internal/domain/entities"
	"brokerage_crm/internal/infrastructure/metrics"
	"brokerage_crm/internal/usecase/interfaces"
	mock_interfaces "brokerage_crm/internal/usecase/interfaces/mocks"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newMemoryIngestion(policy StagePolicy) (*QuoteIngestionUseCase, *memory.Store) {
	store := memory.NewStore()
	uc := NewQuoteIngestionUseCase(store.Accounts(), store.Opportunities(), store.Quotes(), nil, policy, nil)
	return uc, store
}

func premium(v int64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromInt(v))
}

func TestQuoteIngestion_Scenario(t *testing.T) {
	ctx := context.Background()
	uc, store := newMemoryIngestion(StagePolicyAlways)

	in := IngestQuoteInput{
		CarrierName: "BTIS",
		ProductLine: "GL",
		AccountName: "Acme Roofing",
		QuoteNumber: "BTIS-XYZ",
		Outcome:     "quoted",
		Premium:     premium(4200),
	}

	first, err := uc.Ingest(ctx, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Action != IngestionActionCreated {
		t.Fatalf("expected created, got %s", first.Action)
	}
	if !first.Quote.Premium.Decimal.Equal(decimal.NewFromInt(4200)) {
		t.Fatalf("expected premium 4200, got %s", first.Quote.Premium.Decimal)
	}
	if first.Quote.Status != entities.QuoteStatusDraft {
		t.Fatalf("expected default status draft, got %s", first.Quote.Status)
	}
	if first.Quote.QuotedAt == nil {
		t.Fatalf("expected quoted_at to be set")
	}

	account, _ := store.Accounts().GetByName(ctx, "Acme Roofing")
	if account.ID == "" {
		t.Fatalf("expected account Acme Roofing to exist")
	}
	opp, _ := store.Opportunities().GetByAccountAndName(ctx, account.ID, "Acme Roofing - GL")
	if opp.ID == "" || opp.ID != first.Quote.OpportunityID {
		t.Fatalf("expected opportunity Acme Roofing - GL to own the quote, got %+v", opp)
	}
	if opp.Stage != entities.StageUWReview {
		t.Fatalf("expected stage uw_review, got %s", opp.Stage)
	}
	if len(opp.ProductLines) != 1 || opp.ProductLines[0] != "GL" {
		t.Fatalf("expected product_lines [GL], got %v", opp.ProductLines)
	}

	in.Premium = premium(4500)
	second, err := uc.Ingest(ctx, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Action != IngestionActionUpdated {
		t.Fatalf("expected updated, got %s", second.Action)
	}
	if second.Quote.ID != first.Quote.ID {
		t.Fatalf("expected same quote id %s, got %s", first.Quote.ID, second.Quote.ID)
	}
	if !second.Quote.Premium.Decimal.Equal(decimal.NewFromInt(4500)) {
		t.Fatalf("expected premium 4500, got %s", second.Quote.Premium.Decimal)
	}

	accounts, opps, quotes, _ := store.Counts()
	if accounts != 1 || opps != 1 || quotes != 1 {
		t.Fatalf("expected 1/1/1 records, got %d/%d/%d", accounts, opps, quotes)
	}
}

func TestQuoteIngestion_Validation(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name  string
		in    IngestQuoteInput
		field string
	}{
		{"missing product_line", IngestQuoteInput{CarrierName: "BTIS", AccountName: "Acme"}, "product_line"},
		{"missing carrier_name", IngestQuoteInput{ProductLine: "GL", AccountName: "Acme"}, "carrier_name"},
		{"no account reference", IngestQuoteInput{CarrierName: "BTIS", ProductLine: "GL"}, "account_id"},
		{"unknown account id", IngestQuoteInput{CarrierName: "BTIS", ProductLine: "GL", AccountID: "nope"}, "account_id"},
		{"invalid status", IngestQuoteInput{CarrierName: "BTIS", ProductLine: "GL", AccountName: "Acme", Status: "pending"}, "status"},
		{"invalid outcome", IngestQuoteInput{CarrierName: "BTIS", ProductLine: "GL", AccountName: "Acme", Outcome: "maybe"}, "outcome"},
		{"invalid submission method", IngestQuoteInput{CarrierName: "BTIS", ProductLine: "GL", AccountName: "Acme", SubmissionMethod: "fax"}, "submission_method"},
		{"invalid date", IngestQuoteInput{CarrierName: "BTIS", ProductLine: "GL", AccountName: "Acme", EffectiveDate: "03/01/2026"}, "effective_date"},
		{"negative premium", IngestQuoteInput{CarrierName: "BTIS", ProductLine: "GL", AccountName: "Acme", Premium: premium(-1)}, "premium"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, store := newMemoryIngestion(StagePolicyAlways)
			_, err := uc.Ingest(ctx, tc.in)
			var vErr *domainerr.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if vErr.Field != tc.field {
				t.Fatalf("expected field %s, got %s", tc.field, vErr.Field)
			}
			accounts, opps, quotes, _ := store.Counts()
			if accounts+opps+quotes != 0 {
				t.Fatalf("expected no records written, got %d/%d/%d", accounts, opps, quotes)
			}
		})
	}

	t.Run("missing product_line message", func(t *testing.T) {
		uc, _ := newMemoryIngestion(StagePolicyAlways)
		_, err := uc.Ingest(ctx, IngestQuoteInput{CarrierName: "BTIS"})
		if err == nil || err.Error() != "product_line is required" {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteIngestion_ReferencedRecords(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown opportunity id is not found", func(t *testing.T) {
		uc, store := newMemoryIngestion(StagePolicyAlways)
		_, _ = store.Accounts().Create(ctx, entities.Account{ID: "a1", Name: "Acme"})
		_, err := uc.Ingest(ctx, IngestQuoteInput{CarrierName: "BTIS", ProductLine: "GL", AccountID: "a1", OpportunityID: "o-missing"})
		if !errors.Is(err, domainerr.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("opportunity of another account", func(t *testing.T) {
		uc, store := newMemoryIngestion(StagePolicyAlways)
		_, _ = store.Accounts().Create(ctx, entities.Account{ID: "a1", Name: "Acme"})
		_, _ = store.Opportunities().Create(ctx, entities.Opportunity{ID: "o1", AccountID: "a2", Name: "x"})
		_, err := uc.Ingest(ctx, IngestQuoteInput{CarrierName: "BTIS", ProductLine: "GL", AccountID: "a1", OpportunityID: "o1"})
		if !errors.Is(err, domainerr.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("account by id uses its name for the synthesized opportunity", func(t *testing.T) {
		uc, store := newMemoryIngestion(StagePolicyAlways)
		_, _ = store.Accounts().Create(ctx, entities.Account{ID: "a1", Name: "Acme"})
		res, err := uc.Ingest(ctx, IngestQuoteInput{CarrierName: "Coterie", ProductLine: "BOP", AccountID: "a1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		opp, _ := store.Opportunities().GetByID(ctx, res.Quote.OpportunityID)
		if opp.Name != "Acme - BOP" || opp.Stage != entities.StageQuote {
			t.Fatalf("unexpected opportunity: %+v", opp)
		}
	})

	t.Run("quote id targeting", func(t *testing.T) {
		uc, _ := newMemoryIngestion(StagePolicyAlways)
		created, err := uc.Ingest(ctx, IngestQuoteInput{CarrierName: "Markel", ProductLine: "GL", AccountName: "Acme", Status: "submitted_agent", SubmissionMethod: "agent"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Quote.SubmittedAt == nil {
			t.Fatalf("expected submitted_at when submission_method is set")
		}
		res, err := uc.Ingest(ctx, IngestQuoteInput{QuoteID: created.Quote.ID, CarrierName: "Markel", ProductLine: "GL", Outcome: "declined", DeclineReason: "class not written", Status: "rejected"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Action != IngestionActionUpdated || res.Quote.ID != created.Quote.ID {
			t.Fatalf("expected update of %s, got %+v", created.Quote.ID, res)
		}
		if res.Quote.DeclineReason != "class not written" || res.Quote.SubmittedAt == nil {
			t.Fatalf("unexpected quote: %+v", res.Quote)
		}
	})

	t.Run("unknown quote id", func(t *testing.T) {
		uc, _ := newMemoryIngestion(StagePolicyAlways)
		_, err := uc.Ingest(ctx, IngestQuoteInput{QuoteID: "nope", CarrierName: "Markel", ProductLine: "GL"})
		if !errors.Is(err, domainerr.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestQuoteIngestion_OutcomeCoherence(t *testing.T) {
	ctx := context.Background()
	uc, _ := newMemoryIngestion(StagePolicyAlways)

	base := IngestQuoteInput{CarrierName: "BTIS", ProductLine: "GL", AccountName: "Acme", QuoteNumber: "N-1"}

	t.Run("declined drops error message", func(t *testing.T) {
		in := base
		in.Outcome, in.DeclineReason, in.ErrorMessage = "declined", "roof height", "ignored"
		res, err := uc.Ingest(ctx, in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Quote.DeclineReason != "roof height" || res.Quote.ErrorMessage != "" || res.Quote.QuotedAt != nil {
			t.Fatalf("incoherent quote: %+v", res.Quote)
		}
	})

	t.Run("re-quoted clears decline reason", func(t *testing.T) {
		in := base
		in.Outcome = "quoted"
		res, err := uc.Ingest(ctx, in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Quote.DeclineReason != "" || res.Quote.QuotedAt == nil {
			t.Fatalf("incoherent quote: %+v", res.Quote)
		}
	})

	t.Run("absent outcome keeps stored outcome", func(t *testing.T) {
		in := base
		in.Premium = premium(100)
		res, err := uc.Ingest(ctx, in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Quote.Outcome != entities.OutcomeQuoted || res.Quote.QuotedAt == nil {
			t.Fatalf("expected outcome to stay quoted, got %+v", res.Quote)
		}
	})

	t.Run("error outcome clears quoted_at", func(t *testing.T) {
		in := base
		in.Outcome, in.ErrorMessage = "error", "carrier timeout"
		res, err := uc.Ingest(ctx, in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Quote.QuotedAt != nil || res.Quote.ErrorMessage != "carrier timeout" {
			t.Fatalf("incoherent quote: %+v", res.Quote)
		}
	})
}

func TestQuoteIngestion_StageAdvancement(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, store *memory.Store, stage entities.OpportunityStage) {
		t.Helper()
		if _, err := store.Accounts().Create(ctx, entities.Account{ID: "a1", Name: "Acme"}); err != nil {
			t.Fatalf("seed account: %v", err)
		}
		if _, err := store.Opportunities().Create(ctx, entities.Opportunity{ID: "o1", AccountID: "a1", Name: "Acme - GL", Stage: stage}); err != nil {
			t.Fatalf("seed opportunity: %v", err)
		}
	}

	t.Run("intake advances to uw_review once", func(t *testing.T) {
		uc, store := newMemoryIngestion(StagePolicyAlways)
		seed(t, store, entities.StageIntake)

		for i := 0; i < 2; i++ {
			_, err := uc.Ingest(ctx, IngestQuoteInput{CarrierName: "BTIS", ProductLine: "GL", AccountID: "a1", OpportunityID: "o1", QuoteNumber: fmt.Sprintf("Q-%d", i), Outcome: "quoted"})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			opp, _ := store.Opportunities().GetByID(ctx, "o1")
			if opp.Stage != entities.StageUWReview {
				t.Fatalf("expected uw_review after ingest %d, got %s", i, opp.Stage)
			}
		}
	})

	t.Run("non quoted outcome leaves stage", func(t *testing.T) {
		uc, store := newMemoryIngestion(StagePolicyAlways)
		seed(t, store, entities.StageIntake)
		if _, err := uc.Ingest(ctx, IngestQuoteInput{CarrierName: "BTIS", ProductLine: "GL", AccountID: "a1", OpportunityID: "o1", Outcome: "declined"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		opp, _ := store.Opportunities().GetByID(ctx, "o1")
		if opp.Stage != entities.StageIntake {
			t.Fatalf("expected intake, got %s", opp.Stage)
		}
	})

	t.Run("always policy regresses bind", func(t *testing.T) {
		uc, store := newMemoryIngestion(StagePolicyAlways)
		seed(t, store, entities.StageBind)
		if _, err := uc.Ingest(ctx, IngestQuoteInput{CarrierName: "BTIS", ProductLine: "GL", AccountID: "a1", OpportunityID: "o1", Outcome: "quoted"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		opp, _ := store.Opportunities().GetByID(ctx, "o1")
		if opp.Stage != entities.StageUWReview {
			t.Fatalf("expected uw_review, got %s", opp.Stage)
		}
	})

	t.Run("forward_only policy keeps bind", func(t *testing.T) {
		uc, store := newMemoryIngestion(StagePolicyForwardOnly)
		seed(t, store, entities.StageBind)
		if _, err := uc.Ingest(ctx, IngestQuoteInput{CarrierName: "BTIS", ProductLine: "GL", AccountID: "a1", OpportunityID: "o1", Outcome: "quoted"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		opp, _ := store.Opportunities().GetByID(ctx, "o1")
		if opp.Stage != entities.StageBind {
			t.Fatalf("expected bind, got %s", opp.Stage)
		}
	})
}

func TestQuoteIngestion_ConcurrentConvergence(t *testing.T) {
	ctx := context.Background()

	t.Run("same account name", func(t *testing.T) {
		uc, store := newMemoryIngestion(StagePolicyAlways)
		var wg sync.WaitGroup
		errs := make(chan error, 20)
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, err := uc.Ingest(ctx, IngestQuoteInput{CarrierName: "BTIS", ProductLine: "GL", AccountName: "Acme Roofing", QuoteNumber: fmt.Sprintf("N-%d", i)})
				errs <- err
			}(i)
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		accounts, opps, quotes, _ := store.Counts()
		if accounts != 1 || opps != 1 || quotes != 20 {
			t.Fatalf("expected 1/1/20 records, got %d/%d/%d", accounts, opps, quotes)
		}
	})

	t.Run("same quote number", func(t *testing.T) {
		uc, store := newMemoryIngestion(StagePolicyAlways)
		var wg sync.WaitGroup
		var mu sync.Mutex
		actions := map[IngestionAction]int{}
		ids := map[string]bool{}
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				res, err := uc.Ingest(ctx, IngestQuoteInput{CarrierName: "BTIS", ProductLine: "GL", AccountName: "Acme Roofing", QuoteNumber: "BTIS-XYZ", Outcome: "quoted"})
				if err != nil {
					t.Errorf("unexpected error: %v", err)
					return
				}
				mu.Lock()
				actions[res.Action]++
				ids[res.Quote.ID] = true
				mu.Unlock()
			}()
		}
		wg.Wait()
		if actions[IngestionActionCreated] != 1 || actions[IngestionActionUpdated] != 19 {
			t.Fatalf("expected 1 created and 19 updated, got %v", actions)
		}
		if len(ids) != 1 {
			t.Fatalf("expected a single quote id, got %d", len(ids))
		}
		_, _, quotes, _ := store.Counts()
		if quotes != 1 {
			t.Fatalf("expected 1 quote, got %d", quotes)
		}
	})
}

func TestQuoteIngestion_ConflictRetry(t *testing.T) {
	ctx := context.Background()

	t.Run("quote create conflict retries as update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		accounts := mock_interfaces.NewMockIAccountRepository(ctrl)
		opps := mock_interfaces.NewMockIOpportunityRepository(ctrl)
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteIngestionUseCase(accounts, opps, quotes, nil, StagePolicyAlways, nil)

		existing := entities.Quote{ID: "q1", OpportunityID: "o1", CarrierName: "BTIS", ProductLine: "GL", Status: entities.QuoteStatusDraft, QuoteNumber: "N-1"}

		accounts.EXPECT().GetByName(gomock.Any(), "Acme").Return(entities.Account{ID: "a1", Name: "Acme"}, nil)
		opps.EXPECT().GetByAccountAndName(gomock.Any(), "a1", "Acme - GL").Return(entities.Opportunity{ID: "o1", AccountID: "a1"}, nil)
		gomock.InOrder(
			quotes.EXPECT().GetByQuoteNumber(gomock.Any(), "N-1").Return(entities.Quote{}, nil),
			quotes.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Quote{}, domainerr.ErrPersistenceConflict),
			quotes.EXPECT().GetByQuoteNumber(gomock.Any(), "N-1").Return(existing, nil),
		)
		quotes.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, q entities.Quote) (entities.Quote, error) {
			if q.ID != "q1" || q.Status != entities.QuoteStatusQuoted {
				t.Fatalf("unexpected update payload: %+v", q)
			}
			return q, nil
		})

		res, err := uc.Ingest(ctx, IngestQuoteInput{CarrierName: "BTIS", ProductLine: "GL", AccountName: "Acme", QuoteNumber: "N-1", Status: "quoted"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Action != IngestionActionUpdated || res.Quote.ID != "q1" {
			t.Fatalf("expected update of q1, got %+v", res)
		}
	})

	t.Run("account create conflict fetches the winner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		accounts := mock_interfaces.NewMockIAccountRepository(ctrl)
		opps := mock_interfaces.NewMockIOpportunityRepository(ctrl)
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteIngestionUseCase(accounts, opps, quotes, nil, StagePolicyAlways, nil)

		gomock.InOrder(
			accounts.EXPECT().GetByName(gomock.Any(), "Acme").Return(entities.Account{}, nil),
			accounts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Account{}, domainerr.ErrPersistenceConflict),
			accounts.EXPECT().GetByName(gomock.Any(), "Acme").Return(entities.Account{ID: "winner", Name: "Acme"}, nil),
		)
		opps.EXPECT().GetByAccountAndName(gomock.Any(), "winner", "Acme - GL").Return(entities.Opportunity{ID: "o1", AccountID: "winner"}, nil)
		quotes.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, q entities.Quote) (entities.Quote, error) {
			return q, nil
		})

		res, err := uc.Ingest(ctx, IngestQuoteInput{CarrierName: "BTIS", ProductLine: "GL", AccountName: "Acme"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Quote.OpportunityID != "o1" || res.Action != IngestionActionCreated {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("repository failure is surfaced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		accounts := mock_interfaces.NewMockIAccountRepository(ctrl)
		uc := NewQuoteIngestionUseCase(accounts, nil, nil, nil, StagePolicyAlways, nil)

		accounts.EXPECT().GetByName(gomock.Any(), "Acme").Return(entities.Account{}, errors.New("db"))

		_, err := uc.Ingest(ctx, IngestQuoteInput{CarrierName: "BTIS", ProductLine: "GL", AccountName: "Acme"})
		if err == nil || errors.Is(err, domainerr.ErrValidation) {
			t.Fatalf("expected infrastructure error, got %v", err)
		}
	})
}

func TestQuoteIngestion_PublishesEvent(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := memory.NewStore()
	events := mock_interfaces.NewMockIEventPublisher(ctrl)
	uc := NewQuoteIngestionUseCase(store.Accounts(), store.Opportunities(), store.Quotes(), events, StagePolicyAlways, nil)
	fixed := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return fixed }

	events.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, evt interfaces.Event) error {
		if evt.Type != interfaces.EventQuoteIngested || evt.Payload["action"] != "created" {
			t.Fatalf("unexpected event: %+v", evt)
		}
		return errors.New("redis down")
	})

	res, err := uc.Ingest(ctx, IngestQuoteInput{CarrierName: "BTIS", ProductLine: "GL", AccountName: "Acme"})
	if err != nil {
		t.Fatalf("publish failures must not fail ingestion: %v", err)
	}
	if !res.Quote.CreatedAt.Equal(fixed) {
		t.Fatalf("expected created_at %v, got %v", fixed, res.Quote.CreatedAt)
	}
}

func TestQuoteIngestion_RejectedMetricLabels(t *testing.T) {
	ctx := context.Background()
	uc, _ := newMemoryIngestion(StagePolicyAlways)

	rejected := metrics.QuoteIngestions.WithLabelValues("rejected", rejectedOutcomeLabel)
	seriesBefore := testutil.CollectAndCount(metrics.QuoteIngestions)
	rejectedBefore := testutil.ToFloat64(rejected)

	for i := 0; i < 50; i++ {
		_, err := uc.Ingest(ctx, IngestQuoteInput{CarrierName: "BTIS", ProductLine: "GL", AccountName: "Acme", Outcome: fmt.Sprintf("outcome-%d", i)})
		if !errors.Is(err, domainerr.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	}

	if got := testutil.CollectAndCount(metrics.QuoteIngestions); got != seriesBefore {
		t.Fatalf("expected %d series, got %d", seriesBefore, got)
	}
	if got := testutil.ToFloat64(rejected) - rejectedBefore; got != 50 {
		t.Fatalf("expected 50 rejections, got %v", got)
	}
}
