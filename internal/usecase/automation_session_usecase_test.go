package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"brokerage_crm/internal/adapter/persistence/memory"
	"brokerage_crm/internal/domain/domainerr"
	"brokerage_crm/internal/domain/entities"
	"brokerage_crm/internal/infrastructure/metrics"
	"brokerage_crm/internal/usecase/interfaces"
	mock_interfaces "brokerage_crm/internal/usecase/interfaces/mocks"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/mock/gomock"
)

type sessionFixture struct {
	uc       *AutomationSessionUseCase
	store    *memory.Store
	provider *mock_interfaces.MockIAutomationProvider
	driver   *mock_interfaces.MockIPortalDriver
	creds    *mock_interfaces.MockICredentialResolver
}

func newSessionFixture(t *testing.T) sessionFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := memory.NewStore()
	f := sessionFixture{
		store:    store,
		provider: mock_interfaces.NewMockIAutomationProvider(ctrl),
		driver:   mock_interfaces.NewMockIPortalDriver(ctrl),
		creds:    mock_interfaces.NewMockICredentialResolver(ctrl),
	}
	f.uc = NewAutomationSessionUseCase(store.AutomationRuns(), store.Quotes(), f.provider, f.driver, f.creds, nil, time.Second, nil)
	if _, err := store.Quotes().Create(context.Background(), entities.Quote{ID: "q1", OpportunityID: "o1", CarrierName: "markel", ProductLine: "GL"}); err != nil {
		t.Fatalf("seed quote: %v", err)
	}
	return f
}

func startInput() interfaces.StartSessionInput {
	return interfaces.StartSessionInput{
		CarrierName: "markel",
		QuoteID:     "q1",
		PortalURL:   "https://portal.markel.test/quote",
		Credentials: &interfaces.PortalCredentials{Username: "agent", Password: "s3cret"},
		FormData:    map[string]any{"fein": "12-3456789", "business_name": "Acme Roofing"},
	}
}

func TestAutomationSession_Start(t *testing.T) {
	ctx := context.Background()

	t.Run("persists run before provider call and never stores credentials", func(t *testing.T) {
		f := newSessionFixture(t)
		f.provider.EXPECT().CreateSession(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, spec interfaces.AutomationSpec) (interfaces.RemoteSession, error) {
			run, _ := f.store.AutomationRuns().GetByID(ctx, spec.RunID)
			if run.ID == "" || run.Status != entities.AutomationStatusRunning {
				t.Fatalf("expected run persisted as running before provider call, got %+v", run)
			}
			if spec.Credentials == nil || spec.Credentials.Password != "s3cret" {
				t.Fatalf("expected credentials passed through to provider")
			}
			return interfaces.RemoteSession{SessionID: "bb_1"}, nil
		})

		sess, err := f.uc.Start(ctx, startInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sess.SessionID != "bb_1" || sess.Status != entities.AutomationStatusRunning || sess.RetryCount != 0 {
			t.Fatalf("unexpected session: %+v", sess)
		}

		run, _ := f.store.AutomationRuns().GetBySessionID(ctx, "bb_1")
		if !run.InputData.HasCredentials {
			t.Fatalf("expected has_credentials=true")
		}
		if strings.Join(run.InputData.FormFields, ",") != "business_name,fein" {
			t.Fatalf("expected sorted form fields, got %v", run.InputData.FormFields)
		}
		raw, _ := json.Marshal(run)
		if strings.Contains(string(raw), "s3cret") || strings.Contains(string(raw), "\"agent\"") {
			t.Fatalf("credentials leaked into persisted run: %s", raw)
		}
	})

	t.Run("validation", func(t *testing.T) {
		f := newSessionFixture(t)
		in := startInput()
		in.PortalURL = " "
		if _, err := f.uc.Start(ctx, in); !errors.Is(err, domainerr.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("unknown quote", func(t *testing.T) {
		f := newSessionFixture(t)
		in := startInput()
		in.QuoteID = "missing"
		if _, err := f.uc.Start(ctx, in); !errors.Is(err, domainerr.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
		_, _, _, runs := f.store.Counts()
		if runs != 0 {
			t.Fatalf("expected no run written, got %d", runs)
		}
	})

	t.Run("provider failure closes the run as error", func(t *testing.T) {
		f := newSessionFixture(t)
		upstream := &domainerr.UpstreamError{Service: "browserbase", Operation: "create session", StatusCode: 503, Transient: true}
		f.provider.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(interfaces.RemoteSession{}, upstream)

		_, err := f.uc.Start(ctx, startInput())
		if !domainerr.IsTransient(err) {
			t.Fatalf("expected transient upstream error, got %v", err)
		}
		runs, _ := f.store.AutomationRuns().ListByQuoteID(ctx, "q1")
		if len(runs) != 1 || runs[0].Status != entities.AutomationStatusError || runs[0].ErrorMessage == "" {
			t.Fatalf("expected one errored run, got %+v", runs)
		}
	})
}

func TestAutomationSession_Complete(t *testing.T) {
	ctx := context.Background()
	f := newSessionFixture(t)
	f.provider.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(interfaces.RemoteSession{SessionID: "bb_1"}, nil)
	if _, err := f.uc.Start(ctx, startInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var hooked atomic.Int32
	f.uc.OnComplete(func(ctx context.Context, run entities.AutomationRun) {
		hooked.Add(1)
	})

	t.Run("non terminal status rejected", func(t *testing.T) {
		_, err := f.uc.Complete(ctx, "bb_1", entities.AutomationResult{Status: entities.AutomationStatusRunning})
		if !errors.Is(err, domainerr.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("first completion wins", func(t *testing.T) {
		sess, err := f.uc.Complete(ctx, "bb_1", entities.AutomationResult{
			Status:         entities.AutomationStatusSuccess,
			OutputData:     map[string]any{"quote_number": "MK-1"},
			ScreenshotURLs: []string{"https://cdn.test/1.png"},
			ErrorMessage:   "ignored on success",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sess.Status != entities.AutomationStatusSuccess || sess.CompletedAt == nil || sess.ErrorMessage != "" {
			t.Fatalf("unexpected session: %+v", sess)
		}
		if hooked.Load() != 1 {
			t.Fatalf("expected completion hook to run once")
		}
	})

	t.Run("second completion rejected", func(t *testing.T) {
		_, err := f.uc.Complete(ctx, "bb_1", entities.AutomationResult{Status: entities.AutomationStatusError, ErrorMessage: "late"})
		if !errors.Is(err, domainerr.ErrSessionAlreadyCompleted) {
			t.Fatalf("expected ErrSessionAlreadyCompleted, got %v", err)
		}
		sess, _ := f.uc.CheckStatus(ctx, "bb_1")
		if sess.Status != entities.AutomationStatusSuccess {
			t.Fatalf("expected stored status to stay success, got %s", sess.Status)
		}
		if hooked.Load() != 1 {
			t.Fatalf("hook must not run for rejected completions")
		}
	})

	t.Run("unknown session", func(t *testing.T) {
		_, err := f.uc.Complete(ctx, "bb_missing", entities.AutomationResult{Status: entities.AutomationStatusSuccess})
		if !errors.Is(err, domainerr.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
		if _, err := f.uc.CheckStatus(ctx, "bb_missing"); !errors.Is(err, domainerr.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestAutomationSession_Retry(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a new run with lineage and re-resolved credentials", func(t *testing.T) {
		f := newSessionFixture(t)
		gomock.InOrder(
			f.provider.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(interfaces.RemoteSession{SessionID: "bb_1"}, nil),
			f.provider.EXPECT().CreateSession(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, spec interfaces.AutomationSpec) (interfaces.RemoteSession, error) {
				if spec.Credentials == nil || spec.Credentials.Password != "from-config" {
					t.Fatalf("expected credentials re-resolved from configuration, got %+v", spec.Credentials)
				}
				if spec.FormData["fein"] != "12-3456789" {
					t.Fatalf("expected form data carried forward, got %v", spec.FormData)
				}
				return interfaces.RemoteSession{SessionID: "bb_2"}, nil
			}),
		)
		f.creds.EXPECT().PortalCredentials("markel").Return(&interfaces.PortalCredentials{Username: "agent", Password: "from-config"})

		first, err := f.uc.Start(ctx, startInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := f.uc.Complete(ctx, first.SessionID, entities.AutomationResult{Status: entities.AutomationStatusError, ErrorMessage: "captcha"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		before, _ := f.store.AutomationRuns().GetByID(ctx, first.RunID)

		second, err := f.uc.Retry(ctx, first.RunID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if second.RunID == first.RunID || second.SessionID != "bb_2" {
			t.Fatalf("expected a new run, got %+v", second)
		}
		if second.RetryCount != first.RetryCount+1 {
			t.Fatalf("expected retry_count %d, got %d", first.RetryCount+1, second.RetryCount)
		}
		if second.CarrierName != first.CarrierName || second.QuoteID != first.QuoteID {
			t.Fatalf("expected same carrier/quote, got %+v", second)
		}

		retried, _ := f.store.AutomationRuns().GetByID(ctx, second.RunID)
		if retried.RetryOf != first.RunID || retried.InputData.PortalURL != before.InputData.PortalURL {
			t.Fatalf("unexpected retried run: %+v", retried)
		}

		after, _ := f.store.AutomationRuns().GetByID(ctx, first.RunID)
		if after.Status != before.Status || after.RetryCount != before.RetryCount || after.ErrorMessage != "captcha" {
			t.Fatalf("original run must be untouched: before=%+v after=%+v", before, after)
		}

		history, _ := f.uc.ListRunsForQuote(ctx, "q1")
		if len(history) != 2 || history[0].ID != second.RunID {
			t.Fatalf("expected newest-first history, got %+v", history)
		}
	})

	t.Run("unknown run", func(t *testing.T) {
		f := newSessionFixture(t)
		if _, err := f.uc.Retry(ctx, "missing"); !errors.Is(err, domainerr.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestAutomationSession_PortalDriver(t *testing.T) {
	ctx := context.Background()

	t.Run("driver result completes the session", func(t *testing.T) {
		f := newSessionFixture(t)
		remote := interfaces.RemoteSession{SessionID: "bb_1", ConnectURL: "wss://connect.test/bb_1"}
		f.provider.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(remote, nil)
		f.driver.EXPECT().Run(gomock.Any(), remote, gomock.Any()).Return(entities.AutomationResult{
			Status:     entities.AutomationStatusSuccess,
			OutputData: map[string]any{"quote_number": "MK-9"},
		}, nil)

		if _, err := f.uc.Start(ctx, startInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		f.uc.Wait()

		sess, err := f.uc.CheckStatus(ctx, "bb_1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sess.Status != entities.AutomationStatusSuccess || sess.OutputData["quote_number"] != "MK-9" {
			t.Fatalf("unexpected session: %+v", sess)
		}
	})

	t.Run("driver error marks the run as error", func(t *testing.T) {
		f := newSessionFixture(t)
		remote := interfaces.RemoteSession{SessionID: "bb_1", ConnectURL: "wss://connect.test/bb_1"}
		f.provider.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(remote, nil)
		f.driver.EXPECT().Run(gomock.Any(), remote, gomock.Any()).Return(entities.AutomationResult{}, errors.New("selector not found"))

		if _, err := f.uc.Start(ctx, startInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		f.uc.Wait()

		sess, _ := f.uc.CheckStatus(ctx, "bb_1")
		if sess.Status != entities.AutomationStatusError || sess.ErrorMessage != "selector not found" {
			t.Fatalf("unexpected session: %+v", sess)
		}
	})
}

func TestAutomationSession_RunStorage(t *testing.T) {
	ctx := context.Background()

	newUseCase := func(t *testing.T) (*AutomationSessionUseCase, *mock_interfaces.MockIAutomationRunRepository, *mock_interfaces.MockIAutomationProvider) {
		ctrl := gomock.NewController(t)
		runs := mock_interfaces.NewMockIAutomationRunRepository(ctrl)
		provider := mock_interfaces.NewMockIAutomationProvider(ctrl)
		return NewAutomationSessionUseCase(runs, nil, provider, nil, nil, nil, time.Second, nil), runs, provider
	}

	t.Run("create failure stops before the provider", func(t *testing.T) {
		uc, runs, _ := newUseCase(t)
		runs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.AutomationRun{}, errors.New("table unavailable"))

		if _, err := uc.Start(ctx, startInput()); err == nil || !strings.Contains(err.Error(), "table unavailable") {
			t.Fatalf("expected storage error, got %v", err)
		}
	})

	t.Run("retry lineage is written on create", func(t *testing.T) {
		uc, runs, provider := newUseCase(t)
		original := entities.AutomationRun{
			ID:          "run-1",
			SessionID:   "bb_1",
			CarrierName: "markel",
			QuoteID:     "q1",
			Status:      entities.AutomationStatusError,
			InputData:   entities.AutomationInput{PortalURL: "https://portal.markel.test/quote", FormFields: []string{"fein"}, FormData: map[string]any{"fein": "12-3456789"}},
			RetryCount:  2,
		}
		var created entities.AutomationRun
		gomock.InOrder(
			runs.EXPECT().GetByID(gomock.Any(), "run-1").Return(original, nil),
			runs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r entities.AutomationRun) (entities.AutomationRun, error) {
				created = r
				return r, nil
			}),
			provider.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(interfaces.RemoteSession{SessionID: "bb_2"}, nil),
			runs.EXPECT().AssignSession(gomock.Any(), gomock.Any(), "bb_2").DoAndReturn(func(_ context.Context, runID, sessionID string) (entities.AutomationRun, error) {
				r := created
				r.SessionID = sessionID
				return r, nil
			}),
		)

		sess, err := uc.Retry(ctx, "run-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.RetryCount != 3 || created.RetryOf != "run-1" || created.Status != entities.AutomationStatusRunning {
			t.Fatalf("unexpected retried run: %+v", created)
		}
		if created.InputData.PortalURL != original.InputData.PortalURL || created.InputData.FormData["fein"] != "12-3456789" {
			t.Fatalf("expected inputs carried forward, got %+v", created.InputData)
		}
		if sess.SessionID != "bb_2" || sess.RetryCount != 3 {
			t.Fatalf("unexpected session: %+v", sess)
		}
	})

	t.Run("lookup failure on retry", func(t *testing.T) {
		uc, runs, _ := newUseCase(t)
		runs.EXPECT().GetByID(gomock.Any(), "run-1").Return(entities.AutomationRun{}, errors.New("timeout"))

		if _, err := uc.Retry(ctx, "run-1"); err == nil || errors.Is(err, domainerr.ErrNotFound) {
			t.Fatalf("expected storage error, got %v", err)
		}
	})
}

func TestAutomationSession_CarrierMetricLabels(t *testing.T) {
	ctx := context.Background()
	f := newSessionFixture(t)
	f.uc.TrackCarriers([]string{"btis", "markel"})

	var n int64
	f.provider.EXPECT().CreateSession(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, interfaces.AutomationSpec) (interfaces.RemoteSession, error) {
		return interfaces.RemoteSession{SessionID: fmt.Sprintf("bb_%d", atomic.AddInt64(&n, 1))}, nil
	}).AnyTimes()

	unknownStarted := metrics.AutomationSessions.WithLabelValues(unknownCarrierLabel, "started")
	markelStarted := metrics.AutomationSessions.WithLabelValues("markel", "started")
	seriesBefore := testutil.CollectAndCount(metrics.AutomationSessions)
	unknownBefore := testutil.ToFloat64(unknownStarted)
	markelBefore := testutil.ToFloat64(markelStarted)

	for i := 0; i < 25; i++ {
		in := startInput()
		in.CarrierName = fmt.Sprintf("carrier-%d", i)
		if _, err := f.uc.Start(ctx, in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	in := startInput()
	in.CarrierName = "Markel"
	if _, err := f.uc.Start(ctx, in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := testutil.CollectAndCount(metrics.AutomationSessions); got != seriesBefore {
		t.Fatalf("expected %d series, got %d", seriesBefore, got)
	}
	if got := testutil.ToFloat64(unknownStarted) - unknownBefore; got != 25 {
		t.Fatalf("expected 25 unknown starts, got %v", got)
	}
	if got := testutil.ToFloat64(markelStarted) - markelBefore; got != 1 {
		t.Fatalf("expected 1 markel start, got %v", got)
	}
}
