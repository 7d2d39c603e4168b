package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"brokerage_crm/internal/domain/domainerr"
	"brokerage_crm/internal/domain/entities"
	"brokerage_crm/internal/infrastructure/logger"
	"brokerage_crm/internal/infrastructure/metrics"
	"brokerage_crm/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultDriverTimeout = 5 * time.Minute
	unknownCarrierLabel  = "unknown"
)

// IAutomationSessionUseCase manages browser automation sessions for carriers without an API.
//
// Requested behavior:
//   - Persist the run as running before the provider is called; never persist credentials.
//   - Complete transitions a run exactly once; a second completion is rejected.
//   - Retry spawns a new run with the original inputs and retry_count + 1.

type IAutomationSessionUseCase interface {
	Start(ctx context.Context, in interfaces.StartSessionInput) (entities.Session, error)
	CheckStatus(ctx context.Context, sessionID string) (entities.Session, error)
	Complete(ctx context.Context, sessionID string, result entities.AutomationResult) (entities.Session, error)
	Retry(ctx context.Context, runID string) (entities.Session, error)
	ListRunsForQuote(ctx context.Context, quoteID string) ([]entities.AutomationRun, error)
}

// CompletionHook is called after a run reaches a terminal state.
type CompletionHook func(ctx context.Context, run entities.AutomationRun)

type AutomationSessionUseCase struct {
	runs          interfaces.IAutomationRunRepository
	quotes        interfaces.IQuoteRepository
	provider      interfaces.IAutomationProvider
	driver        interfaces.IPortalDriver
	credentials   interfaces.ICredentialResolver
	events        interfaces.IEventPublisher
	driverTimeout time.Duration
	log           *zap.Logger
	now           func() time.Time

	mu       sync.RWMutex
	onDone   CompletionHook
	carriers map[string]struct{}
	wg       sync.WaitGroup
}

var (
	_ IAutomationSessionUseCase      = (*AutomationSessionUseCase)(nil)
	_ interfaces.IAutomationSessions = (*AutomationSessionUseCase)(nil)
)

// NewAutomationSessionUseCase wires the session manager. driver, credentials and events are optional.
func NewAutomationSessionUseCase(
	runs interfaces.IAutomationRunRepository,
	quotes interfaces.IQuoteRepository,
	provider interfaces.IAutomationProvider,
	driver interfaces.IPortalDriver,
	credentials interfaces.ICredentialResolver,
	events interfaces.IEventPublisher,
	driverTimeout time.Duration,
	log *zap.Logger,
) *AutomationSessionUseCase {
	if driverTimeout <= 0 {
		driverTimeout = defaultDriverTimeout
	}
	return &AutomationSessionUseCase{
		runs:          runs,
		quotes:        quotes,
		provider:      provider,
		driver:        driver,
		credentials:   credentials,
		events:        events,
		driverTimeout: driverTimeout,
		log:           logger.OrNop(log).Named("automation"),
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// OnComplete registers the hook run after every successful completion.
func (u *AutomationSessionUseCase) OnComplete(hook CompletionHook) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.onDone = hook
}

// TrackCarriers sets the carrier ids used as metric labels. Sessions for any other
// carrier name are counted as "unknown".
func (u *AutomationSessionUseCase) TrackCarriers(ids []string) {
	known := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		known[strings.ToLower(strings.TrimSpace(id))] = struct{}{}
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.carriers = known
}

func (u *AutomationSessionUseCase) carrierLabel(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	u.mu.RLock()
	defer u.mu.RUnlock()
	if _, ok := u.carriers[key]; ok {
		return key
	}
	return unknownCarrierLabel
}

// Wait blocks until detached portal drivers started by this manager have finished.
func (u *AutomationSessionUseCase) Wait() {
	u.wg.Wait()
}

func (u *AutomationSessionUseCase) Start(ctx context.Context, in interfaces.StartSessionInput) (entities.Session, error) {
	return u.start(ctx, in, 0, "")
}

func (u *AutomationSessionUseCase) start(ctx context.Context, in interfaces.StartSessionInput, retryCount int, retryOf string) (entities.Session, error) {
	in.CarrierName = strings.TrimSpace(in.CarrierName)
	in.QuoteID = strings.TrimSpace(in.QuoteID)
	in.PortalURL = strings.TrimSpace(in.PortalURL)
	if in.CarrierName == "" {
		return entities.Session{}, domainerr.NewValidationError("carrier_name", "carrier_name is required")
	}
	if in.QuoteID == "" {
		return entities.Session{}, domainerr.NewValidationError("quote_id", "quote_id is required")
	}
	if in.PortalURL == "" {
		return entities.Session{}, domainerr.NewValidationError("portal_url", "portal_url is required")
	}
	if u.provider == nil {
		return entities.Session{}, errors.New("automation provider not configured")
	}

	if u.quotes != nil {
		q, err := u.quotes.GetByID(ctx, in.QuoteID)
		if err != nil {
			return entities.Session{}, fmt.Errorf("load quote %s: %w", in.QuoteID, err)
		}
		if q.ID == "" {
			return entities.Session{}, domainerr.NewNotFoundError("quote", in.QuoteID)
		}
	}

	log := u.log.With(zap.String("carrier", in.CarrierName), zap.String("quote_id", in.QuoteID))

	run := entities.AutomationRun{
		ID:          uuid.NewString(),
		CarrierName: in.CarrierName,
		QuoteID:     in.QuoteID,
		Status:      entities.AutomationStatusRunning,
		InputData: entities.AutomationInput{
			PortalURL:      in.PortalURL,
			HasCredentials: in.Credentials != nil,
			FormFields:     formFields(in.FormData),
			FormData:       in.FormData,
		},
		RetryCount: retryCount,
		RetryOf:    retryOf,
		StartedAt:  u.now(),
	}
	run, err := u.runs.Create(ctx, run)
	if err != nil {
		return entities.Session{}, fmt.Errorf("create automation run: %w", err)
	}
	log = log.With(zap.String("run_id", run.ID))

	spec := interfaces.AutomationSpec{
		RunID:       run.ID,
		CarrierName: in.CarrierName,
		QuoteID:     in.QuoteID,
		PortalURL:   in.PortalURL,
		Credentials: in.Credentials,
		FormData:    in.FormData,
	}

	remote, err := u.provider.CreateSession(ctx, spec)
	if err == nil && strings.TrimSpace(remote.SessionID) == "" {
		err = &domainerr.UpstreamError{Service: "automation", Operation: "create session", Cause: errors.New("provider returned no session id")}
	}
	if err != nil {
		log.Error("automation provider failed", zap.Error(err))
		u.failWithoutSession(ctx, run, err, log)
		metrics.AutomationSessions.WithLabelValues(u.carrierLabel(in.CarrierName), "provider_error").Inc()
		return entities.Session{}, err
	}

	run, err = u.runs.AssignSession(ctx, run.ID, remote.SessionID)
	if err != nil {
		return entities.Session{}, fmt.Errorf("assign session %s to run: %w", remote.SessionID, err)
	}
	if run.ID == "" {
		return entities.Session{}, domainerr.NewNotFoundError("automation run", spec.RunID)
	}

	metrics.AutomationSessions.WithLabelValues(u.carrierLabel(in.CarrierName), "started").Inc()
	log.Info("automation session started", zap.String("session_id", remote.SessionID), zap.Int("retry_count", retryCount))

	if remote.ConnectURL != "" && u.driver != nil {
		u.wg.Add(1)
		go u.drive(remote, spec)
	}
	return run.Session(), nil
}

// failWithoutSession closes a run whose provider call failed. The run id stands in for the
// session id because the provider never assigned one.
func (u *AutomationSessionUseCase) failWithoutSession(ctx context.Context, run entities.AutomationRun, cause error, log *zap.Logger) {
	if _, err := u.runs.AssignSession(ctx, run.ID, run.ID); err != nil {
		log.Error("failed to mark run as errored", zap.Error(err))
		return
	}
	result := entities.AutomationResult{Status: entities.AutomationStatusError, ErrorMessage: cause.Error()}
	if _, err := u.runs.Complete(ctx, run.ID, result, u.now()); err != nil {
		log.Error("failed to mark run as errored", zap.Error(err))
	}
}

func (u *AutomationSessionUseCase) drive(remote interfaces.RemoteSession, spec interfaces.AutomationSpec) {
	defer u.wg.Done()

	ctx, cancel := context.WithTimeout(context.Background(), u.driverTimeout)
	defer cancel()

	log := u.log.With(zap.String("session_id", remote.SessionID), zap.String("carrier", spec.CarrierName))
	result, err := u.driver.Run(ctx, remote, spec)
	if err != nil {
		log.Warn("portal driver failed", zap.Error(err))
		result = entities.AutomationResult{Status: entities.AutomationStatusError, ErrorMessage: err.Error()}
	}

	// Completion gets its own context so a driver that used the whole budget can still record the outcome.
	cctx, ccancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer ccancel()
	if _, err := u.Complete(cctx, remote.SessionID, result); err != nil {
		if errors.Is(err, domainerr.ErrSessionAlreadyCompleted) {
			log.Info("session already completed out of band")
			return
		}
		log.Error("failed to record portal driver result", zap.Error(err))
	}
}

func (u *AutomationSessionUseCase) CheckStatus(ctx context.Context, sessionID string) (entities.Session, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.Session{}, domainerr.NewValidationError("session_id", "session_id is required")
	}
	run, err := u.runs.GetBySessionID(ctx, sessionID)
	if err != nil {
		return entities.Session{}, fmt.Errorf("load session %s: %w", sessionID, err)
	}
	if run.ID == "" {
		return entities.Session{}, domainerr.NewNotFoundError("automation session", sessionID)
	}
	return run.Session(), nil
}

// Complete records the terminal result of a session. Completing a session that is no longer
// running fails with domainerr.ErrSessionAlreadyCompleted and leaves the stored run untouched.
func (u *AutomationSessionUseCase) Complete(ctx context.Context, sessionID string, result entities.AutomationResult) (entities.Session, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.Session{}, domainerr.NewValidationError("session_id", "session_id is required")
	}
	if !result.Status.IsTerminal() {
		return entities.Session{}, domainerr.NewValidationError("status", "status must be success or error")
	}
	if result.Status == entities.AutomationStatusSuccess {
		result.ErrorMessage = ""
	}

	run, err := u.runs.Complete(ctx, sessionID, result, u.now())
	if err != nil {
		if errors.Is(err, domainerr.ErrSessionAlreadyCompleted) {
			return entities.Session{}, err
		}
		return entities.Session{}, fmt.Errorf("complete session %s: %w", sessionID, err)
	}
	if run.ID == "" {
		return entities.Session{}, domainerr.NewNotFoundError("automation session", sessionID)
	}

	metrics.AutomationSessions.WithLabelValues(u.carrierLabel(run.CarrierName), string(run.Status)).Inc()
	u.log.Info("automation session completed",
		zap.String("session_id", sessionID),
		zap.String("run_id", run.ID),
		zap.String("quote_id", run.QuoteID),
		zap.String("status", string(run.Status)),
	)

	if u.events != nil {
		evt := interfaces.Event{
			Type:       interfaces.EventAutomationCompleted,
			OccurredAt: u.now(),
			Payload: map[string]any{
				"session_id":   run.SessionID,
				"run_id":       run.ID,
				"quote_id":     run.QuoteID,
				"carrier_name": run.CarrierName,
				"status":       string(run.Status),
			},
		}
		if err := u.events.Publish(ctx, evt); err != nil {
			u.log.Warn("event publish failed", zap.String("event_type", evt.Type), zap.Error(err))
		}
	}

	u.mu.RLock()
	hook := u.onDone
	u.mu.RUnlock()
	if hook != nil {
		hook(ctx, run)
	}
	return run.Session(), nil
}

// Retry starts a new session from the inputs of runID. The original run is never modified.
func (u *AutomationSessionUseCase) Retry(ctx context.Context, runID string) (entities.Session, error) {
	runID = strings.TrimSpace(runID)
	if runID == "" {
		return entities.Session{}, domainerr.NewValidationError("run_id", "run_id is required")
	}
	original, err := u.runs.GetByID(ctx, runID)
	if err != nil {
		return entities.Session{}, fmt.Errorf("load automation run %s: %w", runID, err)
	}
	if original.ID == "" {
		return entities.Session{}, domainerr.NewNotFoundError("automation run", runID)
	}

	var creds *interfaces.PortalCredentials
	if original.InputData.HasCredentials && u.credentials != nil {
		creds = u.credentials.PortalCredentials(original.CarrierName)
	}
	if original.InputData.HasCredentials && creds == nil {
		u.log.Warn("retrying without credentials; none configured for carrier",
			zap.String("carrier", original.CarrierName), zap.String("run_id", runID))
	}

	metrics.AutomationSessions.WithLabelValues(u.carrierLabel(original.CarrierName), "retried").Inc()
	return u.start(ctx, interfaces.StartSessionInput{
		CarrierName: original.CarrierName,
		QuoteID:     original.QuoteID,
		PortalURL:   original.InputData.PortalURL,
		Credentials: creds,
		FormData:    original.InputData.FormData,
	}, original.RetryCount+1, original.ID)
}

func (u *AutomationSessionUseCase) ListRunsForQuote(ctx context.Context, quoteID string) ([]entities.AutomationRun, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, domainerr.NewValidationError("quote_id", "quote_id is required")
	}
	return u.runs.ListByQuoteID(ctx, quoteID)
}

func formFields(data map[string]any) []string {
	fields := make([]string, 0, len(data))
	for k := range data {
		fields = append(fields, k)
	}
	sort.Strings(fields)
	return fields
}
