package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"brokerage_crm/internal/domain/domainerr"
	"brokerage_crm/internal/domain/entities"
	"brokerage_crm/internal/infrastructure/logger"
	"brokerage_crm/internal/usecase/interfaces"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultSubmissionParallelism = 4

// SubmissionInput is one coverage request fanned out to several carriers.
type SubmissionInput struct {
	Carriers             []string
	AccountID            string
	AccountName          string
	OpportunityID        string
	OpportunityName      string
	ProductLine          string
	EffectiveDate        string
	ExpirationDate       string
	CoverageRequirements map[string]any
	ApplicantData        map[string]any
	// PortalURLs overrides the configured portal URL per carrier for automation carriers.
	PortalURLs map[string]string
}

// CarrierSubmission is the per-carrier result of SubmitToCarriers. Error is set when the carrier
// could not be reached or is not supported; Quote is still set when a failure was recorded on it.
type CarrierSubmission struct {
	Carrier   string          `json:"carrier"`
	Quote     entities.Quote  `json:"quote"`
	Action    IngestionAction `json:"action,omitempty"`
	SessionID string          `json:"session_id,omitempty"`
	Error     string          `json:"error,omitempty"`
}

type CarrierInfo struct {
	Name        string `json:"name"`
	SupportsAPI bool   `json:"supports_api"`
}

// IQuoteSubmissionUseCase drives carrier adapters and routes every outcome through ingestion.
//
// Requested behavior:
//   - Fan a request out to several carriers without letting one failure stop the others.
//   - Poll carriers for updated status and attach issued quote documents.

type IQuoteSubmissionUseCase interface {
	SubmitToCarriers(ctx context.Context, in SubmissionInput) ([]CarrierSubmission, error)
	RefreshQuote(ctx context.Context, quoteID string) (entities.Quote, error)
	AttachDocument(ctx context.Context, quoteID string) (entities.Quote, error)
	GetQuote(ctx context.Context, quoteID string) (entities.Quote, error)
	ListCarriers() []CarrierInfo
}

type QuoteSubmissionUseCase struct {
	registry    interfaces.ICarrierRegistry
	ingestion   IQuoteIngestionUseCase
	quotes      interfaces.IQuoteRepository
	parallelism int
	log         *zap.Logger
	now         func() time.Time

	// Automation results arrive on driver goroutines while submitAgent may still be
	// recording the session on the same quote.
	locks quoteLocks
}

var _ IQuoteSubmissionUseCase = (*QuoteSubmissionUseCase)(nil)

func NewQuoteSubmissionUseCase(registry interfaces.ICarrierRegistry, ingestion IQuoteIngestionUseCase, quotes interfaces.IQuoteRepository, parallelism int, log *zap.Logger) *QuoteSubmissionUseCase {
	if parallelism <= 0 {
		parallelism = defaultSubmissionParallelism
	}
	return &QuoteSubmissionUseCase{
		registry:    registry,
		ingestion:   ingestion,
		quotes:      quotes,
		parallelism: parallelism,
		log:         logger.OrNop(log).Named("submission"),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (u *QuoteSubmissionUseCase) SubmitToCarriers(ctx context.Context, in SubmissionInput) ([]CarrierSubmission, error) {
	carriers := dedupeCarriers(in.Carriers)
	if len(carriers) == 0 {
		return nil, domainerr.NewValidationError("carriers", "at least one carrier is required")
	}

	req := entities.QuoteRequest{
		ProductLine:          strings.TrimSpace(in.ProductLine),
		EffectiveDate:        strings.TrimSpace(in.EffectiveDate),
		ExpirationDate:       strings.TrimSpace(in.ExpirationDate),
		CoverageRequirements: in.CoverageRequirements,
		ApplicantData:        in.ApplicantData,
	}

	// Owner ids are resolved below; validate the rest first so bad input writes nothing.
	probe := req
	probe.AccountID, probe.OpportunityID = "unresolved", "unresolved"
	if err := validateQuoteRequest(probe); err != nil {
		return nil, err
	}

	account, opp, err := u.ingestion.ResolveOwner(ctx, IngestQuoteInput{
		AccountID:       in.AccountID,
		AccountName:     in.AccountName,
		OpportunityID:   in.OpportunityID,
		OpportunityName: in.OpportunityName,
		ProductLine:     req.ProductLine,
	})
	if err != nil {
		return nil, err
	}
	req.AccountID = account.ID
	req.OpportunityID = opp.ID

	results := make([]CarrierSubmission, len(carriers))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.parallelism)
	for i, carrier := range carriers {
		g.Go(func() error {
			results[i] = u.submitOne(gctx, carrier, req, in.PortalURLs)
			return nil
		})
	}
	_ = g.Wait()

	u.log.Info("submission fan-out finished",
		zap.String("opportunity_id", opp.ID),
		zap.Int("carriers", len(carriers)),
		zap.Int("failed", countFailed(results)),
	)
	return results, nil
}

func (u *QuoteSubmissionUseCase) submitOne(ctx context.Context, carrier string, req entities.QuoteRequest, portalURLs map[string]string) CarrierSubmission {
	out := CarrierSubmission{Carrier: carrier}
	log := u.log.With(zap.String("carrier", carrier), zap.String("opportunity_id", req.OpportunityID))

	adapter, err := u.registry.Resolve(carrier)
	if err != nil {
		log.Warn("carrier not supported", zap.Error(err))
		out.Error = err.Error()
		return out
	}
	out.Carrier = adapter.Name()

	if adapter.SupportsAPI() {
		return u.submitAPI(ctx, adapter, req, out, log)
	}
	return u.submitAgent(ctx, adapter, req, portalURLs[strings.ToLower(carrier)], out, log)
}

func (u *QuoteSubmissionUseCase) submitAPI(ctx context.Context, adapter interfaces.ICarrierAdapter, req entities.QuoteRequest, out CarrierSubmission, log *zap.Logger) CarrierSubmission {
	base := IngestQuoteInput{
		AccountID:        req.AccountID,
		OpportunityID:    req.OpportunityID,
		CarrierName:      adapter.Name(),
		ProductLine:      req.ProductLine,
		EffectiveDate:    req.EffectiveDate,
		ExpirationDate:   req.ExpirationDate,
		SubmissionMethod: string(entities.SubmissionMethodAPI),
	}

	resp, err := adapter.SubmitQuote(ctx, req)
	var in IngestQuoteInput
	if err != nil {
		log.Error("carrier submission failed", zap.Error(err))
		out.Error = err.Error()
		in = base
		in.Status = string(entities.QuoteStatusSubmittedAPI)
		in.Outcome = string(entities.OutcomeError)
		in.ErrorMessage = err.Error()
	} else {
		in = mergeResponse(base, resp, entities.SubmissionMethodAPI)
	}

	res, ierr := u.ingestion.Ingest(ctx, in)
	if ierr != nil {
		log.Error("ingesting carrier result failed", zap.Error(ierr))
		out.Error = joinErrors(out.Error, ierr.Error())
		return out
	}
	out.Quote, out.Action = res.Quote, res.Action
	return out
}

func (u *QuoteSubmissionUseCase) submitAgent(ctx context.Context, adapter interfaces.ICarrierAdapter, req entities.QuoteRequest, portalURL string, out CarrierSubmission, log *zap.Logger) CarrierSubmission {
	placeholder, err := u.ingestion.Ingest(ctx, IngestQuoteInput{
		AccountID:        req.AccountID,
		OpportunityID:    req.OpportunityID,
		CarrierName:      adapter.Name(),
		ProductLine:      req.ProductLine,
		EffectiveDate:    req.EffectiveDate,
		ExpirationDate:   req.ExpirationDate,
		Status:           string(entities.QuoteStatusSubmittedAgent),
		SubmissionMethod: string(entities.SubmissionMethodAgent),
	})
	if err != nil {
		log.Error("creating placeholder quote failed", zap.Error(err))
		out.Error = err.Error()
		return out
	}
	out.Quote, out.Action = placeholder.Quote, placeholder.Action

	unlock := u.locks.lock(placeholder.Quote.ID)
	defer unlock()

	req.QuoteRef = placeholder.Quote.ID
	if portalURL != "" {
		if req.ApplicantData == nil {
			req.ApplicantData = map[string]any{}
		} else {
			req.ApplicantData = cloneMap(req.ApplicantData)
		}
		req.ApplicantData[entities.ApplicantPortalURLKey] = portalURL
	}

	resp, err := adapter.SubmitQuote(ctx, req)
	update := IngestQuoteInput{
		QuoteID:     placeholder.Quote.ID,
		CarrierName: adapter.Name(),
		ProductLine: req.ProductLine,
	}
	if err != nil {
		log.Error("automation submission failed", zap.String("quote_id", placeholder.Quote.ID), zap.Error(err))
		out.Error = err.Error()
		update.Outcome = string(entities.OutcomeError)
		update.ErrorMessage = err.Error()
	} else {
		out.SessionID = resp.SessionID
		update.CarrierQuoteID = resp.QuoteID
	}

	res, ierr := u.ingestion.Ingest(ctx, update)
	if ierr != nil {
		log.Error("recording automation submission failed", zap.Error(ierr))
		out.Error = joinErrors(out.Error, ierr.Error())
		return out
	}
	out.Quote = res.Quote
	return out
}

// RefreshQuote polls the carrier for a non-terminal quote and ingests the result.
// Terminal quotes are returned unchanged.
func (u *QuoteSubmissionUseCase) RefreshQuote(ctx context.Context, quoteID string) (entities.Quote, error) {
	unlock := u.locks.lock(strings.TrimSpace(quoteID))
	defer unlock()

	q, err := u.GetQuote(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.IsTerminal() {
		return q, nil
	}
	return u.refresh(ctx, q, q.CarrierQuoteID)
}

func (u *QuoteSubmissionUseCase) refresh(ctx context.Context, q entities.Quote, carrierQuoteID string) (entities.Quote, error) {
	if carrierQuoteID == "" {
		return entities.Quote{}, domainerr.NewValidationError("carrier_quote_id", "quote has not been submitted to the carrier")
	}
	adapter, err := u.registry.Resolve(q.CarrierName)
	if err != nil {
		return entities.Quote{}, err
	}

	resp, err := adapter.CheckQuoteStatus(ctx, carrierQuoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if resp.Pending() && carrierQuoteID == q.CarrierQuoteID {
		return q, nil
	}

	method := q.SubmissionMethod
	if method == entities.SubmissionMethodNone {
		method = entities.SubmissionMethodAPI
		if !adapter.SupportsAPI() {
			method = entities.SubmissionMethodAgent
		}
	}
	in := mergeResponse(IngestQuoteInput{
		QuoteID:     q.ID,
		CarrierName: q.CarrierName,
		ProductLine: q.ProductLine,
	}, resp, method)
	in.CarrierQuoteID = carrierQuoteID
	if resp.Pending() {
		in.Status = ""
	}

	res, err := u.ingestion.Ingest(ctx, in)
	if err != nil {
		return entities.Quote{}, err
	}
	u.log.Info("quote refreshed", zap.String("quote_id", q.ID), zap.String("outcome", string(res.Quote.Outcome)))
	return res.Quote, nil
}

// OnAutomationCompleted feeds a finished automation run back into its quote. A successful retry
// may replace an error outcome left by the attempt it retried.
func (u *QuoteSubmissionUseCase) OnAutomationCompleted(ctx context.Context, run entities.AutomationRun) {
	log := u.log.With(zap.String("quote_id", run.QuoteID), zap.String("session_id", run.SessionID))

	unlock := u.locks.lock(run.QuoteID)
	defer unlock()

	q, err := u.GetQuote(ctx, run.QuoteID)
	if err != nil {
		log.Warn("automation result has no quote", zap.Error(err))
		return
	}
	retryable := q.Outcome == entities.OutcomeError && run.RetryCount > 0
	if q.IsTerminal() && !retryable {
		log.Info("quote already terminal; automation result not applied", zap.String("outcome", string(q.Outcome)))
		return
	}
	if _, err := u.refresh(ctx, q, run.SessionID); err != nil {
		log.Error("applying automation result failed", zap.Error(err))
	}
}

// AttachDocument stores the carrier's quote document URL. This is the only change allowed on a
// terminal quote outside ingestion. An absent document leaves the quote unchanged.
func (u *QuoteSubmissionUseCase) AttachDocument(ctx context.Context, quoteID string) (entities.Quote, error) {
	unlock := u.locks.lock(strings.TrimSpace(quoteID))
	defer unlock()

	q, err := u.GetQuote(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.CarrierQuoteID == "" {
		return entities.Quote{}, domainerr.NewValidationError("carrier_quote_id", "quote has not been submitted to the carrier")
	}
	adapter, err := u.registry.Resolve(q.CarrierName)
	if err != nil {
		return entities.Quote{}, err
	}

	url, err := adapter.RetrieveQuoteDocument(ctx, q.CarrierQuoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if url == "" || url == q.QuoteDocumentURL {
		return q, nil
	}

	q.QuoteDocumentURL = url
	q.UpdatedAt = u.now()
	updated, err := u.quotes.Update(ctx, q)
	if err != nil {
		return entities.Quote{}, fmt.Errorf("attach document to quote %s: %w", q.ID, err)
	}
	if updated.ID == "" {
		return entities.Quote{}, domainerr.NewNotFoundError("quote", q.ID)
	}
	u.log.Info("quote document attached", zap.String("quote_id", q.ID))
	return updated, nil
}

func (u *QuoteSubmissionUseCase) GetQuote(ctx context.Context, quoteID string) (entities.Quote, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Quote{}, domainerr.NewValidationError("quote_id", "quote_id is required")
	}
	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, fmt.Errorf("load quote %s: %w", quoteID, err)
	}
	if q.ID == "" {
		return entities.Quote{}, domainerr.NewNotFoundError("quote", quoteID)
	}
	return q, nil
}

func (u *QuoteSubmissionUseCase) ListCarriers() []CarrierInfo {
	names := u.registry.ListSupported()
	out := make([]CarrierInfo, 0, len(names))
	for _, name := range names {
		adapter, err := u.registry.Resolve(name)
		if err != nil {
			continue
		}
		out = append(out, CarrierInfo{Name: adapter.Name(), SupportsAPI: adapter.SupportsAPI()})
	}
	return out
}

// StatusForOutcome maps a carrier decision to the quote workflow status.
func StatusForOutcome(outcome entities.QuoteOutcome, method entities.SubmissionMethod) entities.QuoteStatus {
	switch outcome {
	case entities.OutcomeQuoted:
		return entities.QuoteStatusQuoted
	case entities.OutcomeDeclined, entities.OutcomeNoOffer:
		return entities.QuoteStatusRejected
	}
	if method == entities.SubmissionMethodAgent {
		return entities.QuoteStatusSubmittedAgent
	}
	return entities.QuoteStatusSubmittedAPI
}

func mergeResponse(base IngestQuoteInput, resp entities.QuoteResponse, method entities.SubmissionMethod) IngestQuoteInput {
	in := base
	in.Status = string(StatusForOutcome(resp.Status, method))
	in.SubmissionMethod = string(method)
	in.Outcome = string(resp.Status)
	in.QuoteNumber = resp.QuoteNumber
	in.CarrierQuoteID = resp.QuoteID
	in.Premium = resp.Premium
	in.CoverageDetails = resp.CoverageDetails
	in.DeclineReason = resp.DeclineReason
	in.ErrorMessage = resp.ErrorMessage
	in.QuoteDocumentURL = resp.QuoteDocumentURL
	if resp.EffectiveDate != "" {
		in.EffectiveDate = resp.EffectiveDate
	}
	if resp.ExpirationDate != "" {
		in.ExpirationDate = resp.ExpirationDate
	}
	return in
}

func validateQuoteRequest(req entities.QuoteRequest) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := fe.Field()
		if fe.Tag() == "datetime" {
			return domainerr.NewValidationError(field, fmt.Sprintf("%s must be YYYY-MM-DD", field))
		}
		return domainerr.NewValidationError(field, fmt.Sprintf("%s is required", field))
	}
	return domainerr.NewValidationError("request", err.Error())
}

func dedupeCarriers(carriers []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(carriers))
	for _, c := range carriers {
		c = strings.TrimSpace(c)
		key := strings.ToLower(c)
		if c == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}
	return out
}

func countFailed(results []CarrierSubmission) int {
	n := 0
	for _, r := range results {
		if r.Error != "" {
			n++
		}
	}
	return n
}

func joinErrors(a, b string) string {
	if a == "" {
		return b
	}
	return a + "; " + b
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
