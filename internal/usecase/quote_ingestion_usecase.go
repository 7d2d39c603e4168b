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
	"brokerage_crm/internal/infrastructure/metrics"
	"brokerage_crm/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// IngestionAction tells the caller whether ingestion inserted or updated the quote.
type IngestionAction string

const (
	IngestionActionCreated IngestionAction = "created"
	IngestionActionUpdated IngestionAction = "updated"
)

// Outcome label for inputs rejected before the outcome itself was validated.
const rejectedOutcomeLabel = "invalid"

// StagePolicy controls the opportunity stage side effect of a quoted outcome.
//
//   - always: set stage to uw_review on every quoted outcome, even from bind or lost
//   - forward_only: only advance when uw_review is a forward transition
type StagePolicy string

const (
	StagePolicyAlways      StagePolicy = "always"
	StagePolicyForwardOnly StagePolicy = "forward_only"
)

func (p StagePolicy) Valid() bool {
	return p == StagePolicyAlways || p == StagePolicyForwardOnly
}

// IngestQuoteInput is one inbound quote result, from an adapter, an external system or a person.
//
// Only CarrierName and ProductLine are mandatory. QuoteID targets an existing quote directly and is
// only set by internal callers (refresh, automation completion).
type IngestQuoteInput struct {
	QuoteID          string
	AccountID        string
	AccountName      string
	OpportunityID    string
	OpportunityName  string
	CarrierName      string
	ProductLine      string
	Status           string
	QuoteNumber      string
	CarrierQuoteID   string
	Premium          decimal.NullDecimal
	EffectiveDate    string
	ExpirationDate   string
	CoverageDetails  map[string]any
	SubmissionMethod string
	Outcome          string
	DeclineReason    string
	ErrorMessage     string
	QuoteDocumentURL string
}

type IngestQuoteResult struct {
	Quote  entities.Quote
	Action IngestionAction
}

// IQuoteIngestionUseCase is the single normalized write path for quote outcomes.
//
// Requested behavior:
//   - Find-or-create the Account (by name) and Opportunity (by synthesized name).
//   - Upsert the Quote using quote_number as idempotency key.
//   - Advance the Opportunity to uw_review on a quoted outcome.

type IQuoteIngestionUseCase interface {
	Ingest(ctx context.Context, in IngestQuoteInput) (IngestQuoteResult, error)
	ResolveOwner(ctx context.Context, in IngestQuoteInput) (entities.Account, entities.Opportunity, error)
}

type QuoteIngestionUseCase struct {
	accounts      interfaces.IAccountRepository
	opportunities interfaces.IOpportunityRepository
	quotes        interfaces.IQuoteRepository
	events        interfaces.IEventPublisher
	policy        StagePolicy
	log           *zap.Logger
	now           func() time.Time
}

var _ IQuoteIngestionUseCase = (*QuoteIngestionUseCase)(nil)

func NewQuoteIngestionUseCase(
	accounts interfaces.IAccountRepository,
	opportunities interfaces.IOpportunityRepository,
	quotes interfaces.IQuoteRepository,
	events interfaces.IEventPublisher,
	policy StagePolicy,
	log *zap.Logger,
) *QuoteIngestionUseCase {
	if !policy.Valid() {
		policy = StagePolicyAlways
	}
	return &QuoteIngestionUseCase{
		accounts:      accounts,
		opportunities: opportunities,
		quotes:        quotes,
		events:        events,
		policy:        policy,
		log:           logger.OrNop(log).Named("ingestion"),
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (u *QuoteIngestionUseCase) Ingest(ctx context.Context, in IngestQuoteInput) (IngestQuoteResult, error) {
	in = normalizeIngestInput(in)
	if err := validateIngestInput(in); err != nil {
		metrics.QuoteIngestions.WithLabelValues("rejected", rejectedOutcomeLabel).Inc()
		return IngestQuoteResult{}, err
	}

	log := u.log.With(
		zap.String("carrier", in.CarrierName),
		zap.String("product_line", in.ProductLine),
		zap.String("quote_number", in.QuoteNumber),
	)

	res, err := u.ingest(ctx, in, log)
	if err != nil {
		metrics.QuoteIngestions.WithLabelValues("failed", in.Outcome).Inc()
		if errors.Is(err, domainerr.ErrValidation) || errors.Is(err, domainerr.ErrNotFound) {
			log.Info("ingestion rejected", zap.Error(err))
		} else {
			log.Error("ingestion failed", zap.Error(err))
		}
		return IngestQuoteResult{}, err
	}

	metrics.QuoteIngestions.WithLabelValues(string(res.Action), string(res.Quote.Outcome)).Inc()
	log.Info("quote ingested",
		zap.String("quote_id", res.Quote.ID),
		zap.String("opportunity_id", res.Quote.OpportunityID),
		zap.String("action", string(res.Action)),
		zap.String("outcome", string(res.Quote.Outcome)),
	)
	u.publish(ctx, res, log)
	return res, nil
}

func (u *QuoteIngestionUseCase) ingest(ctx context.Context, in IngestQuoteInput, log *zap.Logger) (IngestQuoteResult, error) {
	if in.QuoteID != "" {
		existing, err := u.quotes.GetByID(ctx, in.QuoteID)
		if err != nil {
			return IngestQuoteResult{}, fmt.Errorf("load quote %s: %w", in.QuoteID, err)
		}
		if existing.ID == "" {
			return IngestQuoteResult{}, domainerr.NewNotFoundError("quote", in.QuoteID)
		}
		return u.updateQuote(ctx, existing, in, log)
	}

	account, err := u.resolveAccount(ctx, in)
	if err != nil {
		return IngestQuoteResult{}, err
	}
	log = log.With(zap.String("account_id", account.ID))

	opp, err := u.resolveOpportunity(ctx, account, in)
	if err != nil {
		return IngestQuoteResult{}, err
	}

	if in.QuoteNumber != "" {
		existing, err := u.quotes.GetByQuoteNumber(ctx, in.QuoteNumber)
		if err != nil {
			return IngestQuoteResult{}, fmt.Errorf("lookup quote_number %s: %w", in.QuoteNumber, err)
		}
		if existing.ID != "" {
			return u.updateQuote(ctx, existing, in, log)
		}
	}

	return u.createQuote(ctx, opp, in, log)
}

// ResolveOwner runs the Account and Opportunity find-or-create steps without writing a quote.
// The submission orchestrator uses it to build carrier requests before any quote exists.
func (u *QuoteIngestionUseCase) ResolveOwner(ctx context.Context, in IngestQuoteInput) (entities.Account, entities.Opportunity, error) {
	in = normalizeIngestInput(in)
	if in.ProductLine == "" {
		return entities.Account{}, entities.Opportunity{}, domainerr.NewValidationError("product_line", "product_line is required")
	}
	account, err := u.resolveAccount(ctx, in)
	if err != nil {
		return entities.Account{}, entities.Opportunity{}, err
	}
	opp, err := u.resolveOpportunity(ctx, account, in)
	if err != nil {
		return entities.Account{}, entities.Opportunity{}, err
	}
	return account, opp, nil
}

func (u *QuoteIngestionUseCase) resolveAccount(ctx context.Context, in IngestQuoteInput) (entities.Account, error) {
	if in.AccountID != "" {
		a, err := u.accounts.GetByID(ctx, in.AccountID)
		if err != nil {
			return entities.Account{}, fmt.Errorf("load account %s: %w", in.AccountID, err)
		}
		if a.ID == "" {
			return entities.Account{}, domainerr.NewValidationError("account_id", fmt.Sprintf("account not found: %s", in.AccountID))
		}
		return a, nil
	}
	if in.AccountName == "" {
		return entities.Account{}, domainerr.NewValidationError("account_id", "account_id or account_name is required")
	}

	a, err := u.accounts.GetByName(ctx, in.AccountName)
	if err != nil {
		return entities.Account{}, fmt.Errorf("lookup account %q: %w", in.AccountName, err)
	}
	if a.ID != "" {
		return a, nil
	}

	now := u.now()
	created, err := u.accounts.Create(ctx, entities.Account{
		ID:        uuid.NewString(),
		Name:      in.AccountName,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err == nil {
		u.log.Info("account created", zap.String("account_id", created.ID), zap.String("account_name", created.Name))
		return created, nil
	}
	if !errors.Is(err, domainerr.ErrPersistenceConflict) {
		return entities.Account{}, fmt.Errorf("create account %q: %w", in.AccountName, err)
	}

	// Lost the race against a concurrent ingestion: fetch the winner.
	metrics.PersistenceConflicts.WithLabelValues("account").Inc()
	a, err = u.accounts.GetByName(ctx, in.AccountName)
	if err != nil {
		return entities.Account{}, fmt.Errorf("lookup account %q after conflict: %w", in.AccountName, err)
	}
	if a.ID == "" {
		return entities.Account{}, fmt.Errorf("account %q conflicted but was not found: %w", in.AccountName, domainerr.ErrPersistenceConflict)
	}
	return a, nil
}

func (u *QuoteIngestionUseCase) resolveOpportunity(ctx context.Context, account entities.Account, in IngestQuoteInput) (entities.Opportunity, error) {
	if in.OpportunityID != "" {
		o, err := u.opportunities.GetByID(ctx, in.OpportunityID)
		if err != nil {
			return entities.Opportunity{}, fmt.Errorf("load opportunity %s: %w", in.OpportunityID, err)
		}
		if o.ID == "" {
			return entities.Opportunity{}, domainerr.NewNotFoundError("opportunity", in.OpportunityID)
		}
		if o.AccountID != account.ID {
			return entities.Opportunity{}, domainerr.NewValidationError("opportunity_id", "opportunity does not belong to account")
		}
		return o, nil
	}

	name := in.OpportunityName
	if name == "" {
		name = fmt.Sprintf("%s - %s", account.Name, in.ProductLine)
	}

	o, err := u.opportunities.GetByAccountAndName(ctx, account.ID, name)
	if err != nil {
		return entities.Opportunity{}, fmt.Errorf("lookup opportunity %q: %w", name, err)
	}
	if o.ID != "" {
		return o, nil
	}

	now := u.now()
	created, err := u.opportunities.Create(ctx, entities.Opportunity{
		ID:           uuid.NewString(),
		AccountID:    account.ID,
		Name:         name,
		Stage:        entities.StageQuote,
		ProductLines: []string{in.ProductLine},
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err == nil {
		u.log.Info("opportunity created", zap.String("opportunity_id", created.ID), zap.String("account_id", account.ID))
		return created, nil
	}
	if !errors.Is(err, domainerr.ErrPersistenceConflict) {
		return entities.Opportunity{}, fmt.Errorf("create opportunity %q: %w", name, err)
	}

	metrics.PersistenceConflicts.WithLabelValues("opportunity").Inc()
	o, err = u.opportunities.GetByAccountAndName(ctx, account.ID, name)
	if err != nil {
		return entities.Opportunity{}, fmt.Errorf("lookup opportunity %q after conflict: %w", name, err)
	}
	if o.ID == "" {
		return entities.Opportunity{}, fmt.Errorf("opportunity %q conflicted but was not found: %w", name, domainerr.ErrPersistenceConflict)
	}
	return o, nil
}

func (u *QuoteIngestionUseCase) createQuote(ctx context.Context, opp entities.Opportunity, in IngestQuoteInput, log *zap.Logger) (IngestQuoteResult, error) {
	now := u.now()
	q := entities.Quote{
		ID:               uuid.NewString(),
		OpportunityID:    opp.ID,
		CarrierName:      in.CarrierName,
		ProductLine:      in.ProductLine,
		Status:           entities.QuoteStatus(in.Status),
		QuoteNumber:      in.QuoteNumber,
		CarrierQuoteID:   in.CarrierQuoteID,
		Premium:          in.Premium,
		EffectiveDate:    in.EffectiveDate,
		ExpirationDate:   in.ExpirationDate,
		CoverageDetails:  in.CoverageDetails,
		SubmissionMethod: entities.SubmissionMethod(in.SubmissionMethod),
		QuoteDocumentURL: in.QuoteDocumentURL,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if q.Status == "" {
		q.Status = entities.QuoteStatusDraft
	}
	if q.SubmissionMethod != entities.SubmissionMethodNone {
		submitted := now
		q.SubmittedAt = &submitted
	}
	q.ApplyOutcome(entities.QuoteOutcome(in.Outcome), in.DeclineReason, in.ErrorMessage, now)

	created, err := u.quotes.Create(ctx, q)
	if err != nil {
		if !errors.Is(err, domainerr.ErrPersistenceConflict) || in.QuoteNumber == "" {
			return IngestQuoteResult{}, fmt.Errorf("create quote: %w", err)
		}
		// A concurrent ingestion inserted the same quote_number first: retry as update.
		metrics.PersistenceConflicts.WithLabelValues("quote").Inc()
		log.Info("quote_number conflict, retrying as update")
		existing, gerr := u.quotes.GetByQuoteNumber(ctx, in.QuoteNumber)
		if gerr != nil {
			return IngestQuoteResult{}, fmt.Errorf("lookup quote_number %s after conflict: %w", in.QuoteNumber, gerr)
		}
		if existing.ID == "" {
			return IngestQuoteResult{}, fmt.Errorf("quote_number %s conflicted but was not found: %w", in.QuoteNumber, domainerr.ErrPersistenceConflict)
		}
		return u.updateQuote(ctx, existing, in, log)
	}

	if err := u.applyStageSideEffect(ctx, created, log); err != nil {
		return IngestQuoteResult{}, err
	}
	return IngestQuoteResult{Quote: created, Action: IngestionActionCreated}, nil
}

// updateQuote merges the provided fields into existing. Absent fields keep their stored value;
// outcome coherence is re-normalized on every update.
func (u *QuoteIngestionUseCase) updateQuote(ctx context.Context, existing entities.Quote, in IngestQuoteInput, log *zap.Logger) (IngestQuoteResult, error) {
	now := u.now()
	q := existing

	if in.Status != "" {
		q.Status = entities.QuoteStatus(in.Status)
	}
	if in.QuoteNumber != "" {
		q.QuoteNumber = in.QuoteNumber
	}
	if in.CarrierQuoteID != "" {
		q.CarrierQuoteID = in.CarrierQuoteID
	}
	if in.Premium.Valid {
		q.Premium = in.Premium
	}
	if in.EffectiveDate != "" {
		q.EffectiveDate = in.EffectiveDate
	}
	if in.ExpirationDate != "" {
		q.ExpirationDate = in.ExpirationDate
	}
	if in.CoverageDetails != nil {
		q.CoverageDetails = in.CoverageDetails
	}
	if in.QuoteDocumentURL != "" {
		q.QuoteDocumentURL = in.QuoteDocumentURL
	}
	if in.SubmissionMethod != "" {
		q.SubmissionMethod = entities.SubmissionMethod(in.SubmissionMethod)
		if q.SubmittedAt == nil {
			submitted := now
			q.SubmittedAt = &submitted
		}
	}

	outcome, decline, errMsg := q.Outcome, q.DeclineReason, q.ErrorMessage
	if in.Outcome != "" {
		outcome = entities.QuoteOutcome(in.Outcome)
		decline, errMsg = in.DeclineReason, in.ErrorMessage
	} else {
		if in.DeclineReason != "" {
			decline = in.DeclineReason
		}
		if in.ErrorMessage != "" {
			errMsg = in.ErrorMessage
		}
	}
	q.ApplyOutcome(outcome, decline, errMsg, now)
	q.UpdatedAt = now

	updated, err := u.quotes.Update(ctx, q)
	if err != nil {
		return IngestQuoteResult{}, fmt.Errorf("update quote %s: %w", existing.ID, err)
	}
	if updated.ID == "" {
		return IngestQuoteResult{}, domainerr.NewNotFoundError("quote", existing.ID)
	}

	if err := u.applyStageSideEffect(ctx, updated, log); err != nil {
		return IngestQuoteResult{}, err
	}
	return IngestQuoteResult{Quote: updated, Action: IngestionActionUpdated}, nil
}

func (u *QuoteIngestionUseCase) applyStageSideEffect(ctx context.Context, q entities.Quote, log *zap.Logger) error {
	if q.Outcome != entities.OutcomeQuoted {
		return nil
	}

	opp, err := u.opportunities.GetByID(ctx, q.OpportunityID)
	if err != nil {
		return fmt.Errorf("load opportunity %s: %w", q.OpportunityID, err)
	}
	if opp.ID == "" {
		return domainerr.NewNotFoundError("opportunity", q.OpportunityID)
	}
	if opp.Stage == entities.StageUWReview {
		return nil
	}
	if u.policy == StagePolicyForwardOnly && !opp.Stage.CanTransitionTo(entities.StageUWReview) {
		log.Info("stage advance skipped", zap.String("opportunity_id", opp.ID), zap.String("stage", string(opp.Stage)))
		return nil
	}

	if _, err := u.opportunities.UpdateStage(ctx, opp.ID, entities.StageUWReview); err != nil {
		return fmt.Errorf("advance opportunity %s to %s: %w", opp.ID, entities.StageUWReview, err)
	}
	log.Info("opportunity stage advanced",
		zap.String("opportunity_id", opp.ID),
		zap.String("from", string(opp.Stage)),
		zap.String("to", string(entities.StageUWReview)),
	)
	return nil
}

func (u *QuoteIngestionUseCase) publish(ctx context.Context, res IngestQuoteResult, log *zap.Logger) {
	if u.events == nil {
		return
	}
	evt := interfaces.Event{
		Type:       interfaces.EventQuoteIngested,
		OccurredAt: u.now(),
		Payload: map[string]any{
			"quote_id":       res.Quote.ID,
			"opportunity_id": res.Quote.OpportunityID,
			"carrier_name":   res.Quote.CarrierName,
			"quote_number":   res.Quote.QuoteNumber,
			"status":         string(res.Quote.Status),
			"outcome":        string(res.Quote.Outcome),
			"action":         string(res.Action),
		},
	}
	if err := u.events.Publish(ctx, evt); err != nil {
		log.Warn("event publish failed", zap.String("event_type", evt.Type), zap.Error(err))
	}
}

func normalizeIngestInput(in IngestQuoteInput) IngestQuoteInput {
	in.QuoteID = strings.TrimSpace(in.QuoteID)
	in.AccountID = strings.TrimSpace(in.AccountID)
	in.AccountName = strings.TrimSpace(in.AccountName)
	in.OpportunityID = strings.TrimSpace(in.OpportunityID)
	in.OpportunityName = strings.TrimSpace(in.OpportunityName)
	in.CarrierName = strings.TrimSpace(in.CarrierName)
	in.ProductLine = strings.TrimSpace(in.ProductLine)
	in.Status = strings.ToLower(strings.TrimSpace(in.Status))
	in.QuoteNumber = strings.TrimSpace(in.QuoteNumber)
	in.CarrierQuoteID = strings.TrimSpace(in.CarrierQuoteID)
	in.EffectiveDate = strings.TrimSpace(in.EffectiveDate)
	in.ExpirationDate = strings.TrimSpace(in.ExpirationDate)
	in.SubmissionMethod = strings.ToLower(strings.TrimSpace(in.SubmissionMethod))
	in.Outcome = strings.ToLower(strings.TrimSpace(in.Outcome))
	in.DeclineReason = strings.TrimSpace(in.DeclineReason)
	in.ErrorMessage = strings.TrimSpace(in.ErrorMessage)
	in.QuoteDocumentURL = strings.TrimSpace(in.QuoteDocumentURL)
	return in
}

func validateIngestInput(in IngestQuoteInput) error {
	if in.CarrierName == "" {
		return domainerr.NewValidationError("carrier_name", "carrier_name is required")
	}
	if in.ProductLine == "" {
		return domainerr.NewValidationError("product_line", "product_line is required")
	}
	if !entities.QuoteStatus(in.Status).Valid() && in.Status != "" {
		return domainerr.NewValidationError("status", fmt.Sprintf("invalid status: %s", in.Status))
	}
	if !entities.QuoteOutcome(in.Outcome).Valid() {
		return domainerr.NewValidationError("outcome", fmt.Sprintf("invalid outcome: %s", in.Outcome))
	}
	if !entities.SubmissionMethod(in.SubmissionMethod).Valid() {
		return domainerr.NewValidationError("submission_method", fmt.Sprintf("invalid submission_method: %s", in.SubmissionMethod))
	}
	if err := validate.Var(in.EffectiveDate, "omitempty,datetime=2006-01-02"); err != nil {
		return domainerr.NewValidationError("effective_date", "effective_date must be YYYY-MM-DD")
	}
	if err := validate.Var(in.ExpirationDate, "omitempty,datetime=2006-01-02"); err != nil {
		return domainerr.NewValidationError("expiration_date", "expiration_date must be YYYY-MM-DD")
	}
	if in.Premium.Valid && in.Premium.Decimal.IsNegative() {
		return domainerr.NewValidationError("premium", "premium must not be negative")
	}
	return nil
}
