// Package app wires repositories, carriers, automation and use cases from configuration.
// The HTTP server and the quotectl CLI share it.
package app

import (
	"context"
	"fmt"
	"net/http"

	"brokerage_crm/internal/adapter/persistence/memory"
	"brokerage_crm/internal/adapter/persistence/postgres"
	"brokerage_crm/internal/adapter/persistence/repository"
	"brokerage_crm/internal/config"
	"brokerage_crm/internal/infrastructure/browserbase"
	"brokerage_crm/internal/infrastructure/carriers"
	"brokerage_crm/internal/infrastructure/database"
	"brokerage_crm/internal/infrastructure/events"
	"brokerage_crm/internal/infrastructure/logger"
	"brokerage_crm/internal/infrastructure/upstream"
	"brokerage_crm/internal/usecase"
	"brokerage_crm/internal/usecase/interfaces"

	redis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Repositories groups the storage ports of one driver.
type Repositories struct {
	Accounts       interfaces.IAccountRepository
	Opportunities  interfaces.IOpportunityRepository
	Quotes         interfaces.IQuoteRepository
	AutomationRuns interfaces.IAutomationRunRepository
}

type App struct {
	Config     *config.Config
	Log        *zap.Logger
	Repos      Repositories
	Registry   *carriers.Registry
	Events     interfaces.IEventPublisher
	Redis      *redis.Client
	Ingestion  *usecase.QuoteIngestionUseCase
	Submission *usecase.QuoteSubmissionUseCase
	Sessions   *usecase.AutomationSessionUseCase

	closers []func()
}

// New connects storage and wires every use case. Call Close when done.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (*App, error) {
	log = logger.OrNop(log)
	a := &App{Config: cfg, Log: log}

	repos, err := a.openStorage(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Repos = repos

	if err := a.openEvents(ctx); err != nil {
		a.Close()
		return nil, err
	}

	provider, driver := a.automation()
	credentials := carriers.NewCredentialStore(cfg.Carriers)

	a.Sessions = usecase.NewAutomationSessionUseCase(
		repos.AutomationRuns,
		repos.Quotes,
		provider,
		driver,
		credentials,
		a.Events,
		cfg.Automation.DriverTimeout,
		log,
	)

	a.Registry, err = carriers.Build(cfg.Carriers, carriers.Deps{
		Gateway:     cfg.Carrier,
		Sessions:    a.Sessions,
		Credentials: credentials,
		HTTPClient:  &http.Client{Timeout: cfg.Carrier.Timeout},
		Log:         log.Named("carriers"),
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to build carrier registry: %w", err)
	}
	a.Sessions.TrackCarriers(a.Registry.ListSupported())

	a.Ingestion = usecase.NewQuoteIngestionUseCase(
		repos.Accounts,
		repos.Opportunities,
		repos.Quotes,
		a.Events,
		usecase.StagePolicy(cfg.QuotedStagePolicy),
		log,
	)
	a.Submission = usecase.NewQuoteSubmissionUseCase(a.Registry, a.Ingestion, repos.Quotes, cfg.SubmissionParallelism, log)
	a.Sessions.OnComplete(a.Submission.OnAutomationCompleted)

	log.Info("application wired",
		zap.String("storage", cfg.StorageDriver),
		zap.Strings("carriers", a.Registry.ListSupported()),
		zap.Bool("automation_mock", cfg.Automation.Mock),
		zap.Bool("carrier_gateway_mock", cfg.Carrier.Mock),
	)
	return a, nil
}

func (a *App) openStorage(ctx context.Context) (Repositories, error) {
	switch a.Config.StorageDriver {
	case config.StorageMemory:
		a.Log.Warn("using in-memory storage; data is lost on exit")
		store := memory.NewStore()
		return Repositories{
			Accounts:       store.Accounts(),
			Opportunities:  store.Opportunities(),
			Quotes:         store.Quotes(),
			AutomationRuns: store.AutomationRuns(),
		}, nil

	case config.StoragePostgres:
		pool, err := database.ConnectPostgres(ctx, a.Config.DatabaseURL)
		if err != nil {
			return Repositories{}, err
		}
		a.closers = append(a.closers, pool.Close)
		if err := postgres.Migrate(ctx, pool); err != nil {
			return Repositories{}, err
		}
		return Repositories{
			Accounts:       postgres.NewAccountRepository(pool),
			Opportunities:  postgres.NewOpportunityRepository(pool),
			Quotes:         postgres.NewQuoteRepository(pool),
			AutomationRuns: postgres.NewAutomationRunRepository(pool),
		}, nil

	default:
		ddb, err := database.ConnectDynamoDB(ctx, a.Config.DynamoDB)
		if err != nil {
			return Repositories{}, err
		}
		tables := repository.TablesFromConfig(a.Config.DynamoDB)
		return Repositories{
			Accounts:       repository.NewAccountDynamoRepository(ddb, tables),
			Opportunities:  repository.NewOpportunityDynamoRepository(ddb, tables),
			Quotes:         repository.NewQuoteDynamoRepository(ddb, tables),
			AutomationRuns: repository.NewAutomationRunDynamoRepository(ddb, tables),
		}, nil
	}
}

func (a *App) openEvents(ctx context.Context) error {
	if a.Config.RedisURL == "" {
		a.Events = events.NewLogPublisher(a.Log)
		return nil
	}
	rdb, err := database.ConnectRedis(ctx, a.Config.RedisURL)
	if err != nil {
		return err
	}
	a.Redis = rdb
	a.closers = append(a.closers, func() { _ = rdb.Close() })
	a.Events = events.NewRedisPublisher(rdb, a.Log)
	return nil
}

// automation picks the session provider and the portal driver. The driver is nil when
// disabled, leaving completion to the provider webhook.
func (a *App) automation() (interfaces.IAutomationProvider, interfaces.IPortalDriver) {
	cfg := a.Config.Automation
	var driver interfaces.IPortalDriver

	if cfg.Mock {
		a.Log.Warn("browserbase mock enabled; portal sessions are simulated")
		if cfg.DriverEnabled {
			driver = browserbase.MockDriver{}
		}
		return &browserbase.MockProvider{Drive: cfg.DriverEnabled}, driver
	}

	client := browserbase.NewClient(browserbase.ClientConfig{
		APIURL:    cfg.BrowserbaseAPIURL,
		APIKey:    cfg.BrowserbaseAPIKey,
		ProjectID: cfg.BrowserbaseProjectID,
		Retry: upstream.RetryPolicy{
			MaxAttempts: a.Config.Carrier.MaxAttempts,
			BaseDelay:   a.Config.Carrier.BaseDelay,
			MaxDelay:    a.Config.Carrier.MaxDelay,
			Jitter:      true,
		},
	}, nil, a.Log.Named("browserbase"))
	if cfg.DriverEnabled {
		driver = browserbase.NewChromeDriver(browserbase.DefaultSelectors(), a.Log.Named("portal"))
	}
	return client, driver
}

// Close waits for detached portal drivers, then releases connections.
func (a *App) Close() {
	if a.Sessions != nil {
		a.Sessions.Wait()
	}
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
	a.Log.Info("application closed")
}
