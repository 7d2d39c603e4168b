// Package config loads service configuration from the environment and an optional YAML
// carriers file, and validates the result.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	StorageDynamoDB = "dynamodb"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	Port          string `validate:"required,numeric"`
	AppEnv        string
	LogLevel      string
	StorageDriver string `validate:"oneof=dynamodb postgres memory"`
	DatabaseURL   string `validate:"required_if=StorageDriver postgres"`

	DynamoDB DynamoDBConfig
	RedisURL string `validate:"omitempty,url"`

	QuotedStagePolicy     string `validate:"oneof=always forward_only"`
	SubmissionParallelism int    `validate:"min=1,max=32"`

	Automation AutomationConfig
	Carrier    CarrierGatewayConfig
	Carriers   []CarrierConfig `validate:"dive"`
}

// DynamoDBConfig mirrors the local-friendly env vars read by database.NewDynamoDBConfig.
type DynamoDBConfig struct {
	Region              string `validate:"required"`
	Endpoint            string `validate:"omitempty,url"`
	AccessKeyID         string
	SecretAccessKey     string
	AccountsTable       string `validate:"required"`
	OpportunitiesTable  string `validate:"required"`
	QuotesTable         string `validate:"required"`
	AutomationRunsTable string `validate:"required"`
	UniqueKeysTable     string `validate:"required"`
	OpportunityIndex    string `validate:"required"`
	RunsByQuoteIndex    string `validate:"required"`
}

type AutomationConfig struct {
	WebhookSecret        string
	BrowserbaseAPIKey    string
	BrowserbaseProjectID string
	BrowserbaseAPIURL    string `validate:"required,url"`
	Mock                 bool
	DriverEnabled        bool
	DriverTimeout        time.Duration `validate:"min=0"`
}

// CarrierGatewayConfig holds settings shared by every direct-API carrier transport.
type CarrierGatewayConfig struct {
	Mock        bool
	MaxAttempts int           `validate:"min=1,max=10"`
	BaseDelay   time.Duration `validate:"min=0"`
	MaxDelay    time.Duration `validate:"min=0"`
	Timeout     time.Duration `validate:"min=0"`
}

// CarrierConfig is one integrated carrier. ID must match a compiled-in adapter constructor.
type CarrierConfig struct {
	ID             string        `yaml:"id" validate:"required,lowercase"`
	APIURL         string        `yaml:"api_url" validate:"omitempty,url"`
	APIKey         string        `yaml:"api_key"`
	PartnerID      string        `yaml:"partner_id"`
	PortalURL      string        `yaml:"portal_url" validate:"omitempty,url"`
	PortalUsername string        `yaml:"portal_username"`
	PortalPassword string        `yaml:"portal_password"`
	RateLimit      float64       `yaml:"rate_limit" validate:"min=0"`
	Burst          int           `yaml:"burst" validate:"min=0"`
	Timeout        time.Duration `yaml:"timeout"`
}

type carriersFile struct {
	Carriers []CarrierConfig `yaml:"carriers"`
}

// DefaultCarriers is the built-in carrier set used when no carriers file is given.
func DefaultCarriers() []CarrierConfig {
	return []CarrierConfig{
		{ID: "btis", APIURL: "https://api.btisinc.com/v1", RateLimit: 5, Burst: 5},
		{ID: "coterie", APIURL: "https://api.coterieinsurance.com/v1", RateLimit: 5, Burst: 5},
		{ID: "markel", PortalURL: "https://bindonline.markelcorp.com/quote"},
	}
}

// Load reads the process configuration. The carriers file named by CARRIERS_CONFIG replaces the
// built-in carrier list; per-carrier env vars (<ID>_API_KEY, ...) are applied on top.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getenvDefault("PORT", "8080"),
		AppEnv:        getenvDefault("APP_ENV", "production"),
		LogLevel:      getenvDefault("LOG_LEVEL", "info"),
		StorageDriver: strings.ToLower(getenvDefault("STORAGE_DRIVER", StorageDynamoDB)),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		DynamoDB: DynamoDBConfig{
			Region:              getenvDefault("AWS_REGION", "us-east-1"),
			Endpoint:            os.Getenv("DYNAMODB_ENDPOINT"),
			AccessKeyID:         getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey:     getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			AccountsTable:       getenvDefault("ACCOUNTS_TABLE", "accounts"),
			OpportunitiesTable:  getenvDefault("OPPORTUNITIES_TABLE", "opportunities"),
			QuotesTable:         getenvDefault("QUOTES_TABLE", "quotes"),
			AutomationRunsTable: getenvDefault("AUTOMATION_RUNS_TABLE", "automation_runs"),
			UniqueKeysTable:     getenvDefault("UNIQUE_KEYS_TABLE", "unique_keys"),
			OpportunityIndex:    getenvDefault("QUOTES_OPPORTUNITY_INDEX", "opportunity_id-index"),
			RunsByQuoteIndex:    getenvDefault("RUNS_QUOTE_INDEX", "quote_id-started_at-index"),
		},
		RedisURL:              os.Getenv("REDIS_URL"),
		QuotedStagePolicy:     strings.ToLower(getenvDefault("QUOTED_STAGE_POLICY", "always")),
		SubmissionParallelism: getenvInt("SUBMISSION_PARALLELISM", 4),
		Automation: AutomationConfig{
			WebhookSecret:        os.Getenv("AUTOMATION_WEBHOOK_SECRET"),
			BrowserbaseAPIKey:    os.Getenv("BROWSERBASE_API_KEY"),
			BrowserbaseProjectID: os.Getenv("BROWSERBASE_PROJECT_ID"),
			BrowserbaseAPIURL:    getenvDefault("BROWSERBASE_API_URL", "https://api.browserbase.com/v1"),
			Mock:                 isMockEnabled("BROWSERBASE_MOCK"),
			DriverEnabled:        getenvBool("AUTOMATION_DRIVER_ENABLED", true),
			DriverTimeout:        getenvDuration("AUTOMATION_DRIVER_TIMEOUT", 5*time.Minute),
		},
		Carrier: CarrierGatewayConfig{
			Mock:        isMockEnabled("CARRIER_GATEWAY_MOCK"),
			MaxAttempts: getenvInt("CARRIER_MAX_ATTEMPTS", 3),
			BaseDelay:   getenvDuration("CARRIER_BASE_DELAY", 200*time.Millisecond),
			MaxDelay:    getenvDuration("CARRIER_MAX_DELAY", 5*time.Second),
			Timeout:     getenvDuration("CARRIER_TIMEOUT", 20*time.Second),
		},
		Carriers: DefaultCarriers(),
	}

	if path := strings.TrimSpace(os.Getenv("CARRIERS_CONFIG")); path != "" {
		carriers, err := LoadCarriersFile(path)
		if err != nil {
			return nil, err
		}
		cfg.Carriers = carriers
	}
	applyCarrierEnv(cfg.Carriers)

	// Without credentials the Browserbase API is unusable; fall back to the mock provider.
	if cfg.Automation.BrowserbaseAPIKey == "" {
		cfg.Automation.Mock = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadCarriersFile parses a YAML document of the form `carriers: [{id: btis, api_url: ...}]`.
func LoadCarriersFile(path string) ([]CarrierConfig, error) {
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read carriers file %s: %w", path, err)
	}

	var f carriersFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse carriers YAML: %w", err)
	}
	for i := range f.Carriers {
		f.Carriers[i].ID = strings.ToLower(strings.TrimSpace(f.Carriers[i].ID))
	}
	return f.Carriers, nil
}

// Validate checks field constraints and that carrier ids are unique.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	seen := map[string]bool{}
	for _, cc := range c.Carriers {
		if seen[cc.ID] {
			return fmt.Errorf("config error: duplicate carrier id %q", cc.ID)
		}
		seen[cc.ID] = true
	}
	return nil
}

// Carrier returns the configuration of one carrier by id.
func (c *Config) Carrier(id string) (CarrierConfig, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, cc := range c.Carriers {
		if cc.ID == id {
			return cc, true
		}
	}
	return CarrierConfig{}, false
}

func applyCarrierEnv(carriers []CarrierConfig) {
	for i := range carriers {
		prefix := strings.ToUpper(strings.ReplaceAll(carriers[i].ID, "-", "_")) + "_"
		setIfEnv(&carriers[i].APIURL, prefix+"API_URL")
		setIfEnv(&carriers[i].APIKey, prefix+"API_KEY")
		setIfEnv(&carriers[i].PartnerID, prefix+"PARTNER_ID")
		setIfEnv(&carriers[i].PortalURL, prefix+"PORTAL_URL")
		setIfEnv(&carriers[i].PortalUsername, prefix+"PORTAL_USERNAME")
		setIfEnv(&carriers[i].PortalPassword, prefix+"PORTAL_PASSWORD")
	}
}

func setIfEnv(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func isMockEnabled(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
