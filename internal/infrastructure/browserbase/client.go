// Package browserbase provides the remote browser session provider used for carriers without
// an API, and the chromedp portal driver that fills carrier quote forms inside those sessions.
package browserbase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"brokerage_crm/internal/domain/domainerr"
	"brokerage_crm/internal/infrastructure/metrics"
	"brokerage_crm/internal/infrastructure/upstream"
	"brokerage_crm/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const service = "browserbase"

type ClientConfig struct {
	APIURL    string
	APIKey    string
	ProjectID string
	Retry     upstream.RetryPolicy
}

// Client creates sessions through the Browserbase REST API.
type Client struct {
	cfg  ClientConfig
	http *http.Client
	log  *zap.Logger
}

var _ interfaces.IAutomationProvider = (*Client)(nil)

func NewClient(cfg ClientConfig, httpClient *http.Client, log *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	if log == nil {
		log = zap.NewNop()
	}
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")
	return &Client{cfg: cfg, http: httpClient, log: log}
}

type createSessionRequest struct {
	ProjectID    string            `json:"projectId"`
	UserMetadata map[string]string `json:"userMetadata,omitempty"`
}

type createSessionResponse struct {
	ID         string `json:"id"`
	ConnectURL string `json:"connectUrl"`
	Status     string `json:"status"`
}

// CreateSession opens a remote browser. The portal itself is driven afterwards over ConnectURL.
func (c *Client) CreateSession(ctx context.Context, spec interfaces.AutomationSpec) (interfaces.RemoteSession, error) {
	body, err := json.Marshal(createSessionRequest{
		ProjectID: c.cfg.ProjectID,
		UserMetadata: map[string]string{
			"run_id":   spec.RunID,
			"carrier":  spec.CarrierName,
			"quote_id": spec.QuoteID,
		},
	})
	if err != nil {
		return interfaces.RemoteSession{}, fmt.Errorf("failed to marshal session request: %w", err)
	}

	start := time.Now()
	var out createSessionResponse
	err = upstream.Do(ctx, c.cfg.Retry, func(attempt int, err error) {
		metrics.CarrierRetries.WithLabelValues(service, "create_session").Inc()
		c.log.Warn("retrying session creation", zap.Int("attempt", attempt), zap.Error(err))
	}, func(ctx context.Context) error {
		return c.post(ctx, "/sessions", body, &out)
	})

	result := "ok"
	if err != nil {
		result = "error"
	}
	metrics.CarrierRequests.WithLabelValues(service, "create_session", result).Inc()
	metrics.CarrierLatency.WithLabelValues(service, "create_session").Observe(time.Since(start).Seconds())
	if err != nil {
		return interfaces.RemoteSession{}, err
	}
	if out.ID == "" {
		return interfaces.RemoteSession{}, &domainerr.UpstreamError{Service: service, Operation: "create_session", Cause: errors.New("response without session id")}
	}

	c.log.Info("browser session created", zap.String("session_id", out.ID), zap.String("run_id", spec.RunID))
	return interfaces.RemoteSession{SessionID: out.ID, ConnectURL: out.ConnectURL}, nil
}

func (c *Client) post(ctx context.Context, path string, body []byte, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.APIURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-BB-API-Key", c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return upstream.NetworkError(service, "create_session", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return upstream.NetworkError(service, "create_session", err)
	}
	if err := upstream.ClassifyStatus(service, "create_session", "", resp.StatusCode, string(data)); err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode session response: %w", err)
	}
	return nil
}
