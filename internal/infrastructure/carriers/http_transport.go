package carriers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"brokerage_crm/internal/infrastructure/metrics"
	"brokerage_crm/internal/infrastructure/upstream"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// HTTPTransportConfig configures one carrier's JSON API client.
type HTTPTransportConfig struct {
	Carrier   string
	BaseURL   string
	APIKey    string
	PartnerID string
	// RateLimit is requests per second; zero disables limiting.
	RateLimit float64
	Burst     int
	Timeout   time.Duration
	Retry     upstream.RetryPolicy
}

// HTTPTransport talks to a carrier rating API:
//
//	POST {base}/quotes               submit
//	GET  {base}/quotes/{id}          status
//	GET  {base}/quotes/{id}/document document url
type HTTPTransport struct {
	cfg     HTTPTransportConfig
	client  *http.Client
	limiter *rate.Limiter
	log     *zap.Logger
}

var _ Transport = (*HTTPTransport)(nil)

func NewHTTPTransport(cfg HTTPTransportConfig, client *http.Client, log *zap.Logger) *HTTPTransport {
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 20 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RateLimit > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	if log == nil {
		log = zap.NewNop()
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &HTTPTransport{cfg: cfg, client: client, limiter: limiter, log: log}
}

func (t *HTTPTransport) Submit(ctx context.Context, req SubmitPayload) (QuoteRecord, error) {
	if req.PartnerID == "" {
		req.PartnerID = t.cfg.PartnerID
	}
	body, err := json.Marshal(req)
	if err != nil {
		return QuoteRecord{}, fmt.Errorf("failed to marshal %s submission: %w", t.cfg.Carrier, err)
	}

	var rec QuoteRecord
	err = t.call(ctx, "submit", http.MethodPost, "/quotes", "", body, &rec)
	return rec, err
}

func (t *HTTPTransport) Status(ctx context.Context, quoteID string) (QuoteRecord, error) {
	var rec QuoteRecord
	err := t.call(ctx, "status", http.MethodGet, "/quotes/"+url.PathEscape(quoteID), quoteID, nil, &rec)
	if err == nil && rec.QuoteID == "" {
		rec.QuoteID = quoteID
	}
	return rec, err
}

func (t *HTTPTransport) Document(ctx context.Context, quoteID string) (string, error) {
	var doc struct {
		URL string `json:"url"`
	}
	err := t.call(ctx, "document", http.MethodGet, "/quotes/"+url.PathEscape(quoteID)+"/document", "", nil, &doc)
	if err != nil {
		return "", err
	}
	return doc.URL, nil
}

// call performs one logical request with rate limiting, retries on transient failures and
// metrics. out is left untouched on 204 and on a 404 without an id (document absent).
func (t *HTTPTransport) call(ctx context.Context, op, method, path, id string, body []byte, out any) error {
	start := time.Now()
	log := t.log.With(zap.String("operation", op), zap.String("path", path))

	onRetry := func(attempt int, err error) {
		metrics.CarrierRetries.WithLabelValues(t.cfg.Carrier, op).Inc()
		log.Warn("retrying carrier request", zap.Int("attempt", attempt), zap.Error(err))
	}

	err := upstream.Do(ctx, t.cfg.Retry, onRetry, func(ctx context.Context) error {
		if err := t.limiter.Wait(ctx); err != nil {
			return upstream.NetworkError(t.cfg.Carrier, op, err)
		}
		return t.do(ctx, op, method, path, id, body, out)
	})

	result := "ok"
	if err != nil {
		result = "error"
		log.Error("carrier request failed", zap.Error(err))
	}
	metrics.CarrierRequests.WithLabelValues(t.cfg.Carrier, op, result).Inc()
	metrics.CarrierLatency.WithLabelValues(t.cfg.Carrier, op).Observe(time.Since(start).Seconds())
	return err
}

func (t *HTTPTransport) do(ctx context.Context, op, method, path, id string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, t.cfg.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", t.cfg.Carrier, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if t.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+t.cfg.APIKey)
	}
	if t.cfg.PartnerID != "" {
		req.Header.Set("X-Partner-ID", t.cfg.PartnerID)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return upstream.NetworkError(t.cfg.Carrier, op, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return upstream.NetworkError(t.cfg.Carrier, op, err)
	}

	if resp.StatusCode == http.StatusNoContent || (resp.StatusCode == http.StatusNotFound && id == "" && op == "document") {
		return nil
	}
	if err := upstream.ClassifyStatus(t.cfg.Carrier, op, id, resp.StatusCode, string(data)); err != nil {
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", t.cfg.Carrier, op, err)
	}
	return nil
}
