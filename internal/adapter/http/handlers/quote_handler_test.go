package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"brokerage_crm/internal/adapter/http/handlers/mocks"
	"brokerage_crm/internal/domain/domainerr"
	"brokerage_crm/internal/domain/entities"
	"brokerage_crm/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newQuoteHandler(t *testing.T) (*QuoteHandler, *mocks.MockIQuoteIngestionUseCase, *mocks.MockIQuoteSubmissionUseCase, *mocks.MockIAutomationSessionUseCase) {
	ctrl := gomock.NewController(t)
	ingestion := mocks.NewMockIQuoteIngestionUseCase(ctrl)
	submission := mocks.NewMockIQuoteSubmissionUseCase(ctrl)
	sessions := mocks.NewMockIAutomationSessionUseCase(ctrl)
	return NewQuoteHandler(ingestion, submission, sessions), ingestion, submission, sessions
}

func TestQuoteHandler_IngestQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	post := func(h *QuoteHandler, body string) *httptest.ResponseRecorder {
		r := gin.New()
		r.POST("/v1/quotes/ingest", h.IngestQuote)
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/ingest", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("invalid json", func(t *testing.T) {
		h, _, _, _ := newQuoteHandler(t)
		w := post(h, "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error returns explicit message", func(t *testing.T) {
		h, ingestion, _, _ := newQuoteHandler(t)
		ingestion.EXPECT().Ingest(gomock.Any(), gomock.Any()).
			Return(usecase.IngestQuoteResult{}, domainerr.NewValidationError("product_line", "product_line is required"))

		w := post(h, `{"carrier_name":"BTIS","account_name":"Acme Roofing"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["error"] != "product_line is required" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("unknown account id", func(t *testing.T) {
		h, ingestion, _, _ := newQuoteHandler(t)
		ingestion.EXPECT().Ingest(gomock.Any(), gomock.Any()).
			Return(usecase.IngestQuoteResult{}, domainerr.NewNotFoundError("account", "acc-404"))

		w := post(h, `{"carrier_name":"BTIS","product_line":"GL","account_id":"acc-404"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("unexpected failure", func(t *testing.T) {
		h, ingestion, _, _ := newQuoteHandler(t)
		ingestion.EXPECT().Ingest(gomock.Any(), gomock.Any()).
			Return(usecase.IngestQuoteResult{}, errors.New("dynamodb unavailable"))

		w := post(h, `{"carrier_name":"BTIS","product_line":"GL","account_name":"Acme Roofing"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["error"] != "Internal server error" || body["details"] != "dynamodb unavailable" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("created", func(t *testing.T) {
		h, ingestion, _, _ := newQuoteHandler(t)
		now := time.Now().UTC()
		ingestion.EXPECT().Ingest(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.IngestQuoteInput) (usecase.IngestQuoteResult, error) {
				if in.CarrierName != "BTIS" || in.QuoteNumber != "BTIS-XYZ" || !in.Premium.Decimal.Equal(decimal.NewFromInt(4200)) {
					t.Fatalf("unexpected input: %+v", in)
				}
				return usecase.IngestQuoteResult{
					Quote: entities.Quote{
						ID:          "q-1",
						CarrierName: "BTIS",
						ProductLine: "GL",
						Status:      entities.QuoteStatusQuoted,
						Outcome:     entities.OutcomeQuoted,
						QuoteNumber: "BTIS-XYZ",
						Premium:     in.Premium,
						QuotedAt:    &now,
					},
					Action: usecase.IngestionActionCreated,
				}, nil
			})

		w := post(h, `{"carrier_name":"BTIS","product_line":"GL","account_name":"Acme Roofing","quote_number":"BTIS-XYZ","outcome":"quoted","premium":4200}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Success bool           `json:"success"`
			Action  string         `json:"action"`
			Quote   map[string]any `json:"quote"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if !body.Success || body.Action != "created" || body.Quote["id"] != "q-1" || body.Quote["premium"] != "4200" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_IngestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, _, _, _ := newQuoteHandler(t)

	r := gin.New()
	r.GET("/v1/quotes/ingest", h.IngestHealth)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/quotes/ingest", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["status"] != "ok" || body["endpoint"] != "/v1/quotes/ingest" {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestQuoteHandler_QuoteRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	serve := func(h *QuoteHandler, method, path string) *httptest.ResponseRecorder {
		r := gin.New()
		r.GET("/v1/quotes/:id", h.GetQuote)
		r.POST("/v1/quotes/:id/refresh", h.RefreshQuote)
		r.POST("/v1/quotes/:id/document", h.AttachDocument)
		r.GET("/v1/quotes/:id/automation-runs", h.ListAutomationRuns)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
		return w
	}

	t.Run("get not found", func(t *testing.T) {
		h, _, submission, _ := newQuoteHandler(t)
		submission.EXPECT().GetQuote(gomock.Any(), "q-404").Return(entities.Quote{}, domainerr.NewNotFoundError("quote", "q-404"))
		if w := serve(h, http.MethodGet, "/v1/quotes/q-404"); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("get success", func(t *testing.T) {
		h, _, submission, _ := newQuoteHandler(t)
		submission.EXPECT().GetQuote(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusDraft}, nil)
		w := serve(h, http.MethodGet, "/v1/quotes/q-1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("refresh upstream failure", func(t *testing.T) {
		h, _, submission, _ := newQuoteHandler(t)
		submission.EXPECT().RefreshQuote(gomock.Any(), "q-1").
			Return(entities.Quote{}, &domainerr.UpstreamError{Service: "btis", Operation: "status", StatusCode: 503, Transient: true})
		if w := serve(h, http.MethodPost, "/v1/quotes/q-1/refresh"); w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("attach document", func(t *testing.T) {
		h, _, submission, _ := newQuoteHandler(t)
		submission.EXPECT().AttachDocument(gomock.Any(), "q-1").
			Return(entities.Quote{ID: "q-1", QuoteDocumentURL: "https://documents.test/q-1.pdf"}, nil)
		w := serve(h, http.MethodPost, "/v1/quotes/q-1/document")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["quote_document_url"] != "https://documents.test/q-1.pdf" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("automation runs", func(t *testing.T) {
		h, _, _, sessions := newQuoteHandler(t)
		sessions.EXPECT().ListRunsForQuote(gomock.Any(), "q-1").Return([]entities.AutomationRun{
			{ID: "run-2", QuoteID: "q-1", RetryCount: 1, RetryOf: "run-1"},
			{ID: "run-1", QuoteID: "q-1"},
		}, nil)
		w := serve(h, http.MethodGet, "/v1/quotes/q-1/automation-runs")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 || body[0]["id"] != "run-2" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}
