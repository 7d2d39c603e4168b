package handlers

import (
	"net/http"

	request "brokerage_crm/internal/adapter/http/dto/request"
	response "brokerage_crm/internal/adapter/http/dto/response"
	"brokerage_crm/internal/usecase"

	"github.com/gin-gonic/gin"
)

// QuoteHandler exposes the ingestion gateway and the per-quote operations.
type QuoteHandler struct {
	ingestion  usecase.IQuoteIngestionUseCase
	submission usecase.IQuoteSubmissionUseCase
	sessions   usecase.IAutomationSessionUseCase
}

func NewQuoteHandler(ingestion usecase.IQuoteIngestionUseCase, submission usecase.IQuoteSubmissionUseCase, sessions usecase.IAutomationSessionUseCase) *QuoteHandler {
	return &QuoteHandler{ingestion: ingestion, submission: submission, sessions: sessions}
}

// IngestQuote godoc
// @Summary      Ingest a quote outcome
// @Description  Find-or-create the account and opportunity, then upsert the quote by quote_number.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        payload  body      request.IngestQuoteRequest  true  "Quote outcome"
// @Success      200      {object}  response.IngestResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /quotes/ingest [post]
func (h *QuoteHandler) IngestQuote(c *gin.Context) {
	var payload request.IngestQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	res, err := h.ingestion.Ingest(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromIngestResult(res))
}

// IngestHealth godoc
// @Summary  Ingestion endpoint description
// @Tags     quotes
// @Produce  json
// @Success  200  {object}  response.IngestHealthResponse
// @Router   /quotes/ingest [get]
func (h *QuoteHandler) IngestHealth(c *gin.Context) {
	c.JSON(http.StatusOK, response.IngestHealthResponse{
		Status:   "ok",
		Endpoint: "/v1/quotes/ingest",
		Methods:  []string{http.MethodGet, http.MethodPost},
	})
}

// GetQuote godoc
// @Summary  Get a quote
// @Tags     quotes
// @Produce  json
// @Param    id   path      string  true  "Quote ID"
// @Success  200  {object}  response.QuoteResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, err := h.submission.GetQuote(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// RefreshQuote godoc
// @Summary  Poll the carrier for the quote status
// @Tags     quotes
// @Produce  json
// @Param    id   path      string  true  "Quote ID"
// @Success  200  {object}  response.QuoteResponse
// @Failure  404  {object}  pkg.HTTPError
// @Failure  500  {object}  pkg.HTTPError
// @Router   /quotes/{id}/refresh [post]
func (h *QuoteHandler) RefreshQuote(c *gin.Context) {
	q, err := h.submission.RefreshQuote(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// AttachDocument godoc
// @Summary  Fetch and store the carrier quote document URL
// @Tags     quotes
// @Produce  json
// @Param    id   path      string  true  "Quote ID"
// @Success  200  {object}  response.QuoteResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /quotes/{id}/document [post]
func (h *QuoteHandler) AttachDocument(c *gin.Context) {
	q, err := h.submission.AttachDocument(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// ListAutomationRuns godoc
// @Summary  Automation attempt history of a quote, newest first
// @Tags     quotes
// @Produce  json
// @Param    id   path     string  true  "Quote ID"
// @Success  200  {array}  response.AutomationRunResponse
// @Router   /quotes/{id}/automation-runs [get]
func (h *QuoteHandler) ListAutomationRuns(c *gin.Context) {
	runs, err := h.sessions.ListRunsForQuote(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAutomationRuns(runs))
}
