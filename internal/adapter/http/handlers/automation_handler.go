package handlers

import (
	"net/http"

	request "brokerage_crm/internal/adapter/http/dto/request"
	response "brokerage_crm/internal/adapter/http/dto/response"
	"brokerage_crm/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AutomationHandler exposes the automation session manager. The completion route is the
// provider webhook; its signature is checked by middleware.
type AutomationHandler struct {
	sessions usecase.IAutomationSessionUseCase
}

func NewAutomationHandler(sessions usecase.IAutomationSessionUseCase) *AutomationHandler {
	return &AutomationHandler{sessions: sessions}
}

// StartSession godoc
// @Summary  Start a browser automation session for a quote
// @Tags     automation
// @Accept   json
// @Produce  json
// @Param    payload  body      request.StartSessionRequest  true  "Session request"
// @Success  201      {object}  response.SessionResponse
// @Failure  400      {object}  pkg.HTTPError
// @Failure  404      {object}  pkg.HTTPError
// @Router   /automation/sessions [post]
func (h *AutomationHandler) StartSession(c *gin.Context) {
	var payload request.StartSessionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	session, err := h.sessions.Start(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromSession(session))
}

// GetSession godoc
// @Summary  Current status of an automation session
// @Tags     automation
// @Produce  json
// @Param    session_id  path      string  true  "Session ID"
// @Success  200         {object}  response.SessionResponse
// @Failure  404         {object}  pkg.HTTPError
// @Router   /automation/sessions/{session_id} [get]
func (h *AutomationHandler) GetSession(c *gin.Context) {
	session, err := h.sessions.CheckStatus(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSession(session))
}

// CompleteSession godoc
// @Summary      Report the result of an automation session
// @Description  Accepted once per session; later completions are rejected with 409.
// @Tags         automation
// @Accept       json
// @Produce      json
// @Param        session_id   path      string                          true   "Session ID"
// @Param        X-Signature  header    string                          false  "HMAC-SHA256 of the body"
// @Param        payload      body      request.CompleteSessionRequest  true   "Session result"
// @Success      200          {object}  response.SessionResponse
// @Failure      400          {object}  pkg.HTTPError
// @Failure      401          {object}  pkg.HTTPError
// @Failure      404          {object}  pkg.HTTPError
// @Failure      409          {object}  pkg.HTTPError
// @Router       /automation/sessions/{session_id}/complete [post]
func (h *AutomationHandler) CompleteSession(c *gin.Context) {
	var payload request.CompleteSessionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	session, err := h.sessions.Complete(c.Request.Context(), c.Param("session_id"), payload.ToResult())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSession(session))
}

// RetryRun godoc
// @Summary  Retry an automation run with its original inputs
// @Tags     automation
// @Produce  json
// @Param    run_id  path      string  true  "Run ID"
// @Success  201     {object}  response.SessionResponse
// @Failure  404     {object}  pkg.HTTPError
// @Router   /automation/runs/{run_id}/retry [post]
func (h *AutomationHandler) RetryRun(c *gin.Context) {
	session, err := h.sessions.Retry(c.Request.Context(), c.Param("run_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromSession(session))
}
