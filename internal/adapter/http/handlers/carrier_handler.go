package handlers

import (
	"net/http"

	request "brokerage_crm/internal/adapter/http/dto/request"
	response "brokerage_crm/internal/adapter/http/dto/response"
	"brokerage_crm/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CarrierHandler struct {
	submission usecase.IQuoteSubmissionUseCase
}

func NewCarrierHandler(submission usecase.IQuoteSubmissionUseCase) *CarrierHandler {
	return &CarrierHandler{submission: submission}
}

// ListCarriers godoc
// @Summary  Registered carriers in registration order
// @Tags     carriers
// @Produce  json
// @Success  200  {array}  response.CarrierResponse
// @Router   /carriers [get]
func (h *CarrierHandler) ListCarriers(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCarriers(h.submission.ListCarriers()))
}

// SubmitQuotes godoc
// @Summary      Submit one coverage request to several carriers
// @Description  Each carrier runs independently; failures are reported per carrier.
// @Tags         carriers
// @Accept       json
// @Produce      json
// @Param        payload  body      request.SubmitQuotesRequest  true  "Coverage request"
// @Success      200      {object}  response.SubmissionResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /carriers/submissions [post]
func (h *CarrierHandler) SubmitQuotes(c *gin.Context) {
	var payload request.SubmitQuotesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	results, err := h.submission.SubmitToCarriers(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSubmissions(results))
}
