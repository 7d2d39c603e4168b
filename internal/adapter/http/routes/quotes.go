package routes

import (
	"brokerage_crm/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes     = "/quotes"
	PathCarriers   = "/carriers"
	PathAutomation = "/automation"
)

func addQuoteRoutes(rg *gin.RouterGroup, h *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("/ingest", h.IngestQuote)
		quotes.GET("/ingest", h.IngestHealth)
		quotes.GET("/:id", h.GetQuote)
		quotes.POST("/:id/refresh", h.RefreshQuote)
		quotes.POST("/:id/document", h.AttachDocument)
		quotes.GET("/:id/automation-runs", h.ListAutomationRuns)
	}
}

func addCarrierRoutes(rg *gin.RouterGroup, h *handlers.CarrierHandler) {
	carriers := rg.Group(PathCarriers)
	{
		carriers.GET("", h.ListCarriers)
		carriers.POST("/submissions", h.SubmitQuotes)
	}
}

func addAutomationRoutes(rg *gin.RouterGroup, h *handlers.AutomationHandler, verifyWebhook gin.HandlerFunc) {
	automation := rg.Group(PathAutomation)
	{
		automation.POST("/sessions", h.StartSession)
		automation.GET("/sessions/:session_id", h.GetSession)
		// Provider webhook.
		automation.POST("/sessions/:session_id/complete", verifyWebhook, h.CompleteSession)
		automation.POST("/runs/:run_id/retry", h.RetryRun)
	}
}
