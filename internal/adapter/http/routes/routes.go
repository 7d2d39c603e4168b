package routes

import (
	"net/http"

	_ "brokerage_crm/docs" // swagger spec registration
	"brokerage_crm/internal/adapter/http/handlers"
	"brokerage_crm/internal/adapter/http/middleware"
	"brokerage_crm/internal/app"
	"brokerage_crm/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Run starts the HTTP server for a wired application and blocks until it stops.
func Run(a *app.App) error {
	router := NewRouter(a)
	a.Log.Info("http server listening", zap.String("port", a.Config.Port))
	return router.Run(":" + a.Config.Port)
}

// NewRouter builds the gin engine: middlewares, swagger, metrics and the /v1 routes.
func NewRouter(a *app.App) *gin.Engine {
	metrics.RegisterDefault()

	router := gin.New()
	setMiddlewares(router, a.Log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	quoteHandler := handlers.NewQuoteHandler(a.Ingestion, a.Submission, a.Sessions)
	carrierHandler := handlers.NewCarrierHandler(a.Submission)
	automationHandler := handlers.NewAutomationHandler(a.Sessions)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, quoteHandler)
	addCarrierRoutes(v1, carrierHandler)
	addAutomationRoutes(v1, automationHandler, middleware.VerifySignature(a.Config.Automation.WebhookSecret, a.Log))

	return router
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func setMiddlewares(router *gin.Engine, log *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(middleware.Metrics())
}
