package routes

import (
	"github.com/et-services/quoterelay/internal/api/middleware"
	"github.com/et-services/quoterelay/internal/logging"
	"github.com/et-services/quoterelay/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Setup configures all routes
func Setup(router *gin.Engine, h *Handlers, logger *logging.Logger) {
	SetupHealthRoutes(router, h.Health)
	SetupQuoteRoutes(router, h.Quote)

	logger.Debug("All routes have been set up successfully")
}

// SetupGlobalMiddleware configures middleware that applies to all routes.
// Recovery runs right after the request id so panics are logged with it.
func SetupGlobalMiddleware(router *gin.Engine, logger *logging.Logger, opts Options) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(logger))
	router.Use(otelgin.Middleware(telemetry.ServiceName))
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS(opts.AllowedOrigins))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.LimitBody(opts.MaxBodyBytes))
}
