package routes

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/money-flow-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/money-flow-tracker/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/money-flow-tracker/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/money-flow-tracker/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/money-flow-tracker/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
)

// APIPrefix is the path prefix of every route
const APIPrefix = "/api/v1"

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	moneyFlowHandler *handler.MoneyFlowHandler,
	healthHandler *handler.HealthHandler,
) {
	api := router.Group(APIPrefix)

	api.GET("/healthcheck", healthHandler.Check)

	moneyFlows := api.Group("/money_flows")
	{
		moneyFlows.GET("", moneyFlowHandler.List)
		moneyFlows.GET("/:id", moneyFlowHandler.Get)
		moneyFlows.POST("", moneyFlowHandler.Create)
		moneyFlows.PUT("", moneyFlowHandler.Update)
		moneyFlows.DELETE("", moneyFlowHandler.Delete)
	}

	router.HandleMethodNotAllowed = true
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Detail: "Not Found"})
	})
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, dto.ErrorResponse{Detail: "Method Not Allowed"})
	})
}

// SetupMiddlewares configures global middlewares for the API.
// The logger wraps the error handler so it records the rendered status.
func SetupMiddlewares(
	router *gin.Engine,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	corsConfig config.CORSConfig,
) {
	router.Use(middleware.RequestID(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.CORS(corsConfig))
}

// NewRouter builds a gin engine with the middlewares and routes installed
func NewRouter(
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	corsConfig config.CORSConfig,
	moneyFlowHandler *handler.MoneyFlowHandler,
	healthHandler *handler.HealthHandler,
) *gin.Engine {
	router := gin.New()
	SetupMiddlewares(router, logger, timeProvider, corsConfig)
	SetupRoutes(router, moneyFlowHandler, healthHandler)
	return router
}
