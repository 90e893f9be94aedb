package routes

import (
	"net/http"

	"fieldservice/internal/adapter/http/handlers"
	"fieldservice/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups everything NewRouter mounts.
type Handlers struct {
	Estimates *handlers.EstimateHandler
	Payments  *handlers.BillingPaymentHandler
	Customers *handlers.CustomerHandler
	Work      *handlers.WorkHandler
}

// NewRouter builds the gin engine. Every /api route except /api/ping
// requires the x-tenant-id header.
func NewRouter(h Handlers, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	addPingRoutes(api)

	tenant := api.Group("")
	tenant.Use(middleware.Tenant())
	addBillingRoutes(tenant, h.Estimates, h.Payments)
	addCustomerRoutes(tenant, h.Customers)
	addWorkRoutes(tenant, h.Work)

	return router
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestLogger(logger))
}
