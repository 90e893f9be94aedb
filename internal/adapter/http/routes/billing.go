package routes

import (
	"fieldservice/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates = "/estimates"
)

func addBillingRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler, paymentHandler *handlers.BillingPaymentHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.GET("", estimateHandler.ListEstimates)
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.GET("/export", estimateHandler.ExportEstimates)
		estimates.GET("/:id", estimateHandler.GetEstimate)
		estimates.PUT("/:id", estimateHandler.UpdateEstimate)
		estimates.DELETE("/:id", estimateHandler.DeleteEstimate)

		estimates.POST("/:id/send", estimateHandler.SendEstimate)
		estimates.POST("/:id/view", estimateHandler.ViewEstimate)
		estimates.POST("/:id/approve", estimateHandler.ApproveEstimate)
		estimates.POST("/:id/decline", estimateHandler.DeclineEstimate)

		estimates.POST("/:id/payments", paymentHandler.CreatePayment)
		estimates.GET("/:id/payments", paymentHandler.GetLatestPayment)
	}
}
