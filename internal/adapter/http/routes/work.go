package routes

import (
	"fieldservice/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCustomers       = "/customers"
	PathJobs            = "/jobs"
	PathServiceRequests = "/service-requests"
)

func addCustomerRoutes(rg *gin.RouterGroup, h *handlers.CustomerHandler) {
	customers := rg.Group(PathCustomers)
	{
		customers.GET("", h.ListCustomers)
		customers.POST("", h.CreateCustomer)
		customers.GET("/:id", h.GetCustomer)
		customers.GET("/:id/addresses", h.ListAddresses)
		customers.POST("/:id/addresses", h.CreateAddress)
	}
}

func addWorkRoutes(rg *gin.RouterGroup, h *handlers.WorkHandler) {
	jobs := rg.Group(PathJobs)
	{
		jobs.GET("", h.ListJobs)
		jobs.POST("", h.CreateJob)
		jobs.GET("/:id", h.GetJob)
		jobs.DELETE("/:id", h.DeleteJob)
		jobs.PUT("/:id/estimate", h.LinkJobEstimate)
	}

	requests := rg.Group(PathServiceRequests)
	{
		requests.GET("", h.ListServiceRequests)
		requests.POST("", h.CreateServiceRequest)
		requests.GET("/:id", h.GetServiceRequest)
		requests.DELETE("/:id", h.DeleteServiceRequest)
		requests.PUT("/:id/estimate", h.LinkServiceRequestEstimate)
	}
}
