package handlers

import (
	"net/http"

	request "fieldservice/internal/adapter/http/dto/request"
	response "fieldservice/internal/adapter/http/dto/response"
	"fieldservice/internal/adapter/http/middleware"
	"fieldservice/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
	logger  *zap.Logger
}

func NewCustomerHandler(uc usecase.ICustomerUseCase, logger *zap.Logger) *CustomerHandler {
	return &CustomerHandler{usecase: uc, logger: nopIfNil(logger).Named("customer_handler")}
}

// @Summary  Create a customer
// @Tags     customers
// @Param    x-tenant-id header string true "Tenant"
// @Param    body body request.CreateCustomerRequest true "Customer"
// @Success  201 {object} response.CustomerResponse
// @Router   /customers [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var payload request.CreateCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, h.logger, invalidPayload(err))
		return
	}
	created, err := h.usecase.CreateCustomer(c.Request.Context(), payload.ToEntity(middleware.TenantID(c)))
	if err != nil {
		respondError(c, h.logger, mapError(err, "Failed to create customer"))
		return
	}
	c.JSON(http.StatusCreated, response.FromCustomer(created))
}

// @Summary  List customers by name
// @Tags     customers
// @Param    x-tenant-id header string true "Tenant"
// @Success  200 {array} response.CustomerResponse
// @Router   /customers [get]
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	list, err := h.usecase.ListCustomers(c.Request.Context(), middleware.TenantID(c))
	if err != nil {
		respondError(c, h.logger, mapError(err, "Failed to list customers"))
		return
	}
	out := make([]response.CustomerResponse, 0, len(list))
	for _, cu := range list {
		out = append(out, response.FromCustomer(cu))
	}
	c.JSON(http.StatusOK, out)
}

// @Summary  Get a customer
// @Tags     customers
// @Param    x-tenant-id header string true "Tenant"
// @Param    id path string true "Customer ID"
// @Success  200 {object} response.CustomerResponse
// @Router   /customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	cu, err := h.usecase.GetCustomer(c.Request.Context(), middleware.TenantID(c), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, mapError(err, "Failed to fetch customer"))
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(cu))
}

// @Summary  Add an address to a customer
// @Tags     customers
// @Param    x-tenant-id header string true "Tenant"
// @Param    id path string true "Customer ID"
// @Param    body body request.CreateAddressRequest true "Address"
// @Success  201 {object} response.AddressResponse
// @Router   /customers/{id}/addresses [post]
func (h *CustomerHandler) CreateAddress(c *gin.Context) {
	var payload request.CreateAddressRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, h.logger, invalidPayload(err))
		return
	}
	created, err := h.usecase.CreateAddress(c.Request.Context(), payload.ToEntity(middleware.TenantID(c), c.Param("id")))
	if err != nil {
		respondError(c, h.logger, mapError(err, "Failed to create address"))
		return
	}
	c.JSON(http.StatusCreated, response.FromAddress(created))
}

// @Summary  List a customer's addresses
// @Tags     customers
// @Param    x-tenant-id header string true "Tenant"
// @Param    id path string true "Customer ID"
// @Success  200 {array} response.AddressResponse
// @Router   /customers/{id}/addresses [get]
func (h *CustomerHandler) ListAddresses(c *gin.Context) {
	list, err := h.usecase.ListAddresses(c.Request.Context(), middleware.TenantID(c), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, mapError(err, "Failed to list addresses"))
		return
	}
	out := make([]response.AddressResponse, 0, len(list))
	for _, a := range list {
		out = append(out, response.FromAddress(a))
	}
	c.JSON(http.StatusOK, out)
}
