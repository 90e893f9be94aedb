package handlers

import (
	"encoding/json"
	"net/http"

	request "fieldservice/internal/adapter/http/dto/request"
	response "fieldservice/internal/adapter/http/dto/response"
	"fieldservice/internal/adapter/http/middleware"
	"fieldservice/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BillingPaymentHandler handles HTTP requests for estimate payments.
type BillingPaymentHandler struct {
	usecase  usecase.IBillingPaymentUseCase
	logger   *zap.Logger
	mockMode bool
}

// NewBillingPaymentHandler builds the handler. In mock mode an unreadable
// body is replaced by an empty payload instead of being rejected.
func NewBillingPaymentHandler(uc usecase.IBillingPaymentUseCase, logger *zap.Logger, mockMode bool) *BillingPaymentHandler {
	return &BillingPaymentHandler{usecase: uc, logger: nopIfNil(logger).Named("payment_handler"), mockMode: mockMode}
}

// CreatePayment godoc
// @Summary  Charge an approved estimate through the payment provider
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    x-tenant-id header string true "Tenant"
// @Param    id path string true "Estimate ID"
// @Param    body body request.BillingPaymentCreateRequest false "Provider payload"
// @Success  200 {object} response.BillingPaymentResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /estimates/{id}/payments [post]
func (h *BillingPaymentHandler) CreatePayment(c *gin.Context) {
	estimateID := c.Param("id")
	log := h.logger.With(zap.String("estimate_id", estimateID))

	payload, err := h.readPayload(c)
	if err != nil {
		log.Warn("invalid payment payload", zap.Error(err))
		respondError(c, h.logger, invalidPayload(err))
		return
	}

	created, err := h.usecase.Pay(c.Request.Context(), middleware.TenantID(c), estimateID, payload)
	if err != nil {
		log.Warn("payment failed", zap.Error(err))
		respondError(c, h.logger, mapError(err, "Failed to pay estimate"))
		return
	}
	log.Info("payment created", zap.String("payment_id", created.ID), zap.String("status", string(created.Status)))
	c.JSON(http.StatusOK, response.FromBillingPayment(created))
}

// GetLatestPayment godoc
// @Summary  Latest payment of an estimate
// @Tags     payments
// @Produce  json
// @Param    x-tenant-id header string true "Tenant"
// @Param    id path string true "Estimate ID"
// @Success  200 {object} response.BillingPaymentResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /estimates/{id}/payments [get]
func (h *BillingPaymentHandler) GetLatestPayment(c *gin.Context) {
	latest, err := h.usecase.Latest(c.Request.Context(), middleware.TenantID(c), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, mapError(err, "Failed to fetch payment"))
		return
	}
	c.JSON(http.StatusOK, response.FromBillingPayment(latest))
}

func (h *BillingPaymentHandler) readPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err == nil {
		var payload json.RawMessage
		payload, err = request.ProviderPayload(raw)
		if err == nil {
			return payload, nil
		}
	}
	if h.mockMode {
		return json.RawMessage("{}"), nil
	}
	return nil, err
}
