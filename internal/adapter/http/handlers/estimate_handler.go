package handlers

import (
	"context"
	"net/http"

	request "fieldservice/internal/adapter/http/dto/request"
	response "fieldservice/internal/adapter/http/dto/response"
	"fieldservice/internal/adapter/http/middleware"
	"fieldservice/internal/domain/entities"
	"fieldservice/internal/infrastructure/export"
	"fieldservice/internal/usecase"
	"fieldservice/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EstimateHandler handles HTTP requests for estimates.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
	logger  *zap.Logger
}

func NewEstimateHandler(uc usecase.IEstimateUseCase, logger *zap.Logger) *EstimateHandler {
	return &EstimateHandler{usecase: uc, logger: nopIfNil(logger).Named("estimate_handler")}
}

// ListEstimates godoc
// @Summary  List the tenant's estimates, newest first
// @Tags     estimates
// @Produce  json
// @Param    x-tenant-id header string true "Tenant"
// @Success  200 {array} response.EstimateResponse
// @Router   /estimates [get]
func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context(), middleware.TenantID(c))
	if err != nil {
		respondError(c, h.logger, mapError(err, "Failed to list estimates"))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimates(list))
}

// GetEstimate godoc
// @Summary  Get an estimate with its options and line items
// @Tags     estimates
// @Produce  json
// @Param    x-tenant-id header string true "Tenant"
// @Param    id path string true "Estimate ID"
// @Success  200 {object} response.EstimateResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /estimates/{id} [get]
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	e, err := h.usecase.GetByID(c.Request.Context(), middleware.TenantID(c), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, mapError(err, "Failed to fetch estimate"))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(e))
}

// CreateEstimate godoc
// @Summary  Create a priced estimate
// @Tags     estimates
// @Accept   json
// @Produce  json
// @Param    x-tenant-id header string true "Tenant"
// @Param    body body request.CreateEstimateRequest true "Estimate"
// @Success  201 {object} response.EstimateResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /estimates [post]
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.CreateEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, h.logger, invalidPayload(err))
		return
	}

	e, err := h.usecase.Create(c.Request.Context(), payload.ToCommand(middleware.TenantID(c)))
	if err != nil {
		respondError(c, h.logger, mapError(err, "Failed to create estimate"))
		return
	}
	c.JSON(http.StatusCreated, response.FromEstimate(e))
}

// UpdateEstimate godoc
// @Summary  Partially update an estimate; options, when sent, replace the stored ones
// @Tags     estimates
// @Accept   json
// @Produce  json
// @Param    x-tenant-id header string true "Tenant"
// @Param    id path string true "Estimate ID"
// @Param    body body request.UpdateEstimateRequest true "Changes"
// @Success  200 {object} response.EstimateResponse
// @Router   /estimates/{id} [put]
func (h *EstimateHandler) UpdateEstimate(c *gin.Context) {
	var payload request.UpdateEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, h.logger, invalidPayload(err))
		return
	}

	e, err := h.usecase.Update(c.Request.Context(), middleware.TenantID(c), c.Param("id"), payload.ToCommand())
	if err != nil {
		respondError(c, h.logger, mapError(err, "Failed to update estimate"))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(e))
}

// DeleteEstimate godoc
// @Summary  Delete an estimate unless jobs or service requests reference it
// @Tags     estimates
// @Produce  json
// @Param    x-tenant-id header string true "Tenant"
// @Param    id path string true "Estimate ID"
// @Success  200 {object} response.MessageResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /estimates/{id} [delete]
func (h *EstimateHandler) DeleteEstimate(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), middleware.TenantID(c), c.Param("id")); err != nil {
		respondError(c, h.logger, mapError(err, "Failed to delete estimate"))
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Estimate deleted successfully"})
}

// @Summary  Mark an estimate as sent
// @Tags     estimates
// @Param    x-tenant-id header string true "Tenant"
// @Param    id path string true "Estimate ID"
// @Success  200 {object} response.EstimateResponse
// @Router   /estimates/{id}/send [post]
func (h *EstimateHandler) SendEstimate(c *gin.Context) {
	h.transition(c, h.usecase.Send, "send")
}

// @Summary  Mark an estimate as viewed by the customer
// @Tags     estimates
// @Param    x-tenant-id header string true "Tenant"
// @Param    id path string true "Estimate ID"
// @Success  200 {object} response.EstimateResponse
// @Router   /estimates/{id}/view [post]
func (h *EstimateHandler) ViewEstimate(c *gin.Context) {
	h.transition(c, h.usecase.MarkViewed, "view")
}

// @Summary  Approve an estimate
// @Tags     estimates
// @Param    x-tenant-id header string true "Tenant"
// @Param    id path string true "Estimate ID"
// @Success  200 {object} response.EstimateResponse
// @Router   /estimates/{id}/approve [post]
func (h *EstimateHandler) ApproveEstimate(c *gin.Context) {
	h.transition(c, h.usecase.Approve, "approve")
}

// @Summary  Decline an estimate
// @Tags     estimates
// @Param    x-tenant-id header string true "Tenant"
// @Param    id path string true "Estimate ID"
// @Success  200 {object} response.EstimateResponse
// @Router   /estimates/{id}/decline [post]
func (h *EstimateHandler) DeclineEstimate(c *gin.Context) {
	h.transition(c, h.usecase.Decline, "decline")
}

func (h *EstimateHandler) transition(
	c *gin.Context,
	apply func(ctx context.Context, tenantID, id string) (entities.Estimate, error),
	verb string,
) {
	e, err := apply(c.Request.Context(), middleware.TenantID(c), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, mapError(err, "Failed to "+verb+" estimate"))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(e))
}

// ExportEstimates godoc
// @Summary  Download the tenant's estimates as an Excel workbook
// @Tags     estimates
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param    x-tenant-id header string true "Tenant"
// @Success  200 {file} file
// @Router   /estimates/export [get]
func (h *EstimateHandler) ExportEstimates(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context(), middleware.TenantID(c))
	if err != nil {
		respondError(c, h.logger, mapError(err, "Failed to export estimates"))
		return
	}

	c.Header("Content-Type", export.ContentType)
	c.Header("Content-Disposition", `attachment; filename="estimates.xlsx"`)
	c.Status(http.StatusOK)
	if err := export.WriteEstimates(c.Writer, list); err != nil {
		// Headers are already sent; the client sees a truncated file.
		h.logger.Error("estimate export failed", zap.Error(err))
	}
}

func invalidPayload(err error) *pkg.AppError {
	return pkg.NewDomainError(errInvalidPayload.Code, errInvalidPayload.Message, err, errInvalidPayload.HTTPStatus)
}
