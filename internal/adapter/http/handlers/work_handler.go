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

// WorkHandler serves jobs and service requests, the records that can
// reference an estimate and block its deletion.
type WorkHandler struct {
	usecase usecase.IWorkUseCase
	logger  *zap.Logger
}

func NewWorkHandler(uc usecase.IWorkUseCase, logger *zap.Logger) *WorkHandler {
	return &WorkHandler{usecase: uc, logger: nopIfNil(logger).Named("work_handler")}
}

// @Summary  Create a job
// @Tags     jobs
// @Param    x-tenant-id header string true "Tenant"
// @Param    body body request.CreateJobRequest true "Job"
// @Success  201 {object} response.JobResponse
// @Router   /jobs [post]
func (h *WorkHandler) CreateJob(c *gin.Context) {
	var payload request.CreateJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, h.logger, invalidPayload(err))
		return
	}
	created, err := h.usecase.CreateJob(c.Request.Context(), payload.ToEntity(middleware.TenantID(c)))
	if err != nil {
		respondError(c, h.logger, mapError(err, "Failed to create job"))
		return
	}
	c.JSON(http.StatusCreated, response.FromJob(created))
}

// @Summary  List jobs
// @Tags     jobs
// @Param    x-tenant-id header string true "Tenant"
// @Success  200 {array} response.JobResponse
// @Router   /jobs [get]
func (h *WorkHandler) ListJobs(c *gin.Context) {
	list, err := h.usecase.ListJobs(c.Request.Context(), middleware.TenantID(c))
	if err != nil {
		respondError(c, h.logger, mapError(err, "Failed to list jobs"))
		return
	}
	out := make([]response.JobResponse, 0, len(list))
	for _, j := range list {
		out = append(out, response.FromJob(j))
	}
	c.JSON(http.StatusOK, out)
}

// @Summary  Get a job
// @Tags     jobs
// @Param    x-tenant-id header string true "Tenant"
// @Param    id path string true "Job ID"
// @Success  200 {object} response.JobResponse
// @Router   /jobs/{id} [get]
func (h *WorkHandler) GetJob(c *gin.Context) {
	j, err := h.usecase.GetJob(c.Request.Context(), middleware.TenantID(c), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, mapError(err, "Failed to fetch job"))
		return
	}
	c.JSON(http.StatusOK, response.FromJob(j))
}

// @Summary  Link a job to an estimate, or unlink it with a null estimateId
// @Tags     jobs
// @Param    x-tenant-id header string true "Tenant"
// @Param    id path string true "Job ID"
// @Param    body body request.LinkEstimateRequest true "Estimate link"
// @Success  200 {object} response.JobResponse
// @Router   /jobs/{id}/estimate [put]
func (h *WorkHandler) LinkJobEstimate(c *gin.Context) {
	var payload request.LinkEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, h.logger, invalidPayload(err))
		return
	}
	j, err := h.usecase.LinkJobEstimate(c.Request.Context(), middleware.TenantID(c), c.Param("id"), payload.EstimateID)
	if err != nil {
		respondError(c, h.logger, mapError(err, "Failed to link job"))
		return
	}
	c.JSON(http.StatusOK, response.FromJob(j))
}

// @Summary  Delete a job
// @Tags     jobs
// @Param    x-tenant-id header string true "Tenant"
// @Param    id path string true "Job ID"
// @Success  200 {object} response.MessageResponse
// @Router   /jobs/{id} [delete]
func (h *WorkHandler) DeleteJob(c *gin.Context) {
	if err := h.usecase.DeleteJob(c.Request.Context(), middleware.TenantID(c), c.Param("id")); err != nil {
		respondError(c, h.logger, mapError(err, "Failed to delete job"))
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Job deleted successfully"})
}

// @Summary  Create a service request
// @Tags     service-requests
// @Param    x-tenant-id header string true "Tenant"
// @Param    body body request.CreateServiceRequestRequest true "Service request"
// @Success  201 {object} response.ServiceRequestResponse
// @Router   /service-requests [post]
func (h *WorkHandler) CreateServiceRequest(c *gin.Context) {
	var payload request.CreateServiceRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, h.logger, invalidPayload(err))
		return
	}
	created, err := h.usecase.CreateServiceRequest(c.Request.Context(), payload.ToEntity(middleware.TenantID(c)))
	if err != nil {
		respondError(c, h.logger, mapError(err, "Failed to create service request"))
		return
	}
	c.JSON(http.StatusCreated, response.FromServiceRequest(created))
}

// @Summary  List service requests
// @Tags     service-requests
// @Param    x-tenant-id header string true "Tenant"
// @Success  200 {array} response.ServiceRequestResponse
// @Router   /service-requests [get]
func (h *WorkHandler) ListServiceRequests(c *gin.Context) {
	list, err := h.usecase.ListServiceRequests(c.Request.Context(), middleware.TenantID(c))
	if err != nil {
		respondError(c, h.logger, mapError(err, "Failed to list service requests"))
		return
	}
	out := make([]response.ServiceRequestResponse, 0, len(list))
	for _, sr := range list {
		out = append(out, response.FromServiceRequest(sr))
	}
	c.JSON(http.StatusOK, out)
}

// @Summary  Get a service request
// @Tags     service-requests
// @Param    x-tenant-id header string true "Tenant"
// @Param    id path string true "Service request ID"
// @Success  200 {object} response.ServiceRequestResponse
// @Router   /service-requests/{id} [get]
func (h *WorkHandler) GetServiceRequest(c *gin.Context) {
	sr, err := h.usecase.GetServiceRequest(c.Request.Context(), middleware.TenantID(c), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, mapError(err, "Failed to fetch service request"))
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequest(sr))
}

// @Summary  Link a service request to an estimate, or unlink it
// @Tags     service-requests
// @Param    x-tenant-id header string true "Tenant"
// @Param    id path string true "Service request ID"
// @Param    body body request.LinkEstimateRequest true "Estimate link"
// @Success  200 {object} response.ServiceRequestResponse
// @Router   /service-requests/{id}/estimate [put]
func (h *WorkHandler) LinkServiceRequestEstimate(c *gin.Context) {
	var payload request.LinkEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, h.logger, invalidPayload(err))
		return
	}
	sr, err := h.usecase.LinkServiceRequestEstimate(c.Request.Context(), middleware.TenantID(c), c.Param("id"), payload.EstimateID)
	if err != nil {
		respondError(c, h.logger, mapError(err, "Failed to link service request"))
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequest(sr))
}

// @Summary  Delete a service request
// @Tags     service-requests
// @Param    x-tenant-id header string true "Tenant"
// @Param    id path string true "Service request ID"
// @Success  200 {object} response.MessageResponse
// @Router   /service-requests/{id} [delete]
func (h *WorkHandler) DeleteServiceRequest(c *gin.Context) {
	if err := h.usecase.DeleteServiceRequest(c.Request.Context(), middleware.TenantID(c), c.Param("id")); err != nil {
		respondError(c, h.logger, mapError(err, "Failed to delete service request"))
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Service request deleted successfully"})
}
