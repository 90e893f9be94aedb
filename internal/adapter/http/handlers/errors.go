package handlers

import (
	"errors"
	"net/http"

	"fieldservice/internal/usecase"
	"fieldservice/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// mapError translates use case errors into AppErrors. fallback is the
// message for unexpected failures, e.g. "Failed to create estimate".
func mapError(err error, fallback string) *pkg.AppError {
	var inUse *usecase.EstimateInUseError
	switch {
	case errors.As(err, &inUse):
		return pkg.NewDomainErrorSimple("ESTIMATE_IN_USE", inUse.Error(), http.StatusBadRequest)
	case usecase.IsValidationError(err):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAddressNotFound):
		return pkg.NewDomainErrorSimple("ADDRESS_NOT_FOUND", "Address not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceRequestNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_REQUEST_NOT_FOUND", "Service request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBillingPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateNumberExhausted):
		return pkg.NewDomainError("ESTIMATE_NUMBER_EXHAUSTED", "Failed to generate a unique estimate number", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrEstimateNotApproved):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_APPROVED", "Estimate not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainError("PAYMENT_PROVIDER_BAD_REQUEST", "Payment provider rejected the request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayMissing):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", fallback, err, http.StatusInternalServerError)
	}
}

// respondError writes appErr and logs server-side failures.
func respondError(c *gin.Context, logger *zap.Logger, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.Error(appErr.Message,
			zap.String("code", appErr.Code),
			zap.String("path", c.Request.URL.Path),
			zap.Error(appErr.Err),
		)
	}
	_ = c.Error(appErr)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func nopIfNil(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
