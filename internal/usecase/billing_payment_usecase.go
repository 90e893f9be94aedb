package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrBillingPaymentNotFound     = errors.New("billing payment not found")
	ErrInvalidPaymentPayload      = errors.New("invalid payment payload")
	ErrEstimateNotApproved        = errors.New("estimate not approved")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayMissing      = errors.New("payment gateway not configured")
)

// IBillingPaymentUseCase charges approved estimates through the payment
// gateway and keeps the provider response with each payment.
type IBillingPaymentUseCase interface {
	Pay(ctx context.Context, tenantID, estimateID string, payload json.RawMessage) (entities.BillingPayment, error)
	Latest(ctx context.Context, tenantID, estimateID string) (entities.BillingPayment, error)
	ListByEstimateID(ctx context.Context, tenantID, estimateID string) ([]entities.BillingPayment, error)
}

type BillingPaymentUseCase struct {
	repo         interfaces.IBillingPaymentRepository
	estimateRepo interfaces.IEstimateRepository
	gateway      interfaces.IPaymentGateway
	logger       *zap.Logger
	now          func() time.Time
}

var _ IBillingPaymentUseCase = (*BillingPaymentUseCase)(nil)

func NewBillingPaymentUseCase(repo interfaces.IBillingPaymentRepository, estimateRepo interfaces.IEstimateRepository, gateway interfaces.IPaymentGateway, logger *zap.Logger) *BillingPaymentUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BillingPaymentUseCase{
		repo:         repo,
		estimateRepo: estimateRepo,
		gateway:      gateway,
		logger:       logger.Named("payments"),
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (u *BillingPaymentUseCase) Pay(ctx context.Context, tenantID, estimateID string, payload json.RawMessage) (entities.BillingPayment, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return entities.BillingPayment{}, ErrInvalidTenantID
	}
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return entities.BillingPayment{}, ErrInvalidEstimateID
	}
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if !json.Valid(payload) {
		return entities.BillingPayment{}, ErrInvalidPaymentPayload
	}
	if u.gateway == nil {
		return entities.BillingPayment{}, ErrPaymentGatewayMissing
	}

	est, err := u.estimateRepo.GetByID(ctx, tenantID, estimateID)
	if err != nil {
		return entities.BillingPayment{}, err
	}
	if est.ID == "" {
		return entities.BillingPayment{}, ErrEstimateNotFound
	}
	if est.Status != entities.EstimateStatusApproved {
		u.logger.Info("payment refused for unapproved estimate",
			zap.String("estimate_id", estimateID), zap.String("status", string(est.Status)))
		return entities.BillingPayment{}, ErrEstimateNotApproved
	}

	// The stored total is the amount charged, whatever the caller sent.
	var req map[string]any
	if err := json.Unmarshal(payload, &req); err != nil || req == nil {
		return entities.BillingPayment{}, ErrInvalidPaymentPayload
	}
	req["transaction_amount"] = est.Total.InexactFloat64()
	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = est.EstimateNumber
	}
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Estimate %s", est.EstimateNumber)
	}
	enriched, err := json.Marshal(req)
	if err != nil {
		return entities.BillingPayment{}, err
	}

	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		u.logger.Error("payment gateway failed", zap.String("estimate_id", estimateID), zap.Error(err))
		switch {
		case isGatewayUnauthorized(err):
			return entities.BillingPayment{}, ErrPaymentGatewayUnauthorized
		case isGatewayBadRequest(err):
			return entities.BillingPayment{}, fmt.Errorf("%w: %v", ErrPaymentGatewayBadRequest, err)
		}
		return entities.BillingPayment{}, err
	}

	var parsed map[string]interface{}
	if len(providerResp) > 0 {
		if err := json.Unmarshal(providerResp, &parsed); err != nil {
			u.logger.Warn("provider response is not an object", zap.String("estimate_id", estimateID), zap.Error(err))
		}
	}

	id := strings.TrimSpace(providerID)
	if id == "" {
		id = uuid.NewString()
	}
	p := entities.BillingPayment{
		ID:                 id,
		TenantID:           tenantID,
		EstimateID:         estimateID,
		Amount:             est.Total,
		Date:               u.now(),
		Status:             paymentStatusFromProvider(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		u.logger.Error("persist payment failed", zap.String("estimate_id", estimateID), zap.String("payment_id", id), zap.Error(err))
		return entities.BillingPayment{}, err
	}
	u.logger.Info("payment recorded",
		zap.String("tenant_id", tenantID),
		zap.String("estimate_id", estimateID),
		zap.String("payment_id", created.ID),
		zap.String("status", string(created.Status)),
	)
	return created, nil
}

func (u *BillingPaymentUseCase) Latest(ctx context.Context, tenantID, estimateID string) (entities.BillingPayment, error) {
	list, err := u.ListByEstimateID(ctx, tenantID, estimateID)
	if err != nil {
		return entities.BillingPayment{}, err
	}
	if len(list) == 0 {
		return entities.BillingPayment{}, ErrBillingPaymentNotFound
	}
	latest := list[0]
	for _, p := range list[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	return latest, nil
}

func (u *BillingPaymentUseCase) ListByEstimateID(ctx context.Context, tenantID, estimateID string) ([]entities.BillingPayment, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return nil, ErrInvalidTenantID
	}
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return nil, ErrInvalidEstimateID
	}
	return u.repo.ListByEstimateID(ctx, tenantID, estimateID)
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	}
	return entities.PaymentStatusPending
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
