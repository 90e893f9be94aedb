package repository

import (
	"context"
	"encoding/json"
	"sort"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsEstimateIDIndex  = "estimate_id-index"
)

type billingPaymentItem struct {
	ID                 string                 `dynamodbav:"id"`
	TenantID           string                 `dynamodbav:"tenant_id"`
	EstimateID         string                 `dynamodbav:"estimate_id"`
	Amount             string                 `dynamodbav:"amount"`
	Date               string                 `dynamodbav:"date"`
	Status             string                 `dynamodbav:"status"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// BillingPaymentDynamoRepository persists BillingPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: estimate_id-index (PK: estimate_id)
type BillingPaymentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IBillingPaymentRepository = (*BillingPaymentDynamoRepository)(nil)

func NewBillingPaymentDynamoRepository(ddb DynamoAPI) *BillingPaymentDynamoRepository {
	return &BillingPaymentDynamoRepository{
		ddb:       ddb,
		tableName: tableName("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *BillingPaymentDynamoRepository) Create(ctx context.Context, p entities.BillingPayment) (entities.BillingPayment, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toBillingPaymentItem(p)); err != nil {
		return entities.BillingPayment{}, err
	}
	return p, nil
}

// ListByEstimateID returns the estimate's payments, newest first. The tenant
// is checked on the GSI results since the index is keyed by estimate only.
func (r *BillingPaymentDynamoRepository) ListByEstimateID(ctx context.Context, tenantID, estimateID string) ([]entities.BillingPayment, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:                aws.String(r.tableName),
		IndexName:                aws.String(paymentsEstimateIDIndex),
		KeyConditionExpression:   aws.String("estimate_id = :eid"),
		FilterExpression:         aws.String("#tenant_id = :tid"),
		ExpressionAttributeNames: map[string]string{"#tenant_id": "tenant_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":eid": &types.AttributeValueMemberS{Value: estimateID},
			":tid": &types.AttributeValueMemberS{Value: tenantID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.BillingPayment, 0, len(raw))
	for _, item := range raw {
		var it billingPaymentItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		items = append(items, fromBillingPaymentItem(it))
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Date.After(items[j].Date) })
	return items, nil
}

func toBillingPaymentItem(p entities.BillingPayment) billingPaymentItem {
	it := billingPaymentItem{
		ID:              p.ID,
		TenantID:        p.TenantID,
		EstimateID:      p.EstimateID,
		Amount:          p.Amount.StringFixed(2),
		Date:            formatTime(p.Date),
		Status:          string(p.Status),
		ProviderPayload: p.ProviderPayload,
	}
	if len(p.ProviderPayloadRaw) > 0 {
		it.ProviderPayloadRaw = string(p.ProviderPayloadRaw)
	}
	return it
}

func fromBillingPaymentItem(it billingPaymentItem) entities.BillingPayment {
	p := entities.BillingPayment{
		ID:              it.ID,
		TenantID:        it.TenantID,
		EstimateID:      it.EstimateID,
		Amount:          parseDecimal(it.Amount),
		Date:            parseTime(it.Date),
		Status:          entities.PaymentStatus(it.Status),
		ProviderPayload: it.ProviderPayload,
	}
	if it.ProviderPayloadRaw != "" {
		p.ProviderPayloadRaw = json.RawMessage(it.ProviderPayloadRaw)
	}
	return p
}
