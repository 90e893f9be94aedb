package repository

import (
	"context"
	"sort"
	"time"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type jobItem struct {
	TenantID    string  `dynamodbav:"tenant_id"`
	ID          string  `dynamodbav:"id"`
	CustomerID  string  `dynamodbav:"customer_id"`
	EstimateID  *string `dynamodbav:"estimate_id,omitempty"`
	Title       string  `dynamodbav:"title"`
	Status      string  `dynamodbav:"status"`
	ScheduledAt *string `dynamodbav:"scheduled_at,omitempty"`
	CreatedAt   string  `dynamodbav:"created_at"`
	UpdatedAt   string  `dynamodbav:"updated_at"`
}

type serviceRequestItem struct {
	TenantID    string  `dynamodbav:"tenant_id"`
	ID          string  `dynamodbav:"id"`
	CustomerID  string  `dynamodbav:"customer_id"`
	EstimateID  *string `dynamodbav:"estimate_id,omitempty"`
	Title       string  `dynamodbav:"title"`
	Description string  `dynamodbav:"description,omitempty"`
	Status      string  `dynamodbav:"status"`
	CreatedAt   string  `dynamodbav:"created_at"`
	UpdatedAt   string  `dynamodbav:"updated_at"`
}

// WorkDynamoRepository persists jobs and service requests in DynamoDB.
//
// Table requirements:
//   - jobs: PK tenant_id, SK id
//   - service_requests: PK tenant_id, SK id
//
// Writes that set an estimate link also bump ref_version on the estimate item
// in the same transaction.
type WorkDynamoRepository struct {
	ddb            DynamoAPI
	jobsTable      string
	requestsTable  string
	estimatesTable string
}

var _ interfaces.IWorkRepository = (*WorkDynamoRepository)(nil)

func NewWorkDynamoRepository(ddb DynamoAPI) *WorkDynamoRepository {
	return &WorkDynamoRepository{
		ddb:            ddb,
		jobsTable:      tableName("JOBS_TABLE", defaultJobsTableName),
		requestsTable:  tableName("SERVICE_REQUESTS_TABLE", defaultServiceRequestsTableName),
		estimatesTable: tableName("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *WorkDynamoRepository) CreateJob(ctx context.Context, j entities.Job) (entities.Job, error) {
	it := jobItem{
		TenantID:    j.TenantID,
		ID:          j.ID,
		CustomerID:  j.CustomerID,
		EstimateID:  j.EstimateID,
		Title:       j.Title,
		Status:      string(j.Status),
		ScheduledAt: formatTimePtr(j.ScheduledAt),
		CreatedAt:   formatTime(j.CreatedAt),
		UpdatedAt:   formatTime(j.UpdatedAt),
	}
	if err := r.putLinked(ctx, r.jobsTable, it.TenantID, it.EstimateID, it); err != nil {
		return entities.Job{}, err
	}
	return it.toEntity(), nil
}

func (r *WorkDynamoRepository) GetJob(ctx context.Context, tenantID, id string) (entities.Job, error) {
	var it jobItem
	found, err := getByTenantKey(ctx, r.ddb, r.jobsTable, tenantID, id, &it)
	if err != nil || !found {
		return entities.Job{}, err
	}
	return it.toEntity(), nil
}

func (r *WorkDynamoRepository) ListJobs(ctx context.Context, tenantID string) ([]entities.Job, error) {
	raw, err := queryByTenant(ctx, r.ddb, r.jobsTable, tenantID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Job, 0, len(raw))
	for _, item := range raw {
		var it jobItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		out = append(out, it.toEntity())
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *WorkDynamoRepository) SetJobEstimate(ctx context.Context, tenantID, id string, estimateID *string) (entities.Job, error) {
	attrs, err := r.setEstimate(ctx, r.jobsTable, tenantID, id, estimateID)
	if err != nil || attrs == nil {
		return entities.Job{}, err
	}
	var it jobItem
	if err := attributevalue.UnmarshalMap(attrs, &it); err != nil {
		return entities.Job{}, err
	}
	return it.toEntity(), nil
}

func (r *WorkDynamoRepository) DeleteJob(ctx context.Context, tenantID, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.jobsTable),
		Key:       tenantKey(tenantID, id),
	})
	return err
}

func (r *WorkDynamoRepository) CreateServiceRequest(ctx context.Context, sr entities.ServiceRequest) (entities.ServiceRequest, error) {
	it := serviceRequestItem{
		TenantID:    sr.TenantID,
		ID:          sr.ID,
		CustomerID:  sr.CustomerID,
		EstimateID:  sr.EstimateID,
		Title:       sr.Title,
		Description: sr.Description,
		Status:      string(sr.Status),
		CreatedAt:   formatTime(sr.CreatedAt),
		UpdatedAt:   formatTime(sr.UpdatedAt),
	}
	if err := r.putLinked(ctx, r.requestsTable, it.TenantID, it.EstimateID, it); err != nil {
		return entities.ServiceRequest{}, err
	}
	return it.toEntity(), nil
}

func (r *WorkDynamoRepository) GetServiceRequest(ctx context.Context, tenantID, id string) (entities.ServiceRequest, error) {
	var it serviceRequestItem
	found, err := getByTenantKey(ctx, r.ddb, r.requestsTable, tenantID, id, &it)
	if err != nil || !found {
		return entities.ServiceRequest{}, err
	}
	return it.toEntity(), nil
}

func (r *WorkDynamoRepository) ListServiceRequests(ctx context.Context, tenantID string) ([]entities.ServiceRequest, error) {
	raw, err := queryByTenant(ctx, r.ddb, r.requestsTable, tenantID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.ServiceRequest, 0, len(raw))
	for _, item := range raw {
		var it serviceRequestItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		out = append(out, it.toEntity())
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *WorkDynamoRepository) SetServiceRequestEstimate(ctx context.Context, tenantID, id string, estimateID *string) (entities.ServiceRequest, error) {
	attrs, err := r.setEstimate(ctx, r.requestsTable, tenantID, id, estimateID)
	if err != nil || attrs == nil {
		return entities.ServiceRequest{}, err
	}
	var it serviceRequestItem
	if err := attributevalue.UnmarshalMap(attrs, &it); err != nil {
		return entities.ServiceRequest{}, err
	}
	return it.toEntity(), nil
}

func (r *WorkDynamoRepository) DeleteServiceRequest(ctx context.Context, tenantID, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.requestsTable),
		Key:       tenantKey(tenantID, id),
	})
	return err
}

// putLinked stores a new item, bumping the linked estimate in the same
// transaction when there is one.
func (r *WorkDynamoRepository) putLinked(ctx context.Context, table, tenantID string, estimateID *string, item interface{}) error {
	if estimateID == nil {
		return putNew(ctx, r.ddb, table, item)
	}
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			touchEstimate(r.estimatesTable, tenantID, *estimateID),
			{Put: &types.Put{
				TableName:                aws.String(table),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
		},
	})
	if cancelledAt(err, 0) {
		return interfaces.ErrLinkedEstimateMissing
	}
	return err
}

// setEstimate links or unlinks an estimate and returns the new item, or nil
// when the item does not exist.
func (r *WorkDynamoRepository) setEstimate(ctx context.Context, table, tenantID, id string, estimateID *string) (map[string]types.AttributeValue, error) {
	expr := "SET #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
	}
	names := map[string]string{
		"#id":          "id",
		"#estimate_id": "estimate_id",
		"#updated_at":  "updated_at",
	}
	if estimateID == nil {
		expr += " REMOVE #estimate_id"
		out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName:                 aws.String(table),
			Key:                       tenantKey(tenantID, id),
			ConditionExpression:       aws.String("attribute_exists(#id)"),
			UpdateExpression:          aws.String(expr),
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: vals,
			ReturnValues:              types.ReturnValueAllNew,
		})
		if err != nil {
			if isConditionFailed(err) {
				return nil, nil
			}
			return nil, err
		}
		if len(out.Attributes) == 0 {
			return nil, nil
		}
		return out.Attributes, nil
	}

	expr += ", #estimate_id = :estimate_id"
	vals[":estimate_id"] = &types.AttributeValueMemberS{Value: *estimateID}
	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			touchEstimate(r.estimatesTable, tenantID, *estimateID),
			{Update: &types.Update{
				TableName:                 aws.String(table),
				Key:                       tenantKey(tenantID, id),
				ConditionExpression:       aws.String("attribute_exists(#id)"),
				UpdateExpression:          aws.String(expr),
				ExpressionAttributeNames:  names,
				ExpressionAttributeValues: vals,
			}},
		},
	})
	switch {
	case cancelledAt(err, 0):
		return nil, interfaces.ErrLinkedEstimateMissing
	case cancelledAt(err, 1):
		return nil, nil
	case err != nil:
		return nil, err
	}

	res, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            tenantKey(tenantID, id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(res.Item) == 0 {
		return nil, nil
	}
	return res.Item, nil
}

func (it jobItem) toEntity() entities.Job {
	return entities.Job{
		ID:          it.ID,
		TenantID:    it.TenantID,
		CustomerID:  it.CustomerID,
		EstimateID:  it.EstimateID,
		Title:       it.Title,
		Status:      entities.JobStatus(it.Status),
		ScheduledAt: parseTimePtr(it.ScheduledAt),
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}

func (it serviceRequestItem) toEntity() entities.ServiceRequest {
	return entities.ServiceRequest{
		ID:          it.ID,
		TenantID:    it.TenantID,
		CustomerID:  it.CustomerID,
		EstimateID:  it.EstimateID,
		Title:       it.Title,
		Description: it.Description,
		Status:      entities.ServiceRequestStatus(it.Status),
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
