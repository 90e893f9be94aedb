package repository

import (
	"context"
	"errors"
	"testing"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func cancelled(codes ...string) error {
	reasons := make([]types.CancellationReason, 0, len(codes))
	for _, c := range codes {
		reasons = append(reasons, types.CancellationReason{Code: aws.String(c)})
	}
	return &types.TransactionCanceledException{CancellationReasons: reasons}
}

func TestWorkDynamoRepository_SetJobEstimate(t *testing.T) {
	ctx := context.Background()
	estimateID := "est-1"

	t.Run("bumps the estimate with the link", func(t *testing.T) {
		var got *dynamodb.TransactWriteItemsInput
		repo := NewWorkDynamoRepository(&fakeDynamo{
			transact: func(in *dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
				got = in
				return &dynamodb.TransactWriteItemsOutput{}, nil
			},
			getItem: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
				return &dynamodb.GetItemOutput{Item: map[string]types.AttributeValue{
					"tenant_id":   &types.AttributeValueMemberS{Value: "tenant-1"},
					"id":          &types.AttributeValueMemberS{Value: "job-1"},
					"estimate_id": &types.AttributeValueMemberS{Value: estimateID},
				}}, nil
			},
		})

		j, err := repo.SetJobEstimate(ctx, "tenant-1", "job-1", &estimateID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if j.EstimateID == nil || *j.EstimateID != estimateID {
			t.Fatalf("unexpected job: %+v", j)
		}
		if got == nil || len(got.TransactItems) != 2 {
			t.Fatalf("expected two transact items, got %+v", got)
		}
		touch := got.TransactItems[0].Update
		if touch == nil || aws.ToString(touch.TableName) != repo.estimatesTable || aws.ToString(touch.UpdateExpression) != "ADD #ref_version :one" {
			t.Fatalf("expected estimate version bump first, got %+v", got.TransactItems[0])
		}
	})

	t.Run("estimate already deleted", func(t *testing.T) {
		repo := NewWorkDynamoRepository(&fakeDynamo{
			transact: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
				return nil, cancelled("ConditionalCheckFailed", "None")
			},
		})

		_, err := repo.SetJobEstimate(ctx, "tenant-1", "job-1", &estimateID)
		if !errors.Is(err, interfaces.ErrLinkedEstimateMissing) {
			t.Fatalf("expected ErrLinkedEstimateMissing, got %v", err)
		}
	})

	t.Run("missing job", func(t *testing.T) {
		repo := NewWorkDynamoRepository(&fakeDynamo{
			transact: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
				return nil, cancelled("None", "ConditionalCheckFailed")
			},
		})

		j, err := repo.SetJobEstimate(ctx, "tenant-1", "job-9", &estimateID)
		if err != nil || j.ID != "" {
			t.Fatalf("expected zero value, got %+v err=%v", j, err)
		}
	})

	t.Run("unlink skips the estimate", func(t *testing.T) {
		repo := NewWorkDynamoRepository(&fakeDynamo{
			updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
				if aws.ToString(in.TableName) != tableName("JOBS_TABLE", defaultJobsTableName) {
					t.Fatalf("unexpected table %s", aws.ToString(in.TableName))
				}
				return &dynamodb.UpdateItemOutput{Attributes: map[string]types.AttributeValue{
					"tenant_id": &types.AttributeValueMemberS{Value: "tenant-1"},
					"id":        &types.AttributeValueMemberS{Value: "job-1"},
				}}, nil
			},
		})

		j, err := repo.SetJobEstimate(ctx, "tenant-1", "job-1", nil)
		if err != nil || j.ID != "job-1" || j.EstimateID != nil {
			t.Fatalf("unexpected job %+v err=%v", j, err)
		}
	})
}

func TestWorkDynamoRepository_CreateServiceRequest(t *testing.T) {
	estimateID := "est-1"
	repo := NewWorkDynamoRepository(&fakeDynamo{
		transact: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
			return nil, cancelled("ConditionalCheckFailed", "None")
		},
	})

	_, err := repo.CreateServiceRequest(context.Background(), entities.ServiceRequest{
		ID: "sr-1", TenantID: "tenant-1", CustomerID: "cust-1", EstimateID: &estimateID,
		Title: "Leak", Status: entities.ServiceRequestStatusNew,
	})
	if !errors.Is(err, interfaces.ErrLinkedEstimateMissing) {
		t.Fatalf("expected ErrLinkedEstimateMissing, got %v", err)
	}
}
