package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// fakeDynamo answers only the calls a test wires up.
type fakeDynamo struct {
	getItem    func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error)
	updateItem func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error)
	query      func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error)
	transact   func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error)
	deleteItem func(*dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error)
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return f.getItem(in)
}

func (f *fakeDynamo) PutItem(context.Context, *dynamodb.PutItemInput, ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	return f.updateItem(in)
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	if f.deleteItem == nil {
		return &dynamodb.DeleteItemOutput{}, nil
	}
	return f.deleteItem(in)
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	return f.query(in)
}

func (f *fakeDynamo) Scan(context.Context, *dynamodb.ScanInput, ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	return &dynamodb.ScanOutput{}, nil
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	return f.transact(in)
}

func sampleEstimate() entities.Estimate {
	created := time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)
	valid := created.Add(30 * 24 * time.Hour)
	return entities.Estimate{
		ID:             "est-1",
		TenantID:       "tenant-1",
		CustomerID:     "cust-1",
		AddressID:      "addr-1",
		EstimateNumber: "EST-0007",
		Status:         entities.EstimateStatusDraft,
		ValidUntil:     &valid,
		Subtotal:       decimal.NewFromInt(130),
		DiscountAmount: decimal.NewFromInt(10),
		TaxAmount:      decimal.NewFromInt(6),
		Total:          decimal.NewFromInt(126),
		Options: []entities.EstimateOption{
			{ID: "opt-2", Name: "Better", SortOrder: 1, DiscountType: entities.DiscountTypeNone},
			{
				ID:           "opt-1",
				Name:         "Good",
				SortOrder:    0,
				DiscountType: entities.DiscountTypeFixedAmount,
				TaxRate:      decimal.NewFromInt(5),
				LineItems: []entities.LineItem{
					{ID: "li-1", Name: "Labor", Quantity: decimal.RequireFromString("2.5"), UnitPrice: decimal.NewFromInt(40), IsTaxable: true, IsSelected: true},
				},
			},
		},
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestEstimateItem_Mapping(t *testing.T) {
	e := sampleEstimate()
	got := fromEstimateItem(toEstimateItem(e))

	if got.ID != e.ID || got.EstimateNumber != "EST-0007" || !got.Total.Equal(e.Total) {
		t.Fatalf("unexpected estimate: %+v", got)
	}
	if got.ValidUntil == nil || !got.ValidUntil.Equal(*e.ValidUntil) || got.SentAt != nil {
		t.Fatalf("unexpected timestamps: %v %v", got.ValidUntil, got.SentAt)
	}
	if len(got.Options) != 2 || got.Options[0].Name != "Good" {
		t.Fatalf("expected options ordered by sortOrder, got %+v", got.Options)
	}
	li := got.Options[0].LineItems[0]
	if li.OptionID != "opt-1" || !li.Quantity.Equal(decimal.RequireFromString("2.5")) || !li.LineTotal().Equal(decimal.NewFromInt(100)) {
		t.Fatalf("unexpected line item: %+v", li)
	}
}

func TestFormatTime_SortsLexically(t *testing.T) {
	early := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	late := early.Add(1500 * time.Millisecond)
	if !(formatTime(early) < formatTime(late)) {
		t.Fatalf("expected %s < %s", formatTime(early), formatTime(late))
	}
}

func TestEstimateDynamoRepository_Create(t *testing.T) {
	t.Run("writes estimate and number reservation together", func(t *testing.T) {
		var got *dynamodb.TransactWriteItemsInput
		repo := NewEstimateDynamoRepository(&fakeDynamo{
			transact: func(in *dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
				got = in
				return &dynamodb.TransactWriteItemsOutput{}, nil
			},
		})

		created, err := repo.Create(context.Background(), sampleEstimate())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Options[0].Name != "Good" {
			t.Fatalf("expected sorted options, got %+v", created.Options)
		}
		if got == nil || len(got.TransactItems) != 2 {
			t.Fatalf("expected two transact items, got %+v", got)
		}
		if aws.ToString(got.TransactItems[1].Put.TableName) != repo.numbersTable {
			t.Fatalf("expected number reservation in %s", repo.numbersTable)
		}
	})

	t.Run("taken number maps to duplicate error", func(t *testing.T) {
		repo := NewEstimateDynamoRepository(&fakeDynamo{
			transact: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
				return nil, &types.TransactionCanceledException{
					CancellationReasons: []types.CancellationReason{
						{Code: aws.String("None")},
						{Code: aws.String("ConditionalCheckFailed")},
					},
				}
			},
		})

		_, err := repo.Create(context.Background(), sampleEstimate())
		if !errors.Is(err, interfaces.ErrDuplicateEstimateNumber) {
			t.Fatalf("expected ErrDuplicateEstimateNumber, got %v", err)
		}
	})
}

func TestEstimateDynamoRepository_AllocateEstimateSequence(t *testing.T) {
	t.Run("seeds a missing counter from the newest estimate", func(t *testing.T) {
		older, _ := attributevalue.MarshalMap(estimateItem{EstimateNumber: "EST-0003", CreatedAt: formatTime(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))})
		newer, _ := attributevalue.MarshalMap(estimateItem{EstimateNumber: "EST-0007", CreatedAt: formatTime(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))})

		var expr string
		repo := NewEstimateDynamoRepository(&fakeDynamo{
			getItem: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
				return &dynamodb.GetItemOutput{}, nil
			},
			query: func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
				return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{newer, older}}, nil
			},
			updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
				expr = aws.ToString(in.UpdateExpression)
				seed := in.ExpressionAttributeValues[":seed"].(*types.AttributeValueMemberN).Value
				if seed != "7" {
					t.Fatalf("expected seed 7, got %s", seed)
				}
				return &dynamodb.UpdateItemOutput{Attributes: map[string]types.AttributeValue{
					"last_value": &types.AttributeValueMemberN{Value: "8"},
				}}, nil
			},
		})

		next, err := repo.AllocateEstimateSequence(context.Background(), "tenant-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next != 8 {
			t.Fatalf("expected 8, got %d", next)
		}
		if !strings.Contains(expr, "if_not_exists") {
			t.Fatalf("expected atomic increment expression, got %q", expr)
		}
	})

	t.Run("existing counter skips the seed query", func(t *testing.T) {
		repo := NewEstimateDynamoRepository(&fakeDynamo{
			getItem: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
				return &dynamodb.GetItemOutput{Item: map[string]types.AttributeValue{
					"tenant_id":  &types.AttributeValueMemberS{Value: "tenant-1"},
					"last_value": &types.AttributeValueMemberN{Value: "41"},
				}}, nil
			},
			query: func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
				t.Fatalf("query must not run for an existing counter")
				return nil, nil
			},
			updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
				return &dynamodb.UpdateItemOutput{Attributes: map[string]types.AttributeValue{
					"last_value": &types.AttributeValueMemberN{Value: "42"},
				}}, nil
			},
		})

		next, err := repo.AllocateEstimateSequence(context.Background(), "tenant-1")
		if err != nil || next != 42 {
			t.Fatalf("expected 42, got %d (%v)", next, err)
		}
	})
}

func TestEstimateDynamoRepository_UpdateMissing(t *testing.T) {
	repo := NewEstimateDynamoRepository(&fakeDynamo{
		updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			if !strings.Contains(aws.ToString(in.UpdateExpression), "REMOVE #sent_at") {
				t.Fatalf("expected unset timestamps to be removed, got %q", aws.ToString(in.UpdateExpression))
			}
			if _, ok := in.ExpressionAttributeValues[":options"]; ok {
				t.Fatalf("options must not be written without replaceOptions")
			}
			return nil, &types.ConditionalCheckFailedException{}
		},
	})

	got, err := repo.Update(context.Background(), sampleEstimate(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "" {
		t.Fatalf("expected zero value for a missing estimate, got %+v", got)
	}
}

func TestEstimateDynamoRepository_Delete(t *testing.T) {
	stored := func(version string) *dynamodb.GetItemOutput {
		item := map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "est-1"}}
		if version != "" {
			item["ref_version"] = &types.AttributeValueMemberN{Value: version}
		}
		return &dynamodb.GetItemOutput{Item: item}
	}

	t.Run("referenced estimate is kept", func(t *testing.T) {
		repo := NewEstimateDynamoRepository(&fakeDynamo{
			getItem: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) { return stored(""), nil },
			query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
				if aws.ToString(in.TableName) == tableName("JOBS_TABLE", defaultJobsTableName) {
					return &dynamodb.QueryOutput{Count: 2}, nil
				}
				return &dynamodb.QueryOutput{Count: 1}, nil
			},
			deleteItem: func(*dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error) {
				t.Fatalf("referenced estimate must not be deleted")
				return nil, nil
			},
		})

		err := repo.Delete(context.Background(), "tenant-1", "est-1")
		var refErr *interfaces.EstimateReferencedError
		if !errors.As(err, &refErr) || refErr.Jobs != 2 || refErr.ServiceRequests != 1 {
			t.Fatalf("expected EstimateReferencedError{2 1}, got %v", err)
		}
	})

	t.Run("recounts when a link lands in between", func(t *testing.T) {
		versions := []string{"1", "2"}
		gets, deletes := 0, 0
		repo := NewEstimateDynamoRepository(&fakeDynamo{
			getItem: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
				out := stored(versions[gets])
				gets++
				return out, nil
			},
			query: func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
				return &dynamodb.QueryOutput{Count: 0}, nil
			},
			deleteItem: func(in *dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error) {
				deletes++
				v, ok := in.ExpressionAttributeValues[":ref_version"].(*types.AttributeValueMemberN)
				if !ok || aws.ToString(in.ConditionExpression) != "#ref_version = :ref_version" {
					t.Fatalf("expected version condition, got %q", aws.ToString(in.ConditionExpression))
				}
				if v.Value == "1" {
					return nil, &types.ConditionalCheckFailedException{}
				}
				return &dynamodb.DeleteItemOutput{}, nil
			},
		})

		if err := repo.Delete(context.Background(), "tenant-1", "est-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gets != 2 || deletes != 2 {
			t.Fatalf("expected a second attempt, got %d reads and %d deletes", gets, deletes)
		}
	})

	t.Run("never linked estimate", func(t *testing.T) {
		var cond string
		repo := NewEstimateDynamoRepository(&fakeDynamo{
			getItem: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) { return stored(""), nil },
			query: func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
				return &dynamodb.QueryOutput{}, nil
			},
			deleteItem: func(in *dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error) {
				cond = aws.ToString(in.ConditionExpression)
				return &dynamodb.DeleteItemOutput{}, nil
			},
		})

		if err := repo.Delete(context.Background(), "tenant-1", "est-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cond != "attribute_not_exists(#ref_version)" {
			t.Fatalf("unexpected condition %q", cond)
		}
	})
}
