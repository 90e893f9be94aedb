package usecase

import (
	"context"
	"errors"
	"testing"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"
	mock_interfaces "fieldservice/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type workFixture struct {
	repo      *mock_interfaces.MockIWorkRepository
	customers *mock_interfaces.MockICustomerRepository
	estimates *mock_interfaces.MockIEstimateRepository
	uc        *WorkUseCase
}

func newWorkFixture(t *testing.T) workFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := workFixture{
		repo:      mock_interfaces.NewMockIWorkRepository(ctrl),
		customers: mock_interfaces.NewMockICustomerRepository(ctrl),
		estimates: mock_interfaces.NewMockIEstimateRepository(ctrl),
	}
	f.uc = NewWorkUseCase(f.repo, f.customers, f.estimates, nil)
	return f
}

func strPtr(s string) *string { return &s }

func TestWorkUseCase_CreateJob(t *testing.T) {
	ctx := context.Background()

	t.Run("links an existing estimate", func(t *testing.T) {
		f := newWorkFixture(t)
		f.customers.EXPECT().GetCustomer(gomock.Any(), "t1", "c1").Return(entities.Customer{ID: "c1"}, nil)
		f.estimates.EXPECT().GetByID(gomock.Any(), "t1", "e1").Return(entities.Estimate{ID: "e1"}, nil)
		f.repo.EXPECT().CreateJob(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, j entities.Job) (entities.Job, error) {
			return j, nil
		})

		j, err := f.uc.CreateJob(ctx, entities.Job{TenantID: "t1", CustomerID: "c1", Title: "Install", EstimateID: strPtr(" e1 ")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if j.ID == "" || j.Status != entities.JobStatusScheduled || j.EstimateID == nil || *j.EstimateID != "e1" {
			t.Fatalf("unexpected job: %+v", j)
		}
	})

	t.Run("unknown estimate", func(t *testing.T) {
		f := newWorkFixture(t)
		f.customers.EXPECT().GetCustomer(gomock.Any(), "t1", "c1").Return(entities.Customer{ID: "c1"}, nil)
		f.estimates.EXPECT().GetByID(gomock.Any(), "t1", "e9").Return(entities.Estimate{}, nil)

		_, err := f.uc.CreateJob(ctx, entities.Job{TenantID: "t1", CustomerID: "c1", Title: "Install", EstimateID: strPtr("e9")})
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("estimate deleted before the write", func(t *testing.T) {
		f := newWorkFixture(t)
		f.customers.EXPECT().GetCustomer(gomock.Any(), "t1", "c1").Return(entities.Customer{ID: "c1"}, nil)
		f.estimates.EXPECT().GetByID(gomock.Any(), "t1", "e1").Return(entities.Estimate{ID: "e1"}, nil)
		f.repo.EXPECT().CreateJob(gomock.Any(), gomock.Any()).Return(entities.Job{}, interfaces.ErrLinkedEstimateMissing)

		_, err := f.uc.CreateJob(ctx, entities.Job{TenantID: "t1", CustomerID: "c1", Title: "Install", EstimateID: strPtr("e1")})
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("title required", func(t *testing.T) {
		f := newWorkFixture(t)
		if _, err := f.uc.CreateJob(ctx, entities.Job{TenantID: "t1", CustomerID: "c1"}); !errors.Is(err, ErrInvalidName) {
			t.Fatalf("expected ErrInvalidName, got %v", err)
		}
	})
}

func TestWorkUseCase_LinkJobEstimate(t *testing.T) {
	ctx := context.Background()

	t.Run("unlink with nil", func(t *testing.T) {
		f := newWorkFixture(t)
		f.repo.EXPECT().GetJob(gomock.Any(), "t1", "j1").Return(entities.Job{ID: "j1", TenantID: "t1", EstimateID: strPtr("e1")}, nil)
		f.repo.EXPECT().SetJobEstimate(gomock.Any(), "t1", "j1", nil).Return(entities.Job{ID: "j1", TenantID: "t1"}, nil)

		j, err := f.uc.LinkJobEstimate(ctx, "t1", "j1", nil)
		if err != nil || j.EstimateID != nil {
			t.Fatalf("expected unlinked job, got %+v err=%v", j, err)
		}
	})

	t.Run("missing job", func(t *testing.T) {
		f := newWorkFixture(t)
		f.repo.EXPECT().GetJob(gomock.Any(), "t1", "j9").Return(entities.Job{}, nil)

		if _, err := f.uc.LinkJobEstimate(ctx, "t1", "j9", strPtr("e1")); !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})
}

func TestWorkUseCase_ServiceRequests(t *testing.T) {
	ctx := context.Background()

	t.Run("create defaults to NEW", func(t *testing.T) {
		f := newWorkFixture(t)
		f.customers.EXPECT().GetCustomer(gomock.Any(), "t1", "c1").Return(entities.Customer{ID: "c1"}, nil)
		f.repo.EXPECT().CreateServiceRequest(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, sr entities.ServiceRequest) (entities.ServiceRequest, error) {
			return sr, nil
		})

		sr, err := f.uc.CreateServiceRequest(ctx, entities.ServiceRequest{TenantID: "t1", CustomerID: "c1", Title: "Leak"})
		if err != nil || sr.Status != entities.ServiceRequestStatusNew || sr.EstimateID != nil {
			t.Fatalf("unexpected service request: %+v err=%v", sr, err)
		}
	})

	t.Run("delete missing", func(t *testing.T) {
		f := newWorkFixture(t)
		f.repo.EXPECT().GetServiceRequest(gomock.Any(), "t1", "s9").Return(entities.ServiceRequest{}, nil)

		if err := f.uc.DeleteServiceRequest(ctx, "t1", "s9"); !errors.Is(err, ErrServiceRequestNotFound) {
			t.Fatalf("expected ErrServiceRequestNotFound, got %v", err)
		}
	})

	t.Run("link checks the estimate", func(t *testing.T) {
		f := newWorkFixture(t)
		f.repo.EXPECT().GetServiceRequest(gomock.Any(), "t1", "s1").Return(entities.ServiceRequest{ID: "s1", TenantID: "t1"}, nil)
		f.estimates.EXPECT().GetByID(gomock.Any(), "t1", "e1").Return(entities.Estimate{ID: "e1"}, nil)
		f.repo.EXPECT().SetServiceRequestEstimate(gomock.Any(), "t1", "s1", gomock.Any()).Return(entities.ServiceRequest{ID: "s1", EstimateID: strPtr("e1")}, nil)

		sr, err := f.uc.LinkServiceRequestEstimate(ctx, "t1", "s1", strPtr("e1"))
		if err != nil || sr.EstimateID == nil {
			t.Fatalf("expected linked service request, got %+v err=%v", sr, err)
		}
	})
}
