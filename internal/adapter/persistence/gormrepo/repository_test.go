package gormrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/domain/pricing"
	"fieldservice/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

var created = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func sampleEstimate(id, tenantID, number string) entities.Estimate {
	e := entities.Estimate{
		ID:             id,
		TenantID:       tenantID,
		CustomerID:     "c1",
		AddressID:      "a1",
		EstimateNumber: number,
		Status:         entities.EstimateStatusDraft,
		Title:          "Heat pump",
		CreatedAt:      created,
		UpdatedAt:      created,
		Options: []entities.EstimateOption{
			{
				ID: id + "-o2", EstimateID: id, Name: "Better", SortOrder: 1,
				DiscountType: entities.DiscountTypeNone, TaxRate: d("10"),
				LineItems: []entities.LineItem{
					{ID: id + "-l3", OptionID: id + "-o2", Type: entities.LineItemTypeEquipment, Name: "Unit", Quantity: d("1"), UnitPrice: d("500"), IsTaxable: true, IsSelected: true},
				},
			},
			{
				ID: id + "-o1", EstimateID: id, Name: "Good", SortOrder: 0,
				DiscountType: entities.DiscountTypePercentage, DiscountValue: d("10"), TaxRate: d("10"),
				LineItems: []entities.LineItem{
					{ID: id + "-l2", OptionID: id + "-o1", Type: entities.LineItemTypeService, Name: "Trip charge", Quantity: d("1"), UnitPrice: d("30"), SortOrder: 1, IsSelected: true},
					{ID: id + "-l1", OptionID: id + "-o1", Type: entities.LineItemTypeService, Name: "Tune-up", Quantity: d("2"), UnitPrice: d("50"), IsTaxable: true, IsSelected: true},
				},
			},
		},
	}
	pricing.PriceEstimate(&e)
	return e
}

func TestEstimateRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEstimateRepository(db)
	ctx := context.Background()

	if _, err := repo.Create(ctx, sampleEstimate("e1", "t1", "EST-0001")); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByID(ctx, "t1", "e1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.EstimateNumber != "EST-0001" || len(got.Options) != 2 {
		t.Fatalf("unexpected estimate: %+v", got)
	}
	if got.Options[0].Name != "Good" || got.Options[0].LineItems[0].Name != "Tune-up" {
		t.Fatalf("expected options and line items ordered by sortOrder, got %+v", got.Options)
	}
	if !got.Options[0].Total.Equal(d("126")) || !got.Total.Equal(d("676")) {
		t.Fatalf("unexpected totals: option=%s estimate=%s", got.Options[0].Total, got.Total)
	}

	other, err := repo.GetByID(ctx, "t2", "e1")
	if err != nil || other.ID != "" {
		t.Fatalf("expected no estimate across tenants, got %+v err=%v", other, err)
	}
}

func TestEstimateRepository_DuplicateNumber(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEstimateRepository(db)
	ctx := context.Background()

	if _, err := repo.Create(ctx, sampleEstimate("e1", "t1", "EST-0001")); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := repo.Create(ctx, sampleEstimate("e2", "t1", "EST-0001"))
	if !errors.Is(err, interfaces.ErrDuplicateEstimateNumber) {
		t.Fatalf("expected ErrDuplicateEstimateNumber, got %v", err)
	}
	if _, err := repo.Create(ctx, sampleEstimate("e3", "t2", "EST-0001")); err != nil {
		t.Fatalf("same number in another tenant must be allowed: %v", err)
	}
}

func TestEstimateRepository_AllocateEstimateSequence(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEstimateRepository(db)
	ctx := context.Background()

	if _, err := repo.Create(ctx, sampleEstimate("e7", "t1", "EST-0007")); err != nil {
		t.Fatalf("create: %v", err)
	}

	for _, want := range []int{8, 9, 10} {
		got, err := repo.AllocateEstimateSequence(ctx, "t1")
		if err != nil {
			t.Fatalf("allocate: %v", err)
		}
		if got != want {
			t.Fatalf("expected %d, got %d", want, got)
		}
	}

	exists, err := repo.EstimateNumberExists(ctx, "t1", "EST-0007")
	if err != nil || !exists {
		t.Fatalf("expected EST-0007 to exist, err=%v", err)
	}
	exists, _ = repo.EstimateNumberExists(ctx, "t1", "EST-0008")
	if exists {
		t.Fatalf("EST-0008 must not exist yet")
	}
}

func TestEstimateRepository_AllocateEstimateSequence_NewTenant(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEstimateRepository(db)
	ctx := context.Background()

	for _, want := range []int{1, 2, 3} {
		got, err := repo.AllocateEstimateSequence(ctx, "fresh")
		if err != nil {
			t.Fatalf("allocate %d: %v", want, err)
		}
		if got != want {
			t.Fatalf("expected %d, got %d", want, got)
		}
	}

	var counters []counterRecord
	if err := db.Where("tenant_id = ?", "fresh").Find(&counters).Error; err != nil {
		t.Fatalf("load counters: %v", err)
	}
	if len(counters) != 1 || counters[0].LastValue != 3 {
		t.Fatalf("expected one counter at 3, got %+v", counters)
	}
}

func TestEstimateRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEstimateRepository(db)
	ctx := context.Background()

	e := sampleEstimate("e1", "t1", "EST-0001")
	if _, err := repo.Create(ctx, e); err != nil {
		t.Fatalf("create: %v", err)
	}

	sentAt := created.Add(time.Hour)
	e.Status = entities.EstimateStatusSent
	e.SentAt = &sentAt
	got, err := repo.Update(ctx, e, false)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Status != entities.EstimateStatusSent || got.SentAt == nil || !got.SentAt.Equal(sentAt) || len(got.Options) != 2 {
		t.Fatalf("unexpected scalar update result: %+v", got)
	}

	e.Options = e.Options[:1]
	e.Options[0].ID = "fresh-option"
	e.Options[0].LineItems[0].ID = "fresh-item"
	e.Options[0].LineItems[0].OptionID = "fresh-option"
	pricing.PriceEstimate(&e)
	got, err = repo.Update(ctx, e, true)
	if err != nil {
		t.Fatalf("replace options: %v", err)
	}
	if len(got.Options) != 1 || got.Options[0].ID != "fresh-option" || !got.Total.Equal(d("550")) {
		t.Fatalf("unexpected replaced options: %+v", got)
	}

	var items int64
	db.Model(&lineItemRecord{}).Count(&items)
	if items != 1 {
		t.Fatalf("expected old line items removed, found %d", items)
	}

	missing := sampleEstimate("nope", "t1", "EST-0099")
	got, err = repo.Update(ctx, missing, false)
	if err != nil || got.ID != "" {
		t.Fatalf("expected zero value for missing estimate, got %+v err=%v", got, err)
	}
}

func TestEstimateRepository_DeleteAndReferences(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEstimateRepository(db)
	work := NewWorkRepository(db)
	ctx := context.Background()

	if _, err := repo.Create(ctx, sampleEstimate("e1", "t1", "EST-0001")); err != nil {
		t.Fatalf("create: %v", err)
	}
	estimateID := "e1"
	if _, err := work.CreateJob(ctx, entities.Job{ID: "j1", TenantID: "t1", CustomerID: "c1", EstimateID: &estimateID, Title: "Install", Status: entities.JobStatusScheduled, CreatedAt: created}); err != nil {
		t.Fatalf("create job: %v", err)
	}

	jobs, requests, err := repo.CountReferences(ctx, "t1", "e1")
	if err != nil || jobs != 1 || requests != 0 {
		t.Fatalf("expected 1 job reference, got %d/%d err=%v", jobs, requests, err)
	}

	t.Run("referenced estimate is kept", func(t *testing.T) {
		err := repo.Delete(ctx, "t1", "e1")
		var refErr *interfaces.EstimateReferencedError
		if !errors.As(err, &refErr) || refErr.Jobs != 1 || refErr.ServiceRequests != 0 {
			t.Fatalf("expected EstimateReferencedError{1 0}, got %v", err)
		}
		got, _ := repo.GetByID(ctx, "t1", "e1")
		if got.ID != "e1" || len(got.Options) != 2 {
			t.Fatalf("expected estimate untouched, got %+v", got)
		}
	})

	if _, err := work.SetJobEstimate(ctx, "t1", "j1", nil); err != nil {
		t.Fatalf("unlink: %v", err)
	}
	jobs, _, _ = repo.CountReferences(ctx, "t1", "e1")
	if jobs != 0 {
		t.Fatalf("expected no references after unlink, got %d", jobs)
	}

	if err := repo.Delete(ctx, "t1", "e1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	var options, items int64
	db.Model(&optionRecord{}).Count(&options)
	db.Model(&lineItemRecord{}).Count(&items)
	if options != 0 || items != 0 {
		t.Fatalf("expected cascade, found %d options and %d items", options, items)
	}
	got, _ := repo.GetByID(ctx, "t1", "e1")
	if got.ID != "" {
		t.Fatalf("expected estimate gone")
	}
}

func TestWorkRepository_LinkRequiresEstimate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEstimateRepository(db)
	work := NewWorkRepository(db)
	ctx := context.Background()

	missing := "gone"
	t.Run("create job", func(t *testing.T) {
		_, err := work.CreateJob(ctx, entities.Job{ID: "j1", TenantID: "t1", CustomerID: "c1", EstimateID: &missing, Title: "Install", Status: entities.JobStatusScheduled, CreatedAt: created})
		if !errors.Is(err, interfaces.ErrLinkedEstimateMissing) {
			t.Fatalf("expected ErrLinkedEstimateMissing, got %v", err)
		}
		if got, _ := work.GetJob(ctx, "t1", "j1"); got.ID != "" {
			t.Fatalf("job must not be stored, got %+v", got)
		}
	})

	t.Run("create service request", func(t *testing.T) {
		_, err := work.CreateServiceRequest(ctx, entities.ServiceRequest{ID: "s1", TenantID: "t1", CustomerID: "c1", EstimateID: &missing, Title: "Leak", Status: entities.ServiceRequestStatusNew, CreatedAt: created})
		if !errors.Is(err, interfaces.ErrLinkedEstimateMissing) {
			t.Fatalf("expected ErrLinkedEstimateMissing, got %v", err)
		}
	})

	t.Run("link after estimate delete", func(t *testing.T) {
		if _, err := repo.Create(ctx, sampleEstimate("e1", "t1", "EST-0001")); err != nil {
			t.Fatalf("create: %v", err)
		}
		if _, err := work.CreateServiceRequest(ctx, entities.ServiceRequest{ID: "s2", TenantID: "t1", CustomerID: "c1", Title: "Leak", Status: entities.ServiceRequestStatusNew, CreatedAt: created}); err != nil {
			t.Fatalf("create request: %v", err)
		}
		if err := repo.Delete(ctx, "t1", "e1"); err != nil {
			t.Fatalf("delete: %v", err)
		}
		estimateID := "e1"
		_, err := work.SetServiceRequestEstimate(ctx, "t1", "s2", &estimateID)
		if !errors.Is(err, interfaces.ErrLinkedEstimateMissing) {
			t.Fatalf("expected ErrLinkedEstimateMissing, got %v", err)
		}
		got, _ := work.GetServiceRequest(ctx, "t1", "s2")
		if got.EstimateID != nil {
			t.Fatalf("expected no link, got %v", *got.EstimateID)
		}
	})

	t.Run("estimate of another tenant", func(t *testing.T) {
		if _, err := repo.Create(ctx, sampleEstimate("e2", "t2", "EST-0001")); err != nil {
			t.Fatalf("create: %v", err)
		}
		other := "e2"
		_, err := work.CreateJob(ctx, entities.Job{ID: "j3", TenantID: "t1", CustomerID: "c1", EstimateID: &other, Title: "Install", Status: entities.JobStatusScheduled, CreatedAt: created})
		if !errors.Is(err, interfaces.ErrLinkedEstimateMissing) {
			t.Fatalf("expected ErrLinkedEstimateMissing, got %v", err)
		}
	})
}

func TestEstimateRepository_ListAndExpirable(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEstimateRepository(db)
	ctx := context.Background()

	past := created.Add(-24 * time.Hour)
	future := created.Add(24 * time.Hour)

	overdue := sampleEstimate("e1", "t1", "EST-0001")
	overdue.Status = entities.EstimateStatusSent
	overdue.ValidUntil = &past
	notYet := sampleEstimate("e2", "t1", "EST-0002")
	notYet.Status = entities.EstimateStatusViewed
	notYet.ValidUntil = &future
	notYet.CreatedAt = created.Add(time.Minute)
	approved := sampleEstimate("e3", "t2", "EST-0001")
	approved.Status = entities.EstimateStatusApproved
	approved.ValidUntil = &past

	for _, e := range []entities.Estimate{overdue, notYet, approved} {
		if _, err := repo.Create(ctx, e); err != nil {
			t.Fatalf("create %s: %v", e.ID, err)
		}
	}

	list, err := repo.List(ctx, "t1")
	if err != nil || len(list) != 2 || list[0].ID != "e2" {
		t.Fatalf("expected newest first for t1, got %+v err=%v", list, err)
	}

	expirable, err := repo.ListExpirable(ctx, created)
	if err != nil {
		t.Fatalf("list expirable: %v", err)
	}
	if len(expirable) != 1 || expirable[0].ID != "e1" {
		t.Fatalf("expected only e1, got %+v", expirable)
	}
}

func TestCustomerRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	if _, err := repo.CreateCustomer(ctx, entities.Customer{ID: "c1", TenantID: "t1", Name: "Ana", CreatedAt: created}); err != nil {
		t.Fatalf("create customer: %v", err)
	}
	if _, err := repo.CreateAddress(ctx, entities.Address{ID: "a1", TenantID: "t1", CustomerID: "c1", Street: "Rua 1", CreatedAt: created}); err != nil {
		t.Fatalf("create address: %v", err)
	}

	c, err := repo.GetCustomer(ctx, "t1", "c1")
	if err != nil || c.Name != "Ana" {
		t.Fatalf("unexpected customer %+v err=%v", c, err)
	}
	if c, _ := repo.GetCustomer(ctx, "t2", "c1"); c.ID != "" {
		t.Fatalf("customer leaked across tenants")
	}
	addrs, err := repo.ListAddresses(ctx, "t1", "c1")
	if err != nil || len(addrs) != 1 || addrs[0].Street != "Rua 1" {
		t.Fatalf("unexpected addresses %+v err=%v", addrs, err)
	}
}

func TestBillingPaymentRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBillingPaymentRepository(db)
	ctx := context.Background()

	first := entities.BillingPayment{ID: "p1", TenantID: "t1", EstimateID: "e1", Amount: d("126"), Date: created, Status: entities.PaymentStatusApproved,
		ProviderPayloadRaw: []byte(`{"id":1,"status":"approved"}`)}
	second := entities.BillingPayment{ID: "p2", TenantID: "t1", EstimateID: "e1", Amount: d("126"), Date: created.Add(time.Hour), Status: entities.PaymentStatusPending,
		ProviderPayloadRaw: []byte(`{`)}
	for _, p := range []entities.BillingPayment{first, second} {
		if _, err := repo.Create(ctx, p); err != nil {
			t.Fatalf("create %s: %v", p.ID, err)
		}
	}

	list, err := repo.ListByEstimateID(ctx, "t1", "e1")
	if err != nil || len(list) != 2 {
		t.Fatalf("expected 2 payments, got %+v err=%v", list, err)
	}
	if list[0].ID != "p2" || list[1].ProviderPayload["status"] != "approved" {
		t.Fatalf("unexpected payments: %+v", list)
	}
}
