// Package gormrepo stores estimates, customers, work records and payments in
// a relational database through GORM. Postgres is used in production and
// SQLite locally and in tests.
package gormrepo

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type estimateRecord struct {
	ID                 string `gorm:"primaryKey;size:36"`
	TenantID           string `gorm:"size:64;not null;index;uniqueIndex:idx_estimates_tenant_number,priority:1"`
	CustomerID         string `gorm:"size:36;not null;index"`
	AddressID          string `gorm:"size:36;not null"`
	EstimateNumber     string `gorm:"size:32;not null;uniqueIndex:idx_estimates_tenant_number,priority:2"`
	Status             string `gorm:"size:16;not null;index"`
	Title              string
	Message            string
	TermsAndConditions string
	ValidUntil         *time.Time `gorm:"index"`

	SentAt     *time.Time
	ViewedAt   *time.Time
	ApprovedAt *time.Time
	DeclinedAt *time.Time
	ExpiredAt  *time.Time

	Subtotal       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TaxAmount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Total          decimal.Decimal `gorm:"type:decimal(15,2);not null"`

	Options []optionRecord `gorm:"foreignKey:EstimateID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

func (estimateRecord) TableName() string { return "estimates" }

type optionRecord struct {
	ID             string `gorm:"primaryKey;size:36"`
	EstimateID     string `gorm:"size:36;not null;index"`
	Name           string `gorm:"not null"`
	Description    string
	CoverImageURL  string
	IsRecommended  bool
	DiscountType   string          `gorm:"size:16;not null"`
	DiscountValue  decimal.Decimal `gorm:"type:decimal(15,4);not null"`
	TaxRate        decimal.Decimal `gorm:"type:decimal(7,4);not null"`
	SortOrder      int
	Subtotal       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TaxAmount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Total          decimal.Decimal `gorm:"type:decimal(15,2);not null"`

	LineItems []lineItemRecord `gorm:"foreignKey:OptionID;constraint:OnDelete:CASCADE"`
}

func (optionRecord) TableName() string { return "estimate_options" }

type lineItemRecord struct {
	ID          string `gorm:"primaryKey;size:36"`
	OptionID    string `gorm:"size:36;not null;index"`
	Type        string `gorm:"size:16;not null"`
	Name        string `gorm:"not null"`
	Description string
	Quantity    decimal.Decimal `gorm:"type:decimal(15,4);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(15,4);not null"`
	UnitCost    decimal.Decimal `gorm:"type:decimal(15,4);not null"`
	IsTaxable   bool
	IsOptional  bool
	IsSelected  bool
	SortOrder   int
}

func (lineItemRecord) TableName() string { return "estimate_line_items" }

// counterRecord holds the last estimate sequence value handed out to a
// tenant.
type counterRecord struct {
	TenantID  string `gorm:"primaryKey;size:64"`
	LastValue int    `gorm:"not null"`
	UpdatedAt time.Time
}

func (counterRecord) TableName() string { return "estimate_counters" }

type customerRecord struct {
	ID        string `gorm:"primaryKey;size:36"`
	TenantID  string `gorm:"size:64;not null;index"`
	Name      string `gorm:"not null"`
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (customerRecord) TableName() string { return "customers" }

type addressRecord struct {
	ID         string `gorm:"primaryKey;size:36"`
	TenantID   string `gorm:"size:64;not null;index"`
	CustomerID string `gorm:"size:36;not null;index"`
	Street     string `gorm:"not null"`
	City       string
	State      string
	PostalCode string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (addressRecord) TableName() string { return "addresses" }

type jobRecord struct {
	ID          string  `gorm:"primaryKey;size:36"`
	TenantID    string  `gorm:"size:64;not null;index"`
	CustomerID  string  `gorm:"size:36;not null"`
	EstimateID  *string `gorm:"size:36;index"`
	Title       string  `gorm:"not null"`
	Status      string  `gorm:"size:16;not null"`
	ScheduledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (jobRecord) TableName() string { return "jobs" }

type serviceRequestRecord struct {
	ID          string  `gorm:"primaryKey;size:36"`
	TenantID    string  `gorm:"size:64;not null;index"`
	CustomerID  string  `gorm:"size:36;not null"`
	EstimateID  *string `gorm:"size:36;index"`
	Title       string  `gorm:"not null"`
	Description string
	Status      string `gorm:"size:16;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (serviceRequestRecord) TableName() string { return "service_requests" }

type paymentRecord struct {
	ID              string          `gorm:"primaryKey;size:64"`
	TenantID        string          `gorm:"size:64;not null;index:idx_payments_tenant_estimate,priority:1"`
	EstimateID      string          `gorm:"size:36;not null;index:idx_payments_tenant_estimate,priority:2"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date            time.Time       `gorm:"not null"`
	Status          string          `gorm:"size:16;not null"`
	ProviderPayload datatypes.JSON
}

func (paymentRecord) TableName() string { return "billing_payments" }

// AutoMigrate creates or updates every table this package writes to.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&customerRecord{},
		&addressRecord{},
		&estimateRecord{},
		&optionRecord{},
		&lineItemRecord{},
		&counterRecord{},
		&jobRecord{},
		&serviceRequestRecord{},
		&paymentRecord{},
	)
}
