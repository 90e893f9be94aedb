package interfaces

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fieldservice/internal/domain/entities"
)

// ErrDuplicateEstimateNumber is returned by Create when the tenant already
// holds the estimate number.
var ErrDuplicateEstimateNumber = errors.New("duplicate estimate number")

// ErrLinkedEstimateMissing is returned by work writes whose estimate no longer
// exists when the link is stored.
var ErrLinkedEstimateMissing = errors.New("linked estimate does not exist")

// EstimateReferencedError is returned by Delete while jobs or service
// requests still point at the estimate.
type EstimateReferencedError struct {
	Jobs            int
	ServiceRequests int
}

func (e *EstimateReferencedError) Error() string {
	return fmt.Sprintf("estimate referenced by %d job(s) and %d service request(s)", e.Jobs, e.ServiceRequests)
}

// IEstimateRepository abstracts persistence for estimates with their options
// and line items.
//
// Reads return a zero-value Estimate (empty ID) when nothing matches the
// tenant and id. Create, Update and Delete write the estimate and its nested
// collections atomically.
type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.Estimate, error)
	List(ctx context.Context, tenantID string) ([]entities.Estimate, error)
	// Update persists scalar fields and, when replaceOptions is set, deletes
	// the stored options and line items and inserts e.Options in their place.
	Update(ctx context.Context, e entities.Estimate, replaceOptions bool) (entities.Estimate, error)
	// Delete checks references and removes the estimate in one atomic step,
	// failing with *EstimateReferencedError when anything still links to it.
	// Deleting a missing estimate is a no-op.
	Delete(ctx context.Context, tenantID, id string) error

	// CountReferences reports how many jobs and service requests point at
	// the estimate.
	CountReferences(ctx context.Context, tenantID, id string) (jobs int, serviceRequests int, err error)

	// AllocateEstimateSequence atomically increments and returns the tenant's
	// estimate counter. A tenant without a counter is seeded from its newest
	// estimate number.
	AllocateEstimateSequence(ctx context.Context, tenantID string) (int, error)
	EstimateNumberExists(ctx context.Context, tenantID, number string) (bool, error)

	// ListExpirable returns estimates of any tenant in SENT or VIEWED whose
	// ValidUntil is before now.
	ListExpirable(ctx context.Context, now time.Time) ([]entities.Estimate, error)
}
