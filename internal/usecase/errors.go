package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTenantID     = errors.New("missing tenant id")
	ErrInvalidEstimateID   = errors.New("invalid estimate id")
	ErrInvalidCustomerID   = errors.New("customerId is required")
	ErrInvalidAddressID    = errors.New("addressId is required")
	ErrInvalidStatus       = errors.New("invalid estimate status")
	ErrNoOptions           = errors.New("at least one option is required")
	ErrNoLineItems         = errors.New("each option requires at least one line item")
	ErrInvalidQuantity     = errors.New("line item quantity must be greater than zero")
	ErrInvalidLineItemName = errors.New("line item name is required")
	ErrInvalidLineItemType = errors.New("invalid line item type")
	ErrNegativeAmount      = errors.New("discount value and tax rate must not be negative")
	ErrInvalidName         = errors.New("name is required")
	ErrInvalidID           = errors.New("invalid id")
	ErrInvalidStreet       = errors.New("street is required")

	ErrEstimateNotFound       = errors.New("estimate not found")
	ErrCustomerNotFound       = errors.New("customer not found")
	ErrAddressNotFound        = errors.New("address not found")
	ErrJobNotFound            = errors.New("job not found")
	ErrServiceRequestNotFound = errors.New("service request not found")

	ErrEstimateInUse           = errors.New("estimate is referenced")
	ErrEstimateNumberExhausted = errors.New("could not allocate a unique estimate number")
)

// EstimateInUseError reports the references that block an estimate delete.
type EstimateInUseError struct {
	Jobs            int
	ServiceRequests int
}

func (e *EstimateInUseError) Error() string {
	return fmt.Sprintf("Cannot delete estimate: it is referenced by %d job(s) and %d service request(s)", e.Jobs, e.ServiceRequests)
}

func (e *EstimateInUseError) Is(target error) bool {
	return target == ErrEstimateInUse
}

// IsValidationError reports whether err stems from invalid caller input.
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrInvalidTenantID, ErrInvalidEstimateID, ErrInvalidCustomerID, ErrInvalidAddressID,
		ErrInvalidStatus, ErrNoOptions, ErrNoLineItems, ErrInvalidQuantity,
		ErrInvalidLineItemName, ErrInvalidLineItemType, ErrNegativeAmount,
		ErrInvalidName, ErrInvalidID, ErrInvalidStreet, ErrInvalidPaymentPayload,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsNotFoundError reports whether err means a tenant-scoped lookup missed.
func IsNotFoundError(err error) bool {
	for _, target := range []error{
		ErrEstimateNotFound, ErrCustomerNotFound, ErrAddressNotFound,
		ErrJobNotFound, ErrServiceRequestNotFound, ErrBillingPaymentNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
