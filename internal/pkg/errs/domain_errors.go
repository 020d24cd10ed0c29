package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Catalog errors
	ErrProductNotFound = errors.New("product not found")
	ErrVariantNotFound = errors.New("variant not found")

	// Cart errors
	ErrCartNotFound = errors.New("cart not found")
	ErrEmptyCart    = errors.New("cart is empty")

	// Booking errors
	ErrInvalidSlot  = errors.New("invalid booking slot")
	ErrSlotConflict = errors.New("slot conflict")

	// Checkout / order errors
	ErrPaymentNotCompleted = errors.New("payment not completed")
	ErrOrderPending        = errors.New("order pending manual reconciliation")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrProviderFailure         = errors.New("provider call failed")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
