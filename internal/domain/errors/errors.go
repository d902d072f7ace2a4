package errors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrEmptyCart         = errors.New("no items selected for checkout")
	ErrMissingAddress    = errors.New("shipping address is incomplete")
	ErrInvalidStatus     = errors.New("unknown order status")
	ErrStatusNotAllowed  = errors.New("status transition not allowed")
	ErrNotCancellable    = errors.New("order can no longer be cancelled")
	ErrInvalidAdminKey   = errors.New("invalid admin key")
	ErrMaintenanceActive = errors.New("store is in maintenance mode")
)

// EligibilityError rejects a refund locally with a human-readable reason.
// It never reaches the network.
type EligibilityError struct {
	Reason string
}

func (e EligibilityError) Error() string {
	return e.Reason
}

// NotPaidReason is the reason for transactions outside the Paid status.
const NotPaidReason = "transaction not Paid"

// OrderStatusReason builds the reason for orders outside a refund-eligible status.
func OrderStatusReason(status string) string {
	return fmt.Sprintf("order status '%s' — must be Cancelled or Returned first", status)
}
