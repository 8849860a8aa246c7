package usecase

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Every error a usecase returns on purpose wraps exactly one of
// these, so callers can branch with errors.Is. PartialFailureError also
// carries the underlying cause.
var (
	ErrNotFound         = errors.New("not found")
	ErrAlreadyPaid      = errors.New("payment already paid")
	ErrForbidden        = errors.New("forbidden")
	ErrValidationFailed = errors.New("validation failed")
	ErrPayloadTooLarge  = errors.New("payload too large")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrUnavailable      = errors.New("unavailable")
	ErrPartialFailure   = errors.New("partial failure")
	ErrConflict         = errors.New("conflict")
)

var (
	ErrRentalPaymentNotFound = fmt.Errorf("rental payment %w", ErrNotFound)
	ErrRentalNotFound        = fmt.Errorf("rental %w", ErrNotFound)
	ErrPaymentProofNotFound  = fmt.Errorf("payment proof %w", ErrNotFound)

	ErrInvalidPaymentID   = fmt.Errorf("invalid payment_id: %w", ErrValidationFailed)
	ErrInvalidRentalID    = fmt.Errorf("invalid rental_id: %w", ErrValidationFailed)
	ErrInvalidTenantID    = fmt.Errorf("invalid tenant id: %w", ErrValidationFailed)
	ErrInvalidPaidAt      = fmt.Errorf("invalid paid_at: %w", ErrValidationFailed)
	ErrEmptyProof         = fmt.Errorf("payment proof is required: %w", ErrValidationFailed)
	ErrInvalidProofImage  = fmt.Errorf("payment proof is not a supported image: %w", ErrValidationFailed)
	ErrInvalidMPPayload   = fmt.Errorf("invalid mercado pago payload: %w", ErrValidationFailed)
	ErrGatewayNotApproved = fmt.Errorf("payment not approved by provider: %w", ErrValidationFailed)

	ErrProofTooLarge           = fmt.Errorf("payment proof exceeds size limit: %w", ErrPayloadTooLarge)
	ErrProofTooManyPixels      = fmt.Errorf("payment proof exceeds pixel limit: %w", ErrPayloadTooLarge)
	ErrPaymentNotOwned         = fmt.Errorf("payment does not belong to caller: %w", ErrForbidden)
	ErrProofSubmissionConflict = fmt.Errorf("concurrent proof submission: %w", ErrConflict)
	ErrPaymentChanged          = fmt.Errorf("payment changed concurrently: %w", ErrConflict)

	ErrPaymentGatewayNotConfigured    = fmt.Errorf("payment gateway not configured: %w", ErrUnavailable)
	ErrPaymentGatewayBadRequest       = fmt.Errorf("payment gateway bad request: %w", ErrValidationFailed)
	ErrPaymentGatewayUnauthorized     = fmt.Errorf("payment gateway unauthorized: %w", ErrUnauthorized)
	ErrPaymentGatewayInvalidUsers     = fmt.Errorf("payment gateway invalid users involved: %w", ErrValidationFailed)
	ErrPaymentGatewayCustomerNotFound = fmt.Errorf("payment gateway customer not found: %w", ErrValidationFailed)
)

// PartialFailureError reports a payment that was marked paid while the
// follow-up rental update failed. The payment write is not rolled back;
// ReconcileOccupancy repairs the rental.
type PartialFailureError struct {
	PaymentID string
	RentalID  string
	Err       error
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("payment %s marked paid but rental %s was not updated: %v", e.PaymentID, e.RentalID, e.Err)
}

func (e *PartialFailureError) Unwrap() []error {
	return []error{ErrPartialFailure, e.Err}
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}

// classifyGatewayError maps provider failures onto usecase errors.
func classifyGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return err
}
