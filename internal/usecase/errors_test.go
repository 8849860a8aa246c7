package usecase

import (
	"errors"
	"testing"
)

func TestErrorsWrapOneKind(t *testing.T) {
	kinds := []error{
		ErrNotFound, ErrAlreadyPaid, ErrForbidden, ErrValidationFailed, ErrPayloadTooLarge,
		ErrUnauthorized, ErrUnavailable, ErrPartialFailure, ErrConflict,
	}
	errs := []error{
		ErrRentalPaymentNotFound, ErrRentalNotFound, ErrPaymentProofNotFound,
		ErrInvalidPaymentID, ErrInvalidRentalID, ErrInvalidTenantID, ErrInvalidPaidAt,
		ErrEmptyProof, ErrInvalidProofImage, ErrInvalidMPPayload, ErrGatewayNotApproved,
		ErrProofTooLarge, ErrProofTooManyPixels, ErrPaymentNotOwned,
		ErrProofSubmissionConflict, ErrPaymentChanged,
		ErrPaymentGatewayNotConfigured, ErrPaymentGatewayBadRequest, ErrPaymentGatewayUnauthorized,
		ErrPaymentGatewayInvalidUsers, ErrPaymentGatewayCustomerNotFound,
	}

	for _, err := range errs {
		matched := 0
		for _, kind := range kinds {
			if errors.Is(err, kind) {
				matched++
			}
		}
		if matched != 1 {
			t.Errorf("%q wraps %d kinds, want 1", err, matched)
		}
	}
}

func TestClassifyGatewayError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"unauthorized", errors.New(`{"status":401,"error":"unauthorized"}`), ErrUnauthorized},
		{"bad request", errors.New(`{"status":400,"error":"bad_request"}`), ErrValidationFailed},
		{"customer not found", errors.New(`{"code":2002}`), ErrPaymentGatewayCustomerNotFound},
		{"invalid users", errors.New(`Invalid users involved`), ErrPaymentGatewayInvalidUsers},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyGatewayError(tt.err); !errors.Is(got, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}

	other := errors.New("connection reset")
	if got := classifyGatewayError(other); got != other {
		t.Fatalf("expected unclassified error to pass through, got %v", got)
	}
}
