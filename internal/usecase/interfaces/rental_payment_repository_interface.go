package interfaces

import (
	"context"
	"time"

	"rental_billing/internal/domain/entities"
)

// ProofSubmission is the guarded write of a cash payment proof.
//
// PreviousProof is the proof reference read before the upload; the write only
// applies if the stored reference is still the same.
type ProofSubmission struct {
	Proof         string
	PreviousProof string
	SubmittedAt   time.Time
}

// IRentalPaymentRepository abstracts persistence for RentalPayment.
//
// Lookups return a zero RentalPayment (ID == "") when nothing matches.
// Writes are single-record conditional updates and never overwrite a paid
// payment; a failed condition surfaces as ErrConditionNotMet.
type IRentalPaymentRepository interface {
	GetByID(ctx context.Context, id string) (entities.RentalPayment, error)
	ListByRentalID(ctx context.Context, rentalID string) ([]entities.RentalPayment, error)
	// MarkPaid sets status paid and paid_at. An empty method keeps the stored one.
	MarkPaid(ctx context.Context, id string, paidAt time.Time, method entities.PaymentMethod) (entities.RentalPayment, error)
	// SubmitProof sets method cash, status pending and the new proof reference.
	SubmitProof(ctx context.Context, id string, s ProofSubmission) (entities.RentalPayment, error)
}
