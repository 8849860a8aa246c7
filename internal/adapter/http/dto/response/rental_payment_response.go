package response

import (
	"time"

	"rental_billing/internal/domain/entities"
)

type RentalPaymentResponse struct {
	PaymentID        string     `json:"payment_id"`
	ID               string     `json:"id"`
	RentalID         string     `json:"rental_id"`
	Amount           float64    `json:"amount"`
	Category         string     `json:"category"`
	BillingDate      time.Time  `json:"billing_date"`
	DueDate          time.Time  `json:"due_date"`
	PaymentStatus    string     `json:"payment_status"`
	PaymentMethod    string     `json:"payment_method,omitempty"`
	HasProof         bool       `json:"has_proof"`
	ProofSubmittedAt *time.Time `json:"proof_submitted_at,omitempty"`
	PaidAt           *time.Time `json:"paid_at,omitempty"`
}

// FromRentalPayment hides the content store reference; managers fetch the
// proof through its own route.
func FromRentalPayment(p entities.RentalPayment) RentalPaymentResponse {
	return RentalPaymentResponse{
		PaymentID:        p.ID,
		ID:               p.ID,
		RentalID:         p.RentalID,
		Amount:           p.Amount.InexactFloat64(),
		Category:         string(p.Category),
		BillingDate:      p.BillingDate,
		DueDate:          p.DueDate,
		PaymentStatus:    string(p.PaymentStatus),
		PaymentMethod:    string(p.PaymentMethod),
		HasProof:         p.PaymentProof != "",
		ProofSubmittedAt: p.ProofSubmittedAt,
		PaidAt:           p.PaidAt,
	}
}

func FromRentalPayments(ps []entities.RentalPayment) []RentalPaymentResponse {
	out := make([]RentalPaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromRentalPayment(p))
	}
	return out
}
