package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentCategory identifies what a rental payment line item bills for.
type PaymentCategory string

const (
	PaymentCategoryBookingFee     PaymentCategory = "booking_fee"
	PaymentCategoryDepositFee     PaymentCategory = "deposit_fee"
	PaymentCategoryRentalFee      PaymentCategory = "rental_fee"
	PaymentCategoryManagementFee  PaymentCategory = "management_fee"
	PaymentCategoryDownPaymentFee PaymentCategory = "down_payment_fee"
)

// PaymentStatus is the settlement state of a single rental payment.
//
// unpaid -> pending (cash proof submitted) -> paid (verified by a manager).
// unpaid -> paid is allowed for payments recorded directly. Nothing leaves paid.
type PaymentStatus string

const (
	PaymentStatusUnpaid  PaymentStatus = "unpaid"
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

type PaymentMethod string

const (
	PaymentMethodCash           PaymentMethod = "cash"
	PaymentMethodPaymentGateway PaymentMethod = "payment_gateway"
)

// RentalPayment is one billable installment or fee tied to a rental.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (rental_id-index): rental_id
//
// Invariants:
//   - PaidAt is set if and only if PaymentStatus is paid.
//   - PaymentProof references the single live proof blob in the content store,
//     and is only set while pending or paid.
//   - ProofSubmittedAt records when the tenant last submitted a cash proof.
type RentalPayment struct {
	ID               string          `json:"id"`
	RentalID         string          `json:"rental_id"`
	Amount           decimal.Decimal `json:"amount"`
	Category         PaymentCategory `json:"category"`
	BillingDate      time.Time       `json:"billing_date"`
	DueDate          time.Time       `json:"due_date"`
	PaymentStatus    PaymentStatus   `json:"payment_status"`
	PaymentMethod    PaymentMethod   `json:"payment_method,omitempty"`
	PaymentProof     string          `json:"payment_proof,omitempty"`
	ProofSubmittedAt *time.Time      `json:"proof_submitted_at,omitempty"`
	PaidAt           *time.Time      `json:"paid_at,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func (p RentalPayment) IsPaid() bool {
	return p.PaymentStatus == PaymentStatusPaid
}

func (p RentalPayment) IsBookingFee() bool {
	return p.Category == PaymentCategoryBookingFee
}
