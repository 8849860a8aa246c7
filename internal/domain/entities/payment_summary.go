package entities

import "github.com/shopspring/decimal"

// SummaryStatus is the aggregate settlement label of a rental.
type SummaryStatus string

const (
	SummaryStatusPaid    SummaryStatus = "Paid"
	SummaryStatusPending SummaryStatus = "Pending"
)

// PaymentSummary is derived from a rental and its payments; it is never stored.
type PaymentSummary struct {
	TotalPrice       decimal.Decimal
	TotalPaid        decimal.Decimal
	RemainingBalance decimal.Decimal
	PaymentStatus    SummaryStatus
	// PaymentProgress is a percentage rounded to 2 decimal places.
	PaymentProgress decimal.Decimal
	NextPaymentDue  *RentalPayment
}

// RentalDetail is the flat read model returned to managers and tenants.
type RentalDetail struct {
	Rental   Rental
	Room     Room
	Payments []RentalPayment
	Summary  PaymentSummary
}

// ContentObject is a blob read back from the content store.
type ContentObject struct {
	Reference   string
	ContentType string
	Data        []byte
}
