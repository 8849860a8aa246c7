// Package lifecycle holds the pure rules of the rental payment lifecycle:
// payment state transitions, the occupancy side effect of a booking fee and
// the payment summary of a rental. Nothing here touches storage.
package lifecycle

import (
	"sort"
	"strconv"
	"strings"

	"rental_billing/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ComputeSummary derives the payment summary of a rental from its payments.
//
// Only payments with status paid count towards TotalPaid. The remaining
// balance is clamped at zero, so over-payment and a negative TotalPrice both
// yield a zero balance. Progress is zero when TotalPrice is not positive.
func ComputeSummary(rental entities.Rental, payments []entities.RentalPayment) entities.PaymentSummary {
	totalPaid := decimal.Zero
	for _, p := range payments {
		if p.IsPaid() {
			totalPaid = totalPaid.Add(p.Amount)
		}
	}

	remaining := rental.TotalPrice.Sub(totalPaid)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	status := entities.SummaryStatusPending
	if !remaining.IsPositive() {
		status = entities.SummaryStatusPaid
	}

	progress := decimal.Zero
	if rental.TotalPrice.IsPositive() {
		progress = totalPaid.Div(rental.TotalPrice).Mul(hundred).Round(2)
	}

	return entities.PaymentSummary{
		TotalPrice:       rental.TotalPrice,
		TotalPaid:        totalPaid,
		RemainingBalance: remaining,
		PaymentStatus:    status,
		PaymentProgress:  progress,
		NextPaymentDue:   NextPaymentDue(payments),
	}
}

// NextPaymentDue returns the pending payment with the earliest billing date.
// Ties are broken by the lowest id. It returns nil when nothing is pending.
func NextPaymentDue(payments []entities.RentalPayment) *entities.RentalPayment {
	pending := make([]entities.RentalPayment, 0, len(payments))
	for _, p := range payments {
		if p.PaymentStatus == entities.PaymentStatusPending {
			pending = append(pending, p)
		}
	}
	if len(pending) == 0 {
		return nil
	}

	SortByBillingDate(pending)

	next := pending[0]
	return &next
}

// SortByBillingDate orders payments by billing date, then by id.
func SortByBillingDate(payments []entities.RentalPayment) {
	sort.SliceStable(payments, func(i, j int) bool {
		a, b := payments[i], payments[j]
		if !a.BillingDate.Equal(b.BillingDate) {
			return a.BillingDate.Before(b.BillingDate)
		}
		return compareIDs(a.ID, b.ID) < 0
	})
}

// compareIDs orders numeric ids numerically and anything else lexically.
func compareIDs(a, b string) int {
	na, errA := strconv.ParseUint(a, 10, 64)
	nb, errB := strconv.ParseUint(b, 10, 64)
	if errA == nil && errB == nil {
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		}
		return 0
	}
	return strings.Compare(a, b)
}
