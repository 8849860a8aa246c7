package lifecycle

import "rental_billing/internal/domain/entities"

// CanTransition reports whether a payment may move from one status to another.
//
// pending -> pending is a proof re-submission and is allowed.
func CanTransition(from, to entities.PaymentStatus) bool {
	switch from {
	case entities.PaymentStatusUnpaid:
		return to == entities.PaymentStatusPending || to == entities.PaymentStatusPaid
	case entities.PaymentStatusPending:
		return to == entities.PaymentStatusPending || to == entities.PaymentStatusPaid
	}
	return false
}

// OccupancyTarget returns the status the owning rental should move to after
// payment became paid, and whether a move is needed at all.
//
// Only a settled booking fee on a booked rental triggers booked -> occupied.
// Rentals already occupied or completed are left alone.
func OccupancyTarget(payment entities.RentalPayment, rental entities.Rental) (entities.RentalStatus, bool) {
	if !payment.IsPaid() || !payment.IsBookingFee() {
		return "", false
	}
	if rental.Status != entities.RentalStatusBooked {
		return "", false
	}
	return entities.RentalStatusOccupied, true
}

// HasSettledBookingFee reports whether any booking fee in payments is paid.
func HasSettledBookingFee(payments []entities.RentalPayment) (entities.RentalPayment, bool) {
	for _, p := range payments {
		if p.IsBookingFee() && p.IsPaid() {
			return p, true
		}
	}
	return entities.RentalPayment{}, false
}
