package repository

import (
	"time"

	"rental_billing/internal/domain/entities"
)

func toRentalItem(r entities.Rental) rentalItem {
	return rentalItem{
		ID:             r.ID,
		TenantID:       r.TenantID,
		RoomID:         r.RoomID,
		EntryDate:      formatTime(r.EntryDate),
		ExitDate:       formatTimePtr(r.ExitDate),
		TotalPrice:     r.TotalPrice.String(),
		Status:         string(r.Status),
		RentalPeriodID: r.RentalPeriodID,
		PaymentTypeID:  r.PaymentTypeID,
		CreatedAt:      formatTime(r.CreatedAt),
		UpdatedAt:      formatTime(r.UpdatedAt),
	}
}

func toRentalPaymentItem(p entities.RentalPayment) rentalPaymentItem {
	return rentalPaymentItem{
		ID:               p.ID,
		RentalID:         p.RentalID,
		Amount:           p.Amount.String(),
		Category:         string(p.Category),
		BillingDate:      formatTime(p.BillingDate),
		DueDate:          formatTime(p.DueDate),
		PaymentStatus:    string(p.PaymentStatus),
		PaymentMethod:    string(p.PaymentMethod),
		PaymentProof:     p.PaymentProof,
		ProofSubmittedAt: formatTimePtr(p.ProofSubmittedAt),
		PaidAt:           formatTimePtr(p.PaidAt),
		CreatedAt:        formatTime(p.CreatedAt),
		UpdatedAt:        formatTime(p.UpdatedAt),
	}
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}
