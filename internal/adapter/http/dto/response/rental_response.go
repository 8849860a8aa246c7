package response

import (
	"time"

	"rental_billing/internal/domain/entities"
)

type RentalResponse struct {
	ID             string     `json:"id"`
	TenantID       string     `json:"tenant_id"`
	RoomID         string     `json:"room_id"`
	EntryDate      time.Time  `json:"entry_date"`
	ExitDate       *time.Time `json:"exit_date,omitempty"`
	TotalPrice     float64    `json:"total_price"`
	Status         string     `json:"status"`
	RentalPeriodID string     `json:"rental_period_id,omitempty"`
	PaymentTypeID  string     `json:"payment_type_id,omitempty"`
}

type RoomResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	MonthlyPrice float64 `json:"monthly_price"`
}

type PaymentSummaryResponse struct {
	TotalPrice       float64                `json:"total_price"`
	TotalPaid        float64                `json:"total_paid"`
	RemainingBalance float64                `json:"remaining_balance"`
	PaymentStatus    string                 `json:"payment_status"`
	PaymentProgress  float64                `json:"payment_progress"`
	NextPaymentDue   *RentalPaymentResponse `json:"next_payment_due,omitempty"`
}

// RentalDetailResponse is the flat projection of a rental with its room,
// payments and derived summary.
type RentalDetailResponse struct {
	Rental   RentalResponse          `json:"rental"`
	Room     *RoomResponse           `json:"room,omitempty"`
	Payments []RentalPaymentResponse `json:"payments"`
	Summary  PaymentSummaryResponse  `json:"summary"`
}

func FromRental(r entities.Rental) RentalResponse {
	return RentalResponse{
		ID:             r.ID,
		TenantID:       r.TenantID,
		RoomID:         r.RoomID,
		EntryDate:      r.EntryDate,
		ExitDate:       r.ExitDate,
		TotalPrice:     r.TotalPrice.InexactFloat64(),
		Status:         string(r.Status),
		RentalPeriodID: r.RentalPeriodID,
		PaymentTypeID:  r.PaymentTypeID,
	}
}

func FromPaymentSummary(s entities.PaymentSummary) PaymentSummaryResponse {
	out := PaymentSummaryResponse{
		TotalPrice:       s.TotalPrice.InexactFloat64(),
		TotalPaid:        s.TotalPaid.InexactFloat64(),
		RemainingBalance: s.RemainingBalance.InexactFloat64(),
		PaymentStatus:    string(s.PaymentStatus),
		PaymentProgress:  s.PaymentProgress.InexactFloat64(),
	}
	if s.NextPaymentDue != nil {
		next := FromRentalPayment(*s.NextPaymentDue)
		out.NextPaymentDue = &next
	}
	return out
}

func FromRentalDetail(d entities.RentalDetail) RentalDetailResponse {
	out := RentalDetailResponse{
		Rental:   FromRental(d.Rental),
		Payments: FromRentalPayments(d.Payments),
		Summary:  FromPaymentSummary(d.Summary),
	}
	if d.Room.ID != "" {
		out.Room = &RoomResponse{
			ID:           d.Room.ID,
			Name:         d.Room.Name,
			MonthlyPrice: d.Room.MonthlyPrice.InexactFloat64(),
		}
	}
	return out
}

func FromRentalDetails(ds []entities.RentalDetail) []RentalDetailResponse {
	out := make([]RentalDetailResponse, 0, len(ds))
	for _, d := range ds {
		out = append(out, FromRentalDetail(d))
	}
	return out
}
