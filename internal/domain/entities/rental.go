package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// RentalStatus represents the lifecycle of a tenancy.
//
// Domain notes:
//   - Status only moves forward: booked -> occupied -> completed.
//   - booked -> occupied happens when the booking fee is settled.
//   - occupied -> completed belongs to lease-end processing, outside this service.
type RentalStatus string

const (
	RentalStatusBooked    RentalStatus = "booked"
	RentalStatusOccupied  RentalStatus = "occupied"
	RentalStatusCompleted RentalStatus = "completed"
)

func (s RentalStatus) rank() int {
	switch s {
	case RentalStatusBooked:
		return 1
	case RentalStatusOccupied:
		return 2
	case RentalStatusCompleted:
		return 3
	}
	return 0
}

// Valid reports whether s is a known rental status.
func (s RentalStatus) Valid() bool {
	return s.rank() > 0
}

// CanAdvanceTo reports whether moving from s to next keeps the forward-only order.
func (s RentalStatus) CanAdvanceTo(next RentalStatus) bool {
	return s.Valid() && next.Valid() && next.rank() > s.rank()
}

// Rental is a tenancy agreement between a tenant and a room.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (tenant_id-index): tenant_id
//
// TotalPrice is fixed at creation; this service never rewrites it.
type Rental struct {
	ID             string          `json:"id"`
	TenantID       string          `json:"tenant_id"`
	RoomID         string          `json:"room_id"`
	EntryDate      time.Time       `json:"entry_date"`
	ExitDate       *time.Time      `json:"exit_date,omitempty"`
	TotalPrice     decimal.Decimal `json:"total_price"`
	Status         RentalStatus    `json:"status"`
	RentalPeriodID string          `json:"rental_period_id"`
	PaymentTypeID  string          `json:"payment_type_id"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// OwnedBy reports whether the rental belongs to tenantID.
func (r Rental) OwnedBy(tenantID string) bool {
	return r.ID != "" && tenantID != "" && r.TenantID == tenantID
}
