package interfaces

import (
	"context"

	"rental_billing/internal/domain/entities"
)

// IRentalRepository abstracts persistence for Rental.
//
// Lookups return a zero Rental (ID == "") when nothing matches.
type IRentalRepository interface {
	GetByID(ctx context.Context, id string) (entities.Rental, error)
	ListByTenantID(ctx context.Context, tenantID string) ([]entities.Rental, error)
	// UpdateStatus moves the rental to `to` only while its stored status is
	// still `from`; otherwise it returns ErrConditionNotMet.
	UpdateStatus(ctx context.Context, id string, from, to entities.RentalStatus) (entities.Rental, error)
}
