package interfaces

import (
	"context"

	"rental_billing/internal/domain/entities"
)

// IRoomRepository returns a zero Room (ID == "") when nothing matches.
type IRoomRepository interface {
	GetByID(ctx context.Context, id string) (entities.Room, error)
}
