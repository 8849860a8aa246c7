package interfaces

import (
	"context"

	"rental_billing/internal/domain/entities"
)

// IContentStore keeps binary payment proofs. References are opaque to callers.
type IContentStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (reference string, err error)
	// Get returns ErrContentNotFound when the reference does not exist.
	Get(ctx context.Context, reference string) (entities.ContentObject, error)
	Delete(ctx context.Context, reference string) error
	Exists(ctx context.Context, reference string) (bool, error)
}
