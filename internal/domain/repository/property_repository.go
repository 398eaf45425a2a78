package repository

import (
	"context"

	"rentify/internal/domain/entity"
)

type PropertyRepository interface {
	Create(ctx context.Context, property *entity.Property) error
	GetByID(ctx context.Context, id string) (*entity.Property, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Property, int64, error)

	// GetByIDs resolves a denormalized id list. Ids whose documents no
	// longer exist are skipped, order of the input is preserved.
	GetByIDs(ctx context.Context, ids []string) ([]*entity.Property, error)

	// AddLiker appends the liker and bumps the counter in a single
	// document update.
	AddLiker(ctx context.Context, propertyID, userID string) error

	// Delete removes the property document and its id from the owner's
	// property list in one batched write.
	Delete(ctx context.Context, propertyID, ownerID string) error
}
