package repository

import (
	"context"

	"rentify/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// The list mutations use atomic array unions so concurrent writers
	// cannot lose each other's updates.
	AddProperty(ctx context.Context, userID, propertyID string) error
	AddLike(ctx context.Context, userID, propertyID string) error
	AddEnquiry(ctx context.Context, userID, propertyID string) error
}
