// Package repository declares the storage interfaces the services
// depend on. Implementations live under internal/infra/persistence.
package repository

import (
	"context"

	"github.com/tusharnayak1515/users-data-backend/internal/domain"
)

// UserRepository stores and retrieves user accounts.
type UserRepository interface {
	// FindByID looks a user up by primary key, with the owned data
	// records preloaded. Returns ErrUserNotFound when absent.
	FindByID(ctx context.Context, id uint) (*domain.User, error)

	// FindByEmail looks a user up by email.
	// Returns ErrUserNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindByPhone looks a user up by phone number.
	// Returns ErrUserNotFound when absent.
	FindByPhone(ctx context.Context, phone string) (*domain.User, error)

	// Create inserts a new user. Returns ErrDuplicateEntry when the
	// email or phone unique index rejects the write.
	Create(ctx context.Context, user *domain.User) error

	// Update persists changes to an existing user. Returns
	// ErrDuplicateEntry when a unique index rejects the write.
	Update(ctx context.Context, user *domain.User) error
}
