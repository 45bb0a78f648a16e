package repository

import (
	"context"

	"github.com/tusharnayak1515/users-data-backend/internal/domain"
)

// DataRepository stores and retrieves the per-user data records.
type DataRepository interface {
	// FindByID looks a record up by primary key.
	// Returns ErrDataNotFound when absent.
	FindByID(ctx context.Context, id uint) (*domain.DataRecord, error)

	// FindByOwner returns up to limit records owned by ownerID,
	// oldest first. An owner with no records yields an empty slice,
	// not an error.
	FindByOwner(ctx context.Context, ownerID uint, limit int) ([]domain.DataRecord, error)

	// Create inserts a new record.
	Create(ctx context.Context, record *domain.DataRecord) error

	// Update persists changes to an existing record.
	Update(ctx context.Context, record *domain.DataRecord) error

	// Delete removes the record with the given id.
	Delete(ctx context.Context, id uint) error
}
