package gormpersistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tusharnayak1515/users-data-backend/internal/domain"
	"github.com/tusharnayak1515/users-data-backend/internal/repository"
)

// GormDataRepository is the GORM implementation of repository.DataRepository.
type GormDataRepository struct {
	db *gorm.DB
}

// NewGormDataRepository creates a GormDataRepository.
func NewGormDataRepository(db *gorm.DB) *GormDataRepository {
	if db == nil {
		panic("database connection cannot be nil for GormDataRepository")
	}
	return &GormDataRepository{db: db}
}

// FindByID loads a record by primary key.
func (r *GormDataRepository) FindByID(ctx context.Context, id uint) (*domain.DataRecord, error) {
	var record domain.DataRecord
	err := r.db.WithContext(ctx).First(&record, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDataNotFound
		}
		return nil, fmt.Errorf("gorm: find data record by id %d: %w", id, err)
	}
	return &record, nil
}

// FindByOwner returns up to limit records owned by ownerID, oldest first.
func (r *GormDataRepository) FindByOwner(ctx context.Context, ownerID uint, limit int) ([]domain.DataRecord, error) {
	records := []domain.DataRecord{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("id ASC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: find data records for owner %d: %w", ownerID, err)
	}
	return records, nil
}

// Create inserts a new record row.
func (r *GormDataRepository) Create(ctx context.Context, record *domain.DataRecord) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("gorm: create data record (owner: %d): %w", record.UserID, err)
	}
	return nil
}

// Update persists changes to an existing record row.
func (r *GormDataRepository) Update(ctx context.Context, record *domain.DataRecord) error {
	if err := r.db.WithContext(ctx).Save(record).Error; err != nil {
		return fmt.Errorf("gorm: update data record (id: %d): %w", record.ID, err)
	}
	return nil
}

// Delete removes a record row by primary key.
func (r *GormDataRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.DataRecord{}, id)
	if result.Error != nil {
		return fmt.Errorf("gorm: delete data record (id: %d): %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrDataNotFound
	}
	return nil
}
