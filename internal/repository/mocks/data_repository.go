package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tusharnayak1515/users-data-backend/internal/domain"
)

// DataRepository is a mock implementation of repository.DataRepository.
type DataRepository struct {
	mock.Mock
}

func (m *DataRepository) FindByID(ctx context.Context, id uint) (*domain.DataRecord, error) {
	args := m.Called(ctx, id)
	var record *domain.DataRecord
	if args.Get(0) != nil {
		record = args.Get(0).(*domain.DataRecord)
	}
	return record, args.Error(1)
}

func (m *DataRepository) FindByOwner(ctx context.Context, ownerID uint, limit int) ([]domain.DataRecord, error) {
	args := m.Called(ctx, ownerID, limit)
	var records []domain.DataRecord
	if args.Get(0) != nil {
		records = args.Get(0).([]domain.DataRecord)
	}
	return records, args.Error(1)
}

func (m *DataRepository) Create(ctx context.Context, record *domain.DataRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *DataRepository) Update(ctx context.Context, record *domain.DataRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *DataRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
