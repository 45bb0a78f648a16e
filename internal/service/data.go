package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/tusharnayak1515/users-data-backend/internal/domain"
	"github.com/tusharnayak1515/users-data-backend/internal/repository"
)

// PageSize is the fixed number of data records returned per listing.
const PageSize = 5

// DataInput carries the validated fields of a data record create/edit.
type DataInput struct {
	Name   string
	Email  string
	Phone  string
	Domain string
}

// DataService handles the per-user data record operations. Every
// mutation runs the ownership decision before touching storage.
type DataService struct {
	userRepo repository.UserRepository
	dataRepo repository.DataRepository
}

// NewDataService creates a DataService.
func NewDataService(userRepo repository.UserRepository, dataRepo repository.DataRepository) *DataService {
	if userRepo == nil {
		panic("UserRepository cannot be nil for DataService")
	}
	if dataRepo == nil {
		panic("DataRepository cannot be nil for DataService")
	}
	return &DataService{userRepo: userRepo, dataRepo: dataRepo}
}

// authorizeOwner is the ownership decision: a missing record is
// "not found", a record owned by someone else is "not allowed",
// anything else is permitted.
func authorizeOwner(actorID uint, record *domain.DataRecord) error {
	if record == nil {
		return ErrDataNotFound
	}
	if record.UserID != actorID {
		return ErrNotAllowed
	}
	return nil
}

// List returns the first page of the caller's records. A caller with no
// records gets an empty page; a caller that does not exist is an error.
func (s *DataService) List(ctx context.Context, userID uint) ([]domain.DataRecord, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.ownerPage(ctx, userID)
}

// Create validates the fields, stores a record owned by the caller and
// returns the refreshed profile together with the first page.
func (s *DataService) Create(ctx context.Context, userID uint, in DataInput) (*domain.User, []domain.DataRecord, error) {
	logCtx := logrus.WithField("user_id", userID)

	if err := validateDataFields(in.Name, in.Email, in.Phone, in.Domain); err != nil {
		return nil, nil, err
	}
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, nil, err
	}

	record := &domain.DataRecord{
		Name:   in.Name,
		Email:  in.Email,
		Phone:  in.Phone,
		Domain: in.Domain,
		UserID: userID,
	}
	if err := s.dataRepo.Create(ctx, record); err != nil {
		logCtx.WithError(err).Error("Database error creating data record")
		return nil, nil, ErrInternalServer
	}
	logCtx.WithField("data_id", record.ID).Info("Data record created")

	profile, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		logCtx.WithError(err).Error("Database error refreshing profile after create")
		return nil, nil, ErrInternalServer
	}
	page, err := s.ownerPage(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return profile, page, nil
}

// Edit updates a record after the ownership decision and returns the
// refreshed first page.
func (s *DataService) Edit(ctx context.Context, userID, dataID uint, in DataInput) ([]domain.DataRecord, error) {
	logCtx := logrus.WithFields(logrus.Fields{"user_id": userID, "data_id": dataID})

	if err := validateDataFields(in.Name, in.Email, in.Phone, in.Domain); err != nil {
		return nil, err
	}
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	record, err := s.findRecord(ctx, dataID)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(userID, record); err != nil {
		if errors.Is(err, ErrNotAllowed) {
			logCtx.Warn("Edit rejected: caller does not own the record")
		}
		return nil, err
	}

	record.Name = in.Name
	record.Email = in.Email
	record.Phone = in.Phone
	record.Domain = in.Domain
	if err := s.dataRepo.Update(ctx, record); err != nil {
		logCtx.WithError(err).Error("Database error updating data record")
		return nil, ErrInternalServer
	}

	logCtx.Info("Data record updated")
	return s.ownerPage(ctx, userID)
}

// Delete removes a record after the ownership decision and returns the
// refreshed profile together with the first page.
func (s *DataService) Delete(ctx context.Context, userID, dataID uint) (*domain.User, []domain.DataRecord, error) {
	logCtx := logrus.WithFields(logrus.Fields{"user_id": userID, "data_id": dataID})

	if err := s.requireUser(ctx, userID); err != nil {
		return nil, nil, err
	}

	record, err := s.findRecord(ctx, dataID)
	if err != nil {
		return nil, nil, err
	}
	if err := authorizeOwner(userID, record); err != nil {
		if errors.Is(err, ErrNotAllowed) {
			logCtx.Warn("Delete rejected: caller does not own the record")
		}
		return nil, nil, err
	}

	if err := s.dataRepo.Delete(ctx, record.ID); err != nil {
		if errors.Is(err, repository.ErrDataNotFound) {
			return nil, nil, ErrDataNotFound
		}
		logCtx.WithError(err).Error("Database error deleting data record")
		return nil, nil, ErrInternalServer
	}
	logCtx.Info("Data record deleted")

	profile, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		logCtx.WithError(err).Error("Database error refreshing profile after delete")
		return nil, nil, ErrInternalServer
	}
	page, err := s.ownerPage(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return profile, page, nil
}

// requireUser confirms the token-derived caller still exists.
func (s *DataService) requireUser(ctx context.Context, userID uint) error {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		logrus.WithError(err).WithField("user_id", userID).Error("Database error finding user")
		return ErrInternalServer
	}
	return nil
}

// findRecord loads a record, mapping absence to ErrDataNotFound so the
// ownership decision sees nil for missing records.
func (s *DataService) findRecord(ctx context.Context, dataID uint) (*domain.DataRecord, error) {
	record, err := s.dataRepo.FindByID(ctx, dataID)
	if err != nil {
		if errors.Is(err, repository.ErrDataNotFound) {
			return nil, ErrDataNotFound
		}
		logrus.WithError(err).WithField("data_id", dataID).Error("Database error finding data record")
		return nil, ErrInternalServer
	}
	return record, nil
}

// ownerPage fetches the first page of the owner's records.
func (s *DataService) ownerPage(ctx context.Context, userID uint) ([]domain.DataRecord, error) {
	page, err := s.dataRepo.FindByOwner(ctx, userID, PageSize)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Database error listing data records")
		return nil, ErrInternalServer
	}
	return page, nil
}
