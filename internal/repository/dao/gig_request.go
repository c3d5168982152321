package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type GigRequestDAO struct {
	db *gorm.DB
}

func NewGigRequestDAO(db *gorm.DB) *GigRequestDAO {
	return &GigRequestDAO{
		db: db,
	}
}

func (d *GigRequestDAO) Insert(ctx context.Context, request GigRequest) (GigRequest, error) {
	result := d.db.WithContext(ctx).Create(&request)
	if result.Error != nil {
		return GigRequest{}, mapWriteError(result.Error)
	}

	return request, nil
}

func (d *GigRequestDAO) FindByID(ctx context.Context, id uint) (GigRequest, error) {
	var request GigRequest

	result := d.db.WithContext(ctx).First(&request, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return GigRequest{}, ErrGigRequestNotFound
		}

		return GigRequest{}, result.Error
	}

	return request, nil
}

func (d *GigRequestDAO) FindAll(ctx context.Context) ([]GigRequest, error) {
	var requests []GigRequest

	result := d.db.WithContext(ctx).Order("submitted_at DESC").Find(&requests)
	if result.Error != nil {
		return nil, result.Error
	}

	return requests, nil
}

// FindSinceOrPending returns requests submitted after since, plus every
// request still pending regardless of age.
func (d *GigRequestDAO) FindSinceOrPending(ctx context.Context, since time.Time) ([]GigRequest, error) {
	var requests []GigRequest

	result := d.db.WithContext(ctx).
		Where("submitted_at > ? OR status = ?", since, GigRequestPending).
		Order("submitted_at DESC").
		Find(&requests)
	if result.Error != nil {
		return nil, result.Error
	}

	return requests, nil
}

func (d *GigRequestDAO) UpdateStatus(ctx context.Context, id uint, status GigRequestStatus) error {
	result := d.db.WithContext(ctx).
		Model(&GigRequest{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGigRequestNotFound
	}

	return nil
}
