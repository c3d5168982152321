package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type SemesterDAO struct {
	db *gorm.DB
}

func NewSemesterDAO(db *gorm.DB) *SemesterDAO {
	return &SemesterDAO{
		db: db,
	}
}

func (d *SemesterDAO) FindCurrent(ctx context.Context) (Semester, error) {
	var semester Semester

	result := d.db.WithContext(ctx).Where("is_current = ?", true).Take(&semester)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Semester{}, ErrNoCurrentSemester
		}

		return Semester{}, result.Error
	}

	return semester, nil
}

type UniformDAO struct {
	db *gorm.DB
}

func NewUniformDAO(db *gorm.DB) *UniformDAO {
	return &UniformDAO{
		db: db,
	}
}

func (d *UniformDAO) FindByID(ctx context.Context, id uint) (Uniform, error) {
	var uniform Uniform

	result := d.db.WithContext(ctx).First(&uniform, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Uniform{}, ErrUniformNotFound
		}

		return Uniform{}, result.Error
	}

	return uniform, nil
}
