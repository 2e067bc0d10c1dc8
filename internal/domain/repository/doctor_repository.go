package repository

import (
	"clinic-pharmacy-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindAll(db *gorm.DB, filter entity.DoctorFilter) ([]entity.Doctor, int64, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error)
	Update(db *gorm.DB, doctor *entity.Doctor) (int64, error)
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
