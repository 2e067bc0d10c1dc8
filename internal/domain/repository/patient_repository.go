package repository

import (
	"clinic-pharmacy-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindAll(db *gorm.DB, filter entity.PatientFilter) ([]entity.Patient, int64, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Patient, error)
	Update(db *gorm.DB, patient *entity.Patient) (int64, error)
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
