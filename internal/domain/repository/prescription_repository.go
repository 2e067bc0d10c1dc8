package repository

import (
	"clinic-pharmacy-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PrescriptionRepository interface {
	Create(db *gorm.DB, prescription *entity.Prescription) error
	FindAll(db *gorm.DB, filter entity.PrescriptionFilter) ([]entity.Prescription, int64, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Prescription, error)
	Update(db *gorm.DB, prescription *entity.Prescription) (int64, error)
	ReplaceItems(db *gorm.DB, prescriptionID uuid.UUID, items []entity.PrescriptionItem) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
