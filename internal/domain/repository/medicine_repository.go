package repository

import (
	"clinic-pharmacy-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MedicineRepository interface {
	Create(db *gorm.DB, medicine *entity.Medicine) error
	FindAll(db *gorm.DB, filter entity.MedicineFilter) ([]entity.Medicine, int64, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Medicine, error)
	FindByIDs(db *gorm.DB, ids []uuid.UUID) ([]entity.Medicine, error)
	Update(db *gorm.DB, medicine *entity.Medicine) (int64, error)
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
	// AdjustStock applies delta only if the resulting stock stays within [0, entity.MaxStockQty].
	// Returns affected rows: 1 = applied, 0 = bound crossed or missing row.
	AdjustStock(db *gorm.DB, id uuid.UUID, delta int) (int64, error)
}
