package repository

import (
	"clinic-pharmacy-api/internal/domain/entity"

	"gorm.io/gorm"
)

// StockMovementRepository is append-only.
type StockMovementRepository interface {
	Create(db *gorm.DB, movement *entity.StockMovement) error
	FindByMedicine(db *gorm.DB, filter entity.MovementFilter) ([]entity.StockMovement, int64, error)
}
