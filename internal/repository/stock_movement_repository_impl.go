package repository

import (
	"clinic-pharmacy-api/internal/domain/entity"
	domainRepo "clinic-pharmacy-api/internal/domain/repository"
	"clinic-pharmacy-api/pkg/query"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type stockMovementRepository struct{}

func NewStockMovementRepository() domainRepo.StockMovementRepository {
	return &stockMovementRepository{}
}

func (r *stockMovementRepository) Create(db *gorm.DB, movement *entity.StockMovement) error {
	return translate(db.Omit(clause.Associations).Create(movement).Error)
}

func (r *stockMovementRepository) FindByMedicine(db *gorm.DB, filter entity.MovementFilter) ([]entity.StockMovement, int64, error) {
	return findPage[entity.StockMovement](db, filter.ListQuery, nil,
		query.Equals("medicine_id", &filter.MedicineID),
		query.Equals("type", filter.Type),
		query.Search(filter.Search, "reason"),
	)
}
