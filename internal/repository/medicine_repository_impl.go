package repository

import (
	"errors"

	"clinic-pharmacy-api/internal/domain/entity"
	domainRepo "clinic-pharmacy-api/internal/domain/repository"
	"clinic-pharmacy-api/pkg/query"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type medicineRepository struct{}

func NewMedicineRepository() domainRepo.MedicineRepository {
	return &medicineRepository{}
}

func (r *medicineRepository) Create(db *gorm.DB, medicine *entity.Medicine) error {
	return translate(db.Create(medicine).Error)
}

func (r *medicineRepository) FindAll(db *gorm.DB, filter entity.MedicineFilter) ([]entity.Medicine, int64, error) {
	return findPage[entity.Medicine](db, filter.ListQuery, nil,
		query.Search(filter.Search, "name", "generic_name", "sku"),
		query.Equals("category", filter.Category),
		query.ColumnLTE("stock_qty", "reorder_level", filter.LowStock),
	)
}

func (r *medicineRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Medicine, error) {
	var medicine entity.Medicine
	err := db.Where("id = ?", id).First(&medicine).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &medicine, nil
}

func (r *medicineRepository) FindByIDs(db *gorm.DB, ids []uuid.UUID) ([]entity.Medicine, error) {
	var medicines []entity.Medicine
	if len(ids) == 0 {
		return medicines, nil
	}
	if err := db.Where("id IN ?", ids).Find(&medicines).Error; err != nil {
		return nil, err
	}
	return medicines, nil
}

func (r *medicineRepository) Update(db *gorm.DB, medicine *entity.Medicine) (int64, error) {
	// Stock is owned by AdjustStock; a stale copy must not overwrite it.
	result := db.Model(medicine).Select("*").Omit(clause.Associations, "StockQty").Updates(medicine)
	return result.RowsAffected, translate(result.Error)
}

func (r *medicineRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Medicine{})
	return result.RowsAffected, translate(result.Error)
}

// AdjustStock applies delta only while the result stays within
// [0, MaxStockQty]; zero rows affected means the bound would be crossed.
func (r *medicineRepository) AdjustStock(db *gorm.DB, id uuid.UUID, delta int) (int64, error) {
	result := db.Model(&entity.Medicine{}).
		Where("id = ? AND stock_qty + ? BETWEEN 0 AND ?", id, delta, entity.MaxStockQty).
		Updates(map[string]interface{}{
			"stock_qty":  gorm.Expr("stock_qty + ?", delta),
			"updated_at": db.NowFunc(),
		})
	return result.RowsAffected, result.Error
}
