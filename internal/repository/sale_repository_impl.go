package repository

import (
	"errors"

	"clinic-pharmacy-api/internal/domain/entity"
	domainRepo "clinic-pharmacy-api/internal/domain/repository"
	"clinic-pharmacy-api/pkg/query"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type saleRepository struct{}

func NewSaleRepository() domainRepo.SaleRepository {
	return &saleRepository{}
}

// Create inserts the sale together with its items.
func (r *saleRepository) Create(db *gorm.DB, sale *entity.Sale) error {
	return translate(db.Create(sale).Error)
}

func (r *saleRepository) FindAll(db *gorm.DB, filter entity.SaleFilter) ([]entity.Sale, int64, error) {
	return findPage[entity.Sale](db, filter.ListQuery, []string{"Items"},
		query.Search(filter.Search, "invoice_number", "customer_name"),
		query.DateOn("created_at", filter.Date),
		query.Equals("payment_method", filter.PaymentMethod),
		query.Equals("status", filter.Status),
	)
}

func (r *saleRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Sale, error) {
	var sale entity.Sale
	err := db.Preload("Items.Medicine").Where("id = ?", id).First(&sale).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sale, nil
}

func (r *saleRepository) ExistsByInvoiceNumber(db *gorm.DB, invoiceNumber string) (bool, error) {
	var count int64
	err := db.Model(&entity.Sale{}).Where("invoice_number = ?", invoiceNumber).Count(&count).Error
	return count > 0, err
}
