package repository

import (
	"clinic-pharmacy-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SaleRepository interface {
	Create(db *gorm.DB, sale *entity.Sale) error
	FindAll(db *gorm.DB, filter entity.SaleFilter) ([]entity.Sale, int64, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Sale, error)
	ExistsByInvoiceNumber(db *gorm.DB, invoiceNumber string) (bool, error)
}
