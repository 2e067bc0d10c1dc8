package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const DefaultReorderLevel = 10

// MaxStockQty caps stock_qty well inside a 32-bit INTEGER column.
const MaxStockQty = 1_000_000_000

// Medicine is a stocked pharmacy item. StockQty never goes below zero; it
// only changes through stock adjustments and sales, each of which appends
// a StockMovement.
type Medicine struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SKU           string          `gorm:"column:sku;type:varchar(64);uniqueIndex;not null"`
	Name          string          `gorm:"type:varchar(255);not null;index"`
	GenericName   *string         `gorm:"type:varchar(255)"`
	Category      string          `gorm:"type:varchar(100);not null;index"`
	Manufacturer  *string         `gorm:"type:varchar(255)"`
	Strength      *string         `gorm:"type:varchar(50)"`
	Unit          string          `gorm:"type:varchar(30);not null"`
	PurchasePrice decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	SellingPrice  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	StockQty      int             `gorm:"not null;default:0;check:stock_qty BETWEEN 0 AND 1000000000"`
	ReorderLevel  int             `gorm:"not null;default:10"`
	ExpiryDate    *time.Time      `gorm:"type:date"`
	BatchNumber   *string         `gorm:"type:varchar(100)"`
	CreatedAt     time.Time       `gorm:"autoCreateTime"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime"`
}

func (Medicine) TableName() string {
	return "medicines"
}

func (m *Medicine) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// IsLowStock reports stock at or below the reorder level.
func (m *Medicine) IsLowStock() bool {
	return m.StockQty <= m.ReorderLevel
}
