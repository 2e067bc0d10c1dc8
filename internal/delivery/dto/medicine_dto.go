package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateMedicineRequest struct {
	SKU           string          `json:"sku" validate:"required,max=64"`
	Name          string          `json:"name" validate:"required,max=255"`
	GenericName   *string         `json:"genericName" validate:"omitnil,max=255"`
	Category      string          `json:"category" validate:"required,max=100"`
	Manufacturer  *string         `json:"manufacturer" validate:"omitnil,max=255"`
	Strength      *string         `json:"strength" validate:"omitnil,max=50"`
	Unit          string          `json:"unit" validate:"required,max=30"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SellingPrice  decimal.Decimal `json:"sellingPrice"`
	StockQty      int             `json:"stockQty" validate:"gte=0,lte=1000000"`
	ReorderLevel  *int            `json:"reorderLevel" validate:"omitnil,gte=0,lte=1000000"`
	ExpiryDate    *string         `json:"expiryDate" validate:"omitempty,datetime=2006-01-02"`
	BatchNumber   *string         `json:"batchNumber" validate:"omitnil,max=100"`
}

// UpdateMedicineRequest has no stock field: stock changes only through
// stock adjustments and sales.
type UpdateMedicineRequest struct {
	SKU           *string          `json:"sku" validate:"omitnil,min=1,max=64"`
	Name          *string          `json:"name" validate:"omitnil,min=1,max=255"`
	GenericName   *string          `json:"genericName" validate:"omitnil,max=255"`
	Category      *string          `json:"category" validate:"omitnil,min=1,max=100"`
	Manufacturer  *string          `json:"manufacturer" validate:"omitnil,max=255"`
	Strength      *string          `json:"strength" validate:"omitnil,max=50"`
	Unit          *string          `json:"unit" validate:"omitnil,min=1,max=30"`
	PurchasePrice *decimal.Decimal `json:"purchasePrice"`
	SellingPrice  *decimal.Decimal `json:"sellingPrice"`
	ReorderLevel  *int             `json:"reorderLevel" validate:"omitnil,gte=0,lte=1000000"`
	ExpiryDate    *string          `json:"expiryDate" validate:"omitempty,datetime=2006-01-02"`
	BatchNumber   *string          `json:"batchNumber" validate:"omitnil,max=100"`
}

const (
	StockAdd      = "add"
	StockSubtract = "subtract"
)

type StockAdjustmentRequest struct {
	Quantity int     `json:"quantity" validate:"required,gt=0,lte=1000000"`
	Type     string  `json:"type" validate:"required,oneof=add subtract"`
	Reason   *string `json:"reason" validate:"omitnil,max=500"`
}

// Response DTOs

type MedicineResponse struct {
	ID            uuid.UUID       `json:"id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	GenericName   *string         `json:"genericName,omitempty"`
	Category      string          `json:"category"`
	Manufacturer  *string         `json:"manufacturer,omitempty"`
	Strength      *string         `json:"strength,omitempty"`
	Unit          string          `json:"unit"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SellingPrice  decimal.Decimal `json:"sellingPrice"`
	StockQty      int             `json:"stockQty"`
	ReorderLevel  int             `json:"reorderLevel"`
	IsLowStock    bool            `json:"isLowStock"`
	ExpiryDate    *string         `json:"expiryDate,omitempty"`
	BatchNumber   *string         `json:"batchNumber,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

type StockMovementResponse struct {
	ID            uuid.UUID  `json:"id"`
	MedicineID    uuid.UUID  `json:"medicineId"`
	Type          string     `json:"type"`
	Quantity      int        `json:"quantity"`
	PreviousStock int        `json:"previousStock"`
	NewStock      int        `json:"newStock"`
	Reason        string     `json:"reason"`
	SaleID        *uuid.UUID `json:"saleId,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}
