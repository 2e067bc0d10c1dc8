package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MovementType string

const (
	MovementPurchase   MovementType = "purchase"
	MovementAdjustment MovementType = "adjustment"
	MovementSale       MovementType = "sale"
	MovementReturn     MovementType = "return"
)

func (t MovementType) IsValid() bool {
	switch t {
	case MovementPurchase, MovementAdjustment, MovementSale, MovementReturn:
		return true
	}
	return false
}

// StockMovement is an append-only ledger row. Quantity is signed:
// positive for stock in, negative for stock out.
type StockMovement struct {
	ID            uuid.UUID    `gorm:"type:uuid;primaryKey"`
	MedicineID    uuid.UUID    `gorm:"type:uuid;not null;index"`
	Type          MovementType `gorm:"type:varchar(20);not null;index"`
	Quantity      int          `gorm:"not null"`
	PreviousStock int          `gorm:"not null"`
	NewStock      int          `gorm:"not null"`
	Reason        string       `gorm:"type:text;not null"`
	SaleID        *uuid.UUID   `gorm:"type:uuid;index"`
	CreatedAt     time.Time    `gorm:"autoCreateTime;index"`

	Medicine *Medicine `gorm:"foreignKey:MedicineID;constraint:OnDelete:CASCADE"`
	Sale     *Sale     `gorm:"foreignKey:SaleID;constraint:OnDelete:SET NULL"`
}

func (StockMovement) TableName() string {
	return "stock_movements"
}

func (m *StockMovement) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
