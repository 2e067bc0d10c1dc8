package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentCard   PaymentMethod = "card"
	PaymentMobile PaymentMethod = "mobile"
)

func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentCash, PaymentCard, PaymentMobile:
		return true
	}
	return false
}

type SaleStatus string

const (
	SaleStatusCompleted SaleStatus = "completed"
	SaleStatusRefunded  SaleStatus = "refunded"
)

func (s SaleStatus) IsValid() bool {
	return s == SaleStatusCompleted || s == SaleStatusRefunded
}

// Sale is a point-of-sale transaction. GrandTotal = Subtotal - TotalDiscount.
type Sale struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	InvoiceNumber string          `gorm:"type:varchar(50);uniqueIndex;not null"`
	PatientID     *uuid.UUID      `gorm:"type:uuid;index"`
	CustomerName  *string         `gorm:"type:varchar(255)"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TotalDiscount decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	GrandTotal    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PaymentMethod PaymentMethod   `gorm:"type:varchar(20);not null;index"`
	Status        SaleStatus      `gorm:"type:varchar(20);not null;default:'completed';index"`
	Notes         *string         `gorm:"type:text"`
	CreatedAt     time.Time       `gorm:"autoCreateTime;index"`

	Patient *Patient   `gorm:"foreignKey:PatientID;constraint:OnDelete:SET NULL"`
	Items   []SaleItem `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE"`
}

func (Sale) TableName() string {
	return "sales"
}

func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// SaleItem is one priced line of a sale. LineTotal = UnitPrice*Quantity - Discount.
type SaleItem struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SaleID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	MedicineID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity   int             `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Discount   decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	LineTotal  decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Medicine *Medicine `gorm:"foreignKey:MedicineID;constraint:OnDelete:RESTRICT"`
}

func (SaleItem) TableName() string {
	return "sale_items"
}

func (i *SaleItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
