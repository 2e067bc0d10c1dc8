package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateSaleRequest struct {
	PatientID     *uuid.UUID          `json:"patientId"`
	CustomerName  *string             `json:"customerName" validate:"omitnil,max=255"`
	PaymentMethod string              `json:"paymentMethod" validate:"required,oneof=cash card mobile"`
	Notes         *string             `json:"notes"`
	Items         []CreateSaleItemReq `json:"items" validate:"required,min=1,dive"`
}

type CreateSaleItemReq struct {
	MedicineID uuid.UUID       `json:"medicineId" validate:"required"`
	Quantity   int             `json:"quantity" validate:"required,gt=0,lte=1000000"`
	Discount   decimal.Decimal `json:"discount"`
}

// Response DTOs

type SaleResponse struct {
	ID            uuid.UUID          `json:"id"`
	InvoiceNumber string             `json:"invoiceNumber"`
	PatientID     *uuid.UUID         `json:"patientId,omitempty"`
	CustomerName  *string            `json:"customerName,omitempty"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	TotalDiscount decimal.Decimal    `json:"totalDiscount"`
	GrandTotal    decimal.Decimal    `json:"grandTotal"`
	PaymentMethod string             `json:"paymentMethod"`
	Status        string             `json:"status"`
	Notes         *string            `json:"notes,omitempty"`
	Items         []SaleItemResponse `json:"items"`
	CreatedAt     time.Time          `json:"createdAt"`
}

type SaleItemResponse struct {
	ID           uuid.UUID       `json:"id"`
	MedicineID   uuid.UUID       `json:"medicineId"`
	MedicineName string          `json:"medicineName,omitempty"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Discount     decimal.Decimal `json:"discount"`
	LineTotal    decimal.Decimal `json:"lineTotal"`
}
