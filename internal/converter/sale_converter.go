package converter

import (
	"clinic-pharmacy-api/internal/delivery/dto"
	"clinic-pharmacy-api/internal/domain/entity"
)

func SaleToResponse(sale *entity.Sale) *dto.SaleResponse {
	if sale == nil {
		return nil
	}

	items := make([]dto.SaleItemResponse, len(sale.Items))
	for i, item := range sale.Items {
		items[i] = dto.SaleItemResponse{
			ID:         item.ID,
			MedicineID: item.MedicineID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			Discount:   item.Discount,
			LineTotal:  item.LineTotal,
		}
		if item.Medicine != nil {
			items[i].MedicineName = item.Medicine.Name
		}
	}

	return &dto.SaleResponse{
		ID:            sale.ID,
		InvoiceNumber: sale.InvoiceNumber,
		PatientID:     sale.PatientID,
		CustomerName:  sale.CustomerName,
		Subtotal:      sale.Subtotal,
		TotalDiscount: sale.TotalDiscount,
		GrandTotal:    sale.GrandTotal,
		PaymentMethod: string(sale.PaymentMethod),
		Status:        string(sale.Status),
		Notes:         sale.Notes,
		Items:         items,
		CreatedAt:     sale.CreatedAt,
	}
}

func SalesToResponses(sales []entity.Sale) []dto.SaleResponse {
	responses := make([]dto.SaleResponse, len(sales))
	for i := range sales {
		responses[i] = *SaleToResponse(&sales[i])
	}
	return responses
}
