package converter

import (
	"clinic-pharmacy-api/internal/delivery/dto"
	"clinic-pharmacy-api/internal/domain/entity"
)

func MedicineToResponse(medicine *entity.Medicine) *dto.MedicineResponse {
	if medicine == nil {
		return nil
	}

	return &dto.MedicineResponse{
		ID:            medicine.ID,
		SKU:           medicine.SKU,
		Name:          medicine.Name,
		GenericName:   medicine.GenericName,
		Category:      medicine.Category,
		Manufacturer:  medicine.Manufacturer,
		Strength:      medicine.Strength,
		Unit:          medicine.Unit,
		PurchasePrice: medicine.PurchasePrice,
		SellingPrice:  medicine.SellingPrice,
		StockQty:      medicine.StockQty,
		ReorderLevel:  medicine.ReorderLevel,
		IsLowStock:    medicine.IsLowStock(),
		ExpiryDate:    formatDate(medicine.ExpiryDate),
		BatchNumber:   medicine.BatchNumber,
		CreatedAt:     medicine.CreatedAt,
		UpdatedAt:     medicine.UpdatedAt,
	}
}

func MedicinesToResponses(medicines []entity.Medicine) []dto.MedicineResponse {
	responses := make([]dto.MedicineResponse, len(medicines))
	for i := range medicines {
		responses[i] = *MedicineToResponse(&medicines[i])
	}
	return responses
}

func StockMovementToResponse(movement *entity.StockMovement) *dto.StockMovementResponse {
	if movement == nil {
		return nil
	}

	return &dto.StockMovementResponse{
		ID:            movement.ID,
		MedicineID:    movement.MedicineID,
		Type:          string(movement.Type),
		Quantity:      movement.Quantity,
		PreviousStock: movement.PreviousStock,
		NewStock:      movement.NewStock,
		Reason:        movement.Reason,
		SaleID:        movement.SaleID,
		CreatedAt:     movement.CreatedAt,
	}
}

func StockMovementsToResponses(movements []entity.StockMovement) []dto.StockMovementResponse {
	responses := make([]dto.StockMovementResponse, len(movements))
	for i := range movements {
		responses[i] = *StockMovementToResponse(&movements[i])
	}
	return responses
}
