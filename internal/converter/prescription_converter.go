package converter

import (
	"clinic-pharmacy-api/internal/delivery/dto"
	"clinic-pharmacy-api/internal/domain/entity"
)

func PrescriptionToResponse(prescription *entity.Prescription) *dto.PrescriptionResponse {
	if prescription == nil {
		return nil
	}

	items := make([]dto.PrescriptionItemResponse, len(prescription.Items))
	for i, item := range prescription.Items {
		items[i] = dto.PrescriptionItemResponse{
			ID:           item.ID,
			MedicineID:   item.MedicineID,
			MedicineName: item.MedicineName,
			Dosage:       item.Dosage,
			Frequency:    item.Frequency,
			Duration:     item.Duration,
			Instructions: item.Instructions,
		}
	}

	return &dto.PrescriptionResponse{
		ID:         prescription.ID,
		PatientID:  prescription.PatientID,
		DoctorID:   prescription.DoctorID,
		Diagnosis:  prescription.Diagnosis,
		Notes:      prescription.Notes,
		FollowUpOn: formatDate(prescription.FollowUpOn),
		Patient:    PatientToSummary(prescription.Patient),
		Doctor:     DoctorToSummary(prescription.Doctor),
		Items:      items,
		CreatedAt:  prescription.CreatedAt,
		UpdatedAt:  prescription.UpdatedAt,
	}
}

func PrescriptionsToResponses(prescriptions []entity.Prescription) []dto.PrescriptionResponse {
	responses := make([]dto.PrescriptionResponse, len(prescriptions))
	for i := range prescriptions {
		responses[i] = *PrescriptionToResponse(&prescriptions[i])
	}
	return responses
}

// PrescriptionItemsFromRequest builds item entities from request DTOs.
func PrescriptionItemsFromRequest(reqs []dto.PrescriptionItemRequest) []entity.PrescriptionItem {
	items := make([]entity.PrescriptionItem, len(reqs))
	for i, req := range reqs {
		items[i] = entity.PrescriptionItem{
			MedicineID:   req.MedicineID,
			MedicineName: req.MedicineName,
			Dosage:       req.Dosage,
			Frequency:    req.Frequency,
			Duration:     req.Duration,
			Instructions: req.Instructions,
		}
	}
	return items
}
