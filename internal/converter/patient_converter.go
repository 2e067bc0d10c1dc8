package converter

import (
	"clinic-pharmacy-api/internal/delivery/dto"
	"clinic-pharmacy-api/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:          patient.ID,
		Name:        patient.Name,
		Phone:       patient.Phone,
		Email:       patient.Email,
		Address:     patient.Address,
		DateOfBirth: formatDate(patient.DateOfBirth),
		Gender:      patient.Gender,
		BloodGroup:  patient.BloodGroup,
		CreatedAt:   patient.CreatedAt,
		UpdatedAt:   patient.UpdatedAt,
	}
}

func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}

func PatientToSummary(patient *entity.Patient) *dto.PatientSummary {
	if patient == nil {
		return nil
	}
	return &dto.PatientSummary{
		ID:    patient.ID,
		Name:  patient.Name,
		Phone: patient.Phone,
	}
}
