package converter

import (
	"clinic-pharmacy-api/internal/delivery/dto"
	"clinic-pharmacy-api/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:             doctor.ID,
		Name:           doctor.Name,
		Specialization: doctor.Specialization,
		Phone:          doctor.Phone,
		Email:          doctor.Email,
		CreatedAt:      doctor.CreatedAt,
		UpdatedAt:      doctor.UpdatedAt,
	}
}

func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}

func DoctorToSummary(doctor *entity.Doctor) *dto.DoctorSummary {
	if doctor == nil {
		return nil
	}
	return &dto.DoctorSummary{
		ID:             doctor.ID,
		Name:           doctor.Name,
		Specialization: doctor.Specialization,
	}
}
