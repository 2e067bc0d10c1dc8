package converter

import (
	"time"

	"clinic-pharmacy-api/internal/delivery/dto"
	"clinic-pharmacy-api/internal/domain/entity"
	"clinic-pharmacy-api/pkg/query"
)

// AppointmentToResponse renders the appointment date in loc, the clinic's
// time zone.
func AppointmentToResponse(appointment *entity.Appointment, loc *time.Location) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}
	if loc == nil {
		loc = time.UTC
	}

	return &dto.AppointmentResponse{
		ID:        appointment.ID,
		PatientID: appointment.PatientID,
		DoctorID:  appointment.DoctorID,
		Date:      appointment.AppointmentDate.In(loc).Format(query.DayLayout),
		Time:      appointment.AppointmentTime,
		Type:      appointment.Type,
		Status:    string(appointment.Status),
		Notes:     appointment.Notes,
		Patient:   PatientToSummary(appointment.Patient),
		Doctor:    DoctorToSummary(appointment.Doctor),
		CreatedAt: appointment.CreatedAt,
		UpdatedAt: appointment.UpdatedAt,
	}
}

func AppointmentsToResponses(appointments []entity.Appointment, loc *time.Location) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i], loc)
	}
	return responses
}
