package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID uuid.UUID `json:"patientId" validate:"required"`
	DoctorID  uuid.UUID `json:"doctorId" validate:"required"`
	Date      string    `json:"date" validate:"required,datetime=2006-01-02"`
	Time      string    `json:"time" validate:"required,datetime=15:04"`
	Type      *string   `json:"type" validate:"omitnil,min=1,max=50"`
	Status    *string   `json:"status" validate:"omitnil,oneof=scheduled confirmed cancelled completed"`
	Notes     *string   `json:"notes"`
}

type UpdateAppointmentRequest struct {
	PatientID *uuid.UUID `json:"patientId"`
	DoctorID  *uuid.UUID `json:"doctorId"`
	Date      *string    `json:"date" validate:"omitnil,datetime=2006-01-02"`
	Time      *string    `json:"time" validate:"omitnil,datetime=15:04"`
	Type      *string    `json:"type" validate:"omitnil,min=1,max=50"`
	Status    *string    `json:"status" validate:"omitnil,oneof=scheduled confirmed cancelled completed"`
	Notes     *string    `json:"notes"`
}

// Response DTOs

type AppointmentResponse struct {
	ID        uuid.UUID       `json:"id"`
	PatientID uuid.UUID       `json:"patientId"`
	DoctorID  uuid.UUID       `json:"doctorId"`
	Date      string          `json:"date"`
	Time      string          `json:"time"`
	Type      string          `json:"type"`
	Status    string          `json:"status"`
	Notes     *string         `json:"notes,omitempty"`
	Patient   *PatientSummary `json:"patient,omitempty"`
	Doctor    *DoctorSummary  `json:"doctor,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
