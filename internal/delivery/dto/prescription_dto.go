package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePrescriptionRequest struct {
	PatientID  uuid.UUID                 `json:"patientId" validate:"required"`
	DoctorID   uuid.UUID                 `json:"doctorId" validate:"required"`
	Diagnosis  *string                   `json:"diagnosis"`
	Notes      *string                   `json:"notes"`
	FollowUpOn *string                   `json:"followUpOn" validate:"omitempty,datetime=2006-01-02"`
	Items      []PrescriptionItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdatePrescriptionRequest replaces the item list when items is present.
type UpdatePrescriptionRequest struct {
	Diagnosis  *string                   `json:"diagnosis"`
	Notes      *string                   `json:"notes"`
	FollowUpOn *string                   `json:"followUpOn" validate:"omitempty,datetime=2006-01-02"`
	Items      []PrescriptionItemRequest `json:"items" validate:"omitempty,min=1,dive"`
}

type PrescriptionItemRequest struct {
	MedicineID   *uuid.UUID `json:"medicineId"`
	MedicineName string     `json:"medicineName" validate:"required,max=255"`
	Dosage       string     `json:"dosage" validate:"required,max=100"`
	Frequency    string     `json:"frequency" validate:"required,max=100"`
	Duration     string     `json:"duration" validate:"required,max=100"`
	Instructions *string    `json:"instructions"`
}

// Response DTOs

type PrescriptionResponse struct {
	ID         uuid.UUID                  `json:"id"`
	PatientID  uuid.UUID                  `json:"patientId"`
	DoctorID   uuid.UUID                  `json:"doctorId"`
	Diagnosis  *string                    `json:"diagnosis,omitempty"`
	Notes      *string                    `json:"notes,omitempty"`
	FollowUpOn *string                    `json:"followUpOn,omitempty"`
	Patient    *PatientSummary            `json:"patient,omitempty"`
	Doctor     *DoctorSummary             `json:"doctor,omitempty"`
	Items      []PrescriptionItemResponse `json:"items"`
	CreatedAt  time.Time                  `json:"createdAt"`
	UpdatedAt  time.Time                  `json:"updatedAt"`
}

type PrescriptionItemResponse struct {
	ID           uuid.UUID  `json:"id"`
	MedicineID   *uuid.UUID `json:"medicineId,omitempty"`
	MedicineName string     `json:"medicineName"`
	Dosage       string     `json:"dosage"`
	Frequency    string     `json:"frequency"`
	Duration     string     `json:"duration"`
	Instructions *string    `json:"instructions,omitempty"`
}
