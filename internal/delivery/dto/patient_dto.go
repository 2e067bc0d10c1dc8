package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePatientRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Phone       string  `json:"phone" validate:"required,max=20"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Address     *string `json:"address"`
	DateOfBirth *string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Gender      *string `json:"gender" validate:"omitempty,oneof=male female other"`
	BloodGroup  *string `json:"bloodGroup" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
}

// UpdatePatientRequest changes only the fields present in the body.
type UpdatePatientRequest struct {
	Name        *string `json:"name" validate:"omitnil,min=1,max=255"`
	Phone       *string `json:"phone" validate:"omitnil,min=1,max=20"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Address     *string `json:"address"`
	DateOfBirth *string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Gender      *string `json:"gender" validate:"omitempty,oneof=male female other"`
	BloodGroup  *string `json:"bloodGroup" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
}

// Response DTOs

type PatientResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Email       *string   `json:"email,omitempty"`
	Address     *string   `json:"address,omitempty"`
	DateOfBirth *string   `json:"dateOfBirth,omitempty"`
	Gender      *string   `json:"gender,omitempty"`
	BloodGroup  *string   `json:"bloodGroup,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PatientSummary is embedded in responses that reference a patient.
type PatientSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Phone string    `json:"phone"`
}
