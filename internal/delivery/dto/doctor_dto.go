package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateDoctorRequest struct {
	Name           string  `json:"name" validate:"required,max=255"`
	Specialization string  `json:"specialization" validate:"required,max=100"`
	Phone          *string `json:"phone" validate:"omitnil,max=20"`
	Email          *string `json:"email" validate:"omitempty,email"`
}

type UpdateDoctorRequest struct {
	Name           *string `json:"name" validate:"omitnil,min=1,max=255"`
	Specialization *string `json:"specialization" validate:"omitnil,min=1,max=100"`
	Phone          *string `json:"phone" validate:"omitnil,max=20"`
	Email          *string `json:"email" validate:"omitempty,email"`
}

type DoctorResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Specialization string    `json:"specialization"`
	Phone          *string   `json:"phone,omitempty"`
	Email          *string   `json:"email,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type DoctorSummary struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Specialization string    `json:"specialization"`
}
