package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppointmentStatus represents the state of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

const DefaultAppointmentType = "consultation"

// Appointment books a patient with a doctor. AppointmentDate holds the
// instant (date and time of day) in UTC; AppointmentTime keeps the HH:MM
// the clinic entered.
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey"`
	PatientID       uuid.UUID         `gorm:"type:uuid;not null;index"`
	DoctorID        uuid.UUID         `gorm:"type:uuid;not null;index"`
	AppointmentDate time.Time         `gorm:"not null;index"`
	AppointmentTime string            `gorm:"type:varchar(5);not null"`
	Type            string            `gorm:"type:varchar(50);not null;default:'consultation'"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'scheduled';index"`
	Notes           *string           `gorm:"type:text"`
	CreatedAt       time.Time         `gorm:"autoCreateTime"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime"`

	// Relationships
	Patient *Patient `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE"`
	Doctor  *Doctor  `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE"`
}

func (Appointment) TableName() string {
	return "appointments"
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusConfirmed, AppointmentStatusCancelled, AppointmentStatusCompleted:
		return true
	}
	return false
}
