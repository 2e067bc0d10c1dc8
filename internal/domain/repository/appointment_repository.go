package repository

import (
	"clinic-pharmacy-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindAll(db *gorm.DB, filter entity.AppointmentFilter) ([]entity.Appointment, int64, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	Update(db *gorm.DB, appointment *entity.Appointment) (int64, error)
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
