package repository

import (
	"errors"

	"clinic-pharmacy-api/internal/domain/entity"
	domainRepo "clinic-pharmacy-api/internal/domain/repository"
	"clinic-pharmacy-api/pkg/query"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return translate(db.Omit(clause.Associations).Create(appointment).Error)
}

func (r *appointmentRepository) FindAll(db *gorm.DB, filter entity.AppointmentFilter) ([]entity.Appointment, int64, error) {
	return findPage[entity.Appointment](db, filter.ListQuery, []string{"Patient", "Doctor"},
		searchAppointments(filter.Search),
		query.DateOn("appointment_date", filter.Date),
		query.Equals("status", filter.Status),
		query.Equals("doctor_id", filter.DoctorID),
		query.Equals("patient_id", filter.PatientID),
	)
}

// searchAppointments matches the appointment's own text fields or the
// name of its patient or doctor.
func searchAppointments(term string) query.Scope {
	own, args := query.Match(term, "type", "notes")
	if own == "" {
		return func(db *gorm.DB) *gorm.DB { return db }
	}
	patients, patientArgs := query.Match(term, "name", "phone")
	doctors, doctorArgs := query.Match(term, "name")

	expr := "(" + own +
		" OR patient_id IN (SELECT id FROM patients WHERE " + patients + ")" +
		" OR doctor_id IN (SELECT id FROM doctors WHERE " + doctors + "))"
	args = append(append(args, patientArgs...), doctorArgs...)

	return func(db *gorm.DB) *gorm.DB {
		return db.Where(expr, args...)
	}
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Patient").Preload("Doctor").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) (int64, error) {
	result := db.Model(appointment).Select("*").Omit(clause.Associations).Updates(appointment)
	return result.RowsAffected, translate(result.Error)
}

func (r *appointmentRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Appointment{})
	return result.RowsAffected, translate(result.Error)
}
