package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-pharmacy-api/internal/converter"
	"clinic-pharmacy-api/internal/delivery/dto"
	"clinic-pharmacy-api/internal/domain/entity"
	"clinic-pharmacy-api/internal/domain/repository"
	"clinic-pharmacy-api/pkg/pagination"
	"clinic-pharmacy-api/pkg/query"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
)

type AppointmentUsecase interface {
	List(ctx context.Context, filter entity.AppointmentFilter) ([]dto.AppointmentResponse, *pagination.Meta, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	loc             *time.Location
	appointmentRepo repository.AppointmentRepository
	cache           DashboardInvalidator
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	loc *time.Location,
	appointmentRepo repository.AppointmentRepository,
	cache DashboardInvalidator,
) AppointmentUsecase {
	if loc == nil {
		loc = time.UTC
	}
	return &appointmentUsecase{
		db:              db,
		log:             log,
		loc:             loc,
		appointmentRepo: appointmentRepo,
		cache:           cache,
	}
}

func (u *appointmentUsecase) List(ctx context.Context, filter entity.AppointmentFilter) ([]dto.AppointmentResponse, *pagination.Meta, error) {
	appointments, total, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, nil, err
	}
	return converter.AppointmentsToResponses(appointments, u.loc), filter.Page.Meta(total), nil
}

func (u *appointmentUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return converter.AppointmentToResponse(appointment, u.loc), nil
}

// Create relies on the store's foreign keys to reject unknown patient or
// doctor ids (repository.ErrRelatedNotFound).
func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	at, err := appointmentInstant(req.Date, req.Time, u.loc)
	if err != nil {
		return nil, err
	}

	appointment := &entity.Appointment{
		PatientID:       req.PatientID,
		DoctorID:        req.DoctorID,
		AppointmentDate: at,
		AppointmentTime: req.Time,
		Type:            entity.DefaultAppointmentType,
		Status:          entity.AppointmentStatusScheduled,
		Notes:           req.Notes,
	}
	if req.Type != nil {
		appointment.Type = *req.Type
	}
	if req.Status != nil {
		appointment.Status = entity.AppointmentStatus(*req.Status)
	}

	db := u.db.WithContext(ctx)
	if err := u.appointmentRepo.Create(db, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}
	u.cache.InvalidateDashboard(ctx)

	return u.reload(db, appointment), nil
}

func (u *appointmentUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if req.PatientID != nil {
		appointment.PatientID = *req.PatientID
		appointment.Patient = nil
	}
	if req.DoctorID != nil {
		appointment.DoctorID = *req.DoctorID
		appointment.Doctor = nil
	}
	if req.Date != nil || req.Time != nil {
		day := appointment.AppointmentDate.In(u.loc).Format(query.DayLayout)
		clock := appointment.AppointmentTime
		if req.Date != nil {
			day = *req.Date
		}
		if req.Time != nil {
			clock = *req.Time
		}
		at, err := appointmentInstant(day, clock, u.loc)
		if err != nil {
			return nil, err
		}
		appointment.AppointmentDate = at
		appointment.AppointmentTime = clock
	}
	if req.Type != nil {
		appointment.Type = *req.Type
	}
	if req.Status != nil {
		appointment.Status = entity.AppointmentStatus(*req.Status)
	}
	if req.Notes != nil {
		appointment.Notes = req.Notes
	}

	affected, err := u.appointmentRepo.Update(db, appointment)
	if err != nil {
		u.log.Warnf("Failed to update appointment %s: %+v", id, err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrAppointmentNotFound
	}
	u.cache.InvalidateDashboard(ctx)

	return u.reload(db, appointment), nil
}

func (u *appointmentUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := u.appointmentRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete appointment %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}
	u.cache.InvalidateDashboard(ctx)
	return nil
}

// reload fetches the appointment with patient and doctor attached,
// falling back to the given copy.
func (u *appointmentUsecase) reload(db *gorm.DB, appointment *entity.Appointment) *dto.AppointmentResponse {
	full, err := u.appointmentRepo.FindByID(db, appointment.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", appointment.ID, err)
		return converter.AppointmentToResponse(appointment, u.loc)
	}
	return converter.AppointmentToResponse(full, u.loc)
}
