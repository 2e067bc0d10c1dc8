package usecase

import (
	"context"
	"errors"

	"clinic-pharmacy-api/internal/converter"
	"clinic-pharmacy-api/internal/delivery/dto"
	"clinic-pharmacy-api/internal/domain/entity"
	"clinic-pharmacy-api/internal/domain/repository"
	"clinic-pharmacy-api/pkg/pagination"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound = errors.New("doctor not found")
)

type DoctorUsecase interface {
	List(ctx context.Context, filter entity.DoctorFilter) ([]dto.DoctorResponse, *pagination.Meta, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error)
	Create(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type doctorUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
	cache      DashboardInvalidator
}

func NewDoctorUsecase(db *gorm.DB, log *logrus.Logger, doctorRepo repository.DoctorRepository, cache DashboardInvalidator) DoctorUsecase {
	return &doctorUsecase{
		db:         db,
		log:        log,
		doctorRepo: doctorRepo,
		cache:      cache,
	}
}

func (u *doctorUsecase) List(ctx context.Context, filter entity.DoctorFilter) ([]dto.DoctorResponse, *pagination.Meta, error) {
	doctors, total, err := u.doctorRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, nil, err
	}
	return converter.DoctorsToResponses(doctors), filter.Page.Meta(total), nil
}

func (u *doctorUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", id, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) Create(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	doctor := &entity.Doctor{
		Name:           req.Name,
		Specialization: req.Specialization,
		Phone:          req.Phone,
		Email:          req.Email,
	}

	if err := u.doctorRepo.Create(u.db.WithContext(ctx), doctor); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}
	u.cache.InvalidateDashboard(ctx)

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.doctorRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", id, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	if req.Name != nil {
		doctor.Name = *req.Name
	}
	if req.Specialization != nil {
		doctor.Specialization = *req.Specialization
	}
	if req.Phone != nil {
		doctor.Phone = req.Phone
	}
	if req.Email != nil {
		doctor.Email = req.Email
	}

	affected, err := u.doctorRepo.Update(db, doctor)
	if err != nil {
		u.log.Warnf("Failed to update doctor %s: %+v", id, err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := u.doctorRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete doctor %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrDoctorNotFound
	}
	u.cache.InvalidateDashboard(ctx)
	return nil
}
