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
	ErrPatientNotFound = errors.New("patient not found")
)

type PatientUsecase interface {
	List(ctx context.Context, filter entity.PatientFilter) ([]dto.PatientResponse, *pagination.Meta, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error)
	Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type patientUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	patientRepo repository.PatientRepository
	cache       DashboardInvalidator
}

func NewPatientUsecase(db *gorm.DB, log *logrus.Logger, patientRepo repository.PatientRepository, cache DashboardInvalidator) PatientUsecase {
	return &patientUsecase{
		db:          db,
		log:         log,
		patientRepo: patientRepo,
		cache:       cache,
	}
}

func (u *patientUsecase) List(ctx context.Context, filter entity.PatientFilter) ([]dto.PatientResponse, *pagination.Meta, error) {
	patients, total, err := u.patientRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, nil, err
	}
	return converter.PatientsToResponses(patients), filter.Page.Meta(total), nil
}

func (u *patientUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	dob, err := parseCalendarDate(req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	patient := &entity.Patient{
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		DateOfBirth: dob,
		Gender:      req.Gender,
		BloodGroup:  req.BloodGroup,
	}

	if err := u.patientRepo.Create(u.db.WithContext(ctx), patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}
	u.cache.InvalidateDashboard(ctx)

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	db := u.db.WithContext(ctx)

	patient, err := u.patientRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	if req.Name != nil {
		patient.Name = *req.Name
	}
	if req.Phone != nil {
		patient.Phone = *req.Phone
	}
	if req.Email != nil {
		patient.Email = req.Email
	}
	if req.Address != nil {
		patient.Address = req.Address
	}
	if req.DateOfBirth != nil {
		dob, err := parseCalendarDate(req.DateOfBirth)
		if err != nil {
			return nil, err
		}
		patient.DateOfBirth = dob
	}
	if req.Gender != nil {
		patient.Gender = req.Gender
	}
	if req.BloodGroup != nil {
		patient.BloodGroup = req.BloodGroup
	}

	affected, err := u.patientRepo.Update(db, patient)
	if err != nil {
		u.log.Warnf("Failed to update patient %s: %+v", id, err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := u.patientRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete patient %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrPatientNotFound
	}
	u.cache.InvalidateDashboard(ctx)
	return nil
}
