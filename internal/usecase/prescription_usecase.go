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
	ErrPrescriptionNotFound = errors.New("prescription not found")
)

type PrescriptionUsecase interface {
	List(ctx context.Context, filter entity.PrescriptionFilter) ([]dto.PrescriptionResponse, *pagination.Meta, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.PrescriptionResponse, error)
	Create(ctx context.Context, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type prescriptionUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	prescriptionRepo repository.PrescriptionRepository
}

func NewPrescriptionUsecase(db *gorm.DB, log *logrus.Logger, prescriptionRepo repository.PrescriptionRepository) PrescriptionUsecase {
	return &prescriptionUsecase{
		db:               db,
		log:              log,
		prescriptionRepo: prescriptionRepo,
	}
}

func (u *prescriptionUsecase) List(ctx context.Context, filter entity.PrescriptionFilter) ([]dto.PrescriptionResponse, *pagination.Meta, error) {
	prescriptions, total, err := u.prescriptionRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list prescriptions: %+v", err)
		return nil, nil, err
	}
	return converter.PrescriptionsToResponses(prescriptions), filter.Page.Meta(total), nil
}

func (u *prescriptionUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.PrescriptionResponse, error) {
	prescription, err := u.prescriptionRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find prescription %s: %+v", id, err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}
	return converter.PrescriptionToResponse(prescription), nil
}

func (u *prescriptionUsecase) Create(ctx context.Context, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	followUp, err := parseCalendarDate(req.FollowUpOn)
	if err != nil {
		return nil, err
	}

	prescription := &entity.Prescription{
		PatientID:  req.PatientID,
		DoctorID:   req.DoctorID,
		Diagnosis:  req.Diagnosis,
		Notes:      req.Notes,
		FollowUpOn: followUp,
		Items:      converter.PrescriptionItemsFromRequest(req.Items),
	}

	db := u.db.WithContext(ctx)
	if err := u.prescriptionRepo.Create(db, prescription); err != nil {
		u.log.Warnf("Failed to create prescription: %+v", err)
		return nil, err
	}

	return u.reload(db, prescription), nil
}

// Update changes the supplied fields; a supplied item list replaces the
// existing one in the same transaction.
func (u *prescriptionUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	prescription, err := u.prescriptionRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find prescription %s: %+v", id, err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}

	if req.Diagnosis != nil {
		prescription.Diagnosis = req.Diagnosis
	}
	if req.Notes != nil {
		prescription.Notes = req.Notes
	}
	if req.FollowUpOn != nil {
		followUp, err := parseCalendarDate(req.FollowUpOn)
		if err != nil {
			return nil, err
		}
		prescription.FollowUpOn = followUp
	}

	affected, err := u.prescriptionRepo.Update(tx, prescription)
	if err != nil {
		u.log.Warnf("Failed to update prescription %s: %+v", id, err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrPrescriptionNotFound
	}

	if req.Items != nil {
		items := converter.PrescriptionItemsFromRequest(req.Items)
		if err := u.prescriptionRepo.ReplaceItems(tx, id, items); err != nil {
			u.log.Warnf("Failed to replace items of prescription %s: %+v", id, err)
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit prescription update: %+v", err)
		return nil, err
	}

	return u.reload(u.db.WithContext(ctx), prescription), nil
}

func (u *prescriptionUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := u.prescriptionRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete prescription %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrPrescriptionNotFound
	}
	return nil
}

func (u *prescriptionUsecase) reload(db *gorm.DB, prescription *entity.Prescription) *dto.PrescriptionResponse {
	full, err := u.prescriptionRepo.FindByID(db, prescription.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload prescription %s: %+v", prescription.ID, err)
		return converter.PrescriptionToResponse(prescription)
	}
	return converter.PrescriptionToResponse(full)
}
