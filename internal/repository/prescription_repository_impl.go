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

type prescriptionRepository struct{}

func NewPrescriptionRepository() domainRepo.PrescriptionRepository {
	return &prescriptionRepository{}
}

func (r *prescriptionRepository) Create(db *gorm.DB, prescription *entity.Prescription) error {
	return translate(db.Create(prescription).Error)
}

func (r *prescriptionRepository) FindAll(db *gorm.DB, filter entity.PrescriptionFilter) ([]entity.Prescription, int64, error) {
	return findPage[entity.Prescription](db, filter.ListQuery, []string{"Patient", "Doctor", "Items"},
		query.Search(filter.Search, "diagnosis", "notes"),
		query.Equals("patient_id", filter.PatientID),
		query.Equals("doctor_id", filter.DoctorID),
	)
}

func (r *prescriptionRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Prescription, error) {
	var prescription entity.Prescription
	err := db.Preload("Patient").Preload("Doctor").Preload("Items").
		Where("id = ?", id).
		First(&prescription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prescription, nil
}

func (r *prescriptionRepository) Update(db *gorm.DB, prescription *entity.Prescription) (int64, error) {
	result := db.Model(prescription).Select("*").Omit(clause.Associations).Updates(prescription)
	return result.RowsAffected, translate(result.Error)
}

// ReplaceItems deletes the current items and inserts the given ones.
// Callers run it inside a transaction.
func (r *prescriptionRepository) ReplaceItems(db *gorm.DB, prescriptionID uuid.UUID, items []entity.PrescriptionItem) error {
	if err := db.Where("prescription_id = ?", prescriptionID).Delete(&entity.PrescriptionItem{}).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].PrescriptionID = prescriptionID
	}
	return translate(db.Omit(clause.Associations).Create(&items).Error)
}

func (r *prescriptionRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Prescription{})
	return result.RowsAffected, translate(result.Error)
}
