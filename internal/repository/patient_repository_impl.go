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

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return translate(db.Create(patient).Error)
}

func (r *patientRepository) FindAll(db *gorm.DB, filter entity.PatientFilter) ([]entity.Patient, int64, error) {
	return findPage[entity.Patient](db, filter.ListQuery, nil,
		query.Search(filter.Search, "name", "phone", "email"),
		query.Equals("gender", filter.Gender),
		query.Equals("blood_group", filter.BloodGroup),
	)
}

func (r *patientRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) Update(db *gorm.DB, patient *entity.Patient) (int64, error) {
	result := db.Model(patient).Select("*").Omit(clause.Associations).Updates(patient)
	return result.RowsAffected, translate(result.Error)
}

func (r *patientRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Patient{})
	return result.RowsAffected, translate(result.Error)
}
