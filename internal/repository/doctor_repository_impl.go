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

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return translate(db.Create(doctor).Error)
}

func (r *doctorRepository) FindAll(db *gorm.DB, filter entity.DoctorFilter) ([]entity.Doctor, int64, error) {
	return findPage[entity.Doctor](db, filter.ListQuery, nil,
		query.Search(filter.Search, "name", "specialization"),
		query.Equals("specialization", filter.Specialization),
	)
}

func (r *doctorRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) Update(db *gorm.DB, doctor *entity.Doctor) (int64, error) {
	result := db.Model(doctor).Select("*").Omit(clause.Associations).Updates(doctor)
	return result.RowsAffected, translate(result.Error)
}

func (r *doctorRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Doctor{})
	return result.RowsAffected, translate(result.Error)
}
