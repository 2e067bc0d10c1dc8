package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Prescription is written by a doctor for a patient. Items are owned by the
// prescription and replaced as a whole on update.
type Prescription struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	PatientID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	DoctorID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	Diagnosis  *string    `gorm:"type:text"`
	Notes      *string    `gorm:"type:text"`
	FollowUpOn *time.Time `gorm:"type:date"`
	CreatedAt  time.Time  `gorm:"autoCreateTime;index"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime"`

	Patient *Patient           `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE"`
	Doctor  *Doctor            `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE"`
	Items   []PrescriptionItem `gorm:"foreignKey:PrescriptionID;constraint:OnDelete:CASCADE"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}

func (p *Prescription) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type PrescriptionItem struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	PrescriptionID uuid.UUID  `gorm:"type:uuid;not null;index"`
	MedicineID     *uuid.UUID `gorm:"type:uuid;index"`
	MedicineName   string     `gorm:"type:varchar(255);not null"`
	Dosage         string     `gorm:"type:varchar(100);not null"`
	Frequency      string     `gorm:"type:varchar(100);not null"`
	Duration       string     `gorm:"type:varchar(100);not null"`
	Instructions   *string    `gorm:"type:text"`

	Medicine *Medicine `gorm:"foreignKey:MedicineID;constraint:OnDelete:SET NULL"`
}

func (PrescriptionItem) TableName() string {
	return "prescription_items"
}

func (i *PrescriptionItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
