package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Gender values accepted for patients.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// Patient is a person registered at the clinic.
type Patient struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name        string     `gorm:"type:varchar(255);not null;index"`
	Phone       string     `gorm:"type:varchar(20);not null;index"`
	Email       *string    `gorm:"type:varchar(255)"`
	Address     *string    `gorm:"type:text"`
	DateOfBirth *time.Time `gorm:"type:date"`
	Gender      *string    `gorm:"type:varchar(10);index"`
	BloodGroup  *string    `gorm:"type:varchar(5)"`
	CreatedAt   time.Time  `gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime"`
}

func (Patient) TableName() string {
	return "patients"
}

func (p *Patient) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
