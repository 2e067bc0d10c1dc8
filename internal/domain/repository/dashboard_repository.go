package repository

import (
	"time"

	"clinic-pharmacy-api/internal/domain/entity"

	"gorm.io/gorm"
)

type DashboardRepository interface {
	// Stats counts totals plus activity within [from, to).
	Stats(db *gorm.DB, from, to time.Time) (*entity.DashboardStats, error)
}
