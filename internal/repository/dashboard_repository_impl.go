package repository

import (
	"time"

	"clinic-pharmacy-api/internal/domain/entity"
	domainRepo "clinic-pharmacy-api/internal/domain/repository"
	"clinic-pharmacy-api/pkg/query"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type dashboardRepository struct{}

func NewDashboardRepository() domainRepo.DashboardRepository {
	return &dashboardRepository{}
}

func (r *dashboardRepository) Stats(db *gorm.DB, from, to time.Time) (*entity.DashboardStats, error) {
	var stats entity.DashboardStats

	g, ctx := errgroup.WithContext(db.Statement.Context)
	db = db.WithContext(ctx)

	g.Go(func() error {
		return db.Model(&entity.Patient{}).Count(&stats.TotalPatients).Error
	})
	g.Go(func() error {
		return db.Model(&entity.Doctor{}).Count(&stats.TotalDoctors).Error
	})
	g.Go(func() error {
		return db.Model(&entity.Appointment{}).
			Scopes(query.Between("appointment_date", from, to)).
			Where("status <> ?", entity.AppointmentStatusCancelled).
			Count(&stats.TodayAppointments).Error
	})
	g.Go(func() error {
		return db.Model(&entity.Medicine{}).
			Scopes(query.ColumnLTE("stock_qty", "reorder_level", true)).
			Count(&stats.LowStockMedicines).Error
	})
	g.Go(func() error {
		return db.Model(&entity.Sale{}).
			Scopes(query.Between("created_at", from, to)).
			Where("status = ?", entity.SaleStatusCompleted).
			Select("COUNT(*), COALESCE(SUM(grand_total), 0)").
			Row().
			Scan(&stats.TodaySales, &stats.TodayRevenue)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}
