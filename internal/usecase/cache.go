package usecase

import (
	"context"

	"clinic-pharmacy-api/internal/domain/entity"
)

// DashboardInvalidator is told about writes that change dashboard counters.
type DashboardInvalidator interface {
	InvalidateDashboard(ctx context.Context)
}

// DashboardCache is the read-through store for dashboard stats, keyed by day.
type DashboardCache interface {
	DashboardInvalidator
	GetDashboardStats(ctx context.Context, day string) (*entity.DashboardStats, bool)
	SetDashboardStats(ctx context.Context, day string, stats *entity.DashboardStats)
}
