package usecase

import (
	"context"
	"time"

	"clinic-pharmacy-api/internal/converter"
	"clinic-pharmacy-api/internal/delivery/dto"
	"clinic-pharmacy-api/internal/domain/repository"
	"clinic-pharmacy-api/pkg/query"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type DashboardUsecase interface {
	Stats(ctx context.Context) (*dto.DashboardStatsResponse, error)
}

type dashboardUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	loc           *time.Location
	dashboardRepo repository.DashboardRepository
	cache         DashboardCache
	now           func() time.Time
}

func NewDashboardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	loc *time.Location,
	dashboardRepo repository.DashboardRepository,
	cache DashboardCache,
) DashboardUsecase {
	if loc == nil {
		loc = time.UTC
	}
	return &dashboardUsecase{
		db:            db,
		log:           log,
		loc:           loc,
		dashboardRepo: dashboardRepo,
		cache:         cache,
		now:           time.Now,
	}
}

// Stats summarizes the clinic for today in the clinic's time zone. Results
// are cached per day when Redis is enabled.
func (u *dashboardUsecase) Stats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	from, to := query.DayBounds(u.now().In(u.loc))
	day := from.Format(query.DayLayout)

	if stats, ok := u.cache.GetDashboardStats(ctx, day); ok {
		return converter.DashboardStatsToResponse(stats), nil
	}

	stats, err := u.dashboardRepo.Stats(u.db.WithContext(ctx), from, to)
	if err != nil {
		u.log.Warnf("Failed to compute dashboard stats: %+v", err)
		return nil, err
	}
	u.cache.SetDashboardStats(ctx, day, stats)

	return converter.DashboardStatsToResponse(stats), nil
}
