package converter

import (
	"clinic-pharmacy-api/internal/delivery/dto"
	"clinic-pharmacy-api/internal/domain/entity"
)

func DashboardStatsToResponse(stats *entity.DashboardStats) *dto.DashboardStatsResponse {
	if stats == nil {
		return nil
	}
	return &dto.DashboardStatsResponse{
		TotalPatients:     stats.TotalPatients,
		TotalDoctors:      stats.TotalDoctors,
		TodayAppointments: stats.TodayAppointments,
		LowStockMedicines: stats.LowStockMedicines,
		TodaySales:        stats.TodaySales,
		TodayRevenue:      stats.TodayRevenue,
	}
}
