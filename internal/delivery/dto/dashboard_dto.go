package dto

import "github.com/shopspring/decimal"

type DashboardStatsResponse struct {
	TotalPatients     int64           `json:"totalPatients"`
	TotalDoctors      int64           `json:"totalDoctors"`
	TodayAppointments int64           `json:"todayAppointments"`
	LowStockMedicines int64           `json:"lowStockMedicines"`
	TodaySales        int64           `json:"todaySales"`
	TodayRevenue      decimal.Decimal `json:"todayRevenue"`
}
