package entity

import "github.com/shopspring/decimal"

// DashboardStats is a point-in-time summary for the clinic dashboard.
type DashboardStats struct {
	TotalPatients     int64
	TotalDoctors      int64
	TodayAppointments int64
	LowStockMedicines int64
	TodaySales        int64
	TodayRevenue      decimal.Decimal
}
