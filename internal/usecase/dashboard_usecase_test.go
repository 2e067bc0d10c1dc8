package usecase

import (
	"context"
	"testing"
	"time"

	"clinic-pharmacy-api/internal/delivery/dto"
	"clinic-pharmacy-api/internal/domain/entity"
	repoImpl "clinic-pharmacy-api/internal/repository"
	"clinic-pharmacy-api/pkg/query"

	"github.com/shopspring/decimal"
)

func TestDashboardUsecase_Stats(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	log := newTestLogger()

	patient := seedPatient(t, db, "Rahim Uddin", "01711000000")
	seedPatient(t, db, "Fatema Begum", "01811000000")
	doctor := seedDoctor(t, db, "Dr. Karim", "Cardiology")
	napa := seedMedicine(t, db, "NAPA-500", "Napa", "2.50", 40)
	seedMedicine(t, db, "SECLO-20", "Seclo", "5", 3)

	now := time.Now().In(dhaka)
	today := now.Format(query.DayLayout)
	tomorrow := now.AddDate(0, 0, 1).Format(query.DayLayout)
	cancelled := string(entity.AppointmentStatusCancelled)

	appointments := newAppointmentUsecase(db)
	for _, req := range []dto.CreateAppointmentRequest{
		{PatientID: patient.ID, DoctorID: doctor.ID, Date: today, Time: "10:00"},
		{PatientID: patient.ID, DoctorID: doctor.ID, Date: today, Time: "11:00", Status: &cancelled},
		{PatientID: patient.ID, DoctorID: doctor.ID, Date: tomorrow, Time: "10:00"},
	} {
		if _, err := appointments.Create(ctx, &req); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := newSaleUsecase(db).Create(ctx, &dto.CreateSaleRequest{
		PaymentMethod: "cash",
		Items:         []dto.CreateSaleItemReq{{MedicineID: napa.ID, Quantity: 3}},
	}); err != nil {
		t.Fatal(err)
	}

	uc := NewDashboardUsecase(db, log, dhaka, repoImpl.NewDashboardRepository(), noCache(log)).(*dashboardUsecase)
	uc.now = func() time.Time { return now }

	stats, err := uc.Stats(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.TotalPatients != 2 || stats.TotalDoctors != 1 {
		t.Errorf("unexpected totals: %+v", stats)
	}
	if stats.TodayAppointments != 1 {
		t.Errorf("expected 1 active appointment today, got %d", stats.TodayAppointments)
	}
	if stats.LowStockMedicines != 1 {
		t.Errorf("expected 1 low-stock medicine, got %d", stats.LowStockMedicines)
	}
	if stats.TodaySales != 1 || !stats.TodayRevenue.Equal(decimal.RequireFromString("7.5")) {
		t.Errorf("expected one sale of 7.5, got %d / %s", stats.TodaySales, stats.TodayRevenue)
	}
}

func TestDashboardUsecase_Stats_EmptyStore(t *testing.T) {
	db := newTestDB(t)
	log := newTestLogger()
	uc := NewDashboardUsecase(db, log, time.UTC, repoImpl.NewDashboardRepository(), noCache(log))

	stats, err := uc.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TodaySales != 0 || !stats.TodayRevenue.IsZero() {
		t.Errorf("expected zero sales, got %+v", stats)
	}
}
