package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"clinic-pharmacy-api/internal/delivery/dto"
	"clinic-pharmacy-api/internal/domain/entity"
	"clinic-pharmacy-api/internal/domain/repository"
	repoImpl "clinic-pharmacy-api/internal/repository"
	"clinic-pharmacy-api/pkg/query"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var dhaka = time.FixedZone("BDT", 6*60*60)

func newAppointmentUsecase(db *gorm.DB) AppointmentUsecase {
	log := newTestLogger()
	return NewAppointmentUsecase(db, log, dhaka, repoImpl.NewAppointmentRepository(), noCache(log))
}

func TestAppointmentUsecase_Create(t *testing.T) {
	db := newTestDB(t)
	uc := newAppointmentUsecase(db)
	patient := seedPatient(t, db, "Rahim Uddin", "01711000000")
	doctor := seedDoctor(t, db, "Dr. Karim", "Cardiology")

	resp, err := uc.Create(context.Background(), &dto.CreateAppointmentRequest{
		PatientID: patient.ID,
		DoctorID:  doctor.ID,
		Date:      "2024-03-10",
		Time:      "09:30",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Date != "2024-03-10" || resp.Time != "09:30" {
		t.Errorf("expected 2024-03-10 09:30, got %s %s", resp.Date, resp.Time)
	}
	if resp.Status != string(entity.AppointmentStatusScheduled) || resp.Type != entity.DefaultAppointmentType {
		t.Errorf("unexpected defaults: %+v", resp)
	}
	if resp.Patient == nil || resp.Patient.Name != "Rahim Uddin" || resp.Doctor == nil || resp.Doctor.Name != "Dr. Karim" {
		t.Errorf("expected patient and doctor summaries, got %+v %+v", resp.Patient, resp.Doctor)
	}

	var stored entity.Appointment
	if err := db.First(&stored, "id = ?", resp.ID).Error; err != nil {
		t.Fatal(err)
	}
	want := time.Date(2024, 3, 10, 3, 30, 0, 0, time.UTC)
	if !stored.AppointmentDate.Equal(want) {
		t.Errorf("expected stored instant %v, got %v", want, stored.AppointmentDate)
	}
}

func TestAppointmentUsecase_Create_UnknownPatient(t *testing.T) {
	db := newTestDB(t)
	uc := newAppointmentUsecase(db)
	doctor := seedDoctor(t, db, "Dr. Karim", "Cardiology")

	_, err := uc.Create(context.Background(), &dto.CreateAppointmentRequest{
		PatientID: uuid.New(),
		DoctorID:  doctor.ID,
		Date:      "2024-03-10",
		Time:      "09:30",
	})
	if !errors.Is(err, repository.ErrRelatedNotFound) {
		t.Fatalf("expected ErrRelatedNotFound, got %v", err)
	}
	if n := countRows(t, db, &entity.Appointment{}); n != 0 {
		t.Errorf("expected no appointment, got %d", n)
	}
}

func TestAppointmentUsecase_Create_InvalidTime(t *testing.T) {
	db := newTestDB(t)
	uc := newAppointmentUsecase(db)

	_, err := uc.Create(context.Background(), &dto.CreateAppointmentRequest{
		PatientID: uuid.New(),
		DoctorID:  uuid.New(),
		Date:      "2024-02-30",
		Time:      "09:30",
	})
	if !errors.Is(err, ErrInvalidDateTime) {
		t.Fatalf("expected ErrInvalidDateTime, got %v", err)
	}
}

func TestAppointmentUsecase_List_DayInClinicZone(t *testing.T) {
	db := newTestDB(t)
	uc := newAppointmentUsecase(db)
	patient := seedPatient(t, db, "Rahim Uddin", "01711000000")
	karim := seedDoctor(t, db, "Dr. Karim", "Cardiology")
	nasrin := seedDoctor(t, db, "Dr. Nasrin", "Dermatology")

	ctx := context.Background()
	create := func(doctorID uuid.UUID, date, clock string) *dto.AppointmentResponse {
		t.Helper()
		resp, err := uc.Create(ctx, &dto.CreateAppointmentRequest{PatientID: patient.ID, DoctorID: doctorID, Date: date, Time: clock})
		if err != nil {
			t.Fatal(err)
		}
		return resp
	}
	create(karim.ID, "2024-03-10", "09:30")
	late := create(karim.ID, "2024-03-11", "00:30") // 2024-03-10T18:30Z
	other := create(nasrin.ID, "2024-03-11", "11:00")

	day, err := query.ParseDay("2024-03-11", dhaka)
	if err != nil {
		t.Fatal(err)
	}

	items, meta, err := uc.List(ctx, entity.AppointmentFilter{
		ListQuery: firstPage(entity.ListQuery{Sort: entity.ByAppointment}),
		Date:      day,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta.Total != 2 || len(items) != 2 || items[0].ID != late.ID || items[1].ID != other.ID {
		t.Errorf("unexpected day listing: %+v %+v", meta, items)
	}

	items, meta, err = uc.List(ctx, entity.AppointmentFilter{
		ListQuery: firstPage(entity.ListQuery{Search: "nasrin", Sort: entity.ByAppointment}),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta.Total != 1 || len(items) != 1 || items[0].ID != other.ID {
		t.Errorf("expected search by doctor name, got %+v %+v", meta, items)
	}

	items, meta, err = uc.List(ctx, entity.AppointmentFilter{
		ListQuery: firstPage(entity.ListQuery{Sort: entity.ByAppointment}),
		Date:      day,
		DoctorID:  &karim.ID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta.Total != 1 || len(items) != 1 || items[0].ID != late.ID {
		t.Errorf("expected filters to intersect, got %+v %+v", meta, items)
	}
}

func TestAppointmentUsecase_UpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	uc := newAppointmentUsecase(db)
	patient := seedPatient(t, db, "Rahim Uddin", "01711000000")
	doctor := seedDoctor(t, db, "Dr. Karim", "Cardiology")

	ctx := context.Background()
	created, err := uc.Create(ctx, &dto.CreateAppointmentRequest{PatientID: patient.ID, DoctorID: doctor.ID, Date: "2024-03-10", Time: "09:30"})
	if err != nil {
		t.Fatal(err)
	}

	confirmed := string(entity.AppointmentStatusConfirmed)
	updated, err := uc.Update(ctx, created.ID, &dto.UpdateAppointmentRequest{Time: strPtr("16:45"), Status: &confirmed})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Date != "2024-03-10" || updated.Time != "16:45" || updated.Status != confirmed {
		t.Errorf("unexpected update: %+v", updated)
	}

	if _, err := uc.Update(ctx, uuid.New(), &dto.UpdateAppointmentRequest{}); !errors.Is(err, ErrAppointmentNotFound) {
		t.Errorf("expected ErrAppointmentNotFound, got %v", err)
	}

	if err := uc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.GetByID(ctx, created.ID); !errors.Is(err, ErrAppointmentNotFound) {
		t.Errorf("expected ErrAppointmentNotFound after delete, got %v", err)
	}
}
