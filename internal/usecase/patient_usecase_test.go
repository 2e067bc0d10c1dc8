package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"clinic-pharmacy-api/internal/delivery/dto"
	"clinic-pharmacy-api/internal/domain/entity"
	repoImpl "clinic-pharmacy-api/internal/repository"
	"clinic-pharmacy-api/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func newPatientUsecase(db *gorm.DB) PatientUsecase {
	log := newTestLogger()
	return NewPatientUsecase(db, log, repoImpl.NewPatientRepository(), noCache(log))
}

func TestPatientUsecase_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	uc := newPatientUsecase(db)
	ctx := context.Background()

	created, err := uc.Create(ctx, &dto.CreatePatientRequest{
		Name:        "Fatema Begum",
		Phone:       "01811000000",
		DateOfBirth: strPtr("1990-05-17"),
		Gender:      strPtr(entity.GenderFemale),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := uc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Fatema Begum" || got.DateOfBirth == nil || *got.DateOfBirth != "1990-05-17" {
		t.Errorf("unexpected patient: %+v", got)
	}

	if _, err := uc.GetByID(ctx, uuid.New()); !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("expected ErrPatientNotFound, got %v", err)
	}

	if _, err := uc.Create(ctx, &dto.CreatePatientRequest{Name: "X", Phone: "1", DateOfBirth: strPtr("17-05-1990")}); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}

func TestPatientUsecase_Update_Partial(t *testing.T) {
	db := newTestDB(t)
	uc := newPatientUsecase(db)
	ctx := context.Background()
	patient := seedPatient(t, db, "Fatema Begum", "01811000000")

	updated, err := uc.Update(ctx, patient.ID, &dto.UpdatePatientRequest{Phone: strPtr("01999999999")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "Fatema Begum" || updated.Phone != "01999999999" {
		t.Errorf("unexpected update: %+v", updated)
	}
}

func TestPatientUsecase_List_Pagination(t *testing.T) {
	db := newTestDB(t)
	uc := newPatientUsecase(db)
	for i := 1; i <= 25; i++ {
		seedPatient(t, db, fmt.Sprintf("Patient %02d", i), fmt.Sprintf("0170000%04d", i))
	}

	items, meta, err := uc.List(context.Background(), entity.PatientFilter{
		ListQuery: entity.ListQuery{Sort: entity.ByName, Page: pagination.New(3, 10)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta.Page != 3 || meta.Limit != 10 || meta.Total != 25 || meta.TotalPages != 3 {
		t.Errorf("unexpected meta: %+v", meta)
	}
	if len(items) != 5 || items[0].Name != "Patient 21" || items[4].Name != "Patient 25" {
		t.Errorf("unexpected last page: %+v", items)
	}

	items, meta, err = uc.List(context.Background(), entity.PatientFilter{
		ListQuery: entity.ListQuery{Search: "patient 1", Sort: entity.ByName, Page: pagination.New(1, 10)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta.Total != 10 || len(items) != 10 {
		t.Errorf("expected Patient 10-19, got %+v", meta)
	}
}

func TestPatientUsecase_List_Empty(t *testing.T) {
	db := newTestDB(t)
	uc := newPatientUsecase(db)

	items, meta, err := uc.List(context.Background(), entity.PatientFilter{
		ListQuery: entity.ListQuery{Sort: entity.NewestFirst, Page: pagination.New(1, 10)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 0 || meta.Total != 0 || meta.TotalPages != 0 {
		t.Errorf("expected empty page, got %+v %+v", items, meta)
	}
}

func TestPatientUsecase_Delete_CascadesAppointments(t *testing.T) {
	db := newTestDB(t)
	uc := newPatientUsecase(db)
	ctx := context.Background()
	patient := seedPatient(t, db, "Fatema Begum", "01811000000")
	doctor := seedDoctor(t, db, "Dr. Karim", "Cardiology")

	if _, err := newAppointmentUsecase(db).Create(ctx, &dto.CreateAppointmentRequest{
		PatientID: patient.ID, DoctorID: doctor.ID, Date: "2024-03-10", Time: "10:00",
	}); err != nil {
		t.Fatal(err)
	}

	if err := uc.Delete(ctx, patient.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := countRows(t, db, &entity.Appointment{}); n != 0 {
		t.Errorf("expected appointments removed with the patient, got %d", n)
	}
	if err := uc.Delete(ctx, patient.ID); !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("expected ErrPatientNotFound, got %v", err)
	}
}

func TestPatientUsecase_Update_NotFound(t *testing.T) {
	db := newTestDB(t)
	uc := newPatientUsecase(db)

	_, err := uc.Update(context.Background(), uuid.New(), &dto.UpdatePatientRequest{Name: strPtr("Nobody")})
	if !errors.Is(err, ErrPatientNotFound) {
		t.Fatalf("expected ErrPatientNotFound, got %v", err)
	}
	if n := countRows(t, db, &entity.Patient{}); n != 0 {
		t.Errorf("update must not create a patient, got %d rows", n)
	}
}

func TestPatientUsecase_InvalidatesDashboard(t *testing.T) {
	db := newTestDB(t)
	cache := &recordingCache{}
	uc := NewPatientUsecase(db, newTestLogger(), repoImpl.NewPatientRepository(), cache)
	ctx := context.Background()

	created, err := uc.Create(ctx, &dto.CreatePatientRequest{Name: "Fatema Begum", Phone: "01811000000"})
	if err != nil {
		t.Fatal(err)
	}
	if cache.invalidations != 1 {
		t.Errorf("expected create to invalidate, got %d", cache.invalidations)
	}

	if err := uc.Delete(ctx, created.ID); err != nil {
		t.Fatal(err)
	}
	if cache.invalidations != 2 {
		t.Errorf("expected delete to invalidate, got %d", cache.invalidations)
	}

	if err := uc.Delete(ctx, created.ID); !errors.Is(err, ErrPatientNotFound) {
		t.Fatalf("expected ErrPatientNotFound, got %v", err)
	}
	if cache.invalidations != 2 {
		t.Errorf("a failed delete must not invalidate, got %d", cache.invalidations)
	}
}
