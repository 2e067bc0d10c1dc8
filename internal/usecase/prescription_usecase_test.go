package usecase

import (
	"context"
	"errors"
	"testing"

	"clinic-pharmacy-api/internal/delivery/dto"
	"clinic-pharmacy-api/internal/domain/entity"
	"clinic-pharmacy-api/internal/domain/repository"
	repoImpl "clinic-pharmacy-api/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func newPrescriptionUsecase(db *gorm.DB) PrescriptionUsecase {
	return NewPrescriptionUsecase(db, newTestLogger(), repoImpl.NewPrescriptionRepository())
}

func TestPrescriptionUsecase_Lifecycle(t *testing.T) {
	db := newTestDB(t)
	uc := newPrescriptionUsecase(db)
	ctx := context.Background()
	patient := seedPatient(t, db, "Rahim Uddin", "01711000000")
	doctor := seedDoctor(t, db, "Dr. Karim", "Cardiology")
	napa := seedMedicine(t, db, "NAPA-500", "Napa", "2.50", 10)

	created, err := uc.Create(ctx, &dto.CreatePrescriptionRequest{
		PatientID:  patient.ID,
		DoctorID:   doctor.ID,
		Diagnosis:  strPtr("Viral fever"),
		FollowUpOn: strPtr("2024-04-01"),
		Items: []dto.PrescriptionItemRequest{
			{MedicineID: &napa.ID, MedicineName: "Napa 500mg", Dosage: "1 tablet", Frequency: "3 times daily", Duration: "5 days"},
			{MedicineName: "ORS", Dosage: "1 sachet", Frequency: "after each loose stool", Duration: "3 days"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(created.Items) != 2 || created.Patient == nil || created.Doctor == nil {
		t.Errorf("unexpected prescription: %+v", created)
	}
	if created.FollowUpOn == nil || *created.FollowUpOn != "2024-04-01" {
		t.Errorf("unexpected follow-up %v", created.FollowUpOn)
	}

	updated, err := uc.Update(ctx, created.ID, &dto.UpdatePrescriptionRequest{
		Notes: strPtr("Review if fever persists"),
		Items: []dto.PrescriptionItemRequest{
			{MedicineName: "Paracetamol", Dosage: "500mg", Frequency: "as needed", Duration: "3 days"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(updated.Items) != 1 || updated.Items[0].MedicineName != "Paracetamol" {
		t.Errorf("expected items replaced, got %+v", updated.Items)
	}
	if updated.Diagnosis == nil || *updated.Diagnosis != "Viral fever" {
		t.Errorf("expected diagnosis kept, got %v", updated.Diagnosis)
	}
	if n := countRows(t, db, &entity.PrescriptionItem{}); n != 1 {
		t.Errorf("expected 1 stored item, got %d", n)
	}

	items, meta, err := uc.List(ctx, entity.PrescriptionFilter{
		ListQuery: firstPage(entity.ListQuery{Search: "fever", Sort: entity.NewestFirst}),
		PatientID: &patient.ID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta.Total != 1 || len(items) != 1 {
		t.Errorf("unexpected list: %+v %+v", meta, items)
	}

	if err := uc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := countRows(t, db, &entity.PrescriptionItem{}); n != 0 {
		t.Errorf("expected items removed with the prescription, got %d", n)
	}
	if _, err := uc.GetByID(ctx, created.ID); !errors.Is(err, ErrPrescriptionNotFound) {
		t.Errorf("expected ErrPrescriptionNotFound, got %v", err)
	}
}

func TestPrescriptionUsecase_Create_UnknownDoctor(t *testing.T) {
	db := newTestDB(t)
	uc := newPrescriptionUsecase(db)
	patient := seedPatient(t, db, "Rahim Uddin", "01711000000")

	_, err := uc.Create(context.Background(), &dto.CreatePrescriptionRequest{
		PatientID: patient.ID,
		DoctorID:  uuid.New(),
		Items:     []dto.PrescriptionItemRequest{{MedicineName: "ORS", Dosage: "1", Frequency: "daily", Duration: "1 day"}},
	})
	if !errors.Is(err, repository.ErrRelatedNotFound) {
		t.Fatalf("expected ErrRelatedNotFound, got %v", err)
	}
}
