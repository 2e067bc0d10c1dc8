package handler

import (
	"context"
	"net/http"
	"testing"

	"clinic-pharmacy-api/internal/delivery/dto"
	"clinic-pharmacy-api/internal/domain/entity"
	"clinic-pharmacy-api/internal/usecase"
	"clinic-pharmacy-api/pkg/pagination"
	"clinic-pharmacy-api/pkg/validator"

	"github.com/google/uuid"
)

type fakePatientUsecase struct {
	filter  entity.PatientFilter
	total   int64
	created *dto.CreatePatientRequest
	updated *dto.UpdatePatientRequest
	err     error
}

func (f *fakePatientUsecase) List(ctx context.Context, filter entity.PatientFilter) ([]dto.PatientResponse, *pagination.Meta, error) {
	f.filter = filter
	return []dto.PatientResponse{{ID: uuid.New(), Name: "Rahim"}}, filter.Page.Meta(f.total), f.err
}

func (f *fakePatientUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dto.PatientResponse{ID: id}, nil
}

func (f *fakePatientUsecase) Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	f.created = req
	if f.err != nil {
		return nil, f.err
	}
	return &dto.PatientResponse{ID: uuid.New(), Name: req.Name}, nil
}

func (f *fakePatientUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	f.updated = req
	if f.err != nil {
		return nil, f.err
	}
	return &dto.PatientResponse{ID: id}, nil
}

func (f *fakePatientUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return f.err
}

func TestPatientHandler_List(t *testing.T) {
	fake := &fakePatientUsecase{total: 25}
	h := NewPatientHandler(fake, validator.NewValidator())

	rec, env := serve(t, h.List, newRequest(t, http.MethodGet, "/patients?page=3&gender=female&search=%20rah%20", nil, nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	p := env.Pagination
	if p == nil || p.Page != 3 || p.Limit != 10 || p.Total != 25 || p.TotalPages != 3 {
		t.Errorf("unexpected pagination %+v", p)
	}
	if fake.filter.Gender == nil || *fake.filter.Gender != "female" || fake.filter.BloodGroup != nil {
		t.Errorf("unexpected filter %+v", fake.filter)
	}
	if fake.filter.Search != "rah" {
		t.Errorf("expected trimmed search, got %q", fake.filter.Search)
	}
}

func TestPatientHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		fake := &fakePatientUsecase{}
		h := NewPatientHandler(fake, validator.NewValidator())

		body := map[string]interface{}{"name": "Rahim", "phone": "01711000000", "gender": "male"}
		rec, _ := serve(t, h.Create, newRequest(t, http.MethodPost, "/patients", body, nil))

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", rec.Code)
		}
		if fake.created == nil || fake.created.Name != "Rahim" {
			t.Errorf("usecase did not receive the request: %+v", fake.created)
		}
	})

	t.Run("validation before storage", func(t *testing.T) {
		fake := &fakePatientUsecase{}
		h := NewPatientHandler(fake, validator.NewValidator())

		body := map[string]interface{}{"email": "not-an-email"}
		rec, env := serve(t, h.Create, newRequest(t, http.MethodPost, "/patients", body, nil))

		if rec.Code != http.StatusBadRequest || env.Message != "Validation failed" {
			t.Fatalf("expected 400 Validation failed, got %d %q", rec.Code, env.Message)
		}
		if fake.created != nil {
			t.Error("usecase must not be called")
		}
		want := map[string]string{
			"name":  "name is required",
			"phone": "phone is required",
			"email": "email must be a valid email address",
		}
		for field, msg := range want {
			if env.Errors[field] != msg {
				t.Errorf("expected %s error %q, got %q", field, msg, env.Errors[field])
			}
		}
	})
}

func TestPatientHandler_NotFound(t *testing.T) {
	fake := &fakePatientUsecase{err: usecase.ErrPatientNotFound}
	h := NewPatientHandler(fake, validator.NewValidator())
	vars := map[string]string{"id": uuid.NewString()}

	for name, fn := range map[string]http.HandlerFunc{"get": h.Get, "delete": h.Delete} {
		rec, env := serve(t, fn, newRequest(t, http.MethodGet, "/patients/x", nil, vars))
		if rec.Code != http.StatusNotFound || env.Message != "Patient not found" {
			t.Errorf("%s: expected 404 Patient not found, got %d %q", name, rec.Code, env.Message)
		}
	}

	rec, env := serve(t, h.Update, newRequest(t, http.MethodPut, "/patients/x", map[string]interface{}{"phone": "017"}, vars))
	if rec.Code != http.StatusNotFound || env.Message != "Patient not found" {
		t.Errorf("update: expected 404, got %d %q", rec.Code, env.Message)
	}
	if fake.updated == nil || fake.updated.Phone == nil || fake.updated.Name != nil {
		t.Errorf("expected a partial update with only phone, got %+v", fake.updated)
	}
}
