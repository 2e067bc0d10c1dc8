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

type fakeDoctorUsecase struct {
	filter  entity.DoctorFilter
	calls   int
	created *dto.CreateDoctorRequest
	updated *dto.UpdateDoctorRequest
	err     error
}

func (f *fakeDoctorUsecase) List(ctx context.Context, filter entity.DoctorFilter) ([]dto.DoctorResponse, *pagination.Meta, error) {
	f.calls++
	f.filter = filter
	if f.err != nil {
		return nil, nil, f.err
	}
	return []dto.DoctorResponse{{ID: uuid.New(), Name: "Dr. Karim", Specialization: "Cardiology"}}, filter.Page.Meta(1), nil
}

func (f *fakeDoctorUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &dto.DoctorResponse{ID: id}, nil
}

func (f *fakeDoctorUsecase) Create(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	f.calls++
	f.created = req
	if f.err != nil {
		return nil, f.err
	}
	return &dto.DoctorResponse{ID: uuid.New(), Name: req.Name, Specialization: req.Specialization}, nil
}

func (f *fakeDoctorUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	f.calls++
	f.updated = req
	if f.err != nil {
		return nil, f.err
	}
	return &dto.DoctorResponse{ID: id}, nil
}

func (f *fakeDoctorUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	f.calls++
	return f.err
}

func TestDoctorHandler_List(t *testing.T) {
	fake := &fakeDoctorUsecase{}
	h := NewDoctorHandler(fake, validator.NewValidator())

	req := newRequest(t, http.MethodGet, "/doctors?specialization=%20Cardiology%20&search=kar&sortBy=specialization&sortOrder=desc&limit=5", nil, nil)
	rec, env := serve(t, h.List, req)

	if rec.Code != http.StatusOK || env.Message != "Doctors retrieved successfully" {
		t.Fatalf("expected 200, got %d %q", rec.Code, env.Message)
	}
	if env.Pagination == nil || env.Pagination.Limit != 5 || env.Pagination.Total != 1 {
		t.Errorf("unexpected pagination: %+v", env.Pagination)
	}

	f := fake.filter
	if f.Specialization == nil || *f.Specialization != "Cardiology" || f.Search != "kar" {
		t.Errorf("unexpected filter: %+v", f)
	}
	if f.Sort.Column != "specialization" || !f.Sort.Desc {
		t.Errorf("unexpected sort: %+v", f.Sort)
	}

	fake = &fakeDoctorUsecase{}
	h = NewDoctorHandler(fake, validator.NewValidator())
	rec, _ = serve(t, h.List, newRequest(t, http.MethodGet, "/doctors", nil, nil))
	if rec.Code != http.StatusOK || fake.filter.Specialization != nil || fake.filter.Sort != entity.ByName {
		t.Errorf("expected default name sort without specialization, got %d %+v", rec.Code, fake.filter)
	}
}

func TestDoctorHandler_List_RejectsUnknownSort(t *testing.T) {
	fake := &fakeDoctorUsecase{}
	h := NewDoctorHandler(fake, validator.NewValidator())

	rec, env := serve(t, h.List, newRequest(t, http.MethodGet, "/doctors?sortBy=salary", nil, nil))

	if rec.Code != http.StatusBadRequest || env.Message != "Invalid sortBy, allowed: createdAt, name, specialization" {
		t.Errorf("expected 400, got %d %q", rec.Code, env.Message)
	}
	if fake.calls != 0 {
		t.Error("usecase must not be called")
	}
}

func TestDoctorHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fake := &fakeDoctorUsecase{}
		h := NewDoctorHandler(fake, validator.NewValidator())

		body := map[string]interface{}{"name": "Dr. Nasrin", "specialization": "Pediatrics", "email": "nasrin@clinic.test"}
		rec, env := serve(t, h.Create, newRequest(t, http.MethodPost, "/doctors", body, nil))

		if rec.Code != http.StatusCreated || env.Message != "Doctor created successfully" {
			t.Fatalf("expected 201, got %d %q", rec.Code, env.Message)
		}
		if fake.created == nil || fake.created.Specialization != "Pediatrics" {
			t.Errorf("unexpected request: %+v", fake.created)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		fake := &fakeDoctorUsecase{}
		h := NewDoctorHandler(fake, validator.NewValidator())

		body := map[string]interface{}{"email": "not-an-email"}
		rec, env := serve(t, h.Create, newRequest(t, http.MethodPost, "/doctors", body, nil))

		if rec.Code != http.StatusBadRequest || env.Message != "Validation failed" {
			t.Fatalf("expected 400, got %d %q", rec.Code, env.Message)
		}
		for _, field := range []string{"name", "specialization"} {
			if env.Errors[field] != field+" is required" {
				t.Errorf("expected %s to be required, got %q", field, env.Errors[field])
			}
		}
		if env.Errors["email"] != "email must be a valid email address" {
			t.Errorf("unexpected email error %q", env.Errors["email"])
		}
		if fake.calls != 0 {
			t.Error("usecase must not be called")
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		h := NewDoctorHandler(&fakeDoctorUsecase{}, validator.NewValidator())

		rec, env := serve(t, h.Create, newRequest(t, http.MethodPost, "/doctors", "{", nil))

		if rec.Code != http.StatusBadRequest || env.Message != "Invalid request body" {
			t.Errorf("expected 400, got %d %q", rec.Code, env.Message)
		}
	})
}

func TestDoctorHandler_NotFound(t *testing.T) {
	fake := &fakeDoctorUsecase{err: usecase.ErrDoctorNotFound}
	h := NewDoctorHandler(fake, validator.NewValidator())
	vars := map[string]string{"id": uuid.NewString()}

	for name, fn := range map[string]http.HandlerFunc{"get": h.Get, "delete": h.Delete} {
		rec, env := serve(t, fn, newRequest(t, http.MethodGet, "/doctors/x", nil, vars))
		if rec.Code != http.StatusNotFound || env.Message != "Doctor not found" {
			t.Errorf("%s: expected 404 Doctor not found, got %d %q", name, rec.Code, env.Message)
		}
	}

	rec, env := serve(t, h.Update, newRequest(t, http.MethodPut, "/doctors/x", map[string]interface{}{"specialization": "Neurology"}, vars))
	if rec.Code != http.StatusNotFound || env.Message != "Doctor not found" {
		t.Errorf("update: expected 404, got %d %q", rec.Code, env.Message)
	}
	if fake.updated == nil || fake.updated.Specialization == nil || fake.updated.Name != nil {
		t.Errorf("expected a partial update with only specialization, got %+v", fake.updated)
	}
}

func TestDoctorHandler_InvalidID(t *testing.T) {
	fake := &fakeDoctorUsecase{}
	h := NewDoctorHandler(fake, validator.NewValidator())
	vars := map[string]string{"id": "not-a-uuid"}

	for name, fn := range map[string]http.HandlerFunc{"get": h.Get, "update": h.Update, "delete": h.Delete} {
		rec, env := serve(t, fn, newRequest(t, http.MethodGet, "/doctors/not-a-uuid", nil, vars))
		if rec.Code != http.StatusBadRequest || env.Message != "Invalid doctor ID" {
			t.Errorf("%s: expected 400 Invalid doctor ID, got %d %q", name, rec.Code, env.Message)
		}
	}
	if fake.calls != 0 {
		t.Error("usecase must not be called")
	}
}
