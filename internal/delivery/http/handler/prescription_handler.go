package handler

import (
	"encoding/json"
	"net/http"

	"clinic-pharmacy-api/internal/delivery/dto"
	"clinic-pharmacy-api/internal/domain/entity"
	"clinic-pharmacy-api/internal/usecase"
	"clinic-pharmacy-api/pkg/response"
	"clinic-pharmacy-api/pkg/validator"
)

type PrescriptionHandler struct {
	prescriptionUsecase usecase.PrescriptionUsecase
	validator           *validator.CustomValidator
}

func NewPrescriptionHandler(prescriptionUsecase usecase.PrescriptionUsecase, validator *validator.CustomValidator) *PrescriptionHandler {
	return &PrescriptionHandler{
		prescriptionUsecase: prescriptionUsecase,
		validator:           validator,
	}
}

func (h *PrescriptionHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := parseListQuery(r, entity.PrescriptionSortFields, entity.NewestFirst)
	if err != nil {
		writeFilterError(w, err)
		return
	}

	q := r.URL.Query()
	filter := entity.PrescriptionFilter{ListQuery: list}
	if filter.PatientID, err = optionalUUID(q, "patientId"); err != nil {
		writeFilterError(w, err)
		return
	}
	if filter.DoctorID, err = optionalUUID(q, "doctorId"); err != nil {
		writeFilterError(w, err)
		return
	}

	prescriptions, meta, err := h.prescriptionUsecase.List(r.Context(), filter)
	if err != nil {
		writeError(w, err, "Failed to fetch prescriptions")
		return
	}

	response.SuccessWithPagination(w, http.StatusOK, "Prescriptions retrieved successfully", prescriptions, meta)
}

func (h *PrescriptionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid prescription ID")
		return
	}

	prescription, err := h.prescriptionUsecase.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to fetch prescription")
		return
	}

	response.Success(w, http.StatusOK, "Prescription retrieved successfully", prescription)
}

func (h *PrescriptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePrescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	prescription, err := h.prescriptionUsecase.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create prescription")
		return
	}

	response.Success(w, http.StatusCreated, "Prescription created successfully", prescription)
}

func (h *PrescriptionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid prescription ID")
		return
	}

	var req dto.UpdatePrescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	prescription, err := h.prescriptionUsecase.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, err, "Failed to update prescription")
		return
	}

	response.Success(w, http.StatusOK, "Prescription updated successfully", prescription)
}

func (h *PrescriptionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid prescription ID")
		return
	}

	if err := h.prescriptionUsecase.Delete(r.Context(), id); err != nil {
		writeError(w, err, "Failed to delete prescription")
		return
	}

	response.Success(w, http.StatusOK, "Prescription deleted successfully", nil)
}
