package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"clinic-pharmacy-api/internal/delivery/dto"
	"clinic-pharmacy-api/internal/domain/entity"
	"clinic-pharmacy-api/internal/usecase"
	"clinic-pharmacy-api/pkg/response"
	"clinic-pharmacy-api/pkg/validator"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
	loc                *time.Location
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator, loc *time.Location) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
		loc:                loc,
	}
}

// List handles listing appointments
// @Summary List appointments
// @Tags Appointments
// @Produce json
// @Param date query string false "Calendar day, YYYY-MM-DD"
// @Param status query string false "scheduled, confirmed, cancelled or completed"
// @Param doctorId query string false "Doctor ID"
// @Param patientId query string false "Patient ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /appointments [get]
func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := parseListQuery(r, entity.AppointmentSortFields, entity.ByAppointment)
	if err != nil {
		writeFilterError(w, err)
		return
	}

	q := r.URL.Query()
	filter := entity.AppointmentFilter{ListQuery: list}
	if filter.Date, err = optionalDay(q, "date", h.loc); err != nil {
		writeFilterError(w, err)
		return
	}
	if filter.Status, err = optionalEnum(q, "status", entity.AppointmentStatus.IsValid); err != nil {
		writeFilterError(w, err)
		return
	}
	if filter.DoctorID, err = optionalUUID(q, "doctorId"); err != nil {
		writeFilterError(w, err)
		return
	}
	if filter.PatientID, err = optionalUUID(q, "patientId"); err != nil {
		writeFilterError(w, err)
		return
	}

	appointments, meta, err := h.appointmentUsecase.List(r.Context(), filter)
	if err != nil {
		writeError(w, err, "Failed to fetch appointments")
		return
	}

	response.SuccessWithPagination(w, http.StatusOK, "Appointments retrieved successfully", appointments, meta)
}

func (h *AppointmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	appointment, err := h.appointmentUsecase.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to fetch appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create appointment")
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

func (h *AppointmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	var req dto.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, err, "Failed to update appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated successfully", appointment)
}

func (h *AppointmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	if err := h.appointmentUsecase.Delete(r.Context(), id); err != nil {
		writeError(w, err, "Failed to delete appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment deleted successfully", nil)
}
