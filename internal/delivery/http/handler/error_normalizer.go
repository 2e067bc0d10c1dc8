package handler

import (
	"errors"
	"net/http"
	"strings"

	"clinic-pharmacy-api/internal/domain/repository"
	"clinic-pharmacy-api/internal/usecase"
	"clinic-pharmacy-api/pkg/response"
)

var notFoundMessages = []struct {
	err error
	msg string
}{
	{usecase.ErrPatientNotFound, "Patient not found"},
	{usecase.ErrDoctorNotFound, "Doctor not found"},
	{usecase.ErrAppointmentNotFound, "Appointment not found"},
	{usecase.ErrMedicineNotFound, "Medicine not found"},
	{usecase.ErrSaleNotFound, "Sale not found"},
	{usecase.ErrPrescriptionNotFound, "Prescription not found"},
}

var badRequestMessages = []struct {
	err error
	msg string
}{
	{usecase.ErrInvalidDate, "Invalid date, use YYYY-MM-DD"},
	{usecase.ErrInvalidDateTime, "Invalid appointment date or time"},
	{usecase.ErrNegativePrice, "Price cannot be negative"},
	{usecase.ErrStockLimit, "Stock would exceed the maximum quantity"},
	{usecase.ErrInvalidDiscount, "Discount must be between zero and the line amount"},
	{repository.ErrRelatedNotFound, "Related record not found"},
}

// writeError maps usecase and storage errors onto the response envelope.
// Unknown errors become a 500 with the fallback message; the raw error is
// logged by the usecase and never sent to the client.
func writeError(w http.ResponseWriter, err error, fallback string) {
	for _, m := range notFoundMessages {
		if errors.Is(err, m.err) {
			response.NotFound(w, m.msg)
			return
		}
	}
	if errors.Is(err, usecase.ErrInsufficientStock) {
		// Carries the medicine name when raised by a sale.
		msg := err.Error()
		response.BadRequest(w, strings.ToUpper(msg[:1])+msg[1:])
		return
	}
	for _, m := range badRequestMessages {
		if errors.Is(err, m.err) {
			response.BadRequest(w, m.msg)
			return
		}
	}

	switch {
	case errors.Is(err, repository.ErrDuplicateKey):
		response.Conflict(w, "Record already exists")
	case errors.Is(err, usecase.ErrMedicineInUse):
		response.Conflict(w, "Medicine is referenced by existing sales")
	default:
		response.InternalServerError(w, fallback)
	}
}
