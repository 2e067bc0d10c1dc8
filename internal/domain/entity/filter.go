package entity

import (
	"time"

	"clinic-pharmacy-api/pkg/pagination"
	"clinic-pharmacy-api/pkg/query"

	"github.com/google/uuid"
)

// ListQuery is shared by every list filter: free-text search, a resolved
// sort and the page window. Used by the repository layer to avoid coupling
// with delivery DTOs.
type ListQuery struct {
	Search string
	Sort   query.Sort
	Page   pagination.Params
}

type PatientFilter struct {
	ListQuery
	Gender     *string
	BloodGroup *string
}

type DoctorFilter struct {
	ListQuery
	Specialization *string
}

type AppointmentFilter struct {
	ListQuery
	Date      *time.Time // calendar day in the clinic's time zone
	Status    *AppointmentStatus
	DoctorID  *uuid.UUID
	PatientID *uuid.UUID
}

type MedicineFilter struct {
	ListQuery
	Category *string
	LowStock bool
}

type SaleFilter struct {
	ListQuery
	Date          *time.Time
	PaymentMethod *PaymentMethod
	Status        *SaleStatus
}

type PrescriptionFilter struct {
	ListQuery
	PatientID *uuid.UUID
	DoctorID  *uuid.UUID
}

type MovementFilter struct {
	ListQuery
	MedicineID uuid.UUID
	Type       *MovementType
}

// Sortable fields per list, keyed by API field name.
var (
	PatientSortFields = query.SortFields{
		"name":        "name",
		"phone":       "phone",
		"dateOfBirth": "date_of_birth",
		"createdAt":   "created_at",
	}
	DoctorSortFields = query.SortFields{
		"name":           "name",
		"specialization": "specialization",
		"createdAt":      "created_at",
	}
	AppointmentSortFields = query.SortFields{
		"date":      "appointment_date",
		"status":    "status",
		"type":      "type",
		"createdAt": "created_at",
	}
	MedicineSortFields = query.SortFields{
		"name":         "name",
		"sku":          "sku",
		"category":     "category",
		"stockQty":     "stock_qty",
		"sellingPrice": "selling_price",
		"expiryDate":   "expiry_date",
		"createdAt":    "created_at",
	}
	SaleSortFields = query.SortFields{
		"invoiceNumber": "invoice_number",
		"grandTotal":    "grand_total",
		"createdAt":     "created_at",
	}
	PrescriptionSortFields = query.SortFields{
		"createdAt": "created_at",
	}
	MovementSortFields = query.SortFields{
		"type":      "type",
		"quantity":  "quantity",
		"createdAt": "created_at",
	}
)

// Default orderings when no sortBy is given.
var (
	NewestFirst   = query.Sort{Column: "created_at", Desc: true}
	ByName        = query.Sort{Column: "name"}
	ByAppointment = query.Sort{Column: "appointment_date"}
)
