package http

import (
	"net/http"

	"clinic-pharmacy-api/internal/delivery/http/handler"
	"clinic-pharmacy-api/internal/delivery/http/middleware"
	"clinic-pharmacy-api/pkg/response"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// Handlers groups the resource handlers mounted by the router.
type Handlers struct {
	Patient      *handler.PatientHandler
	Doctor       *handler.DoctorHandler
	Appointment  *handler.AppointmentHandler
	Medicine     *handler.MedicineHandler
	Sale         *handler.SaleHandler
	Prescription *handler.PrescriptionHandler
	Dashboard    *handler.DashboardHandler
}

type Router struct {
	router         *mux.Router
	handlers       Handlers
	log            *logrus.Logger
	authMiddleware *middleware.AuthMiddleware
	corsMiddleware *middleware.CORSMiddleware
}

// NewRouter builds the API router. A nil authMiddleware serves every route
// without authentication or role checks.
func NewRouter(
	handlers Handlers,
	log *logrus.Logger,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:         mux.NewRouter(),
		handlers:       handlers,
		log:            log,
		authMiddleware: authMiddleware,
		corsMiddleware: corsMiddleware,
	}
}

// Setup registers every route and wraps the router in the global
// middleware chain. The chain sits outside mux so preflight and unmatched
// requests still get CORS headers, a request id and an access log line.
func (r *Router) Setup() http.Handler {
	r.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.NotFound(w, "Route not found")
	})
	r.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.Error(w, http.StatusMethodNotAllowed, "Method not allowed", nil)
	})

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	protected := api.NewRoute().Subrouter()
	if r.authMiddleware != nil {
		protected.Use(r.authMiddleware.Authenticate)
	}

	h := r.handlers

	// Patients
	protected.HandleFunc("/patients", h.Patient.List).Methods(http.MethodGet)
	protected.HandleFunc("/patients", h.Patient.Create).Methods(http.MethodPost)
	protected.HandleFunc("/patients/{id}", h.Patient.Get).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}", h.Patient.Update).Methods(http.MethodPut)
	protected.Handle("/patients/{id}", r.guard(h.Patient.Delete, middleware.RequireAdmin)).Methods(http.MethodDelete)

	// Doctors
	protected.HandleFunc("/doctors", h.Doctor.List).Methods(http.MethodGet)
	protected.HandleFunc("/doctors", h.Doctor.Create).Methods(http.MethodPost)
	protected.HandleFunc("/doctors/{id}", h.Doctor.Get).Methods(http.MethodGet)
	protected.HandleFunc("/doctors/{id}", h.Doctor.Update).Methods(http.MethodPut)
	protected.Handle("/doctors/{id}", r.guard(h.Doctor.Delete, middleware.RequireAdmin)).Methods(http.MethodDelete)

	// Appointments
	protected.HandleFunc("/appointments", h.Appointment.List).Methods(http.MethodGet)
	protected.HandleFunc("/appointments", h.Appointment.Create).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{id}", h.Appointment.Get).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", h.Appointment.Update).Methods(http.MethodPut)
	protected.Handle("/appointments/{id}", r.guard(h.Appointment.Delete, middleware.RequireAdmin)).Methods(http.MethodDelete)

	// Medicines and stock
	protected.HandleFunc("/medicines", h.Medicine.List).Methods(http.MethodGet)
	protected.HandleFunc("/medicines", h.Medicine.Create).Methods(http.MethodPost)
	protected.HandleFunc("/medicines/{id}", h.Medicine.Get).Methods(http.MethodGet)
	protected.HandleFunc("/medicines/{id}", h.Medicine.Update).Methods(http.MethodPut)
	protected.Handle("/medicines/{id}", r.guard(h.Medicine.Delete, middleware.RequireAdmin)).Methods(http.MethodDelete)
	protected.Handle("/medicines/{id}/stock", r.guard(h.Medicine.AdjustStock, middleware.RequirePharmacy)).Methods(http.MethodPost)
	protected.HandleFunc("/medicines/{id}/movements", h.Medicine.ListMovements).Methods(http.MethodGet)

	// Sales
	protected.HandleFunc("/sales", h.Sale.List).Methods(http.MethodGet)
	protected.Handle("/sales", r.guard(h.Sale.Create, middleware.RequirePharmacy)).Methods(http.MethodPost)
	protected.HandleFunc("/sales/{id}", h.Sale.Get).Methods(http.MethodGet)

	// Prescriptions
	protected.HandleFunc("/prescriptions", h.Prescription.List).Methods(http.MethodGet)
	protected.HandleFunc("/prescriptions", h.Prescription.Create).Methods(http.MethodPost)
	protected.HandleFunc("/prescriptions/{id}", h.Prescription.Get).Methods(http.MethodGet)
	protected.HandleFunc("/prescriptions/{id}", h.Prescription.Update).Methods(http.MethodPut)
	protected.Handle("/prescriptions/{id}", r.guard(h.Prescription.Delete, middleware.RequireAdmin)).Methods(http.MethodDelete)

	// Dashboard
	protected.HandleFunc("/dashboard/stats", h.Dashboard.Stats).Methods(http.MethodGet)

	var root http.Handler = r.router
	root = r.corsMiddleware.Handle(root)
	root = middleware.AccessLog(r.log)(root)
	root = middleware.Recovery(r.log)(root)
	root = middleware.RequestID(root)
	return root
}

// guard wraps fn in a role check when authentication is on.
func (r *Router) guard(fn http.HandlerFunc, role func(http.Handler) http.Handler) http.Handler {
	if r.authMiddleware == nil {
		return fn
	}
	return role(fn)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.Success(w, http.StatusOK, "OK", map[string]string{"status": "ok"})
}
