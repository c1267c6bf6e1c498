package http

import (
	"net/http"

	"hospital-appointment-scheduling/internal/delivery/http/handler"
	"hospital-appointment-scheduling/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	patientHandler      *handler.PatientHandler
	appointmentHandler  *handler.AppointmentHandler
	doctorHandler       *handler.DoctorHandler
	auditLogHandler     *handler.AuditLogHandler
	requestIDMiddleware *middleware.RequestIDMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	patientHandler *handler.PatientHandler,
	appointmentHandler *handler.AppointmentHandler,
	doctorHandler *handler.DoctorHandler,
	auditLogHandler *handler.AuditLogHandler,
	requestIDMiddleware *middleware.RequestIDMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		patientHandler:      patientHandler,
		appointmentHandler:  appointmentHandler,
		doctorHandler:       doctorHandler,
		auditLogHandler:     auditLogHandler,
		requestIDMiddleware: requestIDMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Patient routes. The static paths are registered before the
	// /{id} routes so mux does not swallow them as id values.
	patients := api.PathPrefix("/patients").Subrouter()
	patients.HandleFunc("", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	patients.HandleFunc("", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	patients.HandleFunc("/with-appointments", r.patientHandler.CreatePatientWithAppointments).Methods(http.MethodPost)
	patients.HandleFunc("/ascending", r.patientHandler.GetPatientsAscending).Methods(http.MethodGet)
	patients.HandleFunc("/phone/{phone}", r.patientHandler.GetPatientByPhone).Methods(http.MethodGet)
	patients.HandleFunc("/appointment-day/{date}", r.patientHandler.GetPatientsWithAppointmentOnDay).Methods(http.MethodGet)
	patients.HandleFunc("/dob-range/{start}/{end}", r.patientHandler.GetPatientsBetweenDOB).Methods(http.MethodGet)
	patients.HandleFunc("/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	patients.HandleFunc("/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	patients.HandleFunc("/{id}/name", r.patientHandler.GetPatientName).Methods(http.MethodGet)

	// Appointment routes
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.HandleFunc("", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	appointments.HandleFunc("", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	appointments.HandleFunc("/with-patient-id", r.appointmentHandler.CreateAppointmentWithPatientID).Methods(http.MethodPost)
	appointments.HandleFunc("/ascending", r.appointmentHandler.GetAppointmentsAscending).Methods(http.MethodGet)
	appointments.HandleFunc("/date-range/{start}/{end}", r.appointmentHandler.GetAppointmentsBetweenDates).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)

	// Doctor directory
	doctors := api.PathPrefix("/doctors").Subrouter()
	doctors.HandleFunc("", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	doctors.HandleFunc("", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)

	// Audit trail
	api.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)

	r.router.Use(r.requestIDMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
