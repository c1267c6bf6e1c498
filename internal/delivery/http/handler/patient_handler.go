package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"hospital-appointment-scheduling/internal/delivery/dto"
	"hospital-appointment-scheduling/internal/usecase"
	"hospital-appointment-scheduling/pkg/response"
	"hospital-appointment-scheduling/pkg/validator"

	"github.com/gorilla/mux"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.CreatePatient(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Patient details successfully saved", patient)
}

func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r)
	if !ok {
		return
	}

	patient, err := h.patientUsecase.GetPatientByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Patient details fetched by ID", patient)
}

func (h *PatientHandler) GetAllPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientUsecase.GetAllPatients(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Patient details fetched", patients)
}

func (h *PatientHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r)
	if !ok {
		return
	}

	patient, err := h.patientUsecase.UpdatePatient(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Patient details updated", patient)
}

func (h *PatientHandler) CreatePatientWithAppointments(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePatientWithAppointmentsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.CreatePatientWithAppointments(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Patient details and appointments added successfully", patient)
}

func (h *PatientHandler) GetPatientByPhone(w http.ResponseWriter, r *http.Request) {
	phone := mux.Vars(r)["phone"]

	patient, err := h.patientUsecase.GetPatientByPhone(r.Context(), phone)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Patient details fetched by phone number", patient)
}

func (h *PatientHandler) GetPatientsWithAppointmentOnDay(w http.ResponseWriter, r *http.Request) {
	day, ok := parseDateVar(w, r, "date")
	if !ok {
		return
	}

	patients, err := h.patientUsecase.GetPatientsWithAppointmentOnDay(r.Context(), day)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Patient details fetched by appointment day", patients)
}

func (h *PatientHandler) GetPatientsBetweenDOB(w http.ResponseWriter, r *http.Request) {
	start, ok := parseDateVar(w, r, "start")
	if !ok {
		return
	}
	end, ok := parseDateVar(w, r, "end")
	if !ok {
		return
	}

	patients, err := h.patientUsecase.GetPatientsBetweenDOB(r.Context(), start, end)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Patient details fetched by date of birth range", patients)
}

func (h *PatientHandler) GetPatientsAscending(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientUsecase.GetPatientsAscending(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Patient details fetched in ascending order", patients)
}

func (h *PatientHandler) GetPatientName(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r)
	if !ok {
		return
	}

	name, err := h.patientUsecase.GetPatientName(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Patient name fetched by ID", name)
}

func parseIDVar(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid id", nil)
		return 0, false
	}
	return uint(id), true
}

func parseDateVar(w http.ResponseWriter, r *http.Request, name string) (time.Time, bool) {
	raw := mux.Vars(r)[name]
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
		return time.Time{}, false
	}
	return date, true
}
