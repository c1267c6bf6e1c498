package handler

import (
	"encoding/json"
	"net/http"

	"hospital-appointment-scheduling/internal/delivery/dto"
	"hospital-appointment-scheduling/internal/usecase"
	"hospital-appointment-scheduling/pkg/response"
	"hospital-appointment-scheduling/pkg/validator"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.CreateAppointment(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Appointment details successfully saved", appointment)
}

func (h *AppointmentHandler) CreateAppointmentWithPatientID(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentWithPatientIDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.CreateAppointmentWithPatientID(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Appointment details successfully saved", appointment)
}

func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r)
	if !ok {
		return
	}

	appointment, err := h.appointmentUsecase.GetAppointmentByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment details fetched by ID", appointment)
}

func (h *AppointmentHandler) GetAllAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.GetAllAppointments(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment details fetched", appointments)
}

func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r)
	if !ok {
		return
	}

	appointment, err := h.appointmentUsecase.UpdateAppointment(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment details updated", appointment)
}

func (h *AppointmentHandler) GetAppointmentsBetweenDates(w http.ResponseWriter, r *http.Request) {
	start, ok := parseDateVar(w, r, "start")
	if !ok {
		return
	}
	end, ok := parseDateVar(w, r, "end")
	if !ok {
		return
	}

	appointments, err := h.appointmentUsecase.GetAppointmentsBetweenDates(r.Context(), start, end)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment details fetched by date range", appointments)
}

func (h *AppointmentHandler) GetAppointmentsAscending(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.GetAppointmentsAscending(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment details fetched in ascending order", appointments)
}
