package dto

import (
	"time"
)

// Request DTOs

type AppointmentDetailsRequest struct {
	AppointmentDate string `json:"appointment_date" validate:"required"`
	Reason          string `json:"reason"`
}

// CreateAppointmentRequest books an appointment and creates the
// patient record in the same call.
type CreateAppointmentRequest struct {
	Patient     CreatePatientRequest      `json:"patient" validate:"required"`
	Appointment AppointmentDetailsRequest `json:"appointment" validate:"required"`
	DoctorID    uint                      `json:"doctor_id" validate:"required,min=1"`
}

// CreateAppointmentWithPatientIDRequest books an appointment for an
// already registered patient.
type CreateAppointmentWithPatientIDRequest struct {
	PatientID   uint                      `json:"patient_id" validate:"required,min=1"`
	Appointment AppointmentDetailsRequest `json:"appointment" validate:"required"`
	DoctorID    uint                      `json:"doctor_id" validate:"required,min=1"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              uint      `json:"id"`
	AppointmentDate string    `json:"appointment_date"`
	Reason          string    `json:"reason"`
	DoctorID        uint      `json:"doctor_id"`
	PatientID       uint      `json:"patient_id"`
	Status          string    `json:"status,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
