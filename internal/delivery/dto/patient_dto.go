package dto

import (
	"time"
)

// Request DTOs

type CreatePatientRequest struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	Email       string `json:"email" validate:"required"`
	Password    string `json:"password" validate:"required"`
	DateOfBirth string `json:"date_of_birth" validate:"required"`
}

type AppointmentItemRequest struct {
	AppointmentDate string `json:"appointment_date" validate:"required"`
	Reason          string `json:"reason"`
	DoctorID        uint   `json:"doctor_id" validate:"required,min=1"`
}

type CreatePatientWithAppointmentsRequest struct {
	FirstName    string                   `json:"first_name" validate:"required"`
	LastName     string                   `json:"last_name" validate:"required"`
	Phone        string                   `json:"phone" validate:"required"`
	Email        string                   `json:"email" validate:"required"`
	Password     string                   `json:"password" validate:"required"`
	DateOfBirth  string                   `json:"date_of_birth" validate:"required"`
	Appointments []AppointmentItemRequest `json:"appointments" validate:"dive"`
}

// Response DTOs

type PatientResponse struct {
	ID           uint                  `json:"id"`
	FirstName    string                `json:"first_name"`
	LastName     string                `json:"last_name"`
	Phone        string                `json:"phone"`
	Email        string                `json:"email"`
	DateOfBirth  string                `json:"date_of_birth"`
	Appointments []AppointmentResponse `json:"appointments,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}

type PatientNameResponse struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
