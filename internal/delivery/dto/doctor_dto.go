package dto

import (
	"time"
)

// Request DTOs

type CreateDoctorRequest struct {
	FullName string `json:"full_name" validate:"required,min=2,max=100"`
}

// Response DTOs

type DoctorResponse struct {
	ID        uint      `json:"id"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
