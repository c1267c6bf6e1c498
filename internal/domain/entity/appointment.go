package entity

import (
	"time"
)

// Appointment represents a booked appointment. An appointment always
// belongs to exactly one patient; the doctor is referenced by id only.
type Appointment struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	AppointmentDate time.Time `gorm:"type:date;not null;index" json:"appointment_date"`
	Reason          string    `gorm:"type:text" json:"reason"`
	DoctorID        uint      `gorm:"not null;index" json:"doctor_id"`
	StatusID        uint      `gorm:"not null" json:"status_id"`
	PatientID       uint      `gorm:"not null;index" json:"patient_id"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Status  AppointmentStatus `gorm:"foreignKey:StatusID" json:"status,omitempty"`
	Doctor  Doctor            `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Patient *Patient          `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}
