package entity

import (
	"time"
)

// Patient represents a registered patient record
type Patient struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName   string    `gorm:"type:varchar(50);not null" json:"first_name"`
	LastName    string    `gorm:"type:varchar(50);not null" json:"last_name"`
	Phone       string    `gorm:"type:char(10);uniqueIndex;not null" json:"phone"`
	Email       string    `gorm:"type:varchar(100);not null" json:"email"`
	Password    string    `gorm:"type:varchar(12);not null" json:"-"`
	DateOfBirth time.Time `gorm:"type:date;not null" json:"date_of_birth"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// PatientName is the narrow first/last name projection returned by
// the name lookup query.
type PatientName struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
