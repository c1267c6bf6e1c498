package entity

// StatusPending is the label every new appointment is created with.
// Status transitions are not part of this system.
const StatusPending = "Pending"

// AppointmentStatus is the label attached to an appointment at
// creation time.
type AppointmentStatus struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	StatusName string `gorm:"type:varchar(30);not null" json:"status_name"`
}

func (AppointmentStatus) TableName() string {
	return "appointment_statuses"
}
