package repository

import (
	"context"
	"time"

	"hospital-appointment-scheduling/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	Save(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.Appointment, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Appointment, error)
	FindAllIDs(ctx context.Context, db *gorm.DB) ([]uint, error)
	FindBetweenDates(ctx context.Context, db *gorm.DB, start, end time.Time) ([]entity.Appointment, error)
	FindAllAscending(ctx context.Context, db *gorm.DB) ([]entity.Appointment, error)
}
