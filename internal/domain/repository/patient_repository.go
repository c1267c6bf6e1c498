package repository

import (
	"context"
	"time"

	"hospital-appointment-scheduling/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	Save(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.Patient, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Patient, error)
	FindAllIDs(ctx context.Context, db *gorm.DB) ([]uint, error)
	FindAllPhoneNumbers(ctx context.Context, db *gorm.DB) ([]string, error)
	FindByPhone(ctx context.Context, db *gorm.DB, phone string) (*entity.Patient, error)
	FindWithAppointmentsOn(ctx context.Context, db *gorm.DB, day time.Time) ([]entity.Patient, error)
	FindByDOBBetween(ctx context.Context, db *gorm.DB, start, end time.Time) ([]entity.Patient, error)
	FindAllAscending(ctx context.Context, db *gorm.DB) ([]entity.Patient, error)
	FindNameByID(ctx context.Context, db *gorm.DB, id uint) (*entity.PatientName, error)
}
