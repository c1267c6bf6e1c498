package repository

import (
	"context"

	"hospital-appointment-scheduling/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) error
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Doctor, error)
}
