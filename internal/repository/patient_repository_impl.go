package repository

import (
	"context"
	"errors"
	"time"

	"hospital-appointment-scheduling/internal/domain/entity"
	domainRepo "hospital-appointment-scheduling/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return db.WithContext(ctx).Create(patient).Error
}

func (r *patientRepository) Save(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return db.WithContext(ctx).Save(patient).Error
}

func (r *patientRepository) FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.WithContext(ctx).Preload("Appointments").Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.WithContext(ctx).Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindAllIDs(ctx context.Context, db *gorm.DB) ([]uint, error) {
	var ids []uint
	err := db.WithContext(ctx).Model(&entity.Patient{}).Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *patientRepository) FindAllPhoneNumbers(ctx context.Context, db *gorm.DB) ([]string, error) {
	var phones []string
	err := db.WithContext(ctx).Model(&entity.Patient{}).Pluck("phone", &phones).Error
	if err != nil {
		return nil, err
	}
	return phones, nil
}

func (r *patientRepository) FindByPhone(ctx context.Context, db *gorm.DB, phone string) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.WithContext(ctx).Where("phone = ?", phone).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindWithAppointmentsOn(ctx context.Context, db *gorm.DB, day time.Time) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.WithContext(ctx).
		Joins("JOIN appointments ON appointments.patient_id = patients.id").
		Where("appointments.appointment_date = ?", day.Format("2006-01-02")).
		Distinct("patients.*").
		Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindByDOBBetween(ctx context.Context, db *gorm.DB, start, end time.Time) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.WithContext(ctx).
		Where("date_of_birth BETWEEN ? AND ?", start.Format("2006-01-02"), end.Format("2006-01-02")).
		Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindAllAscending(ctx context.Context, db *gorm.DB) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.WithContext(ctx).Order("first_name ASC").Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindNameByID(ctx context.Context, db *gorm.DB, id uint) (*entity.PatientName, error) {
	var name entity.PatientName
	err := db.WithContext(ctx).Model(&entity.Patient{}).
		Select("first_name", "last_name").
		Where("id = ?", id).
		First(&name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &name, nil
}
