package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hospital-appointment-scheduling/internal/converter"
	"hospital-appointment-scheduling/internal/delivery/dto"
	"hospital-appointment-scheduling/internal/domain/entity"
	"hospital-appointment-scheduling/internal/domain/repository"
	"hospital-appointment-scheduling/internal/domain/validation"
	"hospital-appointment-scheduling/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	// ErrAppointmentRecordMissing means a store lookup missed after the
	// existence check passed. Not expected; treated as internal.
	ErrAppointmentRecordMissing = errors.New("appointment record missing after existence check")
)

// updatePlaceholderReason is the fixed demonstration mutation applied
// by UpdateAppointment, mirroring the patient update placeholder.
const updatePlaceholderReason = "General checkup"

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	CreateAppointmentWithPatientID(ctx context.Context, req *dto.CreateAppointmentWithPatientIDRequest) (*dto.AppointmentResponse, error)
	GetAppointmentByID(ctx context.Context, id uint) (*dto.AppointmentResponse, error)
	GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	UpdateAppointment(ctx context.Context, id uint) (*dto.AppointmentResponse, error)
	GetAppointmentsBetweenDates(ctx context.Context, start, end time.Time) (*dto.AppointmentListResponse, error)
	GetAppointmentsAscending(ctx context.Context) (*dto.AppointmentListResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	lookup          service.RecordLookup
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	lookup service.RecordLookup,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		lookup:          lookup,
		auditService:    auditService,
	}
}

func (u *appointmentUsecase) validateAppointmentID(ctx context.Context, id uint) error {
	exists, err := u.lookup.AppointmentIDExists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return validation.NewError(validation.KindIDNotFound, "appointment ID does not exist in the database")
	}
	if id == 0 {
		return validation.NewError(validation.KindIDInvalid, "appointment ID could not be zero")
	}
	return nil
}

func (u *appointmentUsecase) validatePatientID(ctx context.Context, id uint) error {
	exists, err := u.lookup.PatientIDExists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return validation.NewError(validation.KindIDNotFound, "patient ID does not exist in the database")
	}
	if id == 0 {
		return validation.NewError(validation.KindIDInvalid, "patient ID could not be zero")
	}
	return nil
}

// CreateAppointment registers the patient and books the appointment in
// one call. The patient is persisted before the booking date is
// checked; a booking-date failure does not retract the patient record.
// There is no multi-call rollback in this layer.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	dob, err := time.Parse("2006-01-02", req.Patient.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	appointmentDate, err := time.Parse("2006-01-02", req.Appointment.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	if err := validation.ValidatePatientFields(req.Patient.FirstName, req.Patient.LastName, req.Patient.Phone, req.Patient.Email, req.Patient.Password); err != nil {
		return nil, err
	}
	if err := validation.ValidateDateOfBirth(dob, today); err != nil {
		return nil, err
	}

	patient := &entity.Patient{
		FirstName:   req.Patient.FirstName,
		LastName:    req.Patient.LastName,
		Phone:       req.Patient.Phone,
		Email:       req.Patient.Email,
		Password:    req.Patient.Password,
		DateOfBirth: dob,
	}
	if err := u.patientRepo.Create(ctx, u.db, patient); err != nil {
		u.log.Warnf("Failed to create patient for appointment: %+v", err)
		return nil, err
	}
	u.lookup.RegisterPatient(ctx, patient.ID, patient.Phone)

	if err := validation.ValidateBookingDate(appointmentDate, today); err != nil {
		return nil, err
	}

	appointment := &entity.Appointment{
		AppointmentDate: appointmentDate,
		Reason:          req.Appointment.Reason,
		DoctorID:        req.DoctorID,
		PatientID:       patient.ID,
		Status:          entity.AppointmentStatus{StatusName: entity.StatusPending},
	}
	if err := u.appointmentRepo.Create(ctx, u.db, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}
	u.lookup.RegisterAppointment(ctx, appointment.ID)

	response := converter.AppointmentToResponse(appointment)
	if err := u.auditService.LogCreate(u.db, entity.AuditActionAppointmentCreate, "appointment", fmt.Sprint(appointment.ID), response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	u.log.Infof("Appointment created: id=%d, patient=%d, doctor=%d", appointment.ID, patient.ID, req.DoctorID)
	return response, nil
}

// CreateAppointmentWithPatientID books an appointment for an existing
// patient.
func (u *appointmentUsecase) CreateAppointmentWithPatientID(ctx context.Context, req *dto.CreateAppointmentWithPatientIDRequest) (*dto.AppointmentResponse, error) {
	appointmentDate, err := time.Parse("2006-01-02", req.Appointment.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	if err := u.validatePatientID(ctx, req.PatientID); err != nil {
		return nil, err
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	if err := validation.ValidateBookingDate(appointmentDate, today); err != nil {
		return nil, err
	}

	appointment := &entity.Appointment{
		AppointmentDate: appointmentDate,
		Reason:          req.Appointment.Reason,
		DoctorID:        req.DoctorID,
		PatientID:       req.PatientID,
		Status:          entity.AppointmentStatus{StatusName: entity.StatusPending},
	}
	if err := u.appointmentRepo.Create(ctx, u.db, appointment); err != nil {
		u.log.Warnf("Failed to create appointment for patient %d: %+v", req.PatientID, err)
		return nil, err
	}
	u.lookup.RegisterAppointment(ctx, appointment.ID)

	response := converter.AppointmentToResponse(appointment)
	if err := u.auditService.LogCreate(u.db, entity.AuditActionAppointmentCreate, "appointment", fmt.Sprint(appointment.ID), response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return response, nil
}

func (u *appointmentUsecase) GetAppointmentByID(ctx context.Context, id uint) (*dto.AppointmentResponse, error) {
	if err := u.validateAppointmentID(ctx, id); err != nil {
		return nil, err
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		u.log.Errorf("Appointment %d passed existence check but lookup missed", id)
		return nil, ErrAppointmentRecordMissing
	}

	return converter.AppointmentToResponse(appointment), nil
}

// GetAllAppointments returns every appointment; an empty store is a
// valid result.
func (u *appointmentUsecase) GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find all appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// UpdateAppointment applies the fixed demonstration mutation to the
// reason field and persists the record.
func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, id uint) (*dto.AppointmentResponse, error) {
	if err := u.validateAppointmentID(ctx, id); err != nil {
		return nil, err
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentRecordMissing
	}

	oldValue := converter.AppointmentToResponse(appointment)

	appointment.Reason = updatePlaceholderReason
	if err := u.appointmentRepo.Save(ctx, u.db, appointment); err != nil {
		u.log.Warnf("Failed to update appointment %d: %+v", id, err)
		return nil, err
	}

	response := converter.AppointmentToResponse(appointment)
	if err := u.auditService.LogUpdate(u.db, entity.AuditActionAppointmentUpdate, "appointment", fmt.Sprint(id), oldValue, response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return response, nil
}

// GetAppointmentsBetweenDates validates the range before touching the
// store.
func (u *appointmentUsecase) GetAppointmentsBetweenDates(ctx context.Context, start, end time.Time) (*dto.AppointmentListResponse, error) {
	if err := validation.ValidateDateRange(start, end); err != nil {
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindBetweenDates(ctx, u.db, start, end)
	if err != nil {
		u.log.Warnf("Failed to find appointments between dates: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// GetAppointmentsAscending raises NoRecords on an empty store.
func (u *appointmentUsecase) GetAppointmentsAscending(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAllAscending(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find appointments in ascending order: %+v", err)
		return nil, err
	}
	if len(appointments) == 0 {
		return nil, validation.NewError(validation.KindNoRecords, "there are no records in the database")
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}
