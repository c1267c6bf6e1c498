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
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")

	// ErrPatientRecordMissing means a store lookup missed after the
	// existence check passed. Not expected; treated as internal.
	ErrPatientRecordMissing = errors.New("patient record missing after existence check")
)

// updatePlaceholderLastName is the fixed demonstration mutation applied
// by UpdatePatient. A real partial update would take an explicit change
// set instead.
const updatePlaceholderLastName = "Jai"

type PatientUsecase interface {
	CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	GetPatientByID(ctx context.Context, id uint) (*dto.PatientResponse, error)
	GetAllPatients(ctx context.Context) (*dto.PatientListResponse, error)
	UpdatePatient(ctx context.Context, id uint) (*dto.PatientResponse, error)
	CreatePatientWithAppointments(ctx context.Context, req *dto.CreatePatientWithAppointmentsRequest) (*dto.PatientResponse, error)
	GetPatientByPhone(ctx context.Context, phone string) (*dto.PatientResponse, error)
	GetPatientsWithAppointmentOnDay(ctx context.Context, day time.Time) (*dto.PatientListResponse, error)
	GetPatientsBetweenDOB(ctx context.Context, start, end time.Time) (*dto.PatientListResponse, error)
	GetPatientsAscending(ctx context.Context) (*dto.PatientListResponse, error)
	GetPatientName(ctx context.Context, id uint) (*dto.PatientNameResponse, error)
}

type patientUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	lookup       service.RecordLookup
	auditService service.AuditService
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	lookup service.RecordLookup,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		db:           db,
		log:          log,
		patientRepo:  patientRepo,
		lookup:       lookup,
		auditService: auditService,
	}
}

// validatePatientID checks membership against the known id set first,
// then positivity, preserving the original check ordering.
func (u *patientUsecase) validatePatientID(ctx context.Context, id uint) error {
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

// CreatePatient validates the full patient rule set plus date of birth
// and persists the record. The first violated rule aborts the call; no
// partial write occurs.
func (u *patientUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	if err := validation.ValidatePatientFields(req.FirstName, req.LastName, req.Phone, req.Email, req.Password); err != nil {
		return nil, err
	}
	if err := validation.ValidateDateOfBirth(dob, today); err != nil {
		return nil, err
	}

	patient := &entity.Patient{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Phone:       req.Phone,
		Email:       req.Email,
		Password:    req.Password,
		DateOfBirth: dob,
	}

	if err := u.patientRepo.Create(ctx, u.db, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	u.lookup.RegisterPatient(ctx, patient.ID, patient.Phone)

	response := converter.PatientToResponse(patient)
	if err := u.auditService.LogCreate(u.db, entity.AuditActionPatientCreate, "patient", fmt.Sprint(patient.ID), response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	u.log.Infof("Patient created: id=%d, phone=%s", patient.ID, patient.Phone)
	return response, nil
}

func (u *patientUsecase) GetPatientByID(ctx context.Context, id uint) (*dto.PatientResponse, error) {
	if err := u.validatePatientID(ctx, id); err != nil {
		return nil, err
	}

	patient, err := u.patientRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		u.log.Errorf("Patient %d passed existence check but lookup missed", id)
		return nil, ErrPatientRecordMissing
	}

	return converter.PatientToResponse(patient), nil
}

// GetAllPatients returns every patient in store order. An empty store
// is a valid, non-error result here, unlike the filtered lookups.
func (u *patientUsecase) GetAllPatients(ctx context.Context) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find all patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

// UpdatePatient applies the fixed demonstration mutation to the last
// name and persists the record.
func (u *patientUsecase) UpdatePatient(ctx context.Context, id uint) (*dto.PatientResponse, error) {
	if err := u.validatePatientID(ctx, id); err != nil {
		return nil, err
	}

	patient, err := u.patientRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientRecordMissing
	}

	oldValue := converter.PatientToResponse(patient)

	patient.LastName = updatePlaceholderLastName
	if err := u.patientRepo.Save(ctx, u.db, patient); err != nil {
		u.log.Warnf("Failed to update patient %d: %+v", id, err)
		return nil, err
	}

	response := converter.PatientToResponse(patient)
	if err := u.auditService.LogUpdate(u.db, entity.AuditActionPatientUpdate, "patient", fmt.Sprint(id), oldValue, response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return response, nil
}

// CreatePatientWithAppointments validates every appointment booking
// date before any patient-level rule runs, then validates the patient,
// requires a non-empty appointment list and a valid date of birth, and
// persists the aggregate in one save.
func (u *patientUsecase) CreatePatientWithAppointments(ctx context.Context, req *dto.CreatePatientWithAppointmentsRequest) (*dto.PatientResponse, error) {
	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)

	appointments := make([]entity.Appointment, 0, len(req.Appointments))
	for _, item := range req.Appointments {
		date, err := time.Parse("2006-01-02", item.AppointmentDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		if err := validation.ValidateBookingDate(date, today); err != nil {
			return nil, err
		}
		appointments = append(appointments, entity.Appointment{
			AppointmentDate: date,
			Reason:          item.Reason,
			DoctorID:        item.DoctorID,
			Status:          entity.AppointmentStatus{StatusName: entity.StatusPending},
		})
	}

	if err := validation.ValidatePatientFields(req.FirstName, req.LastName, req.Phone, req.Email, req.Password); err != nil {
		return nil, err
	}
	if len(appointments) == 0 {
		return nil, validation.NewError(validation.KindNoAppointments, "appointments could not be zero")
	}
	if err := validation.ValidateDateOfBirth(dob, today); err != nil {
		return nil, err
	}

	patient := &entity.Patient{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Email:        req.Email,
		Password:     req.Password,
		DateOfBirth:  dob,
		Appointments: appointments,
	}

	if err := u.patientRepo.Create(ctx, u.db, patient); err != nil {
		u.log.Warnf("Failed to create patient with appointments: %+v", err)
		return nil, err
	}

	u.lookup.RegisterPatient(ctx, patient.ID, patient.Phone)
	for i := range patient.Appointments {
		u.lookup.RegisterAppointment(ctx, patient.Appointments[i].ID)
	}

	response := converter.PatientToResponse(patient)
	if err := u.auditService.LogCreate(u.db, entity.AuditActionPatientAssociate, "patient", fmt.Sprint(patient.ID), response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	u.log.Infof("Patient created with %d appointments: id=%d", len(patient.Appointments), patient.ID)
	return response, nil
}

func (u *patientUsecase) GetPatientByPhone(ctx context.Context, phone string) (*dto.PatientResponse, error) {
	if err := validation.ValidatePhoneNumber(phone); err != nil {
		return nil, err
	}

	registered, err := u.lookup.PhoneRegistered(ctx, phone)
	if err != nil {
		return nil, err
	}
	if !registered {
		return nil, validation.NewError(validation.KindPhoneNotRegistered, "patient phone number does not exist in the database")
	}

	patient, err := u.patientRepo.FindByPhone(ctx, u.db, phone)
	if err != nil {
		u.log.Warnf("Failed to find patient by phone %s: %+v", phone, err)
		return nil, err
	}
	if patient == nil {
		u.log.Errorf("Phone %s passed existence check but lookup missed", phone)
		return nil, ErrPatientRecordMissing
	}

	return converter.PatientToResponse(patient), nil
}

// GetPatientsWithAppointmentOnDay treats an empty result as an error,
// surfacing likely user mistakes. This asymmetry with GetAllPatients is
// a deliberate per-operation policy.
func (u *patientUsecase) GetPatientsWithAppointmentOnDay(ctx context.Context, day time.Time) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindWithAppointmentsOn(ctx, u.db, day)
	if err != nil {
		u.log.Warnf("Failed to find patients with appointments on %s: %+v", day.Format("2006-01-02"), err)
		return nil, err
	}
	if len(patients) == 0 {
		return nil, validation.NewError(validation.KindNoAppointments, "there are no appointments on that date")
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

// GetPatientsBetweenDOB validates the range before touching the store.
func (u *patientUsecase) GetPatientsBetweenDOB(ctx context.Context, start, end time.Time) (*dto.PatientListResponse, error) {
	if err := validation.ValidateDateRange(start, end); err != nil {
		return nil, err
	}

	patients, err := u.patientRepo.FindByDOBBetween(ctx, u.db, start, end)
	if err != nil {
		u.log.Warnf("Failed to find patients by DOB range: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

// GetPatientsAscending raises NoRecords on an empty store, unlike
// GetAllPatients.
func (u *patientUsecase) GetPatientsAscending(ctx context.Context) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindAllAscending(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find patients in ascending order: %+v", err)
		return nil, err
	}
	if len(patients) == 0 {
		return nil, validation.NewError(validation.KindNoRecords, "there are no records in the database")
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

// GetPatientName returns the first/last name projection only.
func (u *patientUsecase) GetPatientName(ctx context.Context, id uint) (*dto.PatientNameResponse, error) {
	if err := u.validatePatientID(ctx, id); err != nil {
		return nil, err
	}

	name, err := u.patientRepo.FindNameByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient name %d: %+v", id, err)
		return nil, err
	}
	if name == nil {
		return nil, ErrPatientRecordMissing
	}

	return converter.PatientNameToResponse(name), nil
}
