package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"hospital-appointment-scheduling/internal/domain/entity"
	"hospital-appointment-scheduling/internal/domain/repository"
	"hospital-appointment-scheduling/internal/service"

	"gorm.io/gorm"
)

// Compile-time checks that the mocks satisfy the contracts they fake.
var (
	_ repository.PatientRepository     = (*MockPatientRepository)(nil)
	_ repository.AppointmentRepository = (*MockAppointmentRepository)(nil)
	_ repository.AuditLogRepository    = (*MockAuditLogRepository)(nil)
	_ service.RecordLookup             = (*MockRecordLookup)(nil)
)

// MockPatientRepository is a func-field fake of PatientRepository.
// Unset funcs return benign defaults.
type MockPatientRepository struct {
	CreateFunc                 func(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	SaveFunc                   func(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	FindByIDFunc               func(ctx context.Context, db *gorm.DB, id uint) (*entity.Patient, error)
	FindAllFunc                func(ctx context.Context, db *gorm.DB) ([]entity.Patient, error)
	FindAllIDsFunc             func(ctx context.Context, db *gorm.DB) ([]uint, error)
	FindAllPhoneNumbersFunc    func(ctx context.Context, db *gorm.DB) ([]string, error)
	FindByPhoneFunc            func(ctx context.Context, db *gorm.DB, phone string) (*entity.Patient, error)
	FindWithAppointmentsOnFunc func(ctx context.Context, db *gorm.DB, day time.Time) ([]entity.Patient, error)
	FindByDOBBetweenFunc       func(ctx context.Context, db *gorm.DB, start, end time.Time) ([]entity.Patient, error)
	FindAllAscendingFunc       func(ctx context.Context, db *gorm.DB) ([]entity.Patient, error)
	FindNameByIDFunc           func(ctx context.Context, db *gorm.DB, id uint) (*entity.PatientName, error)

	CreateCallCount           int32
	SaveCallCount             int32
	FindByDOBBetweenCallCount int32
}

func (m *MockPatientRepository) Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, db, patient)
	}
	return nil
}

func (m *MockPatientRepository) Save(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	atomic.AddInt32(&m.SaveCallCount, 1)
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, db, patient)
	}
	return nil
}

func (m *MockPatientRepository) FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.Patient, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, db, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockPatientRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Patient, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, db)
	}
	return nil, nil
}

func (m *MockPatientRepository) FindAllIDs(ctx context.Context, db *gorm.DB) ([]uint, error) {
	if m.FindAllIDsFunc != nil {
		return m.FindAllIDsFunc(ctx, db)
	}
	return nil, nil
}

func (m *MockPatientRepository) FindAllPhoneNumbers(ctx context.Context, db *gorm.DB) ([]string, error) {
	if m.FindAllPhoneNumbersFunc != nil {
		return m.FindAllPhoneNumbersFunc(ctx, db)
	}
	return nil, nil
}

func (m *MockPatientRepository) FindByPhone(ctx context.Context, db *gorm.DB, phone string) (*entity.Patient, error) {
	if m.FindByPhoneFunc != nil {
		return m.FindByPhoneFunc(ctx, db, phone)
	}
	return nil, errors.New("FindByPhoneFunc not implemented in mock")
}

func (m *MockPatientRepository) FindWithAppointmentsOn(ctx context.Context, db *gorm.DB, day time.Time) ([]entity.Patient, error) {
	if m.FindWithAppointmentsOnFunc != nil {
		return m.FindWithAppointmentsOnFunc(ctx, db, day)
	}
	return nil, nil
}

func (m *MockPatientRepository) FindByDOBBetween(ctx context.Context, db *gorm.DB, start, end time.Time) ([]entity.Patient, error) {
	atomic.AddInt32(&m.FindByDOBBetweenCallCount, 1)
	if m.FindByDOBBetweenFunc != nil {
		return m.FindByDOBBetweenFunc(ctx, db, start, end)
	}
	return nil, nil
}

func (m *MockPatientRepository) FindAllAscending(ctx context.Context, db *gorm.DB) ([]entity.Patient, error) {
	if m.FindAllAscendingFunc != nil {
		return m.FindAllAscendingFunc(ctx, db)
	}
	return nil, nil
}

func (m *MockPatientRepository) FindNameByID(ctx context.Context, db *gorm.DB, id uint) (*entity.PatientName, error) {
	if m.FindNameByIDFunc != nil {
		return m.FindNameByIDFunc(ctx, db, id)
	}
	return nil, errors.New("FindNameByIDFunc not implemented in mock")
}

// MockAppointmentRepository is a func-field fake of AppointmentRepository.
type MockAppointmentRepository struct {
	CreateFunc           func(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	SaveFunc             func(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	FindByIDFunc         func(ctx context.Context, db *gorm.DB, id uint) (*entity.Appointment, error)
	FindAllFunc          func(ctx context.Context, db *gorm.DB) ([]entity.Appointment, error)
	FindAllIDsFunc       func(ctx context.Context, db *gorm.DB) ([]uint, error)
	FindBetweenDatesFunc func(ctx context.Context, db *gorm.DB, start, end time.Time) ([]entity.Appointment, error)
	FindAllAscendingFunc func(ctx context.Context, db *gorm.DB) ([]entity.Appointment, error)

	CreateCallCount           int32
	SaveCallCount             int32
	FindBetweenDatesCallCount int32
}

func (m *MockAppointmentRepository) Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, db, appointment)
	}
	return nil
}

func (m *MockAppointmentRepository) Save(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	atomic.AddInt32(&m.SaveCallCount, 1)
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, db, appointment)
	}
	return nil
}

func (m *MockAppointmentRepository) FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.Appointment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, db, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockAppointmentRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Appointment, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, db)
	}
	return nil, nil
}

func (m *MockAppointmentRepository) FindAllIDs(ctx context.Context, db *gorm.DB) ([]uint, error) {
	if m.FindAllIDsFunc != nil {
		return m.FindAllIDsFunc(ctx, db)
	}
	return nil, nil
}

func (m *MockAppointmentRepository) FindBetweenDates(ctx context.Context, db *gorm.DB, start, end time.Time) ([]entity.Appointment, error) {
	atomic.AddInt32(&m.FindBetweenDatesCallCount, 1)
	if m.FindBetweenDatesFunc != nil {
		return m.FindBetweenDatesFunc(ctx, db, start, end)
	}
	return nil, nil
}

func (m *MockAppointmentRepository) FindAllAscending(ctx context.Context, db *gorm.DB) ([]entity.Appointment, error) {
	if m.FindAllAscendingFunc != nil {
		return m.FindAllAscendingFunc(ctx, db)
	}
	return nil, nil
}

// MockAuditLogRepository records audit writes without a database.
type MockAuditLogRepository struct {
	Created []*entity.AuditLog
}

func (m *MockAuditLogRepository) Create(db *gorm.DB, log *entity.AuditLog) error {
	m.Created = append(m.Created, log)
	return nil
}

func (m *MockAuditLogRepository) FindAll(db *gorm.DB) ([]entity.AuditLog, error) {
	logs := make([]entity.AuditLog, 0, len(m.Created))
	for _, l := range m.Created {
		logs = append(logs, *l)
	}
	return logs, nil
}

// MockRecordLookup fakes the existence-lookup service with in-memory
// sets.
type MockRecordLookup struct {
	PatientIDs     map[uint]bool
	Phones         map[string]bool
	AppointmentIDs map[uint]bool

	RegisteredPatients     []uint
	RegisteredAppointments []uint

	PatientIDExistsErr error
}

func NewMockRecordLookup() *MockRecordLookup {
	return &MockRecordLookup{
		PatientIDs:     map[uint]bool{},
		Phones:         map[string]bool{},
		AppointmentIDs: map[uint]bool{},
	}
}

func (m *MockRecordLookup) PatientIDExists(ctx context.Context, id uint) (bool, error) {
	if m.PatientIDExistsErr != nil {
		return false, m.PatientIDExistsErr
	}
	return m.PatientIDs[id], nil
}

func (m *MockRecordLookup) PhoneRegistered(ctx context.Context, phone string) (bool, error) {
	return m.Phones[phone], nil
}

func (m *MockRecordLookup) AppointmentIDExists(ctx context.Context, id uint) (bool, error) {
	return m.AppointmentIDs[id], nil
}

func (m *MockRecordLookup) RegisterPatient(ctx context.Context, id uint, phone string) {
	m.PatientIDs[id] = true
	m.Phones[phone] = true
	m.RegisteredPatients = append(m.RegisteredPatients, id)
}

func (m *MockRecordLookup) RegisterAppointment(ctx context.Context, id uint) {
	m.AppointmentIDs[id] = true
	m.RegisteredAppointments = append(m.RegisteredAppointments, id)
}
