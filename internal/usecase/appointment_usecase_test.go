package usecase

import (
	"context"
	"testing"
	"time"

	"hospital-appointment-scheduling/internal/delivery/dto"
	"hospital-appointment-scheduling/internal/domain/entity"
	"hospital-appointment-scheduling/internal/domain/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAppointmentUsecase(
	appointmentRepo *MockAppointmentRepository,
	patientRepo *MockPatientRepository,
	lookup *MockRecordLookup,
) (AppointmentUsecase, *MockAuditLogRepository) {
	auditService, auditRepo := testAuditService()
	return NewAppointmentUsecase(nil, testLogger(), appointmentRepo, patientRepo, lookup, auditService), auditRepo
}

func validCreateAppointmentRequest() *dto.CreateAppointmentRequest {
	return &dto.CreateAppointmentRequest{
		Patient: *validCreatePatientRequest(),
		Appointment: dto.AppointmentDetailsRequest{
			AppointmentDate: time.Now().UTC().AddDate(0, 0, 3).Format("2006-01-02"),
			Reason:          "Knee pain",
		},
		DoctorID: 2,
	}
}

func TestCreateAppointment(t *testing.T) {
	t.Run("registers the patient and books the appointment", func(t *testing.T) {
		patientRepo := &MockPatientRepository{
			CreateFunc: func(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
				patient.ID = 4
				return nil
			},
		}
		appointmentRepo := &MockAppointmentRepository{
			CreateFunc: func(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
				appointment.ID = 21
				return nil
			},
		}
		lookup := NewMockRecordLookup()
		usecase, auditRepo := newAppointmentUsecase(appointmentRepo, patientRepo, lookup)

		response, err := usecase.CreateAppointment(context.Background(), validCreateAppointmentRequest())
		require.NoError(t, err)
		assert.Equal(t, uint(21), response.ID)
		assert.Equal(t, uint(4), response.PatientID)
		assert.Equal(t, entity.StatusPending, response.Status)
		assert.True(t, lookup.PatientIDs[4])
		assert.True(t, lookup.AppointmentIDs[21])
		require.Len(t, auditRepo.Created, 1)
		assert.Equal(t, entity.AuditActionAppointmentCreate, auditRepo.Created[0].Action)
	})

	t.Run("a past booking date fails after the patient is persisted", func(t *testing.T) {
		patientRepo := &MockPatientRepository{
			CreateFunc: func(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
				patient.ID = 4
				return nil
			},
		}
		appointmentRepo := &MockAppointmentRepository{}
		lookup := NewMockRecordLookup()
		usecase, _ := newAppointmentUsecase(appointmentRepo, patientRepo, lookup)

		req := validCreateAppointmentRequest()
		req.Appointment.AppointmentDate = time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")

		_, err := usecase.CreateAppointment(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, validation.KindBookingDateInvalid, validation.KindOf(err))

		// No rollback in this layer: the patient record stays.
		assert.Equal(t, int32(1), patientRepo.CreateCallCount)
		assert.True(t, lookup.PatientIDs[4])
		assert.Equal(t, int32(0), appointmentRepo.CreateCallCount)
	})

	t.Run("invalid patient fields fail before anything is persisted", func(t *testing.T) {
		patientRepo := &MockPatientRepository{}
		appointmentRepo := &MockAppointmentRepository{}
		usecase, _ := newAppointmentUsecase(appointmentRepo, patientRepo, NewMockRecordLookup())

		req := validCreateAppointmentRequest()
		req.Patient.Email = "a@@b.com"

		_, err := usecase.CreateAppointment(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, validation.KindEmailInvalid, validation.KindOf(err))
		assert.Equal(t, int32(0), patientRepo.CreateCallCount)
		assert.Equal(t, int32(0), appointmentRepo.CreateCallCount)
	})
}

func TestCreateAppointmentWithPatientID(t *testing.T) {
	validRequest := func() *dto.CreateAppointmentWithPatientIDRequest {
		return &dto.CreateAppointmentWithPatientIDRequest{
			PatientID: 4,
			Appointment: dto.AppointmentDetailsRequest{
				AppointmentDate: time.Now().UTC().AddDate(0, 0, 3).Format("2006-01-02"),
				Reason:          "Follow-up",
			},
			DoctorID: 2,
		}
	}

	t.Run("books an appointment for a known patient", func(t *testing.T) {
		appointmentRepo := &MockAppointmentRepository{
			CreateFunc: func(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
				appointment.ID = 31
				return nil
			},
		}
		lookup := NewMockRecordLookup()
		lookup.PatientIDs[4] = true
		usecase, _ := newAppointmentUsecase(appointmentRepo, &MockPatientRepository{}, lookup)

		response, err := usecase.CreateAppointmentWithPatientID(context.Background(), validRequest())
		require.NoError(t, err)
		assert.Equal(t, uint(31), response.ID)
		assert.Equal(t, uint(4), response.PatientID)
		assert.True(t, lookup.AppointmentIDs[31])
	})

	t.Run("an unknown patient ID raises ID_NOT_FOUND", func(t *testing.T) {
		appointmentRepo := &MockAppointmentRepository{}
		usecase, _ := newAppointmentUsecase(appointmentRepo, &MockPatientRepository{}, NewMockRecordLookup())

		_, err := usecase.CreateAppointmentWithPatientID(context.Background(), validRequest())
		require.Error(t, err)
		assert.Equal(t, validation.KindIDNotFound, validation.KindOf(err))
		assert.Equal(t, int32(0), appointmentRepo.CreateCallCount)
	})

	t.Run("booking today is allowed", func(t *testing.T) {
		appointmentRepo := &MockAppointmentRepository{
			CreateFunc: func(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
				appointment.ID = 32
				return nil
			},
		}
		lookup := NewMockRecordLookup()
		lookup.PatientIDs[4] = true
		usecase, _ := newAppointmentUsecase(appointmentRepo, &MockPatientRepository{}, lookup)

		req := validRequest()
		req.Appointment.AppointmentDate = time.Now().UTC().Format("2006-01-02")

		_, err := usecase.CreateAppointmentWithPatientID(context.Background(), req)
		assert.NoError(t, err)
	})
}

func TestGetAppointmentByID(t *testing.T) {
	t.Run("returns the appointment when the ID is known", func(t *testing.T) {
		appointmentRepo := &MockAppointmentRepository{
			FindByIDFunc: func(ctx context.Context, db *gorm.DB, id uint) (*entity.Appointment, error) {
				return &entity.Appointment{ID: id, Reason: "Knee pain"}, nil
			},
		}
		lookup := NewMockRecordLookup()
		lookup.AppointmentIDs[21] = true
		usecase, _ := newAppointmentUsecase(appointmentRepo, &MockPatientRepository{}, lookup)

		response, err := usecase.GetAppointmentByID(context.Background(), 21)
		require.NoError(t, err)
		assert.Equal(t, uint(21), response.ID)
	})

	t.Run("an unknown ID raises ID_NOT_FOUND", func(t *testing.T) {
		usecase, _ := newAppointmentUsecase(&MockAppointmentRepository{}, &MockPatientRepository{}, NewMockRecordLookup())

		_, err := usecase.GetAppointmentByID(context.Background(), 21)
		require.Error(t, err)
		assert.Equal(t, validation.KindIDNotFound, validation.KindOf(err))
	})

	t.Run("fails when the store misses after the existence check", func(t *testing.T) {
		appointmentRepo := &MockAppointmentRepository{
			FindByIDFunc: func(ctx context.Context, db *gorm.DB, id uint) (*entity.Appointment, error) {
				return nil, nil
			},
		}
		lookup := NewMockRecordLookup()
		lookup.AppointmentIDs[21] = true
		usecase, _ := newAppointmentUsecase(appointmentRepo, &MockPatientRepository{}, lookup)

		_, err := usecase.GetAppointmentByID(context.Background(), 21)
		assert.ErrorIs(t, err, ErrAppointmentRecordMissing)
	})
}

func TestGetAllAppointments(t *testing.T) {
	t.Run("an empty store is a valid result", func(t *testing.T) {
		usecase, _ := newAppointmentUsecase(&MockAppointmentRepository{}, &MockPatientRepository{}, NewMockRecordLookup())

		response, err := usecase.GetAllAppointments(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, response.Total)
	})
}

func TestGetAppointmentsAscending(t *testing.T) {
	t.Run("an empty store raises NO_RECORDS", func(t *testing.T) {
		usecase, _ := newAppointmentUsecase(&MockAppointmentRepository{}, &MockPatientRepository{}, NewMockRecordLookup())

		_, err := usecase.GetAppointmentsAscending(context.Background())
		require.Error(t, err)
		assert.Equal(t, validation.KindNoRecords, validation.KindOf(err))
	})

	t.Run("returns records when present", func(t *testing.T) {
		appointmentRepo := &MockAppointmentRepository{
			FindAllAscendingFunc: func(ctx context.Context, db *gorm.DB) ([]entity.Appointment, error) {
				return []entity.Appointment{{ID: 1}, {ID: 2}, {ID: 3}}, nil
			},
		}
		usecase, _ := newAppointmentUsecase(appointmentRepo, &MockPatientRepository{}, NewMockRecordLookup())

		response, err := usecase.GetAppointmentsAscending(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 3, response.Total)
	})
}

func TestGetAppointmentsBetweenDates(t *testing.T) {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)

	t.Run("an inverted range fails before the store is queried", func(t *testing.T) {
		appointmentRepo := &MockAppointmentRepository{}
		usecase, _ := newAppointmentUsecase(appointmentRepo, &MockPatientRepository{}, NewMockRecordLookup())

		_, err := usecase.GetAppointmentsBetweenDates(context.Background(), end, start)
		require.Error(t, err)
		assert.Equal(t, validation.KindDateRangeInvalid, validation.KindOf(err))
		assert.Equal(t, int32(0), appointmentRepo.FindBetweenDatesCallCount)
	})

	t.Run("an empty result in a valid range is not an error", func(t *testing.T) {
		usecase, _ := newAppointmentUsecase(&MockAppointmentRepository{}, &MockPatientRepository{}, NewMockRecordLookup())

		response, err := usecase.GetAppointmentsBetweenDates(context.Background(), start, end)
		require.NoError(t, err)
		assert.Equal(t, 0, response.Total)
	})
}

func TestUpdateAppointment(t *testing.T) {
	t.Run("applies the placeholder reason and saves", func(t *testing.T) {
		appointmentRepo := &MockAppointmentRepository{
			FindByIDFunc: func(ctx context.Context, db *gorm.DB, id uint) (*entity.Appointment, error) {
				return &entity.Appointment{ID: id, Reason: "Knee pain"}, nil
			},
		}
		lookup := NewMockRecordLookup()
		lookup.AppointmentIDs[21] = true
		usecase, auditRepo := newAppointmentUsecase(appointmentRepo, &MockPatientRepository{}, lookup)

		response, err := usecase.UpdateAppointment(context.Background(), 21)
		require.NoError(t, err)
		assert.Equal(t, "General checkup", response.Reason)
		assert.Equal(t, int32(1), appointmentRepo.SaveCallCount)
		require.Len(t, auditRepo.Created, 1)
		assert.Equal(t, entity.AuditActionAppointmentUpdate, auditRepo.Created[0].Action)
	})

	t.Run("fails for an unknown ID without saving", func(t *testing.T) {
		appointmentRepo := &MockAppointmentRepository{}
		usecase, _ := newAppointmentUsecase(appointmentRepo, &MockPatientRepository{}, NewMockRecordLookup())

		_, err := usecase.UpdateAppointment(context.Background(), 21)
		require.Error(t, err)
		assert.Equal(t, validation.KindIDNotFound, validation.KindOf(err))
		assert.Equal(t, int32(0), appointmentRepo.SaveCallCount)
	})
}
