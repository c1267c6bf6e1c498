package converter

import (
	"hospital-appointment-scheduling/internal/delivery/dto"
	"hospital-appointment-scheduling/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to its
// response DTO.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:              appointment.ID,
		AppointmentDate: appointment.AppointmentDate.Format("2006-01-02"),
		Reason:          appointment.Reason,
		DoctorID:        appointment.DoctorID,
		PatientID:       appointment.PatientID,
		Status:          appointment.Status.StatusName,
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}
}

func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	if len(appointments) == 0 {
		return nil
	}
	responses := make([]dto.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		responses = append(responses, *AppointmentToResponse(&appointments[i]))
	}
	return responses
}
