package converter

import (
	"hospital-appointment-scheduling/internal/delivery/dto"
	"hospital-appointment-scheduling/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to its response DTO.
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:           patient.ID,
		FirstName:    patient.FirstName,
		LastName:     patient.LastName,
		Phone:        patient.Phone,
		Email:        patient.Email,
		DateOfBirth:  patient.DateOfBirth.Format("2006-01-02"),
		Appointments: AppointmentsToResponses(patient.Appointments),
		CreatedAt:    patient.CreatedAt,
		UpdatedAt:    patient.UpdatedAt,
	}
}

func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, 0, len(patients))
	for i := range patients {
		responses = append(responses, *PatientToResponse(&patients[i]))
	}
	return responses
}

func PatientNameToResponse(name *entity.PatientName) *dto.PatientNameResponse {
	if name == nil {
		return nil
	}
	return &dto.PatientNameResponse{
		FirstName: name.FirstName,
		LastName:  name.LastName,
	}
}
