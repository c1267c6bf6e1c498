package handler

import (
	"errors"
	"net/http"

	"hospital-appointment-scheduling/internal/domain/validation"
	"hospital-appointment-scheduling/internal/usecase"
	"hospital-appointment-scheduling/pkg/response"
)

// writeDomainError maps a usecase failure to an HTTP response. Every
// violated domain rule renders uniformly as 400 with the rule message;
// anything else is internal.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case validation.IsValidationError(err):
		response.BadRequest(w, err.Error())
	case errors.Is(err, usecase.ErrInvalidDateFormat):
		response.BadRequest(w, err.Error())
	default:
		response.InternalServerError(w, "")
	}
}
