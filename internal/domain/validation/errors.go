package validation

import (
	"errors"
	"fmt"
)

// Kind identifies which rule a validation failure came from. Handlers
// map every kind to a bad-request response with the message as body.
type Kind string

const (
	KindPhoneNumberInvalid Kind = "PHONE_NUMBER_INVALID"
	KindEmailInvalid       Kind = "EMAIL_INVALID"
	KindPasswordInvalid    Kind = "PASSWORD_INVALID"
	KindNameInvalid        Kind = "NAME_INVALID"
	KindDateOfBirthInvalid Kind = "DATE_OF_BIRTH_INVALID"
	KindBookingDateInvalid Kind = "BOOKING_DATE_INVALID"
	KindIDInvalid          Kind = "ID_INVALID"
	KindIDNotFound         Kind = "ID_NOT_FOUND"
	KindPhoneNotRegistered Kind = "PHONE_NOT_REGISTERED"
	KindNoAppointments     Kind = "NO_APPOINTMENTS"
	KindNoRecords          Kind = "NO_RECORDS"
	KindDateRangeInvalid   Kind = "DATE_RANGE_INVALID"
)

// Error is the single tagged failure type raised by every validator.
// Rules fail fast: the first violated rule produces the Error and
// evaluation stops.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NewError builds a tagged validation failure.
func NewError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// KindOf returns the validation kind carried by err, or "" if err is
// not a validation failure.
func KindOf(err error) Kind {
	var verr *Error
	if errors.As(err, &verr) {
		return verr.Kind
	}
	return ""
}

// IsValidationError reports whether err is a domain validation failure.
func IsValidationError(err error) bool {
	var verr *Error
	return errors.As(err, &verr)
}
