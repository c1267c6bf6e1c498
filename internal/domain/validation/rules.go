package validation

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Field rules for patient and appointment records. All rules are pure:
// date-based rules take the reference day as an argument so callers
// own the clock. Every rule returns nil on success or a *Error tagged
// with the violated kind.

// ValidatePhoneNumber requires exactly 10 digits with a leading
// 6, 7, 8 or 9.
func ValidatePhoneNumber(phone string) error {
	if len(phone) != 10 {
		return NewError(KindPhoneNumberInvalid, "phone number must be exactly 10 characters")
	}

	first := phone[0]
	if first != '9' && first != '8' && first != '7' && first != '6' {
		return NewError(KindPhoneNumberInvalid, "phone number must start with 9, 8, 7, or 6")
	}

	for _, c := range phone {
		if !unicode.IsDigit(c) {
			return NewError(KindPhoneNumberInvalid, "phone number can only contain digits")
		}
	}
	return nil
}

// ValidateEmail requires a non-empty value containing exactly one '@'
// and no consecutive dots.
func ValidateEmail(email string) error {
	if email == "" {
		return NewError(KindEmailInvalid, "email field could not be empty")
	}

	atCount := strings.Count(email, "@")
	if atCount == 0 {
		return NewError(KindEmailInvalid, "email should contain at least one '@' character")
	}
	if strings.Contains(email, "..") {
		return NewError(KindEmailInvalid, "email cannot contain consecutive dots")
	}
	if atCount != 1 {
		return NewError(KindEmailInvalid, "email must contain exactly one '@' character")
	}
	return nil
}

// ValidatePassword requires length 8-12 and at least one uppercase
// letter, one lowercase letter, one digit and one character outside
// those classes.
func ValidatePassword(password string) error {
	length := utf8.RuneCountInString(password)
	if length < 8 || length > 12 {
		return NewError(KindPasswordInvalid, "password length must be between 8 and 12")
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, c := range password {
		switch {
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsLower(c):
			hasLower = true
		case unicode.IsDigit(c):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	if !hasUpper {
		return NewError(KindPasswordInvalid, "password must have at least one uppercase letter")
	}
	if !hasLower {
		return NewError(KindPasswordInvalid, "password must have at least one lowercase letter")
	}
	if !hasDigit {
		return NewError(KindPasswordInvalid, "password must have at least one digit")
	}
	if !hasSpecial {
		return NewError(KindPasswordInvalid, "password must have at least one special character")
	}
	return nil
}

// ValidateFirstName requires at least 2 alphabetic characters with no
// leading or trailing whitespace.
func ValidateFirstName(firstName string) error {
	if firstName == "" {
		return NewError(KindNameInvalid, "first name cannot be empty")
	}
	if utf8.RuneCountInString(firstName) < 2 {
		return NewError(KindNameInvalid, "first name must be at least 2 characters long")
	}
	for _, c := range firstName {
		if !unicode.IsLetter(c) {
			return NewError(KindNameInvalid, "first name can only contain alphabetic characters")
		}
	}
	if strings.TrimSpace(firstName) != firstName {
		return NewError(KindNameInvalid, "first name cannot have leading or trailing spaces")
	}
	return nil
}

// ValidateLastName requires at least 2 alphabetic characters and
// rejects the placeholder values "N/A" and "Unknown".
func ValidateLastName(lastName string) error {
	if lastName == "" {
		return NewError(KindNameInvalid, "last name cannot be empty")
	}
	if utf8.RuneCountInString(lastName) < 2 {
		return NewError(KindNameInvalid, "last name must be at least 2 characters long")
	}
	for _, c := range lastName {
		if !unicode.IsLetter(c) {
			return NewError(KindNameInvalid, "last name can only contain alphabetic characters")
		}
	}
	if strings.EqualFold(lastName, "N/A") || strings.EqualFold(lastName, "Unknown") {
		return NewError(KindNameInvalid, "last name cannot be 'N/A' or 'Unknown'")
	}
	return nil
}

// ValidateCombinedName checks first and last name joined by a single
// space: at most 50 characters, only letters and single spaces.
func ValidateCombinedName(firstName, lastName string) error {
	combined := firstName + " " + lastName

	if utf8.RuneCountInString(combined) > 50 {
		return NewError(KindNameInvalid, "combined first and last name cannot exceed 50 characters")
	}
	for _, c := range combined {
		if !unicode.IsLetter(c) && c != ' ' {
			return NewError(KindNameInvalid, "combined first and last name contains invalid characters")
		}
	}
	if strings.Contains(combined, "  ") {
		return NewError(KindNameInvalid, "combined first and last name cannot contain consecutive spaces")
	}
	return nil
}

// ValidateDateOfBirth requires dob not after today, and the subject
// strictly older than 18 years: a dob exactly on the 18-years-ago
// boundary fails.
func ValidateDateOfBirth(dob, today time.Time) error {
	if dob.After(today) {
		return NewError(KindDateOfBirthInvalid, "date of birth could not be in the future")
	}
	boundary := today.AddDate(-18, 0, 0)
	if !dob.Before(boundary) {
		return NewError(KindDateOfBirthInvalid, "patient must be at least 18 years old")
	}
	return nil
}

// ValidateBookingDate requires the appointment date to be today or
// later.
func ValidateBookingDate(date, today time.Time) error {
	if date.Before(today) {
		return NewError(KindBookingDateInvalid, "appointment booking date could not be in the past")
	}
	return nil
}

// ValidateDateRange requires start not after end.
func ValidateDateRange(start, end time.Time) error {
	if start.After(end) {
		return NewError(KindDateRangeInvalid, "start date must be before the end date")
	}
	return nil
}

// ValidatePatientFields is the compound patient rule: phone, email,
// password, combined name, first name, last name, evaluated left to
// right with short-circuit on the first failure.
func ValidatePatientFields(firstName, lastName, phone, email, password string) error {
	if err := ValidatePhoneNumber(phone); err != nil {
		return err
	}
	if err := ValidateEmail(email); err != nil {
		return err
	}
	if err := ValidatePassword(password); err != nil {
		return err
	}
	if err := ValidateCombinedName(firstName, lastName); err != nil {
		return err
	}
	if err := ValidateFirstName(firstName); err != nil {
		return err
	}
	return ValidateLastName(lastName)
}
