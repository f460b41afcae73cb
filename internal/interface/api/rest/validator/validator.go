package validator

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	domain "user-account-api/internal/domain/user"
	"user-account-api/internal/interface/api/rest/dto/user"
)

const (
	minNameLen = 2
	maxNameLen = 255

	minPasswordLen = 8
	maxPasswordLen = 20

	dateOfBirthLayout = "02.01.2006"
)

// Issue codes.
const (
	CodeTooSmall         = "too_small"
	CodeTooBig           = "too_big"
	CodeInvalidString    = "invalid_string"
	CodeInvalidType      = "invalid_type"
	CodeInvalidEnumValue = "invalid_enum_value"
	CodeCustom           = "custom"
)

// Issue is a single field-level validation failure. Validators return issue
// lists as values and never panic on malformed input.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

var (
	// Latin and Cyrillic letters only, including ё/Ё which sits outside
	// the а-я range.
	nameRe = regexp.MustCompile(`^[a-zA-Zа-яА-ЯёЁ]+$`)

	upperRe  = regexp.MustCompile(`[A-Z]`)
	lowerRe  = regexp.MustCompile(`[a-z]`)
	digitRe  = regexp.MustCompile(`[0-9]`)
	symbolRe = regexp.MustCompile(`[^A-Za-z0-9]`)
)

// ValidateRegistration checks the raw registration payload and, on success,
// returns the normalized input: NFC-composed names, lower-cased email and a
// date of birth pinned to noon UTC so the calendar day survives any
// timezone conversion.
func ValidateRegistration(req user.RegisterRequest) (domain.Registration, []Issue) {
	var issues []Issue

	firstName := norm.NFC.String(req.FirstName)
	lastName := norm.NFC.String(req.LastName)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	issues = append(issues, validateName("firstName", "First name", firstName)...)

	var middleName *string
	if req.MiddleName != nil {
		mn := norm.NFC.String(*req.MiddleName)
		middleName = &mn
		issues = append(issues, validateName("middleName", "Middle name", mn)...)
	}

	issues = append(issues, validateName("lastName", "Last name", lastName)...)

	dob, ok := parseDateOfBirth(req.DateOfBirth)
	if !ok {
		issues = append(issues, Issue{
			Path:    "dateOfBirth",
			Message: "Invalid dateOfBirth; use DD.MM.YYYY",
			Code:    CodeCustom,
		})
	}

	if _, err := mail.ParseAddress(email); err != nil {
		issues = append(issues, Issue{
			Path:    "email",
			Message: "Invalid email",
			Code:    CodeInvalidString,
		})
	}

	issues = append(issues, validatePassword(req.Password)...)

	if len(issues) > 0 {
		return domain.Registration{}, issues
	}

	return domain.Registration{
		FirstName:   firstName,
		MiddleName:  middleName,
		LastName:    lastName,
		DateOfBirth: dob,
		Email:       email,
		Password:    req.Password,
	}, nil
}

// ValidateUserID accepts a UUID string, tolerating surrounding whitespace.
func ValidateUserID(s string) (uuid.UUID, []Issue) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, []Issue{{
			Path:    "id",
			Message: "Invalid UUID format",
			Code:    CodeInvalidString,
		}}
	}

	return id, nil
}

// ValidateRole lower-cases the input before matching the role enum.
func ValidateRole(s string) (domain.Role, []Issue) {
	role := domain.Role(strings.ToLower(s))
	if !role.Valid() {
		return "", []Issue{{
			Path:    "role",
			Message: fmt.Sprintf("Invalid enum value. Expected 'admin' | 'user', received '%s'", s),
			Code:    CodeInvalidEnumValue,
		}}
	}

	return role, nil
}

func validateName(path, label, name string) []Issue {
	var issues []Issue

	if utf8.RuneCountInString(name) < minNameLen {
		issues = append(issues, Issue{
			Path:    path,
			Message: fmt.Sprintf("%s must be at least %d characters", label, minNameLen),
			Code:    CodeTooSmall,
		})
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		issues = append(issues, Issue{
			Path:    path,
			Message: fmt.Sprintf("%s must be %d characters long max", label, maxNameLen),
			Code:    CodeTooBig,
		})
	}
	if !nameRe.MatchString(name) {
		issues = append(issues, Issue{
			Path:    path,
			Message: label + " must contain only letters",
			Code:    CodeInvalidString,
		})
	}

	return issues
}

// parseDateOfBirth demands the literal DD.MM.YYYY pattern; time.Parse with
// a fixed-width layout rejects both malformed text and calendar-invalid
// dates such as 31.02.2020.
func parseDateOfBirth(s string) (time.Time, bool) {
	d, err := time.Parse(dateOfBirthLayout, s)
	if err != nil {
		return time.Time{}, false
	}

	return time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, time.UTC), true
}

// validatePassword reports every violated rule, not just the first.
func validatePassword(password string) []Issue {
	var issues []Issue

	if utf8.RuneCountInString(password) < minPasswordLen {
		issues = append(issues, Issue{
			Path:    "password",
			Message: fmt.Sprintf("Password must be at least %d characters long", minPasswordLen),
			Code:    CodeTooSmall,
		})
	}
	if utf8.RuneCountInString(password) > maxPasswordLen {
		issues = append(issues, Issue{
			Path:    "password",
			Message: fmt.Sprintf("Password must be less than %d characters", maxPasswordLen),
			Code:    CodeTooBig,
		})
	}
	if !upperRe.MatchString(password) {
		issues = append(issues, Issue{
			Path:    "password",
			Message: "Password must contain at least one uppercase letter",
			Code:    CodeInvalidString,
		})
	}
	if !lowerRe.MatchString(password) {
		issues = append(issues, Issue{
			Path:    "password",
			Message: "Password must contain at least one lowercase letter",
			Code:    CodeInvalidString,
		})
	}
	if !digitRe.MatchString(password) {
		issues = append(issues, Issue{
			Path:    "password",
			Message: "Password must contain at least one number",
			Code:    CodeInvalidString,
		})
	}
	if !symbolRe.MatchString(password) {
		issues = append(issues, Issue{
			Path:    "password",
			Message: "Password must contain at least one special character",
			Code:    CodeInvalidString,
		})
	}

	return issues
}
