package validator

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	ErrRequired  = "is required"
	ErrMinLength = "must have at least %s item(s) or characters"
	ErrMaxLength = "must have at most %s item(s) or characters"
	ErrURL       = "must be a valid URL"
	ErrSeatID    = "must be a seat identifier such as A1 or B12"

	seatIDRgx = regexp.MustCompile(`^[A-Z][1-9][0-9]{0,2}$`)
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("seat_id", validateSeatID)

	return validator
}

func validateSeatID(fl validator.FieldLevel) bool {
	return seatIDRgx.MatchString(fl.Field().String())
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "min":
		return fmt.Sprintf(ErrMinLength, err.Param())
	case "max":
		return fmt.Sprintf(ErrMaxLength, err.Param())
	case "url":
		return ErrURL
	case "seat_id":
		return ErrSeatID
	default:
		return "is invalid"
	}
}
