package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/seat-booking/api"
)

const (
	ErrRequired     = "is required"
	ErrMinValue     = "must be at least %s"
	ErrMaxValue     = "must be at most %s"
	ErrMinItems     = "must contain at least %s items"
	ErrMaxItems     = "must contain at most %s items"
	ErrMinLength    = "must be at least %s characters long"
	ErrMaxLength    = "must be at most %s characters long"
	ErrSeatType     = "must be one of STANDARD, VIP, ACCESSIBLE, RECLINER"
	ErrInvalidValue = "is invalid"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("seat_type", validateSeatType)

	// Report fields by the names clients send them with.
	validator.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	return validator
}

func validateSeatType(fl validator.FieldLevel) bool {
	seatType, ok := fl.Field().Interface().(api.SeatType)
	if !ok {
		return false
	}

	switch seatType {
	case api.STANDARD, api.VIP, api.ACCESSIBLE, api.RECLINER:
		return true
	default:
		return false
	}
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "min":
		return boundMessage(err, ErrMinValue, ErrMinItems, ErrMinLength)
	case "max":
		return boundMessage(err, ErrMaxValue, ErrMaxItems, ErrMaxLength)
	case "seat_type":
		return ErrSeatType
	default:
		return ErrInvalidValue
	}
}

// min and max mean different things depending on the kind of the field.
func boundMessage(err validator.FieldError, number, items, length string) string {
	switch err.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return fmt.Sprintf(items, err.Param())
	case reflect.String:
		return fmt.Sprintf(length, err.Param())
	default:
		return fmt.Sprintf(number, err.Param())
	}
}
