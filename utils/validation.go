package utils

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is the singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return NewValidationError(validationErrors)
		}
		return err
	}
	return nil
}

// ValidationError wraps validation errors with per-field details
type ValidationError struct {
	Message string
	Fields  map[string]string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.Message
}

// Add records a field-level validation failure. Existing messages for the
// same field are kept (first error wins, matching validator behavior).
func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = message
	}
}

// Empty reports whether no field errors were recorded
func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

// NewFieldErrors creates an empty ValidationError for collecting field errors
func NewFieldErrors() *ValidationError {
	return &ValidationError{
		Message: "Validation failed",
		Fields:  make(map[string]string),
	}
}

// NewValidationError creates a ValidationError from validator.ValidationErrors
func NewValidationError(errs validator.ValidationErrors) *ValidationError {
	verr := NewFieldErrors()
	for _, err := range errs {
		field := err.Field()
		tag := err.Tag()

		switch tag {
		case "required":
			verr.Add(field, fmt.Sprintf("%s is required", field))
		case "email":
			verr.Add(field, fmt.Sprintf("%s must be a valid email", field))
		case "min":
			verr.Add(field, fmt.Sprintf("%s must be at least %s", field, err.Param()))
		case "max":
			verr.Add(field, fmt.Sprintf("%s must be at most %s", field, err.Param()))
		case "gte":
			verr.Add(field, fmt.Sprintf("%s must be greater than or equal to %s", field, err.Param()))
		case "lte":
			verr.Add(field, fmt.Sprintf("%s must be less than or equal to %s", field, err.Param()))
		default:
			verr.Add(field, fmt.Sprintf("%s validation failed on '%s' tag", field, tag))
		}
	}
	return verr
}

// IsValidationError checks if an error is a ValidationError
func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// GetValidationFields extracts field errors from a ValidationError
func GetValidationFields(err error) map[string]string {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Fields
	}
	return nil
}
