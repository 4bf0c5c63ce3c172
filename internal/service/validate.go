package service

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dtroode/watchlist-server/internal/model"
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})
	return v
}

// validationError turns validator output into a single ErrInvalidInput with
// one human readable reason per field.
func validationError(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}

	reasons := make([]string, 0, len(errs))
	for _, fe := range errs {
		reasons = append(reasons, fieldReason(fe))
	}
	return fmt.Errorf("%w: %s", model.ErrInvalidInput, strings.Join(reasons, "; "))
}

func fieldReason(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "email":
		return field + " must be a valid email address"
	case "username":
		return field + " may contain only letters, digits, '_', '-' and '.'"
	default:
		return field + " is invalid"
	}
}
