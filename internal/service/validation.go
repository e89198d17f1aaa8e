package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"schoolhub/internal/errdefs"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return v
}

func validateInput(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("%w: %w", errdefs.ErrValidation, err)
	}
	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, describeFieldError(fe))
	}
	return errdefs.Newf(errdefs.ErrValidation, "%s", strings.Join(messages, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "gtefield":
		return fmt.Sprintf("%s must not be before %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}

func validationError(format string, args ...any) error {
	return errdefs.Newf(errdefs.ErrValidation, format, args...)
}

func notInFuture(field string, t time.Time, now time.Time) error {
	if t.After(now) {
		return validationError("%s can't be in the future", field)
	}
	return nil
}

func inFuture(field string, t *time.Time, now time.Time) error {
	if t != nil && !t.After(now) {
		return validationError("%s must be in the future", field)
	}
	return nil
}

func validateDateRange(start, end time.Time) error {
	if start.After(end) {
		return validationError("startDate must not be after endDate")
	}
	return nil
}
