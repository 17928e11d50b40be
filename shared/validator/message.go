package validator

import (
	"errors"
	"hotel/shared/failure"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required": "{field} is required",
		"gte":      "{field} must be greater than or equal to {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be at most {param} characters",
		"min":      "{field} must be greater than or equal to {param}",
		"email":    "{field} must be a valid email address",
		"decimal":  "{field} must fit a decimal with precision.scale {param}",
		"date":     "{field} must be a date formatted as YYYY-MM-DD",
	}

	// tags whose violation maps onto a typed failure instead of a plain bad request
	typedFailures = map[string]func(string) error{
		"oneof":   failure.InvalidEnumValue,
		"decimal": failure.InvalidDecimalValue,
	}
)

func message(valErr val.FieldError) string {
	errStr := messages[valErr.Tag()]
	if errStr == "" {
		return valErr.Error()
	}

	errStr = strings.ReplaceAll(errStr, "{field}", valErr.Field())
	errStr = strings.ReplaceAll(errStr, "{param}", valErr.Param())

	return errStr
}

func toFailure(err error) error {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) || len(valErrors) == 0 {
		return failure.BadRequestFromString(err.Error()) //nolint:wrapcheck
	}

	first := valErrors[0]
	msg := message(first)

	if typed, ok := typedFailures[first.Tag()]; ok {
		return typed(msg)
	}

	return failure.BadRequestFromString(msg) //nolint:wrapcheck
}
