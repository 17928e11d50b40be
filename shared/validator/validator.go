package validator

import (
	"encoding/json"
	"fmt"
	"hotel/shared/failure"
	"hotel/shared/numeric"
	"hotel/shared/timezone"
	"io"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate *val.Validate

// registerDecimalValidation checks a decimal.Decimal against a "precision.scale" param.
func registerDecimalValidation(field val.FieldLevel) bool {
	var value decimal.Decimal

	switch v := field.Field().Interface().(type) {
	case decimal.Decimal:
		value = v
	case string:
		parsed, err := decimal.NewFromString(v)
		if err != nil {
			return false
		}

		value = parsed
	default:
		return false
	}

	precision, scale, err := numeric.ParseSpec(field.Param())
	if err != nil {
		return false
	}

	return numeric.Fits(value, precision, scale)
}

func registerDateValidation(field val.FieldLevel) bool {
	str, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := timezone.ParseDate(str)

	return err == nil
}

func jsonTagName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}

	if name == "" {
		return field.Name
	}

	return name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonTagName)

	// decimal.Decimal is a struct; validate it as a value rather than diving into it.
	validate.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}

		return nil
	}, decimal.Decimal{})

	if err := validate.RegisterValidation("decimal", registerDecimalValidation); err != nil {
		panic(err)
	}

	if err := validate.RegisterValidation("date", registerDateValidation); err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	err := decoder.Decode(data)
	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		return toFailure(err)
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		return toFailure(err)
	}

	return nil
}
