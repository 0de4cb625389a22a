package validator

import (
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/timezone"
	"reflect"
	"strconv"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

func registerBookingDateValidation(field val.FieldLevel) bool {
	str, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := timezone.Parse(constant.BookingDateLayout, strings.TrimSpace(str))

	return err == nil
}

// registerPositiveIntValidation accepts identifiers that fit the INTEGER columns they key.
func registerPositiveIntValidation(field val.FieldLevel) bool {
	str, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	value, err := strconv.ParseInt(strings.TrimSpace(str), 10, 32)

	return err == nil && value > 0
}

func registerLabelName(field reflect.StructField) string {
	if label := field.Tag.Get("label"); label != "" {
		return label
	}

	return field.Name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(registerLabelName)

	err := validate.RegisterValidation("posint", registerPositiveIntValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("bookingdate", registerBookingDateValidation)
	if err != nil {
		panic(err)
	}
}

// ValidateStruct checks the struct against its validate tags and returns an
// input-format failure describing the first broken rule.
// https://github.com/go-playground/validator
func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.InputFormat(msg) //nolint:wrapcheck
	}

	return nil
}
