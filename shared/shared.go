package shared

import (
	"hotel/shared/constant"
	"hotel/shared/timezone"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// ConvertStringToInt parses a validated integer field, 0 when it does not parse.
func ConvertStringToInt(value string) int {
	intValue, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to int")

		return 0
	}

	return intValue
}

// ConvertStringToFloat parses a validated numeric field, 0 when it does not parse.
func ConvertStringToFloat(value string) float64 {
	floatValue, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to float")

		return 0
	}

	return floatValue
}

// ConvertStringToDate parses a Month/Day/Year field in the application timezone.
func ConvertStringToDate(value string) time.Time {
	date, err := timezone.Parse(constant.BookingDateLayout, strings.TrimSpace(value))
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to date")

		return time.Time{}
	}

	return date
}

// FormatSQLDate renders a date the way the database parses it regardless of DateStyle.
func FormatSQLDate(date time.Time) string {
	return date.Format(constant.SQLDateLayout)
}

// TransformFields converts the non-zero db tagged fields of a struct into a column map.
func TransformFields(data any) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	return updatedFields
}
