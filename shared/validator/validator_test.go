package validator_test

import (
	"hotel/shared/failure"
	"hotel/shared/validator"
	"testing"

	"github.com/stretchr/testify/assert"
)

type bookingInput struct {
	HotelID     string `validate:"required,posint"      label:"hotel ID"`
	RoomNumber  string `validate:"required,posint"      label:"room number"`
	BookingDate string `validate:"required,bookingdate" label:"booking date"`
}

type locationInput struct {
	Latitude  string `validate:"required,numeric" label:"latitude"`
	Longitude string `validate:"required,numeric" label:"longitude"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *bookingInput
		expectError bool
		message     string
	}{
		{
			name:        "valid booking",
			data:        &bookingInput{HotelID: "1", RoomNumber: "101", BookingDate: "05/01/2024"},
			expectError: false,
		},
		{
			name:        "missing hotel",
			data:        &bookingInput{RoomNumber: "101", BookingDate: "05/01/2024"},
			expectError: true,
			message:     "hotel ID is required",
		},
		{
			name:        "room number is not a number",
			data:        &bookingInput{HotelID: "1", RoomNumber: "abc", BookingDate: "05/01/2024"},
			expectError: true,
			message:     "room number must be a positive whole number",
		},
		{
			name:        "hotel ID overflows the integer column",
			data:        &bookingInput{HotelID: "99999999999999999999", RoomNumber: "101", BookingDate: "05/01/2024"},
			expectError: true,
			message:     "hotel ID must be a positive whole number",
		},
		{
			name:        "hotel ID one past the integer range",
			data:        &bookingInput{HotelID: "2147483648", RoomNumber: "101", BookingDate: "05/01/2024"},
			expectError: true,
			message:     "hotel ID must be a positive whole number",
		},
		{
			name:        "largest hotel ID",
			data:        &bookingInput{HotelID: "2147483647", RoomNumber: "101", BookingDate: "05/01/2024"},
			expectError: false,
		},
		{
			name:        "room number zero",
			data:        &bookingInput{HotelID: "1", RoomNumber: "0", BookingDate: "05/01/2024"},
			expectError: true,
			message:     "room number must be a positive whole number",
		},
		{
			name:        "negative hotel ID",
			data:        &bookingInput{HotelID: "-4", RoomNumber: "101", BookingDate: "05/01/2024"},
			expectError: true,
			message:     "hotel ID must be a positive whole number",
		},
		{
			name:        "iso date rejected",
			data:        &bookingInput{HotelID: "1", RoomNumber: "101", BookingDate: "2024-05-01"},
			expectError: true,
			message:     "booking date must be a date in Month/Day/Year format",
		},
		{
			name:        "month out of range",
			data:        &bookingInput{HotelID: "1", RoomNumber: "101", BookingDate: "13/01/2024"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if !tt.expectError {
				assert.NoError(t, err)

				return
			}

			assert.Error(t, err)
			assert.Equal(t, failure.CodeInputFormat, failure.GetCode(err))

			if tt.message != "" {
				assert.Equal(t, tt.message, err.Error())
			}
		})
	}
}

func TestValidateStruct_Coordinates(t *testing.T) {
	assert.NoError(t, validator.ValidateStruct(&locationInput{Latitude: "-12.5", Longitude: "40"}))

	err := validator.ValidateStruct(&locationInput{Latitude: "north", Longitude: "40"})
	assert.Error(t, err)
	assert.Equal(t, "latitude must be a number", err.Error())
}
