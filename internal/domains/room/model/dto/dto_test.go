package dto_test

import (
	"testing"
	"time"

	"hotel/internal/domains/room/model/dto"
	"hotel/shared/validator"

	"github.com/stretchr/testify/assert"
)

func TestUpdateRoomRequest_ToFields(t *testing.T) {
	tests := []struct {
		name     string
		req      dto.UpdateRoomRequest
		expected map[string]any
	}{
		{
			name:     "price and image",
			req:      dto.UpdateRoomRequest{HotelID: "1", RoomNumber: "101", Price: "120.5", ImageURL: "https://img.example.com/101.png"},
			expected: map[string]any{"price": 120.5, "imageurl": "https://img.example.com/101.png"},
		},
		{
			name:     "empty image keeps current",
			req:      dto.UpdateRoomRequest{HotelID: "1", RoomNumber: "101", Price: "80"},
			expected: map[string]any{"price": 80.0},
		},
		{
			name:     "zero price",
			req:      dto.UpdateRoomRequest{HotelID: "1", RoomNumber: "101", Price: "0"},
			expected: map[string]any{"price": 0.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, validator.ValidateStruct(&tt.req))
			assert.Equal(t, tt.expected, tt.req.ToFields())
		})
	}
}

func TestUpdateRoomRequest_ToUpdateLog(t *testing.T) {
	req := dto.UpdateRoomRequest{HotelID: "1", RoomNumber: "101", Price: "80"}

	log := req.ToUpdateLog(5)

	assert.Equal(t, 5, log.ManagerID)
	assert.Equal(t, 1, log.HotelID)
	assert.Equal(t, 101, log.RoomNumber)
	assert.False(t, log.UpdatedOn.IsZero(), "expected UpdatedOn to be set")
}

func TestViewRoomsRequest(t *testing.T) {
	req := dto.ViewRoomsRequest{HotelID: "3", Date: "05/01/2024"}

	assert.NoError(t, validator.ValidateStruct(&req))
	assert.Equal(t, 3, req.ToHotelID())
	assert.Equal(t, time.May, req.ToDate().Month())

	bad := dto.ViewRoomsRequest{HotelID: "3", Date: "2024/05/01"}
	assert.Error(t, validator.ValidateStruct(&bad))
}
