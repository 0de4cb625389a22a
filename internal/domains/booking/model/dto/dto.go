package dto

import (
	"hotel/internal/domains/booking/model"
	"hotel/shared"
	"time"
)

type BookRoomRequest struct {
	HotelID     string `label:"hotel ID"     validate:"required,posint"`
	RoomNumber  string `label:"room number"  validate:"required,posint"`
	BookingDate string `label:"booking date" validate:"required,bookingdate"`
}

func (r *BookRoomRequest) ToHotelID() int {
	return shared.ConvertStringToInt(r.HotelID)
}

func (r *BookRoomRequest) ToRoomNumber() int {
	return shared.ConvertStringToInt(r.RoomNumber)
}

func (r *BookRoomRequest) ToDate() time.Time {
	return shared.ConvertStringToDate(r.BookingDate)
}

func (r *BookRoomRequest) ToModel(customerID int) model.Booking {
	return model.Booking{
		CustomerID:  customerID,
		HotelID:     r.ToHotelID(),
		RoomNumber:  r.ToRoomNumber(),
		BookingDate: shared.FormatSQLDate(r.ToDate()),
	}
}

// BookingHistoryRequest selects the bookings of a hotel between two dates, both inclusive.
type BookingHistoryRequest struct {
	HotelID string `label:"hotel ID"   validate:"required,posint"`
	From    string `label:"start date" validate:"required,bookingdate"`
	To      string `label:"end date"   validate:"required,bookingdate"`
}

func (r *BookingHistoryRequest) ToHotelID() int {
	return shared.ConvertStringToInt(r.HotelID)
}

func (r *BookingHistoryRequest) ToRange() (time.Time, time.Time) {
	return shared.ConvertStringToDate(r.From), shared.ConvertStringToDate(r.To)
}

type RegularCustomersRequest struct {
	HotelID string `label:"hotel ID" validate:"required,posint"`
}

func (r *RegularCustomersRequest) ToHotelID() int {
	return shared.ConvertStringToInt(r.HotelID)
}
