package model

const (
	TableName  = "roombookings"
	EntityName = "booking"

	FieldID          = "bookingid"
	FieldCustomerID  = "customerid"
	FieldHotelID     = "hotelid"
	FieldRoomNumber  = "roomnumber"
	FieldBookingDate = "bookingdate"

	ColumnNumBook = "num_book"
)

// Booking is one room reserved by a customer for one date. BookingDate is YYYY-MM-DD.
type Booking struct {
	ID          int    `db:"bookingid"   goqu:"skipinsert"`
	CustomerID  int    `db:"customerid"`
	HotelID     int    `db:"hotelid"`
	RoomNumber  int    `db:"roomnumber"`
	BookingDate string `db:"bookingdate"`
}
