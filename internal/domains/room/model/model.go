package model

import "time"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldHotelID    = "hotelid"
	FieldRoomNumber = "roomnumber"
	FieldPrice      = "price"
	FieldImageURL   = "imageurl"

	// ColumnAvailability is derived from the bookings of the requested date.
	ColumnAvailability = "availability"
)

const (
	UpdateLogTableName  = "roomupdateslog"
	UpdateLogEntityName = "room update log"

	FieldUpdateNumber = "updatenumber"
	FieldManagerID    = "managerid"
	FieldUpdatedOn    = "updatedon"
)

// UpdateLog is appended once per room update.
type UpdateLog struct {
	UpdateNumber int       `db:"updatenumber" goqu:"skipinsert"`
	ManagerID    int       `db:"managerid"`
	HotelID      int       `db:"hotelid"`
	RoomNumber   int       `db:"roomnumber"`
	UpdatedOn    time.Time `db:"updatedon"`
}
