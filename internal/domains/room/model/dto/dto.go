package dto

import (
	"hotel/internal/domains/room/model"
	"hotel/shared"
	"hotel/shared/timezone"
	"time"
)

type ViewRoomsRequest struct {
	HotelID string `label:"hotel ID" validate:"required,posint"`
	Date    string `label:"date"     validate:"required,bookingdate"`
}

func (r *ViewRoomsRequest) ToHotelID() int {
	return shared.ConvertStringToInt(r.HotelID)
}

func (r *ViewRoomsRequest) ToDate() time.Time {
	return shared.ConvertStringToDate(r.Date)
}

type UpdateRoomRequest struct {
	HotelID    string `label:"hotel ID"    validate:"required,posint"`
	RoomNumber string `label:"room number" validate:"required,posint"`
	Price      string `label:"price"       validate:"required,numeric"`
	ImageURL   string `label:"image URL"   validate:"omitempty,url,max=255"`
}

// UpdateRoomFields are the columns an update may touch; an empty image URL keeps the current one.
type UpdateRoomFields struct {
	Price    float64 `db:"price"`
	ImageURL string  `db:"imageurl"`
}

func (r *UpdateRoomRequest) ToHotelID() int {
	return shared.ConvertStringToInt(r.HotelID)
}

func (r *UpdateRoomRequest) ToRoomNumber() int {
	return shared.ConvertStringToInt(r.RoomNumber)
}

func (r *UpdateRoomRequest) ToFields() map[string]any {
	price := shared.ConvertStringToFloat(r.Price)

	fields := shared.TransformFields(UpdateRoomFields{
		Price:    price,
		ImageURL: r.ImageURL,
	})

	// a zero price is still a price
	fields[model.FieldPrice] = price

	return fields
}

func (r *UpdateRoomRequest) ToUpdateLog(managerID int) model.UpdateLog {
	return model.UpdateLog{
		ManagerID:  managerID,
		HotelID:    r.ToHotelID(),
		RoomNumber: r.ToRoomNumber(),
		UpdatedOn:  timezone.Now(),
	}
}
