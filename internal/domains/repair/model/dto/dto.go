package dto

import (
	"hotel/internal/domains/repair/model"
	"hotel/shared"
	"time"
)

type RepairRequest struct {
	HotelID    string `label:"hotel ID"    validate:"required,posint"`
	RoomNumber string `label:"room number" validate:"required,posint"`
	CompanyID  string `label:"company ID"  validate:"required,posint"`
}

func (r *RepairRequest) ToHotelID() int {
	return shared.ConvertStringToInt(r.HotelID)
}

func (r *RepairRequest) ToRoomNumber() int {
	return shared.ConvertStringToInt(r.RoomNumber)
}

func (r *RepairRequest) ToCompanyID() int {
	return shared.ConvertStringToInt(r.CompanyID)
}

func (r *RepairRequest) ToRepair(now time.Time) model.Repair {
	return model.Repair{
		CompanyID:  r.ToCompanyID(),
		HotelID:    r.ToHotelID(),
		RoomNumber: r.ToRoomNumber(),
		RepairDate: shared.FormatSQLDate(now),
	}
}

func (r *RepairRequest) ToRequest(managerID int, now time.Time) model.Request {
	return model.Request{
		ManagerID:   managerID,
		CompanyID:   r.ToCompanyID(),
		HotelID:     r.ToHotelID(),
		RoomNumber:  r.ToRoomNumber(),
		RequestedOn: now,
	}
}

type RepairHistoryRequest struct {
	HotelID string `label:"hotel ID" validate:"required,posint"`
}

func (r *RepairHistoryRequest) ToHotelID() int {
	return shared.ConvertStringToInt(r.HotelID)
}
