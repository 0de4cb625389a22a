package model

import "time"

const (
	TableName  = "roomrepairs"
	EntityName = "repair"

	FieldRepairID   = "repairid"
	FieldCompanyID  = "companyid"
	FieldHotelID    = "hotelid"
	FieldRoomNumber = "roomnumber"
	FieldRepairDate = "repairdate"
)

const (
	RequestTableName  = "roomrepairrequests"
	RequestEntityName = "repair request"

	FieldRequestNumber = "requestnumber"
	FieldManagerID     = "managerid"
	FieldRequestedOn   = "requestedon"
)

const (
	CompanyTableName  = "maintenancecompany"
	CompanyEntityName = "company"
)

// Repair is a repair scheduled for a room. RepairDate is YYYY-MM-DD.
type Repair struct {
	RepairID   int    `db:"repairid"   goqu:"skipinsert"`
	CompanyID  int    `db:"companyid"`
	HotelID    int    `db:"hotelid"`
	RoomNumber int    `db:"roomnumber"`
	RepairDate string `db:"repairdate"`
}

// Request records which manager asked for a repair.
type Request struct {
	RequestNumber int       `db:"requestnumber" goqu:"skipinsert"`
	ManagerID     int       `db:"managerid"`
	CompanyID     int       `db:"companyid"`
	HotelID       int       `db:"hotelid"`
	RoomNumber    int       `db:"roomnumber"`
	RequestedOn   time.Time `db:"requestedon"`
}
