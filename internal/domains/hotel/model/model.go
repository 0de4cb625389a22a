package model

const (
	TableName  = "hotel"
	EntityName = "hotel"

	FieldID              = "hotelid"
	FieldName            = "hotelname"
	FieldLatitude        = "latitude"
	FieldLongitude       = "longitude"
	FieldDateEstablished = "dateestablished"
	FieldManagerID       = "manageruserid"

	// ColumnDistance is computed after the query, it is not stored.
	ColumnDistance = "distance"
)
