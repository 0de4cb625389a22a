package dto

import "hotel/shared"

type ViewHotelsRequest struct {
	Latitude  string `label:"latitude"  validate:"required,numeric"`
	Longitude string `label:"longitude" validate:"required,numeric"`
}

func (r *ViewHotelsRequest) Coordinates() (float64, float64) {
	return shared.ConvertStringToFloat(r.Latitude), shared.ConvertStringToFloat(r.Longitude)
}
