package service

import (
	"github.com/rideshare/rides-api/internal/domain"
)

// Validation messages, one per check. The order of the checks in ValidateRide
// is part of the API: clients always see the first violation only.
const (
	MsgStartBounds   = "Start latitude and longitude must be between -90 - 90 and -180 to 180 degrees respectively"
	MsgEndBounds     = "End latitude and longitude must be between -90 - 90 and -180 to 180 degrees respectively"
	MsgRiderName     = "Rider name must be a non empty string"
	MsgDriverName    = "Driver name must be a non empty string"
	MsgDriverVehicle = "Driver vehicle must be a non empty string"
)

// ValidateRide checks a RideCreate against the domain constraints and returns
// the first violation as a domain.ErrValidation error, or nil if all pass:
//   - start latitude/longitude within [-90,90] / [-180,180]
//   - end latitude/longitude within the same bounds
//   - rider name, driver name, driver vehicle non-empty (in that order)
//
// It is pure and never touches storage.
func ValidateRide(r domain.RideCreate) error {
	if !validPosition(r.StartLatitude, r.StartLongitude) {
		return domain.ValidationError(MsgStartBounds)
	}
	if !validPosition(r.EndLatitude, r.EndLongitude) {
		return domain.ValidationError(MsgEndBounds)
	}
	if r.RiderName == "" {
		return domain.ValidationError(MsgRiderName)
	}
	if r.DriverName == "" {
		return domain.ValidationError(MsgDriverName)
	}
	if r.DriverVehicle == "" {
		return domain.ValidationError(MsgDriverVehicle)
	}
	return nil
}

// validPosition is written with positive comparisons so NaN fails it.
func validPosition(lat, long float64) bool {
	return lat >= -90 && lat <= 90 && long >= -180 && long <= 180
}
