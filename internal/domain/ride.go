// Package domain contains the core data types for the Rides API.
// It is imported by every other internal package (repo, service, handler)
// and does no I/O of its own.
package domain

import (
	"encoding/json"
	"math"
	"time"

	"github.com/spf13/cast"
)

// RideCreate is a ride booking that has not been persisted yet.
// It lives for the duration of a single create request and is never mutated
// after NewRideCreate returns.
type RideCreate struct {
	StartLatitude  float64
	StartLongitude float64
	EndLatitude    float64
	EndLongitude   float64
	RiderName      string
	DriverName     string
	DriverVehicle  string
}

// Ride is a stored ride booking. RideID and Created are assigned by the
// database on insert; a Ride is only ever reconstructed from a storage row.
type Ride struct {
	RideID         int64     `json:"ride_id"`
	StartLatitude  float64   `json:"start_lat"`
	StartLongitude float64   `json:"start_long"`
	EndLatitude    float64   `json:"end_lat"`
	EndLongitude   float64   `json:"end_long"`
	RiderName      string    `json:"rider_name"`
	DriverName     string    `json:"driver_name"`
	DriverVehicle  string    `json:"driver_vehicle"`
	Created        time.Time `json:"created"`
}

// RideInput carries the raw, untyped fields of a create request as they were
// decoded from JSON. Any field may hold a number, a string, a bool or nil.
type RideInput struct {
	StartLat      any
	StartLong     any
	EndLat        any
	EndLong       any
	RiderName     any
	DriverName    any
	DriverVehicle any
}

// NewRideCreate builds a RideCreate from raw input.
//
// Coordinates accept JSON numbers or numeric text. Anything else becomes NaN,
// which fails the coordinate bounds check. Text fields accept strings only;
// a value of any other type leaves the field empty so that it fails the
// non-empty check instead of being coerced.
func NewRideCreate(in RideInput) RideCreate {
	return RideCreate{
		StartLatitude:  toCoordinate(in.StartLat),
		StartLongitude: toCoordinate(in.StartLong),
		EndLatitude:    toCoordinate(in.EndLat),
		EndLongitude:   toCoordinate(in.EndLong),
		RiderName:      toText(in.RiderName),
		DriverName:     toText(in.DriverName),
		DriverVehicle:  toText(in.DriverVehicle),
	}
}

// Export returns the ride as named query parameters keyed by column name.
// The repository binds these as arguments; they never become part of SQL text.
func (r RideCreate) Export() map[string]any {
	return map[string]any{
		"start_lat":      r.StartLatitude,
		"start_long":     r.StartLongitude,
		"end_lat":        r.EndLatitude,
		"end_long":       r.EndLongitude,
		"rider_name":     r.RiderName,
		"driver_name":    r.DriverName,
		"driver_vehicle": r.DriverVehicle,
	}
}

func toCoordinate(v any) float64 {
	switch n := v.(type) {
	case nil, bool:
		return math.NaN()
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return math.NaN()
		}
		return f
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return math.NaN()
	}
	return f
}

func toText(v any) string {
	s, _ := v.(string)
	return s
}
