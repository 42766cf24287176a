package service_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rideshare/rides-api/internal/domain"
	"github.com/rideshare/rides-api/internal/service"
)

func validRide() domain.RideCreate {
	return domain.RideCreate{
		StartLatitude:  50,
		StartLongitude: 0,
		EndLatitude:    51,
		EndLongitude:   1,
		RiderName:      "Alice",
		DriverName:     "Bob",
		DriverVehicle:  "Car",
	}
}

func TestValidateRide_valid(t *testing.T) {
	require.NoError(t, service.ValidateRide(validRide()))
}

func TestValidateRide_boundsAreInclusive(t *testing.T) {
	r := validRide()
	r.StartLatitude, r.StartLongitude = -90, 180
	r.EndLatitude, r.EndLongitude = 90, -180

	require.NoError(t, service.ValidateRide(r))
}

func TestValidateRide_violations(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.RideCreate)
		want   string
	}{
		{"start lat too high", func(r *domain.RideCreate) { r.StartLatitude = 90.0001 }, service.MsgStartBounds},
		{"start long too low", func(r *domain.RideCreate) { r.StartLongitude = -181 }, service.MsgStartBounds},
		{"start lat NaN", func(r *domain.RideCreate) { r.StartLatitude = math.NaN() }, service.MsgStartBounds},
		{"end lat too low", func(r *domain.RideCreate) { r.EndLatitude = -91 }, service.MsgEndBounds},
		{"end long NaN", func(r *domain.RideCreate) { r.EndLongitude = math.NaN() }, service.MsgEndBounds},
		{"end long infinite", func(r *domain.RideCreate) { r.EndLongitude = math.Inf(1) }, service.MsgEndBounds},
		{"empty rider", func(r *domain.RideCreate) { r.RiderName = "" }, service.MsgRiderName},
		{"empty driver", func(r *domain.RideCreate) { r.DriverName = "" }, service.MsgDriverName},
		{"empty vehicle", func(r *domain.RideCreate) { r.DriverVehicle = "" }, service.MsgDriverVehicle},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := validRide()
			tc.mutate(&r)

			err := service.ValidateRide(r)

			require.ErrorIs(t, err, domain.ErrValidation)
			assert.Equal(t, tc.want, domain.MessageOf(err))
		})
	}
}

// TestValidateRide_firstViolationWins verifies that checks run in a fixed
// order and only the first failure is reported.
func TestValidateRide_firstViolationWins(t *testing.T) {
	r := domain.RideCreate{
		StartLatitude:  100,
		StartLongitude: 0,
		EndLatitude:    100,
		EndLongitude:   0,
	}
	assert.Equal(t, service.MsgStartBounds, domain.MessageOf(service.ValidateRide(r)))

	r.StartLatitude = 0
	assert.Equal(t, service.MsgEndBounds, domain.MessageOf(service.ValidateRide(r)))

	r.EndLatitude = 0
	assert.Equal(t, service.MsgRiderName, domain.MessageOf(service.ValidateRide(r)))

	r.RiderName = "Alice"
	assert.Equal(t, service.MsgDriverName, domain.MessageOf(service.ValidateRide(r)))

	r.DriverName = "Bob"
	assert.Equal(t, service.MsgDriverVehicle, domain.MessageOf(service.ValidateRide(r)))
}
