package handler

import (
	"context"
	"errors"

	"github.com/rideshare/rides-api/internal/domain"
	"github.com/rideshare/rides-api/internal/handler/gen"
)

// CreateRide handles POST /rides.
// On success the body is a one-element array holding the stored ride.
func (s *Server) CreateRide(ctx context.Context, req gen.CreateRideRequestObject) (gen.CreateRideResponseObject, error) {
	rides, err := s.rides.Create(ctx, requestToRideCreate(req.Body))
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.CreateRide422JSONResponse(validationBody(err)), nil
		}
		return gen.CreateRide500JSONResponse(s.serverBody(ctx, "CreateRide", err)), nil
	}

	return gen.CreateRide201JSONResponse(ridesToResponse(rides)), nil
}

// ListRides handles GET /rides.
// Supports optional ?limit= and ?offset=; offset requires limit.
func (s *Server) ListRides(ctx context.Context, req gen.ListRidesRequestObject) (gen.ListRidesResponseObject, error) {
	params := domain.NewListParams(req.Params.Limit, req.Params.Offset)
	rides, err := s.rides.List(ctx, params)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrQuery):
			return gen.ListRides400JSONResponse(queryBody(err)), nil
		case errors.Is(err, domain.ErrNotFound):
			return gen.ListRides404JSONResponse(notFoundBody()), nil
		}
		return gen.ListRides500JSONResponse(s.serverBody(ctx, "ListRides", err)), nil
	}

	return gen.ListRides200JSONResponse(ridesToResponse(rides)), nil
}

// GetRide handles GET /rides/{id}.
// The body is always an array, matching CreateRide.
func (s *Server) GetRide(ctx context.Context, req gen.GetRideRequestObject) (gen.GetRideResponseObject, error) {
	rides, err := s.rides.GetByID(ctx, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetRide404JSONResponse(notFoundBody()), nil
		}
		return gen.GetRide500JSONResponse(s.serverBody(ctx, "GetRide", err)), nil
	}

	return gen.GetRide200JSONResponse(ridesToResponse(rides)), nil
}

// --- mapping helpers --------------------------------------------------------

// requestToRideCreate converts the untyped request body into a domain.RideCreate.
// A nil body yields a RideCreate that fails validation on the first check.
func requestToRideCreate(body *gen.CreateRideRequest) domain.RideCreate {
	if body == nil {
		body = &gen.CreateRideRequest{}
	}
	return domain.NewRideCreate(domain.RideInput{
		StartLat:      deref(body.StartLat),
		StartLong:     deref(body.StartLong),
		EndLat:        deref(body.EndLat),
		EndLong:       deref(body.EndLong),
		RiderName:     deref(body.RiderName),
		DriverName:    deref(body.DriverName),
		DriverVehicle: deref(body.DriverVehicle),
	})
}

// ridesToResponse converts domain rides into the generated gen.Ride type.
// Always returns a non-nil slice so the JSON body is an array, never null.
func ridesToResponse(rides []domain.Ride) []gen.Ride {
	out := make([]gen.Ride, 0, len(rides))
	for _, r := range rides {
		out = append(out, gen.Ride{
			RideId:        r.RideID,
			StartLat:      r.StartLatitude,
			StartLong:     r.StartLongitude,
			EndLat:        r.EndLatitude,
			EndLong:       r.EndLongitude,
			RiderName:     r.RiderName,
			DriverName:    r.DriverName,
			DriverVehicle: r.DriverVehicle,
			Created:       r.Created,
		})
	}
	return out
}

// deref returns the value behind an optional untyped field, or nil.
func deref(v *interface{}) any {
	if v == nil {
		return nil
	}
	return *v
}
