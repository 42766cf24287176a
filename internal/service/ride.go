// Package service contains the business logic for the Rides API.
// Services validate inputs, orchestrate repo calls, and classify every
// failure into one of the domain error kinds. No SQL lives here.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rideshare/rides-api/internal/domain"
	"github.com/rideshare/rides-api/internal/repo"
)

// RideNotifier is told about every ride that was created successfully.
type RideNotifier interface {
	RideCreated(ctx context.Context, ride domain.Ride) error
}

// RideService implements the create, get and list flows for rides.
// No flow retries; every failure is reported once.
type RideService struct {
	repo     repo.RideRepo
	notifier RideNotifier
}

// NewRideService constructs a RideService backed by the provided RideRepo.
// notifier may be nil.
func NewRideService(r repo.RideRepo, notifier RideNotifier) *RideService {
	return &RideService{repo: r, notifier: notifier}
}

// Create validates and persists a ride, then reads it back to return the
// stored record with its database-assigned id and timestamp.
//
// Insert and read-back are not one transaction: if the read-back fails the
// ride is already stored and the caller still gets a domain.ErrServer error.
func (s *RideService) Create(ctx context.Context, ride domain.RideCreate) ([]domain.Ride, error) {
	if err := ValidateRide(ride); err != nil {
		return nil, fmt.Errorf("service.RideService.Create: %w", err)
	}

	id, err := s.repo.Insert(ctx, ride)
	if err != nil {
		return nil, fmt.Errorf("service.RideService.Create: %w", domain.ServerError(err))
	}

	rides, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service.RideService.Create: read back ride %d: %w", id, domain.ServerError(err))
	}

	if s.notifier != nil {
		for _, created := range rides {
			if err := s.notifier.RideCreated(ctx, created); err != nil {
				slog.WarnContext(ctx, "ride created event not published", "ride_id", created.RideID, "error", err)
			}
		}
	}
	return rides, nil
}

// GetByID returns the ride with the given id as a one-element slice.
// Returns a domain.ErrNotFound error if no ride has that id.
func (s *RideService) GetByID(ctx context.Context, id int64) ([]domain.Ride, error) {
	rides, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service.RideService.GetByID: %w", domain.ServerError(err))
	}
	if len(rides) == 0 {
		return nil, fmt.Errorf("service.RideService.GetByID: %w", domain.NotFoundError())
	}
	return rides, nil
}

// List returns one page of rides, or all rides when p is zero.
// An offset without a limit yields a domain.ErrQuery error; an empty result
// yields a domain.ErrNotFound error.
func (s *RideService) List(ctx context.Context, p domain.ListParams) ([]domain.Ride, error) {
	rides, err := s.repo.List(ctx, p)
	if err != nil {
		if errors.Is(err, domain.ErrQuery) {
			return nil, fmt.Errorf("service.RideService.List: %w", err)
		}
		return nil, fmt.Errorf("service.RideService.List: %w", domain.ServerError(err))
	}
	if len(rides) == 0 {
		return nil, fmt.Errorf("service.RideService.List: %w", domain.NotFoundError())
	}
	return rides, nil
}
