package repo

import (
	"context"
	"log/slog"

	"github.com/rideshare/rides-api/internal/domain"
)

// RideCache stores rides by id. Rides are never updated after insert, so a
// cached entry cannot go stale; entries only expire to bound memory.
type RideCache interface {
	// Get returns the cached ride and true, or false on a miss.
	Get(ctx context.Context, id int64) (domain.Ride, bool, error)
	Set(ctx context.Context, ride domain.Ride) error
}

// cachedRideRepo is a read-through cache in front of another RideRepo.
// Only FindByID hits are served from the cache. Cache faults are logged and
// the call falls through to the wrapped repo, so the cache can never turn a
// successful read into a failure.
type cachedRideRepo struct {
	next  RideRepo
	cache RideCache
	log   *slog.Logger
}

// NewCachedRideRepo wraps next with a read-through cache for FindByID.
func NewCachedRideRepo(next RideRepo, cache RideCache, log *slog.Logger) RideRepo {
	if log == nil {
		log = slog.Default()
	}
	return &cachedRideRepo{next: next, cache: cache, log: log}
}

func (r *cachedRideRepo) Insert(ctx context.Context, ride domain.RideCreate) (int64, error) {
	return r.next.Insert(ctx, ride)
}

func (r *cachedRideRepo) FindByID(ctx context.Context, id int64) ([]domain.Ride, error) {
	ride, ok, err := r.cache.Get(ctx, id)
	switch {
	case err != nil:
		r.log.WarnContext(ctx, "ride cache get failed", "ride_id", id, "error", err)
	case ok:
		return []domain.Ride{ride}, nil
	}

	rides, err := r.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, found := range rides {
		if err := r.cache.Set(ctx, found); err != nil {
			r.log.WarnContext(ctx, "ride cache set failed", "ride_id", found.RideID, "error", err)
		}
	}
	return rides, nil
}

func (r *cachedRideRepo) List(ctx context.Context, p domain.ListParams) ([]domain.Ride, error) {
	return r.next.List(ctx, p)
}
