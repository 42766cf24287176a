package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rideshare/rides-api/internal/domain"
)

// RideRepo defines the persistence operations for Rides.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a fake.
//
// Every driver fault is returned wrapped with domain.ErrStorage.
type RideRepo interface {
	// Insert stores a new ride and returns its database-assigned id.
	// The created timestamp is assigned by the database as well.
	Insert(ctx context.Context, ride domain.RideCreate) (int64, error)

	// FindByID returns the ride with the given id as a slice of zero or one
	// element. A missing ride is not an error at this layer.
	FindByID(ctx context.Context, id int64) ([]domain.Ride, error)

	// List returns rides in insertion (ride_id) order, optionally paginated.
	// Returns a domain.ErrQuery error when an offset is given without a limit.
	List(ctx context.Context, p domain.ListParams) ([]domain.Ride, error)
}

const rideColumns = `ride_id, start_lat, start_long, end_lat, end_long,
		       rider_name, driver_name, driver_vehicle, created`

// pgRideRepo is the Postgres implementation of RideRepo.
type pgRideRepo struct {
	db db
}

// NewRideRepo constructs a RideRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewRideRepo(db db) RideRepo {
	return &pgRideRepo{db: db}
}

// Insert binds all seven fields as named arguments.
func (r *pgRideRepo) Insert(ctx context.Context, ride domain.RideCreate) (int64, error) {
	const q = `
		INSERT INTO rides (start_lat, start_long, end_lat, end_long, rider_name, driver_name, driver_vehicle)
		VALUES (@start_lat, @start_long, @end_lat, @end_long, @rider_name, @driver_name, @driver_vehicle)
		RETURNING ride_id`

	var id int64
	if err := r.db.QueryRow(ctx, q, pgx.NamedArgs(ride.Export())).Scan(&id); err != nil {
		return 0, fmt.Errorf("repo.RideRepo.Insert: %w: %w", domain.ErrStorage, err)
	}
	return id, nil
}

// FindByID retrieves a ride by primary key. The id is always a bound argument.
func (r *pgRideRepo) FindByID(ctx context.Context, id int64) ([]domain.Ride, error) {
	sql, args := newQuery(`SELECT ` + rideColumns + ` FROM rides`).
		bind("WHERE ride_id =", "ride_id", id).
		build()

	rides, err := r.queryRides(ctx, sql, args)
	if err != nil {
		return nil, fmt.Errorf("repo.RideRepo.FindByID: %w", err)
	}
	return rides, nil
}

// List builds its statement incrementally: LIMIT and OFFSET are appended only
// when set, each as a placeholder.
func (r *pgRideRepo) List(ctx context.Context, p domain.ListParams) ([]domain.Ride, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("repo.RideRepo.List: %w", err)
	}

	q := newQuery(`SELECT ` + rideColumns + ` FROM rides`).clause("ORDER BY ride_id")
	if p.Limit > 0 {
		q.bind("LIMIT", "limit", p.Limit)
	}
	if p.Offset > 0 {
		q.bind("OFFSET", "offset", p.Offset)
	}
	sql, args := q.build()

	rides, err := r.queryRides(ctx, sql, args)
	if err != nil {
		return nil, fmt.Errorf("repo.RideRepo.List: %w", err)
	}
	return rides, nil
}

// queryRides runs a select and maps every row, preserving database order.
// Always returns a non-nil slice on success.
func (r *pgRideRepo) queryRides(ctx context.Context, sql string, args pgx.NamedArgs) ([]domain.Ride, error) {
	rows, err := r.db.Query(ctx, sql, args)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStorage, err)
	}
	defer rows.Close()

	rides := []domain.Ride{}
	for rows.Next() {
		ride, err := scanRide(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan: %w", domain.ErrStorage, err)
		}
		rides = append(rides, ride)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows: %w", domain.ErrStorage, err)
	}
	return rides, nil
}

// scanRide maps a single database row into a domain.Ride.
func scanRide(s scanner) (domain.Ride, error) {
	var r domain.Ride
	err := s.Scan(
		&r.RideID,
		&r.StartLatitude, &r.StartLongitude,
		&r.EndLatitude, &r.EndLongitude,
		&r.RiderName, &r.DriverName, &r.DriverVehicle,
		&r.Created,
	)
	if err != nil {
		return domain.Ride{}, err
	}
	return r, nil
}
