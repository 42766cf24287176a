// Package handler implements the HTTP handlers for the Rides API.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split into domain-specific files (health.go, ride.go) but
// all share the same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rideshare/rides-api/internal/domain"
	"github.com/rideshare/rides-api/internal/handler/gen"
)

// RideServicer defines the business operations the ride handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type RideServicer interface {
	Create(ctx context.Context, ride domain.RideCreate) ([]domain.Ride, error)
	GetByID(ctx context.Context, id int64) ([]domain.Ride, error)
	List(ctx context.Context, p domain.ListParams) ([]domain.Ride, error)
}

// Server implements gen.StrictServerInterface for all API endpoints.
// Wire it in main.go via NewHTTPHandler.
type Server struct {
	rides RideServicer
	db    Pinger
	log   *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// db is used by the health check and may be nil.
// A nil logger falls back to slog.Default().
func NewServer(rides RideServicer, db Pinger, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{rides: rides, db: db, log: log}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler(db Pinger) *Server {
	return NewServer(nil, db, nil)
}

// NewHTTPHandler mounts the generated routes for srv onto r (or onto a new
// chi router when r is nil). Parameter, body and unexpected handler errors
// are rendered as JSON ErrorResponse bodies instead of the generated
// plain-text defaults.
func NewHTTPHandler(srv *Server, r chi.Router) http.Handler {
	strict := gen.NewStrictHandlerWithOptions(srv, nil, gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  srv.requestError,
		ResponseErrorHandlerFunc: srv.responseError,
	})
	return gen.HandlerWithOptions(strict, gen.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: srv.paramError,
	})
}
