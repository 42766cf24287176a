package handler

import (
	"context"

	"github.com/rideshare/rides-api/internal/handler/gen"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// GetHealth handles GET /healthz.
// It returns 200 {"status":"ok"} when the server is running and the database
// answers a ping, and 503 {"status":"unavailable"} when the ping fails.
// A Server built without a Pinger only reports liveness.
func (s *Server) GetHealth(ctx context.Context, _ gen.GetHealthRequestObject) (gen.GetHealthResponseObject, error) {
	if s.db != nil {
		if err := s.db.Ping(ctx); err != nil {
			s.log.WarnContext(ctx, "health check: database ping failed", "error", err)
			return gen.GetHealth503JSONResponse{Status: "unavailable"}, nil
		}
	}
	return gen.GetHealth200JSONResponse{Status: "ok"}, nil
}
