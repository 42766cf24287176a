package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/rideshare/rides-api/internal/domain"
	"github.com/rideshare/rides-api/internal/handler/gen"
)

// Stable error codes returned in ErrorDetail.Code.
const (
	codeValidation = "validation_error"
	codeQuery      = "query_error"
	codeNotFound   = "not_found"
	codeServer     = "server_error"
)

func errorBody(code, message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: code, Message: message}}
}

// validationBody returns an ErrorResponse carrying the validator's message.
func validationBody(err error) gen.ErrorResponse {
	return errorBody(codeValidation, domain.MessageOf(err))
}

// queryBody returns an ErrorResponse for an invalid combination of read parameters.
func queryBody(err error) gen.ErrorResponse {
	return errorBody(codeQuery, domain.MessageOf(err))
}

// notFoundBody returns an ErrorResponse for a read that matched no rides.
func notFoundBody() gen.ErrorResponse {
	return errorBody(codeNotFound, domain.MsgRidesNotFound)
}

// serverBody logs the full error chain and returns a generic ErrorResponse.
// The cause is never sent to the client.
func (s *Server) serverBody(ctx context.Context, op string, err error) gen.ErrorResponse {
	s.log.ErrorContext(ctx, "request failed",
		"operation", op,
		"error", err,
		"request_id", chimiddleware.GetReqID(ctx),
	)
	return errorBody(codeServer, domain.MsgUnknown)
}

// paramError handles path and query parameters the generated wrapper could
// not bind, e.g. GET /rides/abc or ?limit=ten.
func (s *Server) paramError(w http.ResponseWriter, r *http.Request, err error) {
	msg := "invalid request parameters"
	var invalid *gen.InvalidParamFormatError
	if errors.As(err, &invalid) {
		msg = fmt.Sprintf("Invalid value for parameter %s", invalid.ParamName)
	}
	writeJSON(w, http.StatusBadRequest, errorBody(codeQuery, msg))
}

// requestError handles create bodies that are not a JSON object, or that
// ran past the body size limit while being decoded.
func (s *Server) requestError(w http.ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeJSON(w, http.StatusRequestEntityTooLarge,
			errorBody(codeValidation, fmt.Sprintf("Request body must not exceed %d bytes", tooLarge.Limit)))
		return
	}
	s.log.DebugContext(r.Context(), "malformed request body", "error", err)
	writeJSON(w, http.StatusUnprocessableEntity, errorBody(codeValidation, "Request body must be a JSON object"))
}

// responseError is the last-resort handler for errors returned by a handler
// method or raised while encoding its response.
func (s *Server) responseError(w http.ResponseWriter, r *http.Request, err error) {
	writeJSON(w, http.StatusInternalServerError, s.serverBody(r.Context(), r.Method+" "+r.URL.Path, err))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
