package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"storefront/internal/middleware"
	"storefront/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already sent; nothing more can be reported to the client
		return
	}
}

// statusFor maps a domain error kind to its HTTP status.
func statusFor(kind model.ErrorKind) int {
	switch kind {
	case model.KindValidation:
		return http.StatusBadRequest
	case model.KindNotFound:
		return http.StatusNotFound
	case model.KindIntegrity:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes err as an ErrorResponse. Errors that carry no domain
// classification are reported as a generic 500.
func writeError(w http.ResponseWriter, r *http.Request, err error, logger zerolog.Logger) {
	requestID := middleware.RequestIDFromContext(r.Context())

	resp := model.ErrorResponse{CorrelationID: requestID}
	status := http.StatusInternalServerError

	if de, ok := model.AsDomainError(err); ok {
		status = statusFor(de.Kind)
		resp.Error = de.Code
		resp.Message = de.Message
		resp.Fields = de.Fields

		logger.Warn().
			Str("request_id", requestID).
			Str("code", de.Code).
			Str("kind", de.Kind.String()).
			Int("status", status).
			Msg(de.Message)
	} else {
		resp.Error = model.ErrCodeInternalError
		resp.Message = "internal server error"

		logger.Error().
			Err(err).
			Str("request_id", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request failed")
	}

	writeJSON(w, status, resp)
}

// decodeJSON reads the request body into dst.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return model.NewValidationError(model.ErrCodeInvalidJSON, "request body is not valid JSON",
				model.FieldError{Field: typeErr.Field, Reason: "must be a " + typeErr.Type.String()})
		}
		return model.NewValidationError(model.ErrCodeInvalidJSON, "request body is not valid JSON")
	}
	return nil
}

// pathID parses the named path wildcard as an identifier.
func pathID(r *http.Request, name string) (uuid.UUID, error) {
	raw := r.PathValue(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, model.InvalidIdentifier(name, raw)
	}
	return id, nil
}

// queryID parses an optional identifier filter from the query string. An
// absent or blank parameter yields nil.
func queryID(r *http.Request, key string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, model.InvalidIdentifier(key, raw)
	}
	return &id, nil
}

// The helpers below carry the request/response flow shared by every
// resource; handlers only name the service call.

func serveCreate[Req, T any](w http.ResponseWriter, r *http.Request, logger zerolog.Logger, create func(context.Context, *Req) (*T, error)) {
	var req Req
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, logger)
		return
	}

	out, err := create(r.Context(), &req)
	if err != nil {
		writeError(w, r, err, logger)
		return
	}

	writeJSON(w, http.StatusCreated, out)
}

func serveList[T any](w http.ResponseWriter, r *http.Request, logger zerolog.Logger, list func(context.Context) ([]T, error)) {
	out, err := list(r.Context())
	if err != nil {
		writeError(w, r, err, logger)
		return
	}
	if out == nil {
		out = []T{}
	}

	writeJSON(w, http.StatusOK, out)
}

func serveGet[T any](w http.ResponseWriter, r *http.Request, logger zerolog.Logger, get func(context.Context, uuid.UUID) (*T, error)) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err, logger)
		return
	}

	out, err := get(r.Context(), id)
	if err != nil {
		writeError(w, r, err, logger)
		return
	}

	writeJSON(w, http.StatusOK, out)
}

func serveUpdate[Req, T any](w http.ResponseWriter, r *http.Request, logger zerolog.Logger, update func(context.Context, uuid.UUID, *Req) (*T, error)) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err, logger)
		return
	}

	var req Req
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, logger)
		return
	}

	out, err := update(r.Context(), id, &req)
	if err != nil {
		writeError(w, r, err, logger)
		return
	}

	writeJSON(w, http.StatusOK, out)
}

func serveDelete(w http.ResponseWriter, r *http.Request, logger zerolog.Logger, del func(context.Context, uuid.UUID) error) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err, logger)
		return
	}

	if err := del(r.Context(), id); err != nil {
		writeError(w, r, err, logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
