package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/entomoguide-backend/internal/domain"
)

// maxFormMemory is the part of a multipart form kept in memory; the rest
// spills to temporary files.
const maxFormMemory = 8 << 20

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"campos,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func writeMessage(w http.ResponseWriter, status int, format string, args ...any) {
	writeJSON(w, status, messageResponse{Message: fmt.Sprintf(format, args...)})
}

// errorStatus maps a service error to an HTTP status and a client-facing
// message. Anything unrecognised is a 500 with a generic message.
func errorStatus(err error) (int, string) {
	var maxErr *http.MaxBytesError
	var valErr *domain.ValidationError

	switch {
	case errors.As(err, &maxErr):
		return http.StatusRequestEntityTooLarge, fmt.Sprintf("request body exceeds %d bytes", maxErr.Limit)
	case errors.Is(err, domain.ErrNotificationFailed):
		return http.StatusBadGateway, "account approved, but notification failed"
	case errors.As(err, &valErr):
		return http.StatusBadRequest, valErr.Error()
	case errors.Is(err, domain.ErrAttachmentLimitExceeded):
		return http.StatusBadRequest, fmt.Sprintf("an insect can have at most %d images", domain.MaxAttachmentsPerInsect)
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "unsupported file type"
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, "invalid request"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrInvalidToken), errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, domain.ErrRegistrationPending):
		return http.StatusForbidden, "registration pending approval"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict, "already exists"
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, "conflict"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// responder is embedded by every handler for uniform error output.
type responder struct {
	log *slog.Logger
}

func (h responder) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := errorStatus(err)
	if status >= http.StatusInternalServerError {
		h.log.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
	}

	resp := errorResponse{Error: msg}
	var valErr *domain.ValidationError
	if errors.As(err, &valErr) && len(valErr.Errors) > 1 {
		resp.Fields = make(map[string]string, len(valErr.Errors))
		for _, fe := range valErr.Errors {
			resp.Fields[fe.Field] = fe.Message
		}
	}
	writeJSON(w, status, resp)
}

// decode reads a JSON body into v. Malformed JSON is a validation error;
// an oversized body keeps its *http.MaxBytesError.
func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return err
		}
		return domain.NewValidationError("body", "invalid JSON")
	}
	return nil
}

// pathID reads a positive integer path parameter.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(name, "must be a positive integer")
	}
	return id, nil
}

// queryID reads an optional positive integer query parameter; absent is 0.
func queryID(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(name, "must be a positive integer")
	}
	return id, nil
}
