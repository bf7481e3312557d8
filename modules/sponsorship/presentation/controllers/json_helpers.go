package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/ghazalrb98/sep/modules/sponsorship/domain/aggregates/request"
	"github.com/ghazalrb98/sep/modules/sponsorship/domain/aggregates/user"
	"github.com/ghazalrb98/sep/modules/sponsorship/infrastructure/remote"
	"github.com/ghazalrb98/sep/modules/sponsorship/presentation/controllers/dtos"
	"github.com/ghazalrb98/sep/modules/sponsorship/services"
	"github.com/ghazalrb98/sep/pkg/composables"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		panic(err)
	}
}

func ensureRequestID(w http.ResponseWriter, r *http.Request) string {
	id := strings.TrimSpace(r.Header.Get("X-Request-Id"))
	if id == "" {
		id = uuid.NewString()
		w.Header().Set("X-Request-Id", id)
	}
	return id
}

func writeAPIError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	writeJSON(w, status, dtos.APIError{
		Code:    code,
		Message: message,
		Meta: map[string]string{
			"request_id": ensureRequestID(w, r),
		},
	})
}

// writeDomainError maps domain and infrastructure errors onto the API's
// status codes. Unknown errors fall through to a 500.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var transport *remote.TransportError
	switch {
	case errors.Is(err, composables.ErrNoUser):
		writeAPIError(w, r, http.StatusUnauthorized, "UNAUTHENTICATED", "missing or invalid session")
	case errors.Is(err, services.ErrForbidden):
		writeAPIError(w, r, http.StatusForbidden, "SPONSORSHIP_FORBIDDEN", "you are not allowed to perform this action")
	case errors.Is(err, request.ErrNotFound), errors.Is(err, user.ErrNotFound):
		writeAPIError(w, r, http.StatusNotFound, "NOT_FOUND", "resource not found")
	case errors.Is(err, request.ErrInvalidTransition):
		writeAPIError(w, r, http.StatusConflict, "REQUEST_INVALID_TRANSITION", "request is not open for review")
	case errors.Is(err, request.ErrInvalidState):
		writeAPIError(w, r, http.StatusConflict, "REQUEST_INVALID_STATE", "request is not in progress")
	case errors.Is(err, request.ErrConcurrentModification):
		writeAPIError(w, r, http.StatusConflict, "REQUEST_CONCURRENT_MODIFICATION", "request was modified concurrently")
	case errors.As(err, &transport):
		writeAPIError(w, r, http.StatusBadGateway, "REPOSITORY_UNAVAILABLE", "request repository is unavailable")
	default:
		writeAPIError(w, r, http.StatusInternalServerError, "SPONSORSHIP_INTERNAL", "internal error")
	}
}

func firstValidationMessage(errs map[string]string) string {
	for _, v := range errs {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return "validation failed"
}
