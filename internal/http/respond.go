package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/tabshare/tabshare/internal/ledger"
)

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// respondError maps a service error to its status code. Store failures are
// not leaked to the client.
func respondError(w http.ResponseWriter, err error) {
	var (
		validationErr *ledger.ValidationError
		notFoundErr   *ledger.NotFoundError
		conflictErr   *ledger.ConflictError
	)

	switch {
	case errors.As(err, &validationErr):
		respond(w, http.StatusBadRequest, map[string]string{"error": validationErr.Error()})
	case errors.As(err, &notFoundErr):
		respond(w, http.StatusNotFound, map[string]string{"error": notFoundErr.Error()})
	case errors.As(err, &conflictErr):
		respond(w, http.StatusConflict, map[string]string{"error": conflictErr.Error()})
	default:
		respond(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}
