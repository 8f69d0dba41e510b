package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/mathevilla/server/internal/auth"
	"github.com/mathevilla/server/internal/challenge"
	"github.com/mathevilla/server/internal/store"
)

type errorBody struct {
	Detail string `json:"detail"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, errorBody{Detail: detail})
}

// respondServiceError maps domain errors to their HTTP status. Unknown
// errors become an opaque 500.
func respondServiceError(w http.ResponseWriter, err error) {
	var verr *auth.ValidationError
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, "Nicht gefunden")
	case errors.Is(err, store.ErrEmailTaken):
		respondError(w, http.StatusConflict, "E-Mail bereits registriert")
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenExpired):
		respondError(w, http.StatusUnauthorized, err.Error())
	case errors.As(err, &verr):
		respondError(w, http.StatusBadRequest, verr.Message)
	case errors.Is(err, challenge.ErrAlreadyCompleted):
		respondError(w, http.StatusBadRequest, "Weekly Challenge bereits abgeschlossen")
	default:
		slog.Error("request failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Interner Serverfehler")
	}
}

// decodeValid decodes a JSON body into dst and runs struct validation.
func decodeValid(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &auth.ValidationError{Message: "Ungültiger Request-Body"}
	}
	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return &auth.ValidationError{Message: "Ungültiges Feld: " + verrs[0].Field()}
		}
		return &auth.ValidationError{Message: "Ungültige Eingabe"}
	}
	return nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())
