package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dubemjesse/Coinflow/internal/core"
)

// userMessage maps domain validation errors to the messages the page
// surfaces. Unknown errors fall through unchanged.
func userMessage(err error) string {
	switch {
	case errors.Is(err, core.ErrEmptyTitle):
		return "Please enter an expense title"
	case errors.Is(err, core.ErrInvalidAmount):
		return "Please enter a valid amount greater than 0"
	case errors.Is(err, core.ErrMissingCategory):
		return "Please select a category"
	case errors.Is(err, core.ErrMissingDate), errors.Is(err, core.ErrInvalidDate):
		return "Please select a date"
	case errors.Is(err, core.ErrFutureDate):
		return "Date cannot be in the future"
	case errors.Is(err, core.ErrEmptyReminderTitle):
		return "Please enter a reminder title"
	case errors.Is(err, core.ErrEmptyReminderDate):
		return "Please select a reminder date"
	default:
		return err.Error()
	}
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, err error) {
	respondJSON(w, status, map[string]string{"error": userMessage(err)})
}

// decodeBody parses a JSON request body into dst, rejecting unknown junk
// beyond the first value.
func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return errors.New("invalid request body")
	}
	return nil
}
