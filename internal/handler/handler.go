package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"coffeehouse/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// The status line is already written; an encode failure here cannot be
	// surfaced to the client.
	_ = json.NewEncoder(w).Encode(data)
}

// writeSuccess writes a success envelope.
func writeSuccess(w http.ResponseWriter, status int, data interface{}, message string) {
	writeJSON(w, status, model.APIResponse{Success: true, Data: data, Message: message})
}

// writeError writes a failure envelope with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.APIResponse{Success: false, Message: message})
}

// statusForError maps a service error to an HTTP status and client-facing
// message. Validation and conflict errors are 400, unknown ids 404, mail
// dispatch failures 500; anything unclassified is a generic 500.
func statusForError(err error, fallback string) (int, string) {
	var derr *model.DomainError
	if errors.As(err, &derr) {
		switch derr.Code {
		case model.ErrCodeOrderNotFound:
			return http.StatusNotFound, derr.Message
		case model.ErrCodeMailDispatch:
			return http.StatusInternalServerError, derr.Message
		default:
			return http.StatusBadRequest, derr.Message
		}
	}
	return http.StatusInternalServerError, fallback
}
