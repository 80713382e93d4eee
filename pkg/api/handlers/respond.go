package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/cbodonnell/moralmaze/pkg/game"
	"github.com/cbodonnell/moralmaze/pkg/game/types"
	"github.com/cbodonnell/moralmaze/pkg/log"
	"github.com/cbodonnell/moralmaze/pkg/messages"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to encode response: %v", err)
	}
}

func writeErrorBody(w http.ResponseWriter, status int, detail messages.ErrorDetail) {
	writeJSON(w, status, messages.ErrorBody{Error: detail})
}

// StatusForRejection maps a rejection kind to its HTTP status.
func StatusForRejection(r *game.Rejection) int {
	switch r.Kind {
	case types.KindValidation:
		return http.StatusBadRequest
	case types.KindResourceExhausted:
		return http.StatusTooManyRequests
	case types.KindStaleReference:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

// writeError writes a rejection with its mapped status and anything else as a 500.
func writeError(w http.ResponseWriter, err error) {
	if r, ok := types.AsRejection(err); ok {
		writeErrorBody(w, StatusForRejection(r), messages.ErrorDetail{
			Kind:    string(r.Kind),
			Reason:  r.Reason,
			Message: r.Message,
		})
		return
	}
	log.Error("operation failed: %v", err)
	writeErrorBody(w, http.StatusInternalServerError, messages.ErrorDetail{
		Kind:    "internal",
		Message: "internal error",
	})
}

var errEmptyBody = errors.New("request body is required")

// decode reads a JSON body into v. An empty body is allowed when optional.
func decode(r *http.Request, v interface{}, optional bool) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			if optional {
				return nil
			}
			return errEmptyBody
		}
		return fmt.Errorf("malformed request body: %v", err)
	}
	return nil
}

// writeBadRequest answers a body that failed to decode.
func writeBadRequest(w http.ResponseWriter, err error) {
	writeErrorBody(w, http.StatusBadRequest, messages.ErrorDetail{
		Kind:    string(types.KindValidation),
		Reason:  "malformed_request",
		Message: err.Error(),
	})
}

func coord(p messages.PositionRequest) types.Coord {
	return types.Coord{X: p.X, Y: p.Y}
}
