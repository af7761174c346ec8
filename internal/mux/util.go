package mux

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"chiptable/pkg/holdem"
	"chiptable/pkg/potmanager"
	"chiptable/pkg/room"

	"github.com/sirupsen/logrus"
)

func decodeRequest(w http.ResponseWriter, r *http.Request, payload interface{}) bool {
	if ct := r.Header.Get("Content-Type"); ct != "application/json" && ct != "text/json" {
		writeJSONError(w, http.StatusUnsupportedMediaType, nil)
		return false
	}

	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, err)
		return false
	}

	return true
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("could not write JSON response")
	}
}

type errorResponse struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

// writeTableError picks the status code from the kind of error the table returned
func writeTableError(w http.ResponseWriter, err error) {
	writeJSONError(w, statusCodeForError(err), err)
}

func statusCodeForError(err error) int {
	var precondition holdem.PreconditionError
	var wager *holdem.WagerError
	var playerCount holdem.PlayerCountError
	var validation holdem.ValidationError

	switch {
	case errors.Is(err, room.ErrTableNotFound), errors.Is(err, room.ErrDealerClosed):
		return http.StatusNotFound
	case errors.As(err, &precondition), errors.As(err, &wager), errors.As(err, &playerCount), errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.Is(err, potmanager.ErrPotNotFound),
		errors.Is(err, potmanager.ErrNoEligibleWinner),
		errors.Is(err, potmanager.ErrParticipantNotFound):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	}

	return http.StatusInternalServerError
}

func writeJSONError(w http.ResponseWriter, statusCode int, err error) {
	var msg string

	if statusCode < 500 && err != nil {
		msg = err.Error()
	} else {
		msg = http.StatusText(statusCode)
	}

	if statusCode >= 500 {
		logrus.WithField("statusCode", statusCode).Error(err)
	}

	writeJSON(w, statusCode, errorResponse{
		Message:    msg,
		StatusCode: statusCode,
	})
}
