package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/court-planner/internal/processor"
	"github.com/mauv0809/court-planner/internal/reservation"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, reservation.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, reservation.ErrCourtFull),
		errors.Is(err, reservation.ErrAlreadyOnCourt),
		errors.Is(err, reservation.ErrAlreadyInSlot),
		errors.Is(err, reservation.ErrNotAvailable),
		errors.Is(err, reservation.ErrNotOnCourt):
		return http.StatusConflict
	case errors.Is(err, reservation.ErrNotCompetitive),
		errors.Is(err, reservation.ErrWinnerMismatch),
		errors.Is(err, reservation.ErrInvalidArity),
		errors.Is(err, processor.ErrDateOutsideSeason):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// writeDomainError logs unexpected failures and answers with the mapped status.
func writeDomainError(w http.ResponseWriter, action string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Error("Failed to "+action, "error", err)
		writeError(w, status, "failed to "+action)
		return
	}
	log.Debug("Rejected request", "action", action, "error", err)
	writeError(w, status, err.Error())
}

// resolvePlayer maps free text to a roster name. On failure it answers 404
// with the closest roster names.
func (s *Server) resolvePlayer(w http.ResponseWriter, input string) (string, bool) {
	if input == "" {
		writeError(w, http.StatusBadRequest, "player is required")
		return "", false
	}
	name, suggestions := s.Roster.Resolve(input)
	if name != "" {
		return name, true
	}
	resp := errorResponse{Error: fmt.Sprintf("unknown player %q", input)}
	for _, sg := range suggestions {
		resp.Suggestions = append(resp.Suggestions, sg.Player)
	}
	writeJSON(w, http.StatusNotFound, resp)
	return "", false
}

// validateSlot checks that a date and time slot belong to the season.
func (s *Server) validateSlot(w http.ResponseWriter, date, timeSlot string) (reservation.Slot, bool) {
	if !s.Season.Contains(date) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("%s is not a play date", date))
		return reservation.Slot{}, false
	}
	if !s.Season.HasTimeSlot(timeSlot) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown time slot %q", timeSlot))
		return reservation.Slot{}, false
	}
	return reservation.Slot{Date: date, TimeSlot: timeSlot}, true
}

func (s *Server) validateCourt(w http.ResponseWriter, req courtRequest) (reservation.Slot, bool) {
	slot, ok := s.validateSlot(w, req.Date, req.TimeSlot)
	if !ok {
		return slot, false
	}
	if !s.Season.HasCourt(req.Court) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown court %d", req.Court))
		return slot, false
	}
	return slot, true
}
