package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/plannerhq/planner/internal/repository"
	"github.com/plannerhq/planner/internal/schedule"
	"github.com/plannerhq/planner/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeServiceError maps the service error taxonomy to HTTP statuses with
// stable messages. Anything unrecognized is a 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrGoalNotFound),
		errors.Is(err, repository.ErrPlanNotFound),
		errors.Is(err, repository.ErrActivityNotFound),
		errors.Is(err, repository.ErrRoutineNotFound),
		errors.Is(err, repository.ErrUnplannedNotFound),
		errors.Is(err, repository.ErrDailyReportNotFound),
		errors.Is(err, repository.ErrGoalReportNotFound),
		errors.Is(err, repository.ErrUserNotFound):
		writeError(w, http.StatusNotFound, err.Error())

	case errors.Is(err, service.ErrActiveGoalExists),
		errors.Is(err, service.ErrEmailAlreadyExists):
		writeError(w, http.StatusConflict, err.Error())

	case errors.Is(err, service.ErrGoalNameRequired),
		errors.Is(err, service.ErrInvalidDates),
		errors.Is(err, service.ErrGoalTooLong),
		errors.Is(err, service.ErrStartDateInPast),
		errors.Is(err, service.ErrRoutineNameRequired),
		errors.Is(err, service.ErrInvalidRoutineWindow),
		errors.Is(err, service.ErrInvalidDayTag),
		errors.Is(err, service.ErrActivityNameRequired),
		errors.Is(err, service.ErrInvalidActivityDate),
		errors.Is(err, service.ErrInvalidEffect),
		errors.Is(err, service.ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, service.ErrGoalNotActive),
		errors.Is(err, service.ErrPlanDateOutOfRange):
		writeError(w, http.StatusUnprocessableEntity, err.Error())

	case errors.Is(err, service.ErrModelUnavailable),
		errors.Is(err, schedule.ErrMalformedResponse),
		errors.Is(err, schedule.ErrEmptySchedule):
		writeError(w, http.StatusBadGateway, err.Error())

	default:
		slog.Error("unexpected error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
