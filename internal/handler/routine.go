package handler

import (
	"net/http"

	"github.com/plannerhq/planner/internal/ctxkeys"
	"github.com/plannerhq/planner/internal/service"
)

type RoutineHandler struct {
	routineService *service.RoutineService
}

func NewRoutineHandler(routineService *service.RoutineService) *RoutineHandler {
	return &RoutineHandler{routineService: routineService}
}

type routineRequest struct {
	ActivityName string `json:"activity_name"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	DayOfWeek    string `json:"day_of_week"`
}

func (h *RoutineHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req routineRequest
	if !decodeBody(w, r, &req) {
		return
	}

	routine, err := h.routineService.Create(user.ID, req.ActivityName, req.StartTime, req.EndTime, req.DayOfWeek)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toRoutineResponse(routine))
}

func (h *RoutineHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	routines, err := h.routineService.Routines(user.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]routineResponse, 0, len(routines))
	for _, routine := range routines {
		out = append(out, toRoutineResponse(routine))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *RoutineHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	routineID := r.PathValue("id")

	var req routineRequest
	if !decodeBody(w, r, &req) {
		return
	}

	routine, err := h.routineService.Update(user.ID, routineID, req.ActivityName, req.StartTime, req.EndTime, req.DayOfWeek)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toRoutineResponse(routine))
}

func (h *RoutineHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	routineID := r.PathValue("id")

	err := h.routineService.Delete(user.ID, routineID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
