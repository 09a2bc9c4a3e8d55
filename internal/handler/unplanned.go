package handler

import (
	"net/http"

	"github.com/plannerhq/planner/internal/ctxkeys"
	"github.com/plannerhq/planner/internal/service"
)

type UnplannedHandler struct {
	unplannedService *service.UnplannedActivityService
}

func NewUnplannedHandler(unplannedService *service.UnplannedActivityService) *UnplannedHandler {
	return &UnplannedHandler{unplannedService: unplannedService}
}

type unplannedRequest struct {
	ActivityDate string `json:"activity_date"`
	ActivityName string `json:"activity_name"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Reason       string `json:"reason"`
	Effect       string `json:"effect"`
}

func (h *UnplannedHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	var req unplannedRequest
	if !decodeBody(w, r, &req) {
		return
	}

	activity, err := h.unplannedService.Create(user.ID, goalID,
		req.ActivityDate, req.ActivityName, req.StartTime, req.EndTime, req.Reason, req.Effect)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toUnplannedResponse(activity))
}

func (h *UnplannedHandler) ListByGoal(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	activities, err := h.unplannedService.ByGoal(user.ID, goalID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]unplannedResponse, 0, len(activities))
	for _, a := range activities {
		out = append(out, toUnplannedResponse(a))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *UnplannedHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	activityID := r.PathValue("id")

	var req unplannedRequest
	if !decodeBody(w, r, &req) {
		return
	}

	activity, err := h.unplannedService.Update(user.ID, activityID,
		req.ActivityDate, req.ActivityName, req.StartTime, req.EndTime, req.Reason, req.Effect)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toUnplannedResponse(activity))
}

func (h *UnplannedHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	activityID := r.PathValue("id")

	err := h.unplannedService.Delete(user.ID, activityID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
