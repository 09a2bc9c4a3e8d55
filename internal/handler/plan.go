package handler

import (
	"net/http"

	"github.com/plannerhq/planner/internal/ctxkeys"
	"github.com/plannerhq/planner/internal/service"
)

type PlanHandler struct {
	plannerService *service.PlannerService
}

func NewPlanHandler(plannerService *service.PlannerService) *PlanHandler {
	return &PlanHandler{plannerService: plannerService}
}

// Generate creates today's plan for a goal. A plan that already exists is
// reported as success with created=false, not as an error.
func (h *PlanHandler) Generate(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	result, err := h.plannerService.GenerateTodayPlan(r.Context(), user.ID, goalID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	plan := toPlanResponse(result.Plan, result.DayNumber, result.Activities)
	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	writeJSON(w, status, struct {
		Created bool         `json:"created"`
		Plan    planResponse `json:"plan"`
	}{Created: result.Created, Plan: plan})
}

func (h *PlanHandler) ListByGoal(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	plans, err := h.plannerService.PlansForGoal(user.ID, goalID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]planResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, toPlanWithActivitiesResponse(p))
	}
	writeJSON(w, http.StatusOK, out)
}

type updatePlanRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

func (h *PlanHandler) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	planID := r.PathValue("id")

	var req updatePlanRequest
	if !decodeBody(w, r, &req) {
		return
	}

	plan, err := h.plannerService.UpdatePlan(user.ID, planID, req.Status, req.Notes)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toPlanResponse(plan, 0, nil))
}

type updateActivityRequest struct {
	Status string `json:"status"`
}

func (h *PlanHandler) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	activityID := r.PathValue("id")

	var req updateActivityRequest
	if !decodeBody(w, r, &req) {
		return
	}

	activity, err := h.plannerService.UpdateActivityStatus(user.ID, activityID, req.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toActivityResponse(activity))
}
