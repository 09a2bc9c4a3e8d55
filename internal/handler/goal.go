package handler

import (
	"net/http"

	"github.com/plannerhq/planner/internal/ctxkeys"
	"github.com/plannerhq/planner/internal/service"
)

type GoalHandler struct {
	goalService *service.GoalService
}

func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

type createGoalRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req createGoalRequest
	if !decodeBody(w, r, &req) {
		return
	}

	goal, err := h.goalService.Create(r.Context(), user.ID, req.Name, req.Description, req.StartDate, req.EndDate)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toGoalResponse(goal))
}

func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	goals, err := h.goalService.Goals(user.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]goalResponse, 0, len(goals))
	for _, g := range goals {
		out = append(out, toGoalResponse(g))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *GoalHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	goal, err := h.goalService.ByID(user.ID, goalID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toGoalResponse(goal))
}

// Recent returns the latest goal with today's plan attached, if any.
func (h *GoalHandler) Recent(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	recent, err := h.goalService.Recent(user.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp := struct {
		Goal      goalResponse  `json:"goal"`
		TodayPlan *planResponse `json:"today_plan"`
	}{Goal: toGoalResponse(recent.Goal)}

	if recent.TodayPlan != nil {
		plan := toPlanWithActivitiesResponse(recent.TodayPlan)
		resp.TodayPlan = &plan
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *GoalHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	goal, err := h.goalService.Cancel(user.ID, goalID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toGoalResponse(goal))
}

func (h *GoalHandler) Complete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	goal, err := h.goalService.Complete(user.ID, goalID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toGoalResponse(goal))
}

func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	err := h.goalService.Delete(user.ID, goalID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
