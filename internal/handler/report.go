package handler

import (
	"net/http"

	"github.com/plannerhq/planner/internal/ctxkeys"
	"github.com/plannerhq/planner/internal/service"
)

type ReportHandler struct {
	reportService *service.ReportService
}

func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

type reportNotesRequest struct {
	UserNotes string `json:"user_notes"`
}

func (h *ReportHandler) CreateDaily(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	var req reportNotesRequest
	if !decodeBody(w, r, &req) {
		return
	}

	report, err := h.reportService.CreateDaily(r.Context(), user.ID, goalID, req.UserNotes)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toDailyReportResponse(report))
}

func (h *ReportHandler) ListDailyByGoal(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	reports, err := h.reportService.DailyByGoal(user.ID, goalID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]dailyReportResponse, 0, len(reports))
	for _, rep := range reports {
		out = append(out, toDailyReportResponse(rep))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *ReportHandler) UpdateDaily(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	reportID := r.PathValue("id")

	var req reportNotesRequest
	if !decodeBody(w, r, &req) {
		return
	}

	report, err := h.reportService.UpdateDaily(user.ID, reportID, req.UserNotes)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toDailyReportResponse(report))
}

func (h *ReportHandler) DeleteDaily(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	reportID := r.PathValue("id")

	err := h.reportService.DeleteDaily(user.ID, reportID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpsertGoalReport creates the goal's wrap-up report or refreshes its
// completion rate and model summary.
func (h *ReportHandler) UpsertGoalReport(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	var req reportNotesRequest
	if !decodeBody(w, r, &req) {
		return
	}

	report, err := h.reportService.UpsertGoalReport(r.Context(), user.ID, goalID, req.UserNotes)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toGoalReportResponse(report))
}

func (h *ReportHandler) GetGoalReport(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	report, err := h.reportService.GoalReport(user.ID, goalID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toGoalReportResponse(report))
}
