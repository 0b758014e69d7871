package controller

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/lucasferreira/fintrack/internal/service"
)

// GoalController handles goal-related HTTP requests.
type GoalController struct {
	goalService *service.GoalService
}

// NewGoalController creates a new GoalController.
func NewGoalController(goalService *service.GoalService) *GoalController {
	return &GoalController{goalService: goalService}
}

func goalServiceRequest(req GoalRequest) service.CreateGoalRequest {
	out := service.CreateGoalRequest{
		Name:              req.Name,
		TargetAmountCents: floatToCents(*req.TargetAmount),
		Deadline:          req.Deadline,
	}
	if req.CurrentAmount != nil {
		out.CurrentAmountCents = floatToCents(*req.CurrentAmount)
	}
	if req.Color != nil {
		out.Color = *req.Color
	}
	return out
}

// List handles GET /goals
func (h *GoalController) List(w http.ResponseWriter, r *http.Request) {
	goals, err := h.goalService.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]*GoalResponse, 0, len(goals))
	for _, g := range goals {
		resp = append(resp, FromGoal(g))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create handles POST /goals
func (h *GoalController) Create(w http.ResponseWriter, r *http.Request) {
	var req GoalRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	g, err := h.goalService.Create(r.Context(), goalServiceRequest(req))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, FromGoal(g))
}

// Update handles PUT /goals/{id}
func (h *GoalController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid goal id", Code: "invalid_id"})
		return
	}

	var req GoalRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	in := goalServiceRequest(req)
	g, err := h.goalService.Update(r.Context(), id, service.UpdateGoalRequest{
		Name:               in.Name,
		TargetAmountCents:  in.TargetAmountCents,
		CurrentAmountCents: in.CurrentAmountCents,
		Deadline:           in.Deadline,
		Color:              in.Color,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, FromGoal(g))
}

// Delete handles DELETE /goals/{id}
func (h *GoalController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid goal id", Code: "invalid_id"})
		return
	}

	if err := h.goalService.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Contribute handles POST /goals/{id}/contribute
func (h *GoalController) Contribute(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid goal id", Code: "invalid_id"})
		return
	}

	var req ContributeRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	g, err := h.goalService.Contribute(r.Context(), id, floatToCents(*req.Amount))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, FromGoal(g))
}
