package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/fitplanhub/fitplanhub/internal/api/dto"
	"github.com/fitplanhub/fitplanhub/internal/api/middleware"
	"github.com/fitplanhub/fitplanhub/internal/domain/plan"
	"github.com/fitplanhub/fitplanhub/internal/domain/user"
	"github.com/fitplanhub/fitplanhub/internal/pkg/errors"
	"github.com/fitplanhub/fitplanhub/internal/pkg/utils"
	"github.com/fitplanhub/fitplanhub/internal/pkg/validator"
	"github.com/fitplanhub/fitplanhub/internal/services"
)

// PlanHandler handles plan CRUD and the public catalog
type PlanHandler struct {
	plans     *services.PlanService
	validator *validator.Validator
}

func NewPlanHandler(plans *services.PlanService) *PlanHandler {
	return &PlanHandler{
		plans:     plans,
		validator: validator.New(),
	}
}

// List returns the plan catalog shaped for the caller. Trainers may pass
// ?myPlans=true to list only their own plans, unredacted.
func (h *PlanHandler) List(w http.ResponseWriter, r *http.Request) {
	viewer := viewerFrom(r)

	if r.URL.Query().Get("myPlans") == "true" {
		if viewer.IsAnonymous() || viewer.Role != user.RoleTrainer {
			utils.WriteError(w, errors.Unauthorized("Authentication required"))
			return
		}
		plans, err := h.plans.MyPlans(r.Context(), viewer.UserID)
		if err != nil {
			utils.WriteServiceError(w, err)
			return
		}
		utils.WriteJSON(w, http.StatusOK, plans)
		return
	}

	views, err := h.plans.Catalog(r.Context(), viewer)
	if err != nil {
		utils.WriteServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, views)
}

// Get returns a single plan shaped for the caller
func (h *PlanHandler) Get(w http.ResponseWriter, r *http.Request) {
	planID, err := idParam(r, "planId")
	if err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid plan ID"))
		return
	}

	view, err := h.plans.Get(r.Context(), viewerFrom(r), planID)
	if err != nil {
		utils.WriteServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, view)
}

// Create adds a new plan owned by the calling trainer
func (h *PlanHandler) Create(w http.ResponseWriter, r *http.Request) {
	trainerID, ok := middleware.GetUserID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("No token provided"))
		return
	}

	var req dto.CreatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if errs := h.validator.Validate(req); errs != nil {
		utils.WriteError(w, errors.ValidationError("Validation failed", errs))
		return
	}

	p, err := h.plans.Create(r.Context(), trainerID, req.Title, req.Description, req.Price, req.Duration)
	if err != nil {
		utils.WriteServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, p)
}

// Update applies a partial edit to a plan the caller owns
func (h *PlanHandler) Update(w http.ResponseWriter, r *http.Request) {
	trainerID, ok := middleware.GetUserID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("No token provided"))
		return
	}

	planID, err := idParam(r, "planId")
	if err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid plan ID"))
		return
	}

	var req dto.UpdatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if errs := h.validator.Validate(req); errs != nil {
		utils.WriteError(w, errors.ValidationError("Validation failed", errs))
		return
	}

	p, err := h.plans.Update(r.Context(), trainerID, planID, plan.Update{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
	})
	if err != nil {
		utils.WriteServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, p)
}

// Delete removes a plan the caller owns along with its subscriptions
func (h *PlanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	trainerID, ok := middleware.GetUserID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("No token provided"))
		return
	}

	planID, err := idParam(r, "planId")
	if err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid plan ID"))
		return
	}

	if err := h.plans.Delete(r.Context(), trainerID, planID); err != nil {
		utils.WriteServiceError(w, err)
		return
	}

	utils.WriteMessage(w, http.StatusOK, "Plan deleted successfully")
}
