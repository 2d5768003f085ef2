package handlers

import (
	"net/http"

	"github.com/fitplanhub/fitplanhub/internal/api/middleware"
	"github.com/fitplanhub/fitplanhub/internal/domain/subscription"
	"github.com/fitplanhub/fitplanhub/internal/pkg/errors"
	"github.com/fitplanhub/fitplanhub/internal/pkg/utils"
)

// SubscriptionHandler handles plan purchases
type SubscriptionHandler struct {
	subs subscription.Service
}

func NewSubscriptionHandler(subs subscription.Service) *SubscriptionHandler {
	return &SubscriptionHandler{subs: subs}
}

// Subscribe purchases a plan for the caller
func (h *SubscriptionHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("No token provided"))
		return
	}

	planID, err := idParam(r, "planId")
	if err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid plan ID"))
		return
	}

	sub, err := h.subs.Subscribe(r.Context(), userID, planID)
	if err != nil {
		utils.WriteServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, sub)
}

// Unsubscribe cancels the caller's subscription to a plan
func (h *SubscriptionHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("No token provided"))
		return
	}

	planID, err := idParam(r, "planId")
	if err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid plan ID"))
		return
	}

	if err := h.subs.Unsubscribe(r.Context(), userID, planID); err != nil {
		utils.WriteServiceError(w, err)
		return
	}

	utils.WriteMessage(w, http.StatusOK, "Successfully unsubscribed from plan")
}

// List returns the caller's subscriptions with their plans attached
func (h *SubscriptionHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("No token provided"))
		return
	}

	subs, err := h.subs.ListSubscriptions(r.Context(), userID)
	if err != nil {
		utils.WriteServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, subs)
}
