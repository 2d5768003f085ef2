package handlers

import (
	"net/http"

	"github.com/fitplanhub/fitplanhub/internal/api/middleware"
	"github.com/fitplanhub/fitplanhub/internal/domain/follow"
	"github.com/fitplanhub/fitplanhub/internal/pkg/errors"
	"github.com/fitplanhub/fitplanhub/internal/pkg/utils"
)

// FollowHandler handles the follower side of trainer relationships
type FollowHandler struct {
	follows follow.Service
}

func NewFollowHandler(follows follow.Service) *FollowHandler {
	return &FollowHandler{follows: follows}
}

// Follow creates a follow edge from the caller to a trainer
func (h *FollowHandler) Follow(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("No token provided"))
		return
	}

	trainerID, err := idParam(r, "trainerId")
	if err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid trainer ID"))
		return
	}

	f, err := h.follows.Follow(r.Context(), userID, trainerID)
	if err != nil {
		utils.WriteServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, f)
}

// Unfollow removes the caller's follow edge to a trainer
func (h *FollowHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("No token provided"))
		return
	}

	trainerID, err := idParam(r, "trainerId")
	if err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid trainer ID"))
		return
	}

	if err := h.follows.Unfollow(r.Context(), userID, trainerID); err != nil {
		utils.WriteServiceError(w, err)
		return
	}

	utils.WriteMessage(w, http.StatusOK, "Successfully unfollowed trainer")
}

// List returns every trainer the caller follows
func (h *FollowHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("No token provided"))
		return
	}

	follows, err := h.follows.ListFollows(r.Context(), userID)
	if err != nil {
		utils.WriteServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, follows)
}

// Check reports whether the caller follows a given trainer
func (h *FollowHandler) Check(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("No token provided"))
		return
	}

	trainerID, err := idParam(r, "trainerId")
	if err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid trainer ID"))
		return
	}

	following, err := h.follows.IsFollowing(r.Context(), userID, trainerID)
	if err != nil {
		utils.WriteServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]bool{"isFollowing": following})
}
