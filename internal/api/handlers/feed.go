package handlers

import (
	"net/http"

	"github.com/fitplanhub/fitplanhub/internal/api/middleware"
	"github.com/fitplanhub/fitplanhub/internal/pkg/errors"
	"github.com/fitplanhub/fitplanhub/internal/pkg/utils"
	"github.com/fitplanhub/fitplanhub/internal/services"
)

// FeedHandler serves the follow feed and trainer profiles
type FeedHandler struct {
	feed *services.FeedService
}

func NewFeedHandler(feed *services.FeedService) *FeedHandler {
	return &FeedHandler{feed: feed}
}

// Feed returns plans from every trainer the caller follows
func (h *FeedHandler) Feed(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("No token provided"))
		return
	}

	views, err := h.feed.Feed(r.Context(), userID)
	if err != nil {
		utils.WriteServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, views)
}

// TrainerProfile returns a trainer's public profile with their plans
func (h *FeedHandler) TrainerProfile(w http.ResponseWriter, r *http.Request) {
	trainerID, err := idParam(r, "trainerId")
	if err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid trainer ID"))
		return
	}

	profile, err := h.feed.Profile(r.Context(), viewerFrom(r), trainerID)
	if err != nil {
		utils.WriteServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, profile)
}
