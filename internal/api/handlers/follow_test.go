package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/fitplanhub/fitplanhub/internal/domain/user"
	"github.com/fitplanhub/fitplanhub/internal/services"
	"github.com/fitplanhub/fitplanhub/internal/testutil"
)

func newFollowHandlerFixture(t *testing.T) (*FollowHandler, *testutil.MockUserRepository) {
	t.Helper()
	followRepo := testutil.NewMockFollowRepository()
	userRepo := testutil.NewMockUserRepository()
	followSvc := services.NewFollowService(followRepo, userRepo, testLogger())
	return NewFollowHandler(followSvc), userRepo
}

func seedAccount(t *testing.T, repo *testutil.MockUserRepository, name string, role user.Role) *user.User {
	t.Helper()
	u := &user.User{Name: name, Email: name + "@example.com", PasswordHash: "x", Role: role}
	if err := repo.Create(context.Background(), u); err != nil {
		t.Fatalf("seed account %s: %v", name, err)
	}
	return u
}

func withTrainerID(req *http.Request, trainerID string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("trainerId", trainerID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestFollowHandler_FollowUnfollow(t *testing.T) {
	handler, userRepo := newFollowHandlerFixture(t)

	trainer := seedAccount(t, userRepo, "coach", user.RoleTrainer)
	member := seedAccount(t, userRepo, "member", user.RoleUser)
	idStr := strconv.FormatInt(trainer.ID, 10)

	follow := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/follows/"+idStr, nil)
		req = asViewer(req, member.ID, user.RoleUser)
		req = withTrainerID(req, idStr)
		rr := httptest.NewRecorder()
		handler.Follow(rr, req)
		return rr
	}

	if rr := follow(); rr.Code != http.StatusCreated {
		t.Fatalf("Follow status = %d, want 201: %s", rr.Code, rr.Body.String())
	}

	// Following twice is a conflict
	if rr := follow(); rr.Code != http.StatusConflict {
		t.Errorf("second Follow status = %d, want 409", rr.Code)
	}

	// Check reflects the edge
	req := httptest.NewRequest(http.MethodGet, "/api/follows/check/"+idStr, nil)
	req = asViewer(req, member.ID, user.RoleUser)
	req = withTrainerID(req, idStr)
	rr := httptest.NewRecorder()
	handler.Check(rr, req)

	var check map[string]bool
	if err := json.NewDecoder(rr.Body).Decode(&check); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !check["isFollowing"] {
		t.Error("Check isFollowing = false after follow")
	}

	// Unfollow, then a second unfollow is 404
	req = httptest.NewRequest(http.MethodDelete, "/api/follows/"+idStr, nil)
	req = asViewer(req, member.ID, user.RoleUser)
	req = withTrainerID(req, idStr)
	rr = httptest.NewRecorder()
	handler.Unfollow(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("Unfollow status = %d, want 200", rr.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/follows/"+idStr, nil)
	req = asViewer(req, member.ID, user.RoleUser)
	req = withTrainerID(req, idStr)
	rr = httptest.NewRecorder()
	handler.Unfollow(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Errorf("second Unfollow status = %d, want 404", rr.Code)
	}
}

func TestFollowHandler_Follow_NonTrainerTarget(t *testing.T) {
	handler, userRepo := newFollowHandlerFixture(t)

	member := seedAccount(t, userRepo, "member", user.RoleUser)
	other := seedAccount(t, userRepo, "other", user.RoleUser)
	idStr := strconv.FormatInt(other.ID, 10)

	req := httptest.NewRequest(http.MethodPost, "/api/follows/"+idStr, nil)
	req = asViewer(req, member.ID, user.RoleUser)
	req = withTrainerID(req, idStr)
	rr := httptest.NewRecorder()
	handler.Follow(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Follow non-trainer status = %d, want 400", rr.Code)
	}
}
