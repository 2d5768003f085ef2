package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/fitplanhub/fitplanhub/internal/api/dto"
	"github.com/fitplanhub/fitplanhub/internal/api/middleware"
	"github.com/fitplanhub/fitplanhub/internal/domain/subscription"
	"github.com/fitplanhub/fitplanhub/internal/domain/user"
	"github.com/fitplanhub/fitplanhub/internal/services"
	"github.com/fitplanhub/fitplanhub/internal/testutil"
)

func newPlanHandlerFixture() (*PlanHandler, *testutil.MockPlanRepository, *testutil.MockSubscriptionRepository) {
	planRepo := testutil.NewMockPlanRepository()
	subRepo := testutil.NewMockSubscriptionRepository()
	planSvc := services.NewPlanService(planRepo, subRepo, testLogger())
	return NewPlanHandler(planSvc), planRepo, subRepo
}

func asViewer(req *http.Request, userID int64, role user.Role) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, userID)
	ctx = context.WithValue(ctx, middleware.UserRoleKey, role)
	return req.WithContext(ctx)
}

func withPlanID(req *http.Request, planID string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("planId", planID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func createTestPlan(t *testing.T, handler *PlanHandler, trainerID int64, title string) int64 {
	t.Helper()
	body, _ := json.Marshal(dto.CreatePlanRequest{
		Title:       title,
		Description: "Structured program",
		Price:       29.99,
		Duration:    56,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/plans", bytes.NewBuffer(body))
	req = asViewer(req, trainerID, user.RoleTrainer)
	rr := httptest.NewRecorder()
	handler.Create(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("Create status = %d, want 201: %s", rr.Code, rr.Body.String())
	}

	var created struct {
		ID int64 `json:"id"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return created.ID
}

func TestPlanHandler_Create_Validation(t *testing.T) {
	handler, _, _ := newPlanHandlerFixture()

	tests := []struct {
		name string
		req  dto.CreatePlanRequest
	}{
		{"missing title", dto.CreatePlanRequest{Description: "d", Price: 10, Duration: 30}},
		{"zero price", dto.CreatePlanRequest{Title: "Plan", Description: "d", Price: 0, Duration: 30}},
		{"negative duration", dto.CreatePlanRequest{Title: "Plan", Description: "d", Price: 10, Duration: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.req)
			req := httptest.NewRequest(http.MethodPost, "/api/plans", bytes.NewBuffer(body))
			req = asViewer(req, 7, user.RoleTrainer)
			rr := httptest.NewRecorder()
			handler.Create(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Errorf("Create status = %d, want 400", rr.Code)
			}
		})
	}
}

func TestPlanHandler_List_RedactsForAnonymous(t *testing.T) {
	handler, _, _ := newPlanHandlerFixture()
	createTestPlan(t, handler, 7, "5K Training")

	req := httptest.NewRequest(http.MethodGet, "/api/plans", nil)
	rr := httptest.NewRecorder()
	handler.List(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("List status = %d, want 200", rr.Code)
	}

	var views []map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&views); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("List returned %d plans, want 1", len(views))
	}

	view := views[0]
	for _, gated := range []string{"description", "duration", "updatedAt", "isSubscribed"} {
		if _, ok := view[gated]; ok {
			t.Errorf("anonymous listing leaks %q", gated)
		}
	}
	for _, open := range []string{"id", "title", "price", "createdAt"} {
		if _, ok := view[open]; !ok {
			t.Errorf("anonymous listing misses %q", open)
		}
	}
}

func TestPlanHandler_List_FullForSubscriber(t *testing.T) {
	handler, _, subRepo := newPlanHandlerFixture()
	planID := createTestPlan(t, handler, 7, "5K Training")

	if err := subRepo.Create(context.Background(), &subscription.Subscription{
		UserID: 1, PlanID: planID, Status: subscription.StatusActive,
	}); err != nil {
		t.Fatalf("seed subscription: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/plans", nil)
	req = asViewer(req, 1, user.RoleUser)
	rr := httptest.NewRecorder()
	handler.List(rr, req)

	var views []map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&views); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("List returned %d plans, want 1", len(views))
	}

	view := views[0]
	if view["description"] != "Structured program" {
		t.Errorf("subscriber listing description = %v, want full text", view["description"])
	}
	if view["isSubscribed"] != true {
		t.Errorf("subscriber listing isSubscribed = %v, want true", view["isSubscribed"])
	}
}

func TestPlanHandler_List_MyPlansRequiresTrainer(t *testing.T) {
	handler, _, _ := newPlanHandlerFixture()
	createTestPlan(t, handler, 7, "5K Training")

	req := httptest.NewRequest(http.MethodGet, "/api/plans?myPlans=true", nil)
	req = asViewer(req, 1, user.RoleUser)
	rr := httptest.NewRecorder()
	handler.List(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("myPlans as user status = %d, want 401", rr.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/plans?myPlans=true", nil)
	req = asViewer(req, 7, user.RoleTrainer)
	rr = httptest.NewRecorder()
	handler.List(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("myPlans as trainer status = %d, want 200", rr.Code)
	}
}

func TestPlanHandler_Get_PreviewHasSubscribedFlag(t *testing.T) {
	handler, _, _ := newPlanHandlerFixture()
	planID := createTestPlan(t, handler, 7, "5K Training")
	idStr := strconv.FormatInt(planID, 10)

	req := httptest.NewRequest(http.MethodGet, "/api/plans/"+idStr, nil)
	req = asViewer(req, 2, user.RoleUser)
	req = withPlanID(req, idStr)
	rr := httptest.NewRecorder()
	handler.Get(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Get status = %d, want 200: %s", rr.Code, rr.Body.String())
	}

	var view map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&view); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if view["isSubscribed"] != false {
		t.Errorf("preview isSubscribed = %v, want false", view["isSubscribed"])
	}
	if _, ok := view["description"]; ok {
		t.Error("preview leaks description")
	}
}

func TestPlanHandler_Get_InvalidID(t *testing.T) {
	handler, _, _ := newPlanHandlerFixture()

	req := httptest.NewRequest(http.MethodGet, "/api/plans/abc", nil)
	req = withPlanID(req, "abc")
	rr := httptest.NewRecorder()
	handler.Get(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Get with invalid ID status = %d, want 400", rr.Code)
	}
}

func TestPlanHandler_Update_OwnershipEnforced(t *testing.T) {
	handler, _, _ := newPlanHandlerFixture()
	planID := createTestPlan(t, handler, 7, "5K Training")
	idStr := strconv.FormatInt(planID, 10)

	title := "10K Training"
	body, _ := json.Marshal(dto.UpdatePlanRequest{Title: &title})
	req := httptest.NewRequest(http.MethodPut, "/api/plans/"+idStr, bytes.NewBuffer(body))
	req = asViewer(req, 8, user.RoleTrainer)
	req = withPlanID(req, idStr)
	rr := httptest.NewRecorder()
	handler.Update(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Errorf("Update by non-owner status = %d, want 403", rr.Code)
	}
}

func TestPlanHandler_Delete(t *testing.T) {
	handler, planRepo, subRepo := newPlanHandlerFixture()
	planID := createTestPlan(t, handler, 7, "5K Training")
	idStr := strconv.FormatInt(planID, 10)

	if err := subRepo.Create(context.Background(), &subscription.Subscription{
		UserID: 1, PlanID: planID, Status: subscription.StatusActive,
	}); err != nil {
		t.Fatalf("seed subscription: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/plans/"+idStr, nil)
	req = asViewer(req, 7, user.RoleTrainer)
	req = withPlanID(req, idStr)
	rr := httptest.NewRecorder()
	handler.Delete(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Delete status = %d, want 200: %s", rr.Code, rr.Body.String())
	}
	if len(planRepo.Plans) != 0 {
		t.Error("Delete left the plan behind")
	}
	if len(subRepo.Subs) != 0 {
		t.Error("Delete left subscriptions behind")
	}
}
