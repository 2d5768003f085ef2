package client

import (
	"context"
	"fmt"
	"net/http"
)

// CreatePlanRequest holds the fields for a new plan
type CreatePlanRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration"`
}

// UpdatePlanRequest holds a partial plan edit; nil fields are untouched
type UpdatePlanRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Duration    *int     `json:"duration,omitempty"`
}

// ListPlans returns the catalog shaped for the caller
func (c *Client) ListPlans(ctx context.Context) ([]Plan, error) {
	var plans []Plan
	if err := c.doRequest(ctx, http.MethodGet, "/api/plans", nil, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// MyPlans returns the calling trainer's own plans
func (c *Client) MyPlans(ctx context.Context) ([]Plan, error) {
	var plans []Plan
	if err := c.doRequest(ctx, http.MethodGet, "/api/plans?myPlans=true", nil, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// GetPlan returns a single plan shaped for the caller
func (c *Client) GetPlan(ctx context.Context, planID int64) (*Plan, error) {
	var p Plan
	path := fmt.Sprintf("/api/plans/%d", planID)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// CreatePlan creates a plan owned by the calling trainer
func (c *Client) CreatePlan(ctx context.Context, req CreatePlanRequest) (*Plan, error) {
	var p Plan
	if err := c.doRequest(ctx, http.MethodPost, "/api/plans", req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdatePlan applies a partial edit to a plan the caller owns
func (c *Client) UpdatePlan(ctx context.Context, planID int64, req UpdatePlanRequest) (*Plan, error) {
	var p Plan
	path := fmt.Sprintf("/api/plans/%d", planID)
	if err := c.doRequest(ctx, http.MethodPut, path, req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeletePlan removes a plan the caller owns
func (c *Client) DeletePlan(ctx context.Context, planID int64) error {
	path := fmt.Sprintf("/api/plans/%d", planID)
	return c.doRequest(ctx, http.MethodDelete, path, nil, nil)
}
