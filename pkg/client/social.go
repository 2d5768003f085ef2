package client

import (
	"context"
	"fmt"
	"net/http"
)

// FollowTrainer creates a follow edge to a trainer
func (c *Client) FollowTrainer(ctx context.Context, trainerID int64) (*Follow, error) {
	var f Follow
	path := fmt.Sprintf("/api/follows/%d", trainerID)
	if err := c.doRequest(ctx, http.MethodPost, path, nil, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// UnfollowTrainer removes the follow edge to a trainer
func (c *Client) UnfollowTrainer(ctx context.Context, trainerID int64) error {
	path := fmt.Sprintf("/api/follows/%d", trainerID)
	return c.doRequest(ctx, http.MethodDelete, path, nil, nil)
}

// ListFollows returns every trainer the caller follows
func (c *Client) ListFollows(ctx context.Context) ([]Follow, error) {
	var follows []Follow
	if err := c.doRequest(ctx, http.MethodGet, "/api/follows/my-follows", nil, &follows); err != nil {
		return nil, err
	}
	return follows, nil
}

// IsFollowing reports whether the caller follows a trainer
func (c *Client) IsFollowing(ctx context.Context, trainerID int64) (bool, error) {
	var resp struct {
		IsFollowing bool `json:"isFollowing"`
	}
	path := fmt.Sprintf("/api/follows/check/%d", trainerID)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return false, err
	}
	return resp.IsFollowing, nil
}

// Subscribe purchases a plan
func (c *Client) Subscribe(ctx context.Context, planID int64) (*Subscription, error) {
	var sub Subscription
	path := fmt.Sprintf("/api/subscriptions/%d", planID)
	if err := c.doRequest(ctx, http.MethodPost, path, nil, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// Unsubscribe cancels a plan subscription
func (c *Client) Unsubscribe(ctx context.Context, planID int64) error {
	path := fmt.Sprintf("/api/subscriptions/%d", planID)
	return c.doRequest(ctx, http.MethodDelete, path, nil, nil)
}

// ListSubscriptions returns the caller's subscriptions with plans attached
func (c *Client) ListSubscriptions(ctx context.Context) ([]Subscription, error) {
	var subs []Subscription
	if err := c.doRequest(ctx, http.MethodGet, "/api/subscriptions/my-subscriptions", nil, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// Feed returns plans from every trainer the caller follows
func (c *Client) Feed(ctx context.Context) ([]Plan, error) {
	var plans []Plan
	if err := c.doRequest(ctx, http.MethodGet, "/api/feed", nil, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// TrainerProfile returns a trainer's public page with their plans
func (c *Client) TrainerProfile(ctx context.Context, trainerID int64) (*TrainerProfile, error) {
	var profile TrainerProfile
	path := fmt.Sprintf("/api/trainers/%d", trainerID)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
