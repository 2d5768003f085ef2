package client

import (
	"context"
	"net/http"
)

// Health reports the server's liveness status
func (c *Client) Health(ctx context.Context) (string, error) {
	var resp struct {
		Status string `json:"status"`
	}
	if err := c.doRequest(ctx, http.MethodGet, "/healthz", nil, &resp); err != nil {
		return "", err
	}
	return resp.Status, nil
}

// Ready reports the server's readiness status
func (c *Client) Ready(ctx context.Context) (string, error) {
	var resp struct {
		Status string `json:"status"`
	}
	if err := c.doRequest(ctx, http.MethodGet, "/readyz", nil, &resp); err != nil {
		return "", err
	}
	return resp.Status, nil
}
