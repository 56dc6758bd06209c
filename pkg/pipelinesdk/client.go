package pipelinesdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Client talks to the pipeline service. It covers the unauthenticated
// endpoints and creates Sessions for the rest.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Login signs in and returns a Session bound to the issued token. Any session
// the server held before is replaced.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*Session, error) {
	body, err := encodeJSON(req)
	if err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/session", body, jsonHeaders)
	if err != nil {
		return nil, err
	}

	var out SessionResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return newSession(c, &out), nil
}

// Stages lists the stage descriptors in pipeline order.
func (c *Client) Stages(ctx context.Context) ([]StageDescriptor, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/stages", nil, nil)
	if err != nil {
		return nil, err
	}

	var out StagesResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Stages, nil
}

// GetLiveness checks if the service is alive.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/livez")
}

// GetReadiness checks if the service is ready.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/readyz")
}

func (c *Client) health(ctx context.Context, path string) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}
