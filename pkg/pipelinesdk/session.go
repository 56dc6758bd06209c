package pipelinesdk

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Session is a signed in client. It stops working once another login
// replaces it on the server or Logout is called.
type Session struct {
	client *Client

	token     string
	expiresAt time.Time
	profile   Profile
}

func newSession(c *Client, resp *SessionResponse) *Session {
	return &Session{
		client:    c,
		token:     resp.AccessToken,
		expiresAt: time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second),
		profile:   resp.Profile,
	}
}

// NewSessionFromToken wraps an existing bearer token.
func (c *Client) NewSessionFromToken(token string) *Session {
	return &Session{client: c, token: token}
}

func (s *Session) Token() string { return s.token }
func (s *Session) Profile() Profile { return s.profile }
func (s *Session) ExpiresAt() time.Time { return s.expiresAt }

// Logout ends the session on the server.
func (s *Session) Logout(ctx context.Context) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/v1/session", nil, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// Me fetches the profile of the active session.
func (s *Session) Me(ctx context.Context) (*Profile, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/session", nil, nil)
	if err != nil {
		return nil, err
	}

	var p Profile
	if err := decodeJSON(resp, &p, http.StatusOK); err != nil {
		return nil, err
	}
	return &p, nil
}

// Candidates lists the candidates this session can see, filtered by query.
// An empty query falls back to the board's current search.
func (s *Session) Candidates(ctx context.Context, query string) (*CandidateListResponse, error) {
	path := "/v1/candidates"
	if query != "" {
		path += "?q=" + url.QueryEscape(query)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var out CandidateListResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddCandidate creates a candidate. Only HR sessions may do this.
func (s *Session) AddCandidate(ctx context.Context, req AddCandidateRequest) (*Candidate, error) {
	var out Candidate
	if err := s.sendJSON(ctx, http.MethodPost, "/v1/candidates", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// MoveStage steps a candidate one stage along. The returned candidate is nil
// when the id is unknown or not visible to this session.
func (s *Session) MoveStage(ctx context.Context, id, direction string) (*Candidate, error) {
	body, err := encodeJSON(MoveRequest{Direction: direction})
	if err != nil {
		return nil, err
	}

	path := "/v1/candidates/" + url.PathEscape(id) + "/move"
	resp, err := s.doAuthRequest(ctx, http.MethodPost, path, body, jsonHeaders)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusNoContent {
		return nil, checkStatusNoContent(resp)
	}

	var out Candidate
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Board returns the projection for the current search, mode and collapsed
// groups.
func (s *Session) Board(ctx context.Context) (*ProjectionResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/board", nil, nil)
	if err != nil {
		return nil, err
	}

	var out ProjectionResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetSearch updates the search query and returns the new projection.
func (s *Session) SetSearch(ctx context.Context, query string) (*ProjectionResponse, error) {
	var out ProjectionResponse
	if err := s.sendJSON(ctx, http.MethodPut, "/v1/board/search", SearchRequest{Query: query}, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetMode switches the layout and returns the new projection.
func (s *Session) SetMode(ctx context.Context, mode string) (*ProjectionResponse, error) {
	var out ProjectionResponse
	if err := s.sendJSON(ctx, http.MethodPut, "/v1/board/mode", ModeRequest{Mode: mode}, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ToggleGroup flips a company/role group between expanded and collapsed.
func (s *Session) ToggleGroup(ctx context.Context, req ToggleGroupRequest) (*ToggleGroupResponse, error) {
	var out ToggleGroupResponse
	if err := s.sendJSON(ctx, http.MethodPost, "/v1/board/groups/toggle", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) sendJSON(ctx context.Context, method, path string, in, out any, expected int) error {
	var body io.Reader
	if in != nil {
		b, err := encodeJSON(in)
		if err != nil {
			return err
		}
		body = b
	}

	resp, err := s.doAuthRequest(ctx, method, path, body, jsonHeaders)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	return decodeJSON(resp, out, expected)
}
