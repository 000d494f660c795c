// Package services provides the HTTP clients the shell delegates to: the
// auth operations behind the session store and the per-role profile
// fetchers.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/bookhaven/lms-backend/internal/shell/profile"
	"github.com/bookhaven/lms-backend/internal/shell/session"
	"github.com/bookhaven/lms-backend/model"
)

// APIClient talks to the LMS backend. The cookie jar carries the auth
// cookie between calls, mirroring the browser.
type APIClient struct {
	baseURL string
	client  *http.Client
}

// Compile-time interface checks
var (
	_ session.Service = (*APIClient)(nil)
	_ profile.Fetcher = (*APIClient)(nil)
)

// NewAPIClient creates a client rooted at baseURL (no trailing slash)
func NewAPIClient(baseURL string) (*APIClient, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &APIClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
			Jar:     jar,
		},
	}, nil
}

type apiError struct {
	Message string `json:"error"`
}

func (c *APIClient) do(ctx context.Context, method, path string, body, out interface{}) (int, error) {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr apiError
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Message != "" {
			return resp.StatusCode, fmt.Errorf("%s", apiErr.Message)
		}
		return resp.StatusCode, fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("malformed response: %w", err)
		}
	}
	return resp.StatusCode, nil
}

// ============================================================================
// SESSION SERVICE
// ============================================================================

type sessionPayload struct {
	Username   string `json:"username"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	RedirectTo string `json:"redirect_to"`
}

func (p sessionPayload) user() *model.User {
	u := model.NewUser(p.Username, model.ParseRole(p.Role))
	u.Name = p.Name
	u.Email = p.Email
	return u
}

// Login authenticates with the backend and returns the session user plus
// the role dashboard to redirect to
func (c *APIClient) Login(ctx context.Context, creds session.Credentials) (*model.User, string, error) {
	var payload sessionPayload
	_, err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"username": creds.Username,
		"password": creds.Password,
	}, &payload)
	if err != nil {
		return nil, "", err
	}
	return payload.user(), payload.RedirectTo, nil
}

// Register creates a member account
func (c *APIClient) Register(ctx context.Context, fields session.RegisterFields) error {
	_, err := c.do(ctx, http.MethodPost, "/api/v1/auth/register", map[string]string{
		"username": fields.Username,
		"name":     fields.Name,
		"email":    fields.Email,
		"password": fields.Password,
	}, nil)
	return err
}

// Logout ends the backend session
func (c *APIClient) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/api/v1/auth/logout", nil, nil)
	return err
}

// ForgotPassword starts the reset flow
func (c *APIClient) ForgotPassword(ctx context.Context, email string) error {
	_, err := c.do(ctx, http.MethodPost, "/api/v1/auth/forgot-password", map[string]string{
		"email": email,
	}, nil)
	return err
}

// CurrentUser restores an existing session. A 401 means no session and is
// not an error.
func (c *APIClient) CurrentUser(ctx context.Context) (*model.User, error) {
	var payload sessionPayload
	status, err := c.do(ctx, http.MethodGet, "/api/v1/auth/me", nil, &payload)
	if status == http.StatusUnauthorized {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return payload.user(), nil
}

// ============================================================================
// PROFILE FETCHER
// ============================================================================

// FetchProfile retrieves the role profile from the matching endpoint
func (c *APIClient) FetchProfile(ctx context.Context, role model.Role) (*model.Profile, error) {
	var path string
	switch role {
	case model.RoleAdmin:
		path = "/api/v1/profile/admin"
	case model.RoleLibrarian:
		path = "/api/v1/profile/librarian"
	case model.RoleUser:
		path = "/api/v1/profile/user"
	default:
		return nil, fmt.Errorf("no profile endpoint for role %q", role)
	}

	var envelope model.ProfileResponse
	if _, err := c.do(ctx, http.MethodGet, path, nil, &envelope); err != nil {
		return nil, err
	}
	if !envelope.Success {
		return nil, fmt.Errorf("profile endpoint reported failure")
	}
	return &envelope.Data, nil
}
