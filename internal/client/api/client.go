// internal/client/api/client.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"evently-service/internal/domain/account"
	"evently-service/internal/domain/event"
	"evently-service/internal/domain/registration"
	xerrors "evently-service/internal/pkg/errors"
)

// envelope mirrors the server's response format.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Client is a thin JSON client for the events API.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// ========== Auth ==========

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, identifier, password string) (*account.LoginResponse, error) {
	req := account.LoginRequest{Password: password}
	if strings.Contains(identifier, "@") {
		req.Email = identifier
	} else {
		req.Username = identifier
	}

	var resp account.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me returns the account behind the token, re-verified by the server.
func (c *Client) Me(ctx context.Context, token string) (*account.Account, error) {
	var acct account.Account
	if err := c.do(ctx, http.MethodGet, "/api/v1/auth/me", token, nil, &acct); err != nil {
		return nil, err
	}
	return &acct, nil
}

// ========== Events ==========

type eventPage struct {
	Events []*event.Event `json:"events"`
	Total  int64          `json:"total"`
}

// ListEvents returns events visible to the session.
func (c *Client) ListEvents(ctx context.Context, token, categoryID string) ([]*event.Event, error) {
	path := "/api/v1/events"
	if categoryID != "" {
		path += "?category_id=" + categoryID
	}

	var page eventPage
	if err := c.do(ctx, http.MethodGet, path, token, nil, &page); err != nil {
		return nil, err
	}
	return page.Events, nil
}

// ========== Registrations ==========

// MyRegistrations returns the session account's registrations.
func (c *Client) MyRegistrations(ctx context.Context, token string) ([]*registration.Registration, error) {
	var regs []*registration.Registration
	if err := c.do(ctx, http.MethodGet, "/api/v1/registrations/me", token, nil, &regs); err != nil {
		return nil, err
	}
	return regs, nil
}

// ========== Transport ==========

func (c *Client) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	httpResp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer httpResp.Body.Close()

	var env envelope
	if err := json.NewDecoder(httpResp.Body).Decode(&env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if !env.Success {
		return classify(httpResp.StatusCode, env.Message)
	}

	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return nil
}

// classify maps a rejected response back onto the shared error taxonomy so
// callers can tell an expired session from a deactivated account.
func classify(status int, message string) error {
	switch status {
	case http.StatusUnauthorized:
		if strings.Contains(message, "expired") {
			return fmt.Errorf("%w: %s", xerrors.ErrTokenExpired, message)
		}
		if strings.Contains(message, "deactivated") {
			return fmt.Errorf("%w: %s", xerrors.ErrAccountDeactivated, message)
		}
		if strings.Contains(message, "login failed") {
			return fmt.Errorf("%w: %s", xerrors.ErrInvalidCredentials, message)
		}
		return fmt.Errorf("%w: %s", xerrors.ErrTokenInvalid, message)
	case http.StatusForbidden:
		if strings.Contains(message, "deactivated") {
			return fmt.Errorf("%w: %s", xerrors.ErrAccountDeactivated, message)
		}
		return fmt.Errorf("%w: %s", xerrors.ErrForbidden, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", xerrors.ErrNotFound, message)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", xerrors.ErrDuplicateEntry, message)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", xerrors.ErrRateLimited, message)
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", xerrors.ErrInvalidInput, message)
	default:
		return fmt.Errorf("%w: %s", xerrors.ErrInternal, message)
	}
}
