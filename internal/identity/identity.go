// Package identity talks to the external identity provider's admin API:
// account lookup and single-use action-link generation.
package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type LinkType string

const (
	LinkSignup   LinkType = "signup"
	LinkRecovery LinkType = "recovery"
)

// Provider is the slice of the identity provider this service needs.
type Provider interface {
	// UserExists reports whether an account is registered for email.
	UserExists(ctx context.Context, email string) (bool, error)

	// GenerateLink asks the provider for a single-use action URL of the
	// given type, redirecting to redirectTo once consumed.
	GenerateLink(ctx context.Context, t LinkType, email, redirectTo string) (string, error)
}

// Client implements Provider against a GoTrue-style admin API.
type Client struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
}

func NewClient(baseURL, serviceKey string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) UserExists(ctx context.Context, email string) (bool, error) {
	u := c.baseURL + "/admin/users/by-email?email=" + url.QueryEscape(email)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return false, err
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode == http.StatusOK:
		return true, nil
	case resp.StatusCode == http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("identity lookup: unexpected status %d", resp.StatusCode)
	}
}

type generateLinkRequest struct {
	Type       string `json:"type"`
	Email      string `json:"email"`
	RedirectTo string `json:"redirect_to,omitempty"`
}

type generateLinkResponse struct {
	ActionLink string `json:"action_link"`
	Message    string `json:"message"`
}

func (c *Client) GenerateLink(ctx context.Context, t LinkType, email, redirectTo string) (string, error) {
	b, err := json.Marshal(generateLinkRequest{
		Type:       string(t),
		Email:      email,
		RedirectTo: redirectTo,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/admin/generate_link", strings.NewReader(string(b)))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}

	var lr generateLinkResponse
	if err := json.Unmarshal(body, &lr); err != nil && resp.StatusCode < 300 {
		return "", fmt.Errorf("identity link decode: %w", err)
	}

	if resp.StatusCode >= 300 {
		if lr.Message != "" {
			return "", fmt.Errorf("identity link %d: %s", resp.StatusCode, lr.Message)
		}
		return "", fmt.Errorf("identity link: unexpected status %d", resp.StatusCode)
	}

	if lr.ActionLink == "" {
		return "", fmt.Errorf("identity link: empty action_link")
	}

	return lr.ActionLink, nil
}

func (c *Client) authorize(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("apikey", c.serviceKey)
}
