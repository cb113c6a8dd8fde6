package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// ProviderClient talks to a Resend-style REST delivery API.
type ProviderClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewProviderClient builds a client honoring the provider's requests-per-
// second cap. rps <= 0 disables the throttle.
func NewProviderClient(baseURL, apiKey string, rps float64) *ProviderClient {
	var limiter *rate.Limiter
	if rps > 0 {
		limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
	return &ProviderClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		limiter: limiter,
	}
}

type providerRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

type providerResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// Send submits one email. Non-2xx responses surface the provider's error
// message; the caller decides what to log and what to expose.
func (c *ProviderClient) Send(ctx context.Context, msg Message) (string, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	b, err := json.Marshal(providerRequest{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		HTML:    msg.HTML,
		ReplyTo: msg.ReplyTo,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}

	var pr providerResponse
	if err := json.Unmarshal(body, &pr); err != nil && resp.StatusCode < 300 {
		return "", fmt.Errorf("provider response decode: %w", err)
	}

	if resp.StatusCode >= 300 {
		if pr.Message != "" {
			return "", fmt.Errorf("provider %d: %s", resp.StatusCode, pr.Message)
		}
		return "", fmt.Errorf("provider %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}

	if pr.ID == "" {
		return "", fmt.Errorf("provider returned no message id")
	}

	return pr.ID, nil
}
