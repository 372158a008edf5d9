package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/chesscoach/chess-coach/backend/internal/model/chat"
)

// APIError is returned for non-2xx responses from the API server.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Detail)
}

// APIClient talks to the Chess Coach API over HTTP.
type APIClient struct {
	httpClient *http.Client
	server     string
}

// NewAPIClient creates a new API client
func NewAPIClient(server string) (*APIClient, error) {
	normalizedServer, err := normalizeServerURL(server)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL: %w", err)
	}

	return &APIClient{
		// Provider calls can be slow; the server imposes no timeout of its own.
		httpClient: &http.Client{Timeout: 2 * time.Minute},
		server:     normalizedServer,
	}, nil
}

// Server returns the normalized server URL.
func (c *APIClient) Server() string {
	return c.server
}

// normalizeServerURL ensures a scheme and drops any path or trailing slash.
func normalizeServerURL(server string) (string, error) {
	server = strings.TrimSpace(server)
	if !strings.Contains(server, "://") {
		server = "http://" + server
	}

	u, err := url.Parse(server)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("invalid server URL")
	}

	return fmt.Sprintf("%s://%s", u.Scheme, u.Host), nil
}

// SendMessage posts one chat message.
func (c *APIClient) SendMessage(ctx context.Context, userID, message string) (*chat.ChatResponse, error) {
	var out chat.ChatResponse
	if err := c.do(ctx, http.MethodPost, "/py-api/chat/message", chat.ChatRequest{Message: message, UserID: userID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Health calls GET /health.
func (c *APIClient) Health(ctx context.Context) (map[string]string, error) {
	out := map[string]string{}
	if err := c.do(ctx, http.MethodGet, "/health", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Opening calls GET /py-api/chess/opening/{name}.
func (c *APIClient) Opening(ctx context.Context, name string) (map[string]string, error) {
	out := map[string]string{}
	if err := c.do(ctx, http.MethodGet, "/py-api/chess/opening/"+url.PathEscape(name), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Analyze calls POST /py-api/chess/analyze.
func (c *APIClient) Analyze(ctx context.Context) (map[string]string, error) {
	out := map[string]string{}
	if err := c.do(ctx, http.MethodPost, "/py-api/chess/analyze", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *APIClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.server+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = res.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		var failure struct {
			Detail string `json:"detail"`
		}
		if json.Unmarshal(raw, &failure) != nil || failure.Detail == "" {
			failure.Detail = strings.TrimSpace(string(raw))
		}
		return &APIError{StatusCode: res.StatusCode, Detail: failure.Detail}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
