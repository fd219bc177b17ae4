package profilesync

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// Client mirrors user choices and activity into the remote profile service.
// Writes go through the outbox worker; reads back remote state for reconciliation.
type Client struct {
	baseURL    string
	apiKey     string
	timeout    time.Duration
	httpClient *http.Client
}

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

func New(cfg Config) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("profilesync: base_url required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	tr := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:   true,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(cfg.APIKey),
		timeout:    timeout,
		httpClient: &http.Client{Transport: tr},
	}, nil
}

// NewWithHTTPClient is intended for tests; it avoids network access by using a custom RoundTripper.
func NewWithHTTPClient(cfg Config, httpClient *http.Client) (*Client, error) {
	c, err := New(cfg)
	if err != nil {
		return nil, err
	}
	if httpClient != nil {
		c.httpClient = httpClient
	}
	return c, nil
}

// RemoteChoice is one persisted choice as the remote profile service reports it.
type RemoteChoice struct {
	CareerCardID string    `json:"career_card_id"`
	Choice       string    `json:"choice"`
	ChosenAt     time.Time `json:"chosen_at"`
}

type envelope struct {
	Success bool            `json:"success"`
	Choices []RemoteChoice  `json:"choices,omitempty"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// SaveUserChoice pushes a single choice; the payload is the outbox entry body.
func (c *Client) SaveUserChoice(ctx context.Context, userID string, payload json.RawMessage) error {
	return c.post(ctx, "/api/users/"+userID+"/choices", payload)
}

// ClearUserChoices wipes all remote choices for the user.
func (c *Client) ClearUserChoices(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodDelete, "/api/users/"+userID+"/choices", nil, nil)
}

// TrackActivity forwards an activity event.
func (c *Client) TrackActivity(ctx context.Context, userID string, payload json.RawMessage) error {
	return c.post(ctx, "/api/users/"+userID+"/activity", payload)
}

// GetUserChoices reads the remote choice set, used to reconcile after outages.
func (c *Client) GetUserChoices(ctx context.Context, userID string) ([]RemoteChoice, error) {
	var out envelope
	if err := c.do(ctx, http.MethodGet, "/api/users/"+userID+"/choices", nil, &out); err != nil {
		return nil, err
	}
	if out.Choices == nil {
		return []RemoteChoice{}, nil
	}
	return out.Choices, nil
}

func (c *Client) post(ctx context.Context, path string, payload json.RawMessage) error {
	return c.do(ctx, http.MethodPost, path, payload, nil)
}

func (c *Client) do(ctx context.Context, method, path string, payload json.RawMessage, out *envelope) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("profilesync: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("profilesync: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("profilesync: %s %s status %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			return fmt.Errorf("profilesync: decode response: %w", err)
		}
		if !env.Success {
			msg := env.Error
			if msg == "" {
				msg = "remote reported failure"
			}
			return fmt.Errorf("profilesync: %s", msg)
		}
	}
	if out != nil {
		*out = env
	}
	return nil
}
