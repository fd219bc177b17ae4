package cardgen

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

// Client talks to the external career-card generator. The generator owns
// card content; this service only persists and orders what comes back.
type Client struct {
	baseURL      string
	apiKey       string
	generatePath string
	timeout      time.Duration
	httpClient   *http.Client
}

type Config struct {
	BaseURL      string
	APIKey       string
	GeneratePath string
	Timeout      time.Duration
}

func New(cfg Config) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("cardgen: base_url required")
	}

	generatePath := strings.TrimSpace(cfg.GeneratePath)
	if generatePath == "" {
		generatePath = "/api/career/cards/generate"
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
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
		baseURL:      baseURL,
		apiKey:       strings.TrimSpace(cfg.APIKey),
		generatePath: generatePath,
		timeout:      timeout,
		httpClient:   &http.Client{Transport: tr},
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

// UserProfile is the slice of user state the generator conditions on.
type UserProfile struct {
	Interests []string `json:"interests,omitempty"`
	FirstName string   `json:"first_name,omitempty"`
}

// GeneratedCard mirrors one card in the generator's response envelope.
type GeneratedCard struct {
	Title           string         `json:"title"`
	Domain          string         `json:"domain"`
	Description     string         `json:"description"`
	CoreSkills      []string       `json:"core_skills"`
	SkillCategories []string       `json:"skill_categories"`
	Difficulty      string         `json:"difficulty"`
	Growth          int            `json:"growth"`
	Details         map[string]any `json:"details,omitempty"`
}

type generateRequest struct {
	Domain      string      `json:"domain"`
	UserProfile UserProfile `json:"userProfile"`
	Count       int         `json:"count"`
}

type generateResponse struct {
	Success bool            `json:"success"`
	Cards   []GeneratedCard `json:"cards"`
	Error   string          `json:"error,omitempty"`
}

// GenerateCards requests count cards for a domain. A non-success envelope or
// transport failure is returned as an error; there is no retry here.
func (c *Client) GenerateCards(ctx context.Context, domain string, profile UserProfile, count int) ([]GeneratedCard, error) {
	if count <= 0 {
		return []GeneratedCard{}, nil
	}

	body, err := json.Marshal(generateRequest{Domain: domain, UserProfile: profile, Count: count})
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+c.generatePath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cardgen: generate request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("cardgen: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cardgen: generate status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var out generateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("cardgen: decode response: %w", err)
	}
	if !out.Success {
		msg := out.Error
		if msg == "" {
			msg = "generator reported failure"
		}
		return nil, fmt.Errorf("cardgen: %s", msg)
	}
	return out.Cards, nil
}
