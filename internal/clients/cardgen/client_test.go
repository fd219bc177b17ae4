package cardgen

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(t *testing.T, fn roundTripperFunc) *Client {
	t.Helper()
	c, err := NewWithHTTPClient(Config{
		BaseURL: "https://generator.test",
		APIKey:  "test-key",
	}, &http.Client{Transport: fn})
	if err != nil {
		t.Fatalf("NewWithHTTPClient: %v", err)
	}
	return c
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestGenerateCardsSendsRequestAndDecodes(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody generateRequest

	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode request body: %v", err)
		}
		return jsonResponse(http.StatusOK, `{
			"success": true,
			"cards": [{
				"title": "Data Scientist",
				"domain": "Technology",
				"description": "Find signal in data.",
				"core_skills": ["Python", "Statistics"],
				"skill_categories": ["Analytics"],
				"difficulty": "intermediate",
				"growth": 36
			}]
		}`), nil
	})

	cards, err := c.GenerateCards(context.Background(), "Technology", UserProfile{Interests: []string{"ml"}}, 5)
	if err != nil {
		t.Fatalf("GenerateCards: %v", err)
	}
	if gotPath != "/api/career/cards/generate" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("authorization = %q", gotAuth)
	}
	if gotBody.Domain != "Technology" || gotBody.Count != 5 {
		t.Fatalf("request body = %+v", gotBody)
	}
	if len(cards) != 1 || cards[0].Title != "Data Scientist" || cards[0].Growth != 36 {
		t.Fatalf("cards = %+v", cards)
	}
}

func TestGenerateCardsSurfacesEnvelopeFailure(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"success": false, "cards": [], "error": "model overloaded"}`), nil
	})

	cards, err := c.GenerateCards(context.Background(), "Technology", UserProfile{}, 3)
	if err == nil {
		t.Fatal("expected error from failure envelope")
	}
	if !strings.Contains(err.Error(), "model overloaded") {
		t.Fatalf("error = %v", err)
	}
	if len(cards) != 0 {
		t.Fatalf("expected no cards, got %d", len(cards))
	}
}

func TestGenerateCardsSurfacesHTTPError(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusBadGateway, `upstream down`), nil
	})

	if _, err := c.GenerateCards(context.Background(), "Technology", UserProfile{}, 3); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}

func TestGenerateCardsZeroCountShortCircuits(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		t.Fatal("no request expected for count 0")
		return nil, nil
	})

	cards, err := c.GenerateCards(context.Background(), "Technology", UserProfile{}, 0)
	if err != nil {
		t.Fatalf("GenerateCards: %v", err)
	}
	if len(cards) != 0 {
		t.Fatalf("cards = %+v", cards)
	}
}
