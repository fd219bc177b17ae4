package profilesync

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(t *testing.T, fn roundTripperFunc) *Client {
	t.Helper()
	c, err := NewWithHTTPClient(Config{
		BaseURL: "https://profiles.test",
		APIKey:  "sync-key",
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

func TestSaveUserChoicePostsPayload(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]any

	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode request body: %v", err)
		}
		return jsonResponse(http.StatusOK, `{"success": true}`), nil
	})

	payload := json.RawMessage(`{"career_card_id":"abc","choice":"interested"}`)
	if err := c.SaveUserChoice(context.Background(), "user-1", payload); err != nil {
		t.Fatalf("SaveUserChoice: %v", err)
	}
	if gotMethod != http.MethodPost || gotPath != "/api/users/user-1/choices" {
		t.Fatalf("request = %s %s", gotMethod, gotPath)
	}
	if gotBody["choice"] != "interested" {
		t.Fatalf("body = %+v", gotBody)
	}
}

func TestClearUserChoicesUsesDelete(t *testing.T) {
	var gotMethod, gotPath string
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		return jsonResponse(http.StatusOK, `{"success": true}`), nil
	})

	if err := c.ClearUserChoices(context.Background(), "user-1"); err != nil {
		t.Fatalf("ClearUserChoices: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/api/users/user-1/choices" {
		t.Fatalf("request = %s %s", gotMethod, gotPath)
	}
}

func TestGetUserChoicesDecodesList(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{
			"success": true,
			"choices": [
				{"career_card_id": "card-1", "choice": "interested", "chosen_at": "2026-01-10T12:00:00Z"},
				{"career_card_id": "card-2", "choice": "maybe", "chosen_at": "2026-01-11T09:30:00Z"}
			]
		}`), nil
	})

	choices, err := c.GetUserChoices(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetUserChoices: %v", err)
	}
	if len(choices) != 2 {
		t.Fatalf("len(choices) = %d", len(choices))
	}
	if choices[0].CareerCardID != "card-1" || choices[0].Choice != "interested" {
		t.Fatalf("choices[0] = %+v", choices[0])
	}
	want := time.Date(2026, 1, 11, 9, 30, 0, 0, time.UTC)
	if !choices[1].ChosenAt.Equal(want) {
		t.Fatalf("chosen_at = %v", choices[1].ChosenAt)
	}
}

func TestEnvelopeFailureBecomesError(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"success": false, "error": "user suspended"}`), nil
	})

	err := c.TrackActivity(context.Background(), "user-1", json.RawMessage(`{"type":"view"}`))
	if err == nil || !strings.Contains(err.Error(), "user suspended") {
		t.Fatalf("err = %v", err)
	}
}

func TestNon2xxBecomesError(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusServiceUnavailable, `busy`), nil
	})

	if _, err := c.GetUserChoices(context.Background(), "user-1"); err == nil {
		t.Fatal("expected error for 503")
	}
}
