package sync

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/compasslearn/compass-backend/internal/types"
)

type recordingPusher struct {
	saved   []string
	cleared []string
	tracked []string
	err     error
}

func (p *recordingPusher) SaveUserChoice(ctx context.Context, userID string, payload json.RawMessage) error {
	p.saved = append(p.saved, userID)
	return p.err
}

func (p *recordingPusher) ClearUserChoices(ctx context.Context, userID string) error {
	p.cleared = append(p.cleared, userID)
	return p.err
}

func (p *recordingPusher) TrackActivity(ctx context.Context, userID string, payload json.RawMessage) error {
	p.tracked = append(p.tracked, userID)
	return p.err
}

func TestDispatchRoutesByKind(t *testing.T) {
	pusher := &recordingPusher{}
	w := &Worker{pusher: pusher}
	userID := uuid.New()

	entries := []*types.OutboxEntry{
		{ID: uuid.New(), UserID: userID, Kind: types.OutboxKindChoiceSave, Payload: []byte(`{}`)},
		{ID: uuid.New(), UserID: userID, Kind: types.OutboxKindChoicesClear, Payload: []byte(`{}`)},
		{ID: uuid.New(), UserID: userID, Kind: types.OutboxKindActivity, Payload: []byte(`{}`)},
	}
	for _, entry := range entries {
		if err := w.dispatch(context.Background(), entry); err != nil {
			t.Fatalf("dispatch %s: %v", entry.Kind, err)
		}
	}
	if len(pusher.saved) != 1 || len(pusher.cleared) != 1 || len(pusher.tracked) != 1 {
		t.Fatalf("dispatch counts: saved=%d cleared=%d tracked=%d", len(pusher.saved), len(pusher.cleared), len(pusher.tracked))
	}
}

func TestDispatchRejectsUnknownKind(t *testing.T) {
	w := &Worker{pusher: &recordingPusher{}}
	entry := &types.OutboxEntry{ID: uuid.New(), UserID: uuid.New(), Kind: "teleport"}
	if err := w.dispatch(context.Background(), entry); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestDispatchPropagatesPushFailure(t *testing.T) {
	pusher := &recordingPusher{err: errors.New("remote down")}
	w := &Worker{pusher: pusher}
	entry := &types.OutboxEntry{ID: uuid.New(), UserID: uuid.New(), Kind: types.OutboxKindChoiceSave, Payload: []byte(`{}`)}
	if err := w.dispatch(context.Background(), entry); err == nil {
		t.Fatal("expected push failure to propagate")
	}
}

func TestRetryBackoffDoublesAndCaps(t *testing.T) {
	cases := []struct {
		attempts int
		want     time.Duration
	}{
		{1, 30 * time.Second},
		{2, time.Minute},
		{3, 2 * time.Minute},
		{4, 4 * time.Minute},
		{5, 8 * time.Minute},
		{6, 10 * time.Minute},
		{20, 10 * time.Minute},
	}
	for _, tc := range cases {
		if got := retryBackoff(tc.attempts); got != tc.want {
			t.Fatalf("retryBackoff(%d) = %v, want %v", tc.attempts, got, tc.want)
		}
	}
}
