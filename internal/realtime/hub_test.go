package realtime

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/compasslearn/compass-backend/internal/pkg/logger"
)

func mustTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	t.Cleanup(log.Sync)
	return log
}

func recvMessage(t *testing.T, ch <-chan SSEMessage, timeout time.Duration) SSEMessage {
	t.Helper()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for SSE message")
	}
	return SSEMessage{}
}

func TestSSEHubDeliversInOrderAndSurvivesReconnect(t *testing.T) {
	hub := NewSSEHub(mustTestLogger(t))
	userID := uuid.New()
	channel := UserChannel(userID)

	clientA := hub.NewSSEClient(userID)
	hub.AddChannel(clientA, channel)

	first := SSEMessage{Channel: channel, Event: SSEEventRoadmapGenerated, Data: map[string]any{"seq": 1}}
	second := SSEMessage{Channel: channel, Event: SSEEventProfileSynced, Data: map[string]any{"seq": 2}}
	hub.Broadcast(first)
	hub.Broadcast(second)

	gotFirst := recvMessage(t, clientA.Outbound, time.Second)
	gotSecond := recvMessage(t, clientA.Outbound, time.Second)
	if gotFirst.Event != SSEEventRoadmapGenerated {
		t.Fatalf("first event: want=%s got=%s", SSEEventRoadmapGenerated, gotFirst.Event)
	}
	if gotSecond.Event != SSEEventProfileSynced {
		t.Fatalf("second event: want=%s got=%s", SSEEventProfileSynced, gotSecond.Event)
	}

	hub.CloseClient(clientA)
	select {
	case _, ok := <-clientA.Outbound:
		if ok {
			t.Fatalf("clientA outbound should be closed after disconnect")
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatalf("timed out waiting for clientA channel close")
	}

	clientB := hub.NewSSEClient(userID)
	hub.AddChannel(clientB, channel)
	reconnect := SSEMessage{Channel: channel, Event: SSEEventChoicesCleared, Data: map[string]any{"seq": 3}}
	hub.Broadcast(reconnect)
	gotReconnect := recvMessage(t, clientB.Outbound, time.Second)
	if gotReconnect.Event != SSEEventChoicesCleared {
		t.Fatalf("reconnect event: want=%s got=%s", SSEEventChoicesCleared, gotReconnect.Event)
	}
}

// A session reconnect closes the replaced client twice: once from the new
// stream's goroutine and once when the old stream unwinds. Neither call may
// panic or disturb the surviving client's subscription.
func TestSSEHubCloseClientIsIdempotent(t *testing.T) {
	hub := NewSSEHub(mustTestLogger(t))
	userID := uuid.New()
	channel := UserChannel(userID)

	replaced := hub.NewSSEClient(userID)
	hub.AddChannel(replaced, channel)
	hub.CloseClient(replaced)

	replacement := hub.NewSSEClient(userID)
	hub.AddChannel(replacement, channel)

	// the replaced stream's own exit path
	hub.CloseClient(replaced)

	hub.Broadcast(SSEMessage{Channel: channel, Event: SSEEventRoadmapGenerated})
	got := recvMessage(t, replacement.Outbound, time.Second)
	if got.Event != SSEEventRoadmapGenerated {
		t.Fatalf("replacement event: want=%s got=%s", SSEEventRoadmapGenerated, got.Event)
	}

	select {
	case _, ok := <-replaced.Outbound:
		if ok {
			t.Fatalf("replaced outbound should be closed")
		}
	default:
		t.Fatalf("replaced outbound should be closed, not empty-open")
	}
}

func TestSSEHubIsolatesUserChannels(t *testing.T) {
	hub := NewSSEHub(mustTestLogger(t))
	userA := uuid.New()
	userB := uuid.New()

	clientA := hub.NewSSEClient(userA)
	clientB := hub.NewSSEClient(userB)
	hub.AddChannel(clientA, UserChannel(userA))
	hub.AddChannel(clientB, UserChannel(userB))

	hub.Broadcast(SSEMessage{Channel: UserChannel(userA), Event: SSEEventRoadmapGenerated})

	got := recvMessage(t, clientA.Outbound, time.Second)
	if got.Event != SSEEventRoadmapGenerated {
		t.Fatalf("event = %s", got.Event)
	}
	select {
	case msg := <-clientB.Outbound:
		t.Fatalf("clientB should not receive userA events, got %+v", msg)
	case <-time.After(100 * time.Millisecond):
	}
}
