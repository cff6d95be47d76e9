package services

import (
	"encoding/json"
	"testing"
)

func TestChannelFor(t *testing.T) {
	if got := ChannelFor("ab-12"); got != "session:ab-12" {
		t.Fatalf("expected session:ab-12, got %s", got)
	}
}

func TestStateEventWireShape(t *testing.T) {
	event := StateEvent{
		SessionID:    "ab-12",
		Status:       "active",
		CurrentRound: 2,
		Kind:         ChangeDraw,
		Timestamp:    1700000000000,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	// Subscribers depend on these keys; the payload carries nothing else
	// they could mistake for authoritative state.
	var decoded map[string]any
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"session_id", "status", "current_round", "kind", "ts"} {
		if _, ok := decoded[key]; !ok {
			t.Fatalf("payload missing key %q", key)
		}
	}
	if len(decoded) != 5 {
		t.Fatalf("payload must stay minimal, got %d keys", len(decoded))
	}
}
