package game

import (
	"errors"
	"testing"
)

func TestNextStatusLegalPath(t *testing.T) {
	steps := []struct {
		event Event
		want  SessionStatus
	}{
		{EventOpen, StatusWaiting},
		{EventStart, StatusActive},
		{EventAdvanceRound, StatusActive},
		{EventAdvanceRound, StatusActive},
		{EventFinish, StatusFinished},
	}

	current := StatusDraft
	for _, step := range steps {
		next, err := NextStatus(current, step.event)
		if err != nil {
			t.Fatalf("event %s from %s should be legal: %v", step.event, current, err)
		}
		if next != step.want {
			t.Fatalf("event %s from %s: expected %s, got %s", step.event, current, step.want, next)
		}
		current = next
	}
}

func TestNextStatusRejectsIllegalTransitions(t *testing.T) {
	cases := []struct {
		status SessionStatus
		event  Event
	}{
		{StatusDraft, EventStart},
		{StatusDraft, EventAdvanceRound},
		{StatusWaiting, EventOpen},
		{StatusWaiting, EventAdvanceRound},
		{StatusActive, EventOpen},
		{StatusActive, EventStart},
		{StatusFinished, EventOpen},
		{StatusFinished, EventStart},
		{StatusFinished, EventAdvanceRound},
	}

	for _, c := range cases {
		if _, err := NextStatus(c.status, c.event); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("event %s from %s: expected ErrInvalidTransition, got %v", c.event, c.status, err)
		}
	}
}

func TestNextStatusNeverRegresses(t *testing.T) {
	order := map[SessionStatus]int{
		StatusDraft:    0,
		StatusWaiting:  1,
		StatusActive:   2,
		StatusFinished: 3,
	}

	statuses := []SessionStatus{StatusDraft, StatusWaiting, StatusActive, StatusFinished}
	events := []Event{EventOpen, EventStart, EventAdvanceRound, EventFinish, EventAbandon}

	for _, status := range statuses {
		for _, event := range events {
			next, err := NextStatus(status, event)
			if err != nil {
				continue
			}
			if order[next] < order[status] {
				t.Fatalf("event %s moved %s backwards to %s", event, status, next)
			}
		}
	}
}

func TestEarlyAbandonJumpsToFinished(t *testing.T) {
	for _, status := range []SessionStatus{StatusDraft, StatusWaiting, StatusActive} {
		next, err := NextStatus(status, EventAbandon)
		if err != nil {
			t.Fatalf("abandon from %s should be legal: %v", status, err)
		}
		if next != StatusFinished {
			t.Fatalf("abandon from %s: expected finished, got %s", status, next)
		}
	}
}

func TestFinalizeTwiceIsIdempotentNoOp(t *testing.T) {
	for _, event := range []Event{EventFinish, EventAbandon} {
		next, err := NextStatus(StatusFinished, event)
		if !errors.Is(err, ErrAlreadyFinished) {
			t.Fatalf("%s on finished: expected ErrAlreadyFinished, got %v", event, err)
		}
		if next != StatusFinished {
			t.Fatalf("%s on finished: status must stay finished, got %s", event, next)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	if !IsTerminal(StatusFinished) {
		t.Fatal("finished should be terminal")
	}
	for _, status := range []SessionStatus{StatusDraft, StatusWaiting, StatusActive} {
		if IsTerminal(status) {
			t.Fatalf("%s should not be terminal", status)
		}
	}
}
