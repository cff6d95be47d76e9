package game

// SessionStatus is the closed set of session states. Stored as a string
// column but only ever written through Transition.
type SessionStatus string

const (
	StatusDraft    SessionStatus = "draft"
	StatusWaiting  SessionStatus = "waiting"
	StatusActive   SessionStatus = "active"
	StatusFinished SessionStatus = "finished"
)

// Event is a requested state-machine transition.
type Event string

const (
	EventOpen         Event = "open"
	EventStart        Event = "start"
	EventAdvanceRound Event = "advance_round"
	EventFinish       Event = "finish"
	EventAbandon      Event = "abandon"
)

// transitions maps (status, event) to the resulting status. Anything not
// in the table is an invalid transition. advance_round keeps the session
// active; round bookkeeping happens in the service layer.
var transitions = map[SessionStatus]map[Event]SessionStatus{
	StatusDraft: {
		EventOpen:    StatusWaiting,
		EventFinish:  StatusFinished,
		EventAbandon: StatusFinished,
	},
	StatusWaiting: {
		EventStart:   StatusActive,
		EventFinish:  StatusFinished,
		EventAbandon: StatusFinished,
	},
	StatusActive: {
		EventAdvanceRound: StatusActive,
		EventFinish:       StatusFinished,
		EventAbandon:      StatusFinished,
	},
	StatusFinished: {},
}

// NextStatus resolves an event against the transition table. Finalizing an
// already-finished session is the one idempotent case: it reports
// ErrAlreadyFinished so callers can return the existing record unchanged
// instead of failing the request.
func NextStatus(current SessionStatus, event Event) (SessionStatus, error) {
	if current == StatusFinished && (event == EventFinish || event == EventAbandon) {
		return StatusFinished, ErrAlreadyFinished
	}
	next, ok := transitions[current][event]
	if !ok {
		return current, ErrInvalidTransition
	}
	return next, nil
}

// IsTerminal reports whether no further transitions are possible.
func IsTerminal(s SessionStatus) bool {
	return s == StatusFinished
}
