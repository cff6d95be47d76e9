package game

import "errors"

var (
	// Policy violations: reported to the caller, never retried.
	ErrInvalidTransition = errors.New("transition not allowed from current status")
	ErrRoundNotResolved  = errors.New("round has unsettled prizes")
	ErrRoundExhausted    = errors.New("all 75 numbers drawn this round")
	ErrSessionNotActive  = errors.New("session is not active")
	ErrPrizeAlreadyWon   = errors.New("prize already won this round")
	ErrNotMember         = errors.New("player has not joined this session")
	ErrClaimRejected     = errors.New("claimed numbers are not all drawn")
	ErrNoPlayers         = errors.New("session has no joined players")

	// Idempotent no-op: finalize raced with an earlier finalize. Callers
	// return the existing record, they do not surface a failure.
	ErrAlreadyFinished = errors.New("session already finished")
)
