package ledger

import "errors"

var (
	ErrInvalidAmount   = errors.New("amount must be a positive number of milliliters")
	ErrInvalidGoal     = errors.New("daily goal must be a positive number of milliliters")
	ErrInvalidInterval = errors.New("reminder interval must be a positive number of minutes")
	ErrInvalidUnit     = errors.New("invalid display unit")

	// ErrPersistence wraps store failures. The in-memory change that triggered
	// the write has already been applied when it is returned.
	ErrPersistence = errors.New("persisting ledger state")
)
