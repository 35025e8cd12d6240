package service

import "errors"

// Recoverable quiz errors. The handler turns these into guidance messages;
// none of them mutate session state.
var (
	// ErrInvalidLimit means the user-supplied question count is not a
	// parseable non-negative integer.
	ErrInvalidLimit = errors.New("question limit must be a non-negative integer")

	// ErrLimitAlreadySet means the session is already configured; the limit
	// is fixed once set.
	ErrLimitAlreadySet = errors.New("question limit already set")

	// ErrNoSession means the user has no active session.
	ErrNoSession = errors.New("no active quiz session")

	// ErrNoActiveQuestion means no question is outstanding for the user,
	// either because there is no session or because it is not in progress.
	ErrNoActiveQuestion = errors.New("no question awaiting an answer")
)
