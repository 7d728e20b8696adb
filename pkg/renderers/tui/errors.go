package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNoRoutes is returned when the reference has nothing to browse.
	ErrNoRoutes = errors.New("tui: reference has no routes")
)
