package domain

import "errors"

var (
	// ErrSessionClosed is returned for any line submitted after the
	// sentinel ended the session. Recoverable only by a new session.
	ErrSessionClosed = errors.New("session is closed")

	// ErrSessionNotFound is returned by stores and status queries for
	// an id that has never been seen (or has been reset).
	ErrSessionNotFound = errors.New("session not found")

	// ErrUnknownAuthor is returned when an imitation assignment names
	// an author absent from the catalog. The session's target is left
	// unchanged.
	ErrUnknownAuthor = errors.New("unknown author")
)
