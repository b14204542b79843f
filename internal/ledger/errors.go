package ledger

import "errors"

var (
	// ErrTableNotFound means no table on the page scored above the
	// selection threshold.
	ErrTableNotFound = errors.New("no payment table found")

	// ErrNotFound means an edit or delete referenced an unknown row id.
	ErrNotFound = errors.New("row not found")

	// ErrSessionNotFound means the session id is unknown or expired.
	ErrSessionNotFound = errors.New("session expired or invalid")

	// ErrInvalidEdit means a field value failed validation; the result set
	// was left unchanged.
	ErrInvalidEdit = errors.New("invalid edit")
)
