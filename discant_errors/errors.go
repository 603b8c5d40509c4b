// Provides common discant errors definitions.
package discant_errors

import "errors"

var (
	ErrInvalidID    = errors.New("discant: no record with that id")
	ErrStaleVersion = errors.New("discant: version token is stale")
	ErrLockPoisoned = errors.New("discant: lock poisoned by an earlier panic")
	ErrAuditLog     = errors.New("discant: audit log rejected the entry")

	ErrInvalidLocal    = errors.New("discant: unknown locale id")
	ErrInvalidTag      = errors.New("discant: unknown tag id")
	ErrInvalidTrackRef = errors.New("discant: track ref does not resolve")
	ErrInvalidRelation = errors.New("discant: relation target is invalid")
	ErrTrackExists     = errors.New("discant: track number already taken")

	ErrClosed   = errors.New("discant: store or log is closed")
	ErrBadEntry = errors.New("discant: undecodable audit entry")
)
