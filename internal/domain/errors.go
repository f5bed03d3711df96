package domain

import "errors"

var (
	// ErrProtectedEntity rejects mutations against reserved records,
	// currently only deleting the default folder.
	ErrProtectedEntity = errors.New("default folder cannot be deleted")

	// ErrValidation rejects malformed import payloads before any merge
	// or write happens.
	ErrValidation = errors.New("invalid import payload")

	// ErrPlatformCapability reports a missing platform feature, e.g.
	// no readable browser bookmark tree. A sync aborting with this
	// error has written nothing.
	ErrPlatformCapability = errors.New("browser bookmark tree unavailable")

	// ErrNotFound is only used internally; delete of a missing id is a
	// silent no-op and never surfaces this to callers.
	ErrNotFound = errors.New("not found")
)
