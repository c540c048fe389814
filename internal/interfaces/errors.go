package interfaces

import "errors"

var (
	// ErrStoreNotFound reports that a backing store file does not exist.
	// Callers decide what that means: registration creates the store,
	// views present it as "no records yet", login reports it and ends.
	ErrStoreNotFound = errors.New("backing store not found")

	// ErrIndexOutOfRange reports a record index outside the store.
	ErrIndexOutOfRange = errors.New("record index out of range")
)
