package crdt

import (
	"cmp"
	"errors"
	"fmt"
)

// ErrConflictingHistory is the sentinel ConflictingHistory errors wrap, so
// callers can test for the condition with errors.Is without depending on the
// concrete ConflictingHistory[A, K] type.
var ErrConflictingHistory = errors.New("conflicting history")

// ConflictingHistory reports that MergeDelta observed two entries sharing a
// (clock, actor) Lamport timestamp whose metadata disagrees. That can only
// happen if the same actor id produced two divergent histories, which
// violates the uniqueness invariant every CRDT in this package relies on.
type ConflictingHistory[A cmp.Ordered, K any] struct {
	Key       K
	Timestamp LamportTimestamp[A]
}

func (e *ConflictingHistory[A, K]) Error() string {
	return fmt.Sprintf("conflicting history for key %v at timestamp %v: same (clock, actor) pair produced divergent metadata", e.Key, e.Timestamp)
}

// Unwrap lets errors.Is(err, ErrConflictingHistory) succeed.
func (e *ConflictingHistory[A, K]) Unwrap() error {
	return ErrConflictingHistory
}
