package crdt

// Replicable is implemented by every CRDT in this package. Merged returns
// the join of the receiver and other as a new value; it never fails, and
// for conforming implementations it is idempotent, commutative, and
// associative:
//
//	a.Merged(a)                   == a
//	a.Merged(b)                   == b.Merged(a)
//	a.Merged(b).Merged(c)         == a.Merged(b.Merged(c))
//
// Equality above means observable value, not necessarily identical internal
// bookkeeping.
type Replicable[T any] interface {
	Merged(other T) T
}

// DeltaCRDT refines Replicable with the minimal-state/delta protocol: State
// is a compact summary cheap to exchange, Delta computes only what a peer
// holding a given remote State is missing, and MergeDelta folds a delta back
// in. For any a, b with non-conflicting histories:
//
//	a.MergeDelta(b.Delta(a.State())).Value() == a.Merged(b).Value()
//
// MergeDelta mutates the receiver in place and may fail with a
// ConflictingHistory error in cases Merged resolves silently by picking the
// higher timestamp.
type DeltaCRDT[T any, State any, Delta any] interface {
	Replicable[T]

	// State returns a compact per-actor summary, O(metadata size) to build.
	State() State

	// Delta returns only the entries remote cannot yet have, or nil if
	// remote is already fully caught up ("nothing to send"). A nil remote
	// means "send everything".
	Delta(remote *State) *Delta

	// MergeDelta applies delta to the receiver in place.
	MergeDelta(delta Delta) error
}
