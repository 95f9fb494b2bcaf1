package crdt

import "cmp"

// ORSet is an observed-remove set: logical membership of v is "metadata[v]
// exists and is not tombstoned". Tombstones are retained (no physical
// removal) so that concurrent re-inserts preserve observed-remove semantics.
type ORSet[A cmp.Ordered, T comparable] struct {
	engine *orEngine[A, T, struct{}]
}

// NewORSet creates an ORSet bound to actor (this replica's id), with its
// Lamport clock starting at clock.
func NewORSet[A cmp.Ordered, T comparable](actor A, clock uint64) *ORSet[A, T] {
	return &ORSet[A, T]{
		engine: newOrEngine[A, T, struct{}](actor, clock, func(struct{}, struct{}) bool { return true }),
	}
}

// Insert adds v, reporting whether it was absent or tombstoned before.
func (s *ORSet[A, T]) Insert(v T) bool {
	return s.engine.set(v, struct{}{})
}

// Remove tombstones v if currently present, reporting whether it was
// removed.
func (s *ORSet[A, T]) Remove(v T) bool {
	_, removed := s.engine.unset(v)
	return removed
}

// Contains reports whether v is logically present.
func (s *ORSet[A, T]) Contains(v T) bool {
	return s.engine.contains(v)
}

// Values returns every non-tombstoned element. Order is unspecified.
func (s *ORSet[A, T]) Values() []T {
	return s.engine.keys()
}

// Count is len(Values()).
func (s *ORSet[A, T]) Count() int {
	return s.engine.count()
}

// ORSetState is the per-actor highest-clock summary exchanged to negotiate
// a delta.
type ORSetState[A cmp.Ordered] orState[A]

// State returns the highest clock this ORSet has observed for each actor.
func (s *ORSet[A, T]) State() ORSetState[A] {
	return ORSetState[A](s.engine.state())
}

// ORSetDeltaEntry pairs an element with its observed-remove metadata.
type ORSetDeltaEntry[A cmp.Ordered, T comparable] struct {
	Element T
	Deleted bool
	Ts      LamportTimestamp[A]
}

// ORSetDelta carries only the metadata entries a remote summary is missing.
type ORSetDelta[A cmp.Ordered, T comparable] struct {
	Entries []ORSetDeltaEntry[A, T]
}

// Delta returns entries whose actor is unknown to remote, or whose clock
// exceeds remote's value for that actor. A nil remote means "send
// everything". A nil return means "no changes".
func (s *ORSet[A, T]) Delta(remote *ORSetState[A]) *ORSetDelta[A, T] {
	var raw *orState[A]
	if remote != nil {
		converted := orState[A](*remote)
		raw = &converted
	}
	entries := s.engine.delta(raw)
	if len(entries) == 0 {
		return nil
	}
	out := make([]ORSetDeltaEntry[A, T], len(entries))
	for i, de := range entries {
		out[i] = ORSetDeltaEntry[A, T]{Element: de.Key, Deleted: de.Entry.Deleted, Ts: de.Entry.Ts}
	}
	return &ORSetDelta[A, T]{Entries: out}
}

// Merged returns a new ORSet holding, for each element present on either
// side, the metadata with the higher Lamport timestamp. Never fails.
func (s *ORSet[A, T]) Merged(other *ORSet[A, T]) *ORSet[A, T] {
	return &ORSet[A, T]{engine: s.engine.merged(other.engine)}
}

// MergeDelta applies delta in place: equal timestamps with disagreeing
// deleted flags raise ConflictingHistory; a strictly greater remote
// timestamp overwrites; a strictly lesser one is kept local.
func (s *ORSet[A, T]) MergeDelta(delta ORSetDelta[A, T]) error {
	entries := make([]orDeltaEntry[A, T, struct{}], len(delta.Entries))
	for i, de := range delta.Entries {
		entries[i] = orDeltaEntry[A, T, struct{}]{Key: de.Element, Entry: orEntry[A, struct{}]{Deleted: de.Deleted, Ts: de.Ts}}
	}
	return s.engine.mergeDelta(entries)
}

// ORSetSnapshot is the full exported state of an ORSet, for use by an
// external codec that needs to reconstruct an equivalent instance.
type ORSetSnapshot[A cmp.Ordered, T comparable] struct {
	Actor   A
	Current LamportTimestamp[A]
	Entries []ORSetDeltaEntry[A, T]
}

// Snapshot exports the full internal state for serialization.
func (s *ORSet[A, T]) Snapshot() ORSetSnapshot[A, T] {
	entries := make([]ORSetDeltaEntry[A, T], 0, len(s.engine.entries))
	for key, entry := range s.engine.entries {
		entries = append(entries, ORSetDeltaEntry[A, T]{Element: key, Deleted: entry.Deleted, Ts: entry.Ts})
	}
	return ORSetSnapshot[A, T]{Actor: s.engine.actor, Current: s.engine.current, Entries: entries}
}

// ORSetFromSnapshot rebuilds an ORSet from a previously exported Snapshot.
func ORSetFromSnapshot[A cmp.Ordered, T comparable](snap ORSetSnapshot[A, T]) *ORSet[A, T] {
	s := NewORSet[A, T](snap.Actor, snap.Current.Clock)
	s.engine.current = snap.Current
	for _, e := range snap.Entries {
		s.engine.entries[e.Element] = orEntry[A, struct{}]{Deleted: e.Deleted, Ts: e.Ts}
	}
	return s
}

var (
	_ Replicable[*ORSet[string, string]]                                                = (*ORSet[string, string])(nil)
	_ DeltaCRDT[*ORSet[string, string], ORSetState[string], ORSetDelta[string, string]] = (*ORSet[string, string])(nil)
)
