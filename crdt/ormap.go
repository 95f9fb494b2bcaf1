package crdt

import "cmp"

// ORMap is an observed-remove map: the same skeleton as ORSet, but each
// key's metadata also carries the key's current value. Logical presence of
// key is "metadata[key] exists and is not tombstoned".
type ORMap[A cmp.Ordered, K comparable, V comparable] struct {
	engine *orEngine[A, K, V]
}

// NewORMap creates an ORMap bound to actor (this replica's id), with its
// Lamport clock starting at clock.
func NewORMap[A cmp.Ordered, K comparable, V comparable](actor A, clock uint64) *ORMap[A, K, V] {
	return &ORMap[A, K, V]{
		engine: newOrEngine[A, K, V](actor, clock, func(a, b V) bool { return a == b }),
	}
}

// Set assigns value to key.
func (m *ORMap[A, K, V]) Set(key K, value V) {
	m.engine.set(key, value)
}

// Unset tombstones key if currently present, returning its last value and
// whether it was removed.
func (m *ORMap[A, K, V]) Unset(key K) (V, bool) {
	return m.engine.unset(key)
}

// Get returns key's value if present.
func (m *ORMap[A, K, V]) Get(key K) (V, bool) {
	return m.engine.get(key)
}

// Has reports whether key is logically present.
func (m *ORMap[A, K, V]) Has(key K) bool {
	return m.engine.contains(key)
}

// Keys returns every non-tombstoned key. Order is unspecified.
func (m *ORMap[A, K, V]) Keys() []K {
	return m.engine.keys()
}

// Values returns the value of every non-tombstoned entry. Order is
// unspecified and does not correspond to Keys().
func (m *ORMap[A, K, V]) Values() []V {
	values := make([]V, 0, len(m.engine.entries))
	for _, entry := range m.engine.entries {
		if !entry.Deleted {
			values = append(values, entry.Value)
		}
	}
	return values
}

// Count is len(Keys()).
func (m *ORMap[A, K, V]) Count() int {
	return m.engine.count()
}

// ORMapState is the per-actor highest-clock summary exchanged to negotiate
// a delta.
type ORMapState[A cmp.Ordered] orState[A]

// State returns the highest clock this ORMap has observed for each actor.
func (m *ORMap[A, K, V]) State() ORMapState[A] {
	return ORMapState[A](m.engine.state())
}

// ORMapDeltaEntry pairs a key with its observed-remove metadata, including
// its value so a remote's MergeDelta can compare it for conflicts even on
// a tombstoned entry.
type ORMapDeltaEntry[A cmp.Ordered, K comparable, V comparable] struct {
	Key     K
	Deleted bool
	Ts      LamportTimestamp[A]
	Value   V
}

// ORMapDelta carries only the metadata entries a remote summary is missing.
type ORMapDelta[A cmp.Ordered, K comparable, V comparable] struct {
	Entries []ORMapDeltaEntry[A, K, V]
}

// Delta returns entries whose actor is unknown to remote, or whose clock
// exceeds remote's value for that actor. A nil remote means "send
// everything". A nil return means "no changes".
func (m *ORMap[A, K, V]) Delta(remote *ORMapState[A]) *ORMapDelta[A, K, V] {
	var raw *orState[A]
	if remote != nil {
		converted := orState[A](*remote)
		raw = &converted
	}
	entries := m.engine.delta(raw)
	if len(entries) == 0 {
		return nil
	}
	out := make([]ORMapDeltaEntry[A, K, V], len(entries))
	for i, de := range entries {
		out[i] = ORMapDeltaEntry[A, K, V]{Key: de.Key, Deleted: de.Entry.Deleted, Ts: de.Entry.Ts, Value: de.Entry.Value}
	}
	return &ORMapDelta[A, K, V]{Entries: out}
}

// Merged returns a new ORMap holding, for each key present on either side,
// the metadata with the higher Lamport timestamp. Never fails.
func (m *ORMap[A, K, V]) Merged(other *ORMap[A, K, V]) *ORMap[A, K, V] {
	return &ORMap[A, K, V]{engine: m.engine.merged(other.engine)}
}

// MergeDelta applies delta in place: equal timestamps with disagreeing
// deleted flags or values raise ConflictingHistory; a strictly greater
// remote timestamp overwrites; a strictly lesser one is kept local.
func (m *ORMap[A, K, V]) MergeDelta(delta ORMapDelta[A, K, V]) error {
	entries := make([]orDeltaEntry[A, K, V], len(delta.Entries))
	for i, de := range delta.Entries {
		entries[i] = orDeltaEntry[A, K, V]{Key: de.Key, Entry: orEntry[A, V]{Deleted: de.Deleted, Ts: de.Ts, Value: de.Value}}
	}
	return m.engine.mergeDelta(entries)
}

// ORMapSnapshot is the full exported state of an ORMap, for use by an
// external codec that needs to reconstruct an equivalent instance.
type ORMapSnapshot[A cmp.Ordered, K comparable, V comparable] struct {
	Actor   A
	Current LamportTimestamp[A]
	Entries []ORMapDeltaEntry[A, K, V]
}

// Snapshot exports the full internal state for serialization.
func (m *ORMap[A, K, V]) Snapshot() ORMapSnapshot[A, K, V] {
	entries := make([]ORMapDeltaEntry[A, K, V], 0, len(m.engine.entries))
	for key, entry := range m.engine.entries {
		entries = append(entries, ORMapDeltaEntry[A, K, V]{Key: key, Deleted: entry.Deleted, Ts: entry.Ts, Value: entry.Value})
	}
	return ORMapSnapshot[A, K, V]{Actor: m.engine.actor, Current: m.engine.current, Entries: entries}
}

// ORMapFromSnapshot rebuilds an ORMap from a previously exported Snapshot.
func ORMapFromSnapshot[A cmp.Ordered, K comparable, V comparable](snap ORMapSnapshot[A, K, V]) *ORMap[A, K, V] {
	m := NewORMap[A, K, V](snap.Actor, snap.Current.Clock)
	m.engine.current = snap.Current
	for _, e := range snap.Entries {
		m.engine.entries[e.Key] = orEntry[A, V]{Deleted: e.Deleted, Ts: e.Ts, Value: e.Value}
	}
	return m
}

var (
	_ Replicable[*ORMap[string, string, int]]                                                     = (*ORMap[string, string, int])(nil)
	_ DeltaCRDT[*ORMap[string, string, int], ORMapState[string], ORMapDelta[string, string, int]] = (*ORMap[string, string, int])(nil)
)
