package crdt

import "cmp"

// orEntry is the observed-remove metadata attached to one key: whether it's
// currently tombstoned, the Lamport timestamp of the write that produced
// this state, and an optional payload. ORSet instantiates V as struct{};
// ORMap instantiates it as the map's value type.
type orEntry[A cmp.Ordered, V any] struct {
	Deleted bool
	Ts      LamportTimestamp[A]
	Value   V
}

// orEngine implements the observed-remove-with-Lamport-metadata machinery
// shared by ORSet and ORMap, so the two don't duplicate this logic. K is
// the element (ORSet) or key (ORMap) type; V is struct{} for ORSet or the
// map's value type for ORMap.
type orEngine[A cmp.Ordered, K comparable, V any] struct {
	actor   A
	current LamportTimestamp[A]
	entries map[K]orEntry[A, V]
	equal   func(a, b V) bool
}

func newOrEngine[A cmp.Ordered, K comparable, V any](actor A, clock uint64, equal func(a, b V) bool) *orEngine[A, K, V] {
	return &orEngine[A, K, V]{
		actor:   actor,
		current: NewLamportTimestamp(clock, actor),
		entries: make(map[K]orEntry[A, V]),
		equal:   equal,
	}
}

// set records key as present with value, ticking the engine's own clock. It
// reports whether key was previously absent or tombstoned.
func (e *orEngine[A, K, V]) set(key K, value V) bool {
	e.current.Tick()
	prev, existed := e.entries[key]
	wasAbsent := !existed || prev.Deleted
	e.entries[key] = orEntry[A, V]{Deleted: false, Ts: e.current, Value: value}
	return wasAbsent
}

// unset tombstones key if currently present, returning its last value and
// whether it was removed. The value is retained on the tombstone so
// MergeDelta's conflict check can still compare it.
func (e *orEngine[A, K, V]) unset(key K) (V, bool) {
	prev, existed := e.entries[key]
	if !existed || prev.Deleted {
		var zero V
		return zero, false
	}
	e.current.Tick()
	e.entries[key] = orEntry[A, V]{Deleted: true, Ts: e.current, Value: prev.Value}
	return prev.Value, true
}

func (e *orEngine[A, K, V]) get(key K) (V, bool) {
	entry, ok := e.entries[key]
	if !ok || entry.Deleted {
		var zero V
		return zero, false
	}
	return entry.Value, true
}

func (e *orEngine[A, K, V]) contains(key K) bool {
	_, ok := e.get(key)
	return ok
}

func (e *orEngine[A, K, V]) keys() []K {
	keys := make([]K, 0, len(e.entries))
	for k, entry := range e.entries {
		if !entry.Deleted {
			keys = append(keys, k)
		}
	}
	return keys
}

func (e *orEngine[A, K, V]) count() int {
	n := 0
	for _, entry := range e.entries {
		if !entry.Deleted {
			n++
		}
	}
	return n
}

// orState is the per-actor highest-clock summary shared by ORSet and ORMap.
type orState[A cmp.Ordered] map[A]uint64

func (e *orEngine[A, K, V]) state() orState[A] {
	state := make(orState[A], len(e.entries))
	for _, entry := range e.entries {
		if cur, ok := state[entry.Ts.Actor]; !ok || entry.Ts.Clock > cur {
			state[entry.Ts.Actor] = entry.Ts.Clock
		}
	}
	return state
}

// orDeltaEntry pairs a key with the metadata entry a remote is missing.
type orDeltaEntry[A cmp.Ordered, K comparable, V any] struct {
	Key   K
	Entry orEntry[A, V]
}

func (e *orEngine[A, K, V]) delta(remote *orState[A]) []orDeltaEntry[A, K, V] {
	var entries []orDeltaEntry[A, K, V]
	for key, entry := range e.entries {
		if remote != nil {
			if remoteClock, ok := (*remote)[entry.Ts.Actor]; ok && remoteClock >= entry.Ts.Clock {
				continue
			}
		}
		entries = append(entries, orDeltaEntry[A, K, V]{Key: key, Entry: entry})
	}
	return entries
}

// merged returns a new engine holding, for each key present on either side,
// the metadata with the higher Lamport timestamp, and a current timestamp
// advanced to the max of both sides'. Never fails; on a genuine timestamp
// tie with disagreeing metadata (only possible if an actor id was reused)
// it deterministically favors the receiver's own entry.
func (e *orEngine[A, K, V]) merged(other *orEngine[A, K, V]) *orEngine[A, K, V] {
	result := newOrEngine[A, K, V](e.actor, e.current.Clock, e.equal)
	result.current = MaxTimestamp(e.current, other.current)
	for key, entry := range e.entries {
		result.entries[key] = entry
	}
	for key, oe := range other.entries {
		le, ok := result.entries[key]
		if !ok || Compare(oe.Ts, le.Ts) > 0 {
			result.entries[key] = oe
		}
	}
	return result
}

// mergeDelta applies entries using this rule: equal timestamps with
// disagreeing metadata raise ConflictingHistory; a strictly greater remote
// timestamp overwrites; a strictly lesser one is a no-op. The whole batch
// is validated against a scratch overlay first, so a conflict found partway
// through never leaves e.entries or e.current partially updated — either
// every entry in delta lands, or none does. Once validation clears, any
// incoming entry whose actor matches this engine's own advances its current
// clock so future local writes stay strictly ahead of anything observed.
func (e *orEngine[A, K, V]) mergeDelta(delta []orDeltaEntry[A, K, V]) error {
	updates := make(map[K]orEntry[A, V], len(delta))
	for _, de := range delta {
		local, existed := updates[de.Key]
		if !existed {
			local, existed = e.entries[de.Key]
		}
		if !existed {
			updates[de.Key] = de.Entry
			continue
		}
		switch c := Compare(de.Entry.Ts, local.Ts); {
		case c == 0:
			if de.Entry.Deleted != local.Deleted || !e.equal(de.Entry.Value, local.Value) {
				return &ConflictingHistory[A, K]{Key: de.Key, Timestamp: de.Entry.Ts}
			}
		case c > 0:
			updates[de.Key] = de.Entry
		}
	}

	for key, entry := range updates {
		e.entries[key] = entry
	}
	for _, de := range delta {
		if de.Entry.Ts.Actor == e.current.Actor && de.Entry.Ts.Clock > e.current.Clock {
			e.current.Clock = de.Entry.Ts.Clock
		}
	}
	return nil
}
