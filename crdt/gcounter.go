package crdt

import (
	"cmp"
	"math"
)

// gcounterEntry is one actor's slot in a GCounter: the highest local clock
// at which that actor bumped its sub-count, alongside the sub-count itself.
type gcounterEntry struct {
	Clock uint64
	Count uint64
}

// GCounter is a grow-only distributed counter: one sub-counter per actor,
// each actor only ever mutating its own entry. The observable value is the
// saturating sum of every sub-counter.
type GCounter[A cmp.Ordered] struct {
	actor   A
	current LamportTimestamp[A]
	entries map[A]gcounterEntry
}

// NewGCounter creates a GCounter bound to actor, with its Lamport clock
// starting at clock.
func NewGCounter[A cmp.Ordered](actor A, clock uint64) *GCounter[A] {
	return &GCounter[A]{
		actor:   actor,
		current: NewLamportTimestamp(clock, actor),
		entries: make(map[A]gcounterEntry),
	}
}

// Increment bumps this replica's own sub-counter by one.
func (c *GCounter[A]) Increment() {
	c.current.Tick()
	e := c.entries[c.actor]
	e.Clock = c.current.Clock
	e.Count = saturatingAddUint64(e.Count, 1)
	c.entries[c.actor] = e
}

// Value is the saturating sum of every actor's sub-count.
func (c *GCounter[A]) Value() uint64 {
	var total uint64
	for _, e := range c.entries {
		total = saturatingAddUint64(total, e.Count)
	}
	return total
}

// GCounterState is the per-actor clock summary exchanged to negotiate a
// delta.
type GCounterState[A cmp.Ordered] map[A]uint64

// State returns the highest clock this GCounter has observed for each
// actor.
func (c *GCounter[A]) State() GCounterState[A] {
	state := make(GCounterState[A], len(c.entries))
	for actor, e := range c.entries {
		state[actor] = e.Clock
	}
	return state
}

// GCounterDeltaEntry is one actor's entry within a GCounterDelta.
type GCounterDeltaEntry[A cmp.Ordered] struct {
	Actor A
	Clock uint64
	Count uint64
}

// GCounterDelta carries only the entries a remote summary is missing.
type GCounterDelta[A cmp.Ordered] struct {
	Entries []GCounterDeltaEntry[A]
}

// Delta returns the entries remote's summary lacks or has an older clock
// for. A nil remote means "send everything". A nil return means remote is
// already fully caught up.
func (c *GCounter[A]) Delta(remote *GCounterState[A]) *GCounterDelta[A] {
	var entries []GCounterDeltaEntry[A]
	for actor, e := range c.entries {
		if remote != nil {
			if remoteClock, ok := (*remote)[actor]; ok && remoteClock >= e.Clock {
				continue
			}
		}
		entries = append(entries, GCounterDeltaEntry[A]{Actor: actor, Clock: e.Clock, Count: e.Count})
	}
	if len(entries) == 0 {
		return nil
	}
	return &GCounterDelta[A]{Entries: entries}
}

// Merged returns a new GCounter holding, for each actor, the entry with the
// greater (clock, actor) timestamp. Ties keep the larger count, which under
// the per-actor-monotonic invariant is the same entry either way.
func (c *GCounter[A]) Merged(other *GCounter[A]) *GCounter[A] {
	result := NewGCounter(c.actor, c.current.Clock)
	result.current = MaxTimestamp(c.current, other.current)
	for actor, e := range c.entries {
		result.entries[actor] = e
	}
	for actor, oe := range other.entries {
		le, ok := result.entries[actor]
		if !ok || gcounterEntryWins(oe, le) {
			result.entries[actor] = oe
		}
	}
	return result
}

// gcounterEntryWins reports whether candidate should replace incumbent: a
// strictly greater clock wins outright, and on a clock tie the larger count
// wins (the two should coincide under the monotonicity invariant, but ties
// happen naturally when both sides observed the same write).
func gcounterEntryWins(candidate, incumbent gcounterEntry) bool {
	if candidate.Clock != incumbent.Clock {
		return candidate.Clock > incumbent.Clock
	}
	return candidate.Count > incumbent.Count
}

// MergeDelta applies delta's entries using the same per-entry rule as
// Merged. GCounter merges never fail: two actors can never disagree about a
// monotonically increasing sub-count under the same (clock, actor) pair the
// way ORSet/ORMap metadata can.
func (c *GCounter[A]) MergeDelta(delta GCounterDelta[A]) error {
	for _, de := range delta.Entries {
		le, ok := c.entries[de.Actor]
		candidate := gcounterEntry{Clock: de.Clock, Count: de.Count}
		if !ok || gcounterEntryWins(candidate, le) {
			c.entries[de.Actor] = candidate
		}
	}
	return nil
}

// GCounterSnapshot is the full exported state of a GCounter: everything an
// external codec needs to reconstruct an equivalent instance.
type GCounterSnapshot[A cmp.Ordered] struct {
	Actor   A
	Current LamportTimestamp[A]
	Entries []GCounterDeltaEntry[A]
}

// Snapshot exports the full internal state for serialization.
func (c *GCounter[A]) Snapshot() GCounterSnapshot[A] {
	entries := make([]GCounterDeltaEntry[A], 0, len(c.entries))
	for actor, e := range c.entries {
		entries = append(entries, GCounterDeltaEntry[A]{Actor: actor, Clock: e.Clock, Count: e.Count})
	}
	return GCounterSnapshot[A]{Actor: c.actor, Current: c.current, Entries: entries}
}

// GCounterFromSnapshot rebuilds a GCounter from a previously exported
// Snapshot.
func GCounterFromSnapshot[A cmp.Ordered](snap GCounterSnapshot[A]) *GCounter[A] {
	c := NewGCounter(snap.Actor, snap.Current.Clock)
	c.current = snap.Current
	for _, e := range snap.Entries {
		c.entries[e.Actor] = gcounterEntry{Clock: e.Clock, Count: e.Count}
	}
	return c
}

func saturatingAddUint64(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		return math.MaxUint64
	}
	return sum
}

var (
	_ Replicable[*GCounter[string]]                                              = (*GCounter[string])(nil)
	_ DeltaCRDT[*GCounter[string], GCounterState[string], GCounterDelta[string]] = (*GCounter[string])(nil)
)
