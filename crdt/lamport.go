package crdt

import (
	"cmp"
	"math"
)

// LamportTimestamp is a (clock, actor) pair forming a strict total order. It
// is the causal currency shared by every CRDT in this package: every
// observable local mutation advances a replica's own LamportTimestamp by at
// least one tick.
type LamportTimestamp[A cmp.Ordered] struct {
	Clock uint64
	Actor A
}

// NewLamportTimestamp builds a timestamp from an explicit clock and actor.
func NewLamportTimestamp[A cmp.Ordered](clock uint64, actor A) LamportTimestamp[A] {
	return LamportTimestamp[A]{Clock: clock, Actor: actor}
}

// Tick advances the clock by one, saturating at math.MaxUint64. The actor
// never changes.
func (t *LamportTimestamp[A]) Tick() {
	if t.Clock < math.MaxUint64 {
		t.Clock++
	}
}

// Compare orders two timestamps by clock first, actor as tie-break. It
// returns -1, 0, or 1 the way cmp.Compare does.
func Compare[A cmp.Ordered](a, b LamportTimestamp[A]) int {
	if a.Clock != b.Clock {
		if a.Clock < b.Clock {
			return -1
		}
		return 1
	}
	return cmp.Compare(a.Actor, b.Actor)
}

// Less reports whether a happens strictly before b in the total order.
func Less[A cmp.Ordered](a, b LamportTimestamp[A]) bool {
	return Compare(a, b) < 0
}

// MaxTimestamp returns the greater of a and b under the total order. On a
// tie it returns a.
func MaxTimestamp[A cmp.Ordered](a, b LamportTimestamp[A]) LamportTimestamp[A] {
	if Compare(a, b) >= 0 {
		return a
	}
	return b
}
