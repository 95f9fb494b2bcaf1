package crdt

import (
	"cmp"
	"math"
)

// PNCounter composes two GCounters, pos and neg, sharing the same actor, to
// support both increment and decrement while staying a join-semilattice.
type PNCounter[A cmp.Ordered] struct {
	pos *GCounter[A]
	neg *GCounter[A]
}

// NewPNCounter creates a PNCounter bound to actor, starting at value 0.
func NewPNCounter[A cmp.Ordered](actor A, clock uint64) *PNCounter[A] {
	return &PNCounter[A]{
		pos: NewGCounter(actor, clock),
		neg: NewGCounter(actor, clock),
	}
}

// NewPNCounterWithValue creates a PNCounter bound to actor whose observable
// value starts at initial. A negative initial is represented purely in neg
// so that later decrements interact with PNCounter's saturating-cast
// convention the same way they would from any other starting point (see
// DESIGN.md for the saturation arithmetic this supports).
func NewPNCounterWithValue[A cmp.Ordered](actor A, clock uint64, initial int64) *PNCounter[A] {
	c := NewPNCounter(actor, clock)
	if initial >= 0 {
		c.pos.entries[actor] = gcounterEntry{Clock: clock, Count: uint64(initial)}
	} else {
		magnitude := uint64(-(initial + 1)) + 1 // avoids overflow negating math.MinInt64
		c.neg.entries[actor] = gcounterEntry{Clock: clock, Count: magnitude}
	}
	return c
}

// Increment bumps the positive side by one.
func (c *PNCounter[A]) Increment() {
	c.pos.Increment()
}

// Decrement bumps the negative side by one.
func (c *PNCounter[A]) Decrement() {
	c.neg.Increment()
}

// Value is pos.Value() - neg.Value() in signed arithmetic. Each side's
// uint64 sum is clamped to math.MaxInt64 before the cast, since a uint64
// beyond that has no signed counterpart to round-trip to; the subtraction
// of two already-clamped operands always fits int64, so no further
// saturation is needed. See DESIGN.md for the worked example showing a
// decrement off MinInt64 lands on MinInt64+1, never wrapping around.
func (c *PNCounter[A]) Value() int64 {
	pos := clampToInt64(c.pos.Value())
	neg := clampToInt64(c.neg.Value())
	return pos - neg
}

func clampToInt64(v uint64) int64 {
	if v > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(v)
}

// PNCounterState is the component-wise state of (pos, neg).
type PNCounterState[A cmp.Ordered] struct {
	Pos GCounterState[A]
	Neg GCounterState[A]
}

// State returns the component-wise state of (pos, neg).
func (c *PNCounter[A]) State() PNCounterState[A] {
	return PNCounterState[A]{Pos: c.pos.State(), Neg: c.neg.State()}
}

// PNCounterDelta is the component-wise delta of (pos, neg).
type PNCounterDelta[A cmp.Ordered] struct {
	Pos *GCounterDelta[A]
	Neg *GCounterDelta[A]
}

// Delta applies GCounter.Delta component-wise. A nil remote means "send
// everything"; a nil return means neither side has anything to send.
func (c *PNCounter[A]) Delta(remote *PNCounterState[A]) *PNCounterDelta[A] {
	var posRemote, negRemote *GCounterState[A]
	if remote != nil {
		posRemote, negRemote = &remote.Pos, &remote.Neg
	}
	posDelta := c.pos.Delta(posRemote)
	negDelta := c.neg.Delta(negRemote)
	if posDelta == nil && negDelta == nil {
		return nil
	}
	return &PNCounterDelta[A]{Pos: posDelta, Neg: negDelta}
}

// Merged is the component-wise merge over (pos, neg); commutative and
// idempotent because both components are.
func (c *PNCounter[A]) Merged(other *PNCounter[A]) *PNCounter[A] {
	return &PNCounter[A]{
		pos: c.pos.Merged(other.pos),
		neg: c.neg.Merged(other.neg),
	}
}

// MergeDelta applies delta component-wise. PNCounter merges never fail, the
// same as the GCounters they're built from.
func (c *PNCounter[A]) MergeDelta(delta PNCounterDelta[A]) error {
	if delta.Pos != nil {
		if err := c.pos.MergeDelta(*delta.Pos); err != nil {
			return err
		}
	}
	if delta.Neg != nil {
		if err := c.neg.MergeDelta(*delta.Neg); err != nil {
			return err
		}
	}
	return nil
}

// PNCounterSnapshot is the full exported state of a PNCounter, for use by
// an external codec that needs to reconstruct an equivalent instance.
type PNCounterSnapshot[A cmp.Ordered] struct {
	Pos GCounterSnapshot[A]
	Neg GCounterSnapshot[A]
}

// Snapshot exports the full internal state for serialization.
func (c *PNCounter[A]) Snapshot() PNCounterSnapshot[A] {
	return PNCounterSnapshot[A]{Pos: c.pos.Snapshot(), Neg: c.neg.Snapshot()}
}

// PNCounterFromSnapshot rebuilds a PNCounter from a previously exported
// Snapshot.
func PNCounterFromSnapshot[A cmp.Ordered](snap PNCounterSnapshot[A]) *PNCounter[A] {
	return &PNCounter[A]{
		pos: GCounterFromSnapshot(snap.Pos),
		neg: GCounterFromSnapshot(snap.Neg),
	}
}

var (
	_ Replicable[*PNCounter[string]]                                                = (*PNCounter[string])(nil)
	_ DeltaCRDT[*PNCounter[string], PNCounterState[string], PNCounterDelta[string]] = (*PNCounter[string])(nil)
)
