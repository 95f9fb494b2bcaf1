package crdt

import "testing"

func TestGCounter_IncrementAndValue(t *testing.T) {
	c := NewGCounter("A", 0)
	if c.Value() != 0 {
		t.Fatalf("expected 0, got %d", c.Value())
	}
	c.Increment()
	c.Increment()
	if c.Value() != 2 {
		t.Fatalf("expected 2, got %d", c.Value())
	}
}

// TestGCounter_Convergence checks that two replicas incrementing
// independently converge to the same total regardless of merge order.
func TestGCounter_Convergence(t *testing.T) {
	a := NewGCounter("A", 0)
	a.Increment()
	a.Increment()

	b := NewGCounter("B", 0)
	b.Increment()

	if got := a.Merged(b).Value(); got != 3 {
		t.Fatalf("a.Merged(b).Value() = %d, want 3", got)
	}
	if got := b.Merged(a).Value(); got != 3 {
		t.Fatalf("b.Merged(a).Value() = %d, want 3", got)
	}
}

func TestGCounter_DeltaEmptyWhenCaughtUp(t *testing.T) {
	a := NewGCounter("A", 0)
	a.Increment()
	state := a.State()
	if d := a.Delta(&state); d != nil {
		t.Fatalf("expected no delta against own state, got %+v", d)
	}
}

func TestGCounter_DeltaMergeEquivalence(t *testing.T) {
	a := NewGCounter("A", 0)
	a.Increment()
	a.Increment()

	b := NewGCounter("B", 0)
	b.Increment()

	state := a.State()
	delta := b.Delta(&state)
	if delta == nil {
		t.Fatalf("expected a non-nil delta from b")
	}
	if err := a.MergeDelta(*delta); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	merged := a.Merged(b)
	if a.Value() != merged.Value() {
		t.Fatalf("a.MergeDelta(b.Delta(a.State())).Value() = %d, want %d", a.Value(), merged.Value())
	}
}

func TestGCounter_NilRemoteSendsEverything(t *testing.T) {
	a := NewGCounter("A", 0)
	a.Increment()
	if d := a.Delta(nil); d == nil || len(d.Entries) != 1 {
		t.Fatalf("expected one entry when remote is nil, got %+v", d)
	}
}

func TestGCounter_ValueNeverDecreases(t *testing.T) {
	a := NewGCounter("A", 0)
	b := NewGCounter("B", 0)
	prev := uint64(0)
	for i := 0; i < 5; i++ {
		a.Increment()
		b.Increment()
		a = a.Merged(b)
		if a.Value() < prev {
			t.Fatalf("value decreased: %d -> %d", prev, a.Value())
		}
		prev = a.Value()
	}
}

func TestGCounter_MergedIdempotent(t *testing.T) {
	a := NewGCounter("A", 0)
	a.Increment()
	b := NewGCounter("B", 0)
	b.Increment()

	once := a.Merged(b)
	twice := once.Merged(b)
	if once.Value() != twice.Value() {
		t.Fatalf("merge not idempotent: %d vs %d", once.Value(), twice.Value())
	}
}

func TestGCounter_MergedCommutative(t *testing.T) {
	a := NewGCounter("A", 0)
	a.Increment()
	a.Increment()
	b := NewGCounter("B", 0)
	b.Increment()

	if a.Merged(b).Value() != b.Merged(a).Value() {
		t.Fatalf("merge not commutative")
	}
}

func TestGCounter_MergedAssociative(t *testing.T) {
	a := NewGCounter("A", 0)
	a.Increment()
	b := NewGCounter("B", 0)
	b.Increment()
	b.Increment()
	c := NewGCounter("C", 0)
	c.Increment()
	c.Increment()
	c.Increment()

	left := a.Merged(b).Merged(c)
	right := a.Merged(b.Merged(c))
	if left.Value() != right.Value() {
		t.Fatalf("merge not associative: %d vs %d", left.Value(), right.Value())
	}
}
