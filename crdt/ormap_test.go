package crdt

import (
	"errors"
	"testing"
)

// TestORMap_LastWriterWinsOnSameKey checks the actor tie-break: both writes
// land at clock 1 and "B" > "A", so m2's write wins in either merge order.
func TestORMap_LastWriterWinsOnSameKey(t *testing.T) {
	m1 := NewORMap[string, string, int]("A", 0)
	m1.Set("k", 1)

	m2 := NewORMap[string, string, int]("B", 0)
	m2.Set("k", 2)

	merged1 := m1.Merged(m2)
	merged2 := m2.Merged(m1)

	v1, ok1 := merged1.Get("k")
	if !ok1 || v1 != 2 {
		t.Fatalf("m1.Merged(m2)[\"k\"] = %v, ok=%v, want 2, true", v1, ok1)
	}
	v2, ok2 := merged2.Get("k")
	if !ok2 || v2 != 2 {
		t.Fatalf("m2.Merged(m1)[\"k\"] = %v, ok=%v, want 2, true", v2, ok2)
	}
}

// TestORMap_ConflictingHistoryDetection checks that two writes sharing
// actor id "A" with different values to "k" at the same clock surface as
// ConflictingHistory when merged, rather than silently picking one.
func TestORMap_ConflictingHistoryDetection(t *testing.T) {
	m := NewORMap[string, string, int]("A", 0)
	ts := NewLamportTimestamp[string](1, "A")

	first := ORMapDelta[string, string, int]{Entries: []ORMapDeltaEntry[string, string, int]{
		{Key: "k", Deleted: false, Ts: ts, Value: 1},
	}}
	if err := m.MergeDelta(first); err != nil {
		t.Fatalf("unexpected error seeding m: %v", err)
	}

	conflicting := ORMapDelta[string, string, int]{Entries: []ORMapDeltaEntry[string, string, int]{
		{Key: "k", Deleted: false, Ts: ts, Value: 2},
	}}
	err := m.MergeDelta(conflicting)
	if err == nil {
		t.Fatalf("expected ConflictingHistory, got nil")
	}
	if !errors.Is(err, ErrConflictingHistory) {
		t.Fatalf("expected errors.Is(err, ErrConflictingHistory), got %v", err)
	}
}

func TestORMap_UnsetThenGet(t *testing.T) {
	m := NewORMap[string, string, int]("A", 0)
	m.Set("k", 1)
	if !m.Has("k") {
		t.Fatalf("expected k present")
	}
	old, removed := m.Unset("k")
	if !removed || old != 1 {
		t.Fatalf("expected Unset to report removal of old value 1, got old=%d removed=%v", old, removed)
	}
	if m.Has("k") {
		t.Fatalf("expected k absent after unset")
	}
	if _, ok := m.Get("k"); ok {
		t.Fatalf("expected Get to report absent after unset")
	}
}

func TestORMap_DeltaEmptyWhenCaughtUp(t *testing.T) {
	m := NewORMap[string, string, int]("A", 0)
	m.Set("k", 1)
	state := m.State()
	if d := m.Delta(&state); d != nil {
		t.Fatalf("expected no delta against own state, got %+v", d)
	}
}

func TestORMap_MergedIdempotentCommutativeAssociative(t *testing.T) {
	a := NewORMap[string, string, int]("A", 0)
	a.Set("k1", 1)
	b := NewORMap[string, string, int]("B", 0)
	b.Set("k2", 2)
	c := NewORMap[string, string, int]("C", 0)
	c.Set("k3", 3)

	if got, ok := a.Merged(a).Get("k1"); !ok || got != 1 {
		t.Fatalf("self-merge should be idempotent, got %v, %v", got, ok)
	}

	abc1 := entriesOf(a.Merged(b).Merged(c))
	abc2 := entriesOf(a.Merged(b.Merged(c)))
	if !sameEntries(abc1, abc2) {
		t.Fatalf("not associative: %v vs %v", abc1, abc2)
	}

	ab := entriesOf(a.Merged(b))
	ba := entriesOf(b.Merged(a))
	if !sameEntries(ab, ba) {
		t.Fatalf("not commutative: %v vs %v", ab, ba)
	}
}

func entriesOf(m *ORMap[string, string, int]) map[string]int {
	out := make(map[string]int)
	for _, k := range m.Keys() {
		v, _ := m.Get(k)
		out[k] = v
	}
	return out
}

func sameEntries(a, b map[string]int) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}
