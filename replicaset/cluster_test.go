package replicaset

import (
	"testing"

	"github.com/shinyes/yep_crdt/crdt"
)

func TestCluster_GossipConvergesGCounter(t *testing.T) {
	c := NewCluster[*crdt.GCounter[string], crdt.GCounterState[string], crdt.GCounterDelta[string]]()

	a := crdt.NewGCounter("A", 0)
	a.Increment()
	a.Increment()

	b := crdt.NewGCounter("B", 0)
	b.Increment()

	c.Join("a", a)
	c.Join("b", b)

	if err := c.Gossip(); err != nil {
		t.Fatalf("Gossip() failed: %v", err)
	}

	if a.Value() != 3 {
		t.Fatalf("a.Value() = %d, want 3", a.Value())
	}
	if b.Value() != 3 {
		t.Fatalf("b.Value() = %d, want 3", b.Value())
	}
}

func TestCluster_GossipConvergesORSet(t *testing.T) {
	c := NewCluster[*crdt.ORSet[string, string], crdt.ORSetState[string], crdt.ORSetDelta[string, string]]()

	a := crdt.NewORSet[string, string]("A", 0)
	a.Insert("x")

	b := crdt.NewORSet[string, string]("B", 0)
	b.Insert("y")

	c.Join("a", a)
	c.Join("b", b)

	if err := c.Gossip(); err != nil {
		t.Fatalf("Gossip() failed: %v", err)
	}

	for _, name := range []string{"a", "b"} {
		replica, ok := c.Get(name)
		if !ok {
			t.Fatalf("member %s not found", name)
		}
		if !replica.Contains("x") || !replica.Contains("y") {
			t.Fatalf("member %s did not converge: has x=%v, y=%v", name, replica.Contains("x"), replica.Contains("y"))
		}
	}
}

func TestCluster_GetMissingMember(t *testing.T) {
	c := NewCluster[*crdt.GCounter[string], crdt.GCounterState[string], crdt.GCounterDelta[string]]()
	if _, ok := c.Get("nope"); ok {
		t.Fatalf("expected Get on an empty cluster to report not-found")
	}
}
