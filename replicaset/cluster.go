// Package replicaset drives a small in-process group of CRDT replicas
// through delta exchange, standing in for a real network during tests and
// demos. It knows nothing about the wire format or transport a production
// deployment would use; it only calls the State/Delta/MergeDelta methods
// every CRDT in this module already exposes.
package replicaset

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/shinyes/yep_crdt/crdt"
)

// NewActorID mints a fresh globally-unique actor identity, for callers that
// want a replica identity without picking a human-readable name.
func NewActorID() string {
	return uuid.NewString()
}

// Member is one named replica participating in a Cluster.
type Member[T crdt.DeltaCRDT[T, State, Delta], State any, Delta any] struct {
	Name string
	CRDT T
}

// Cluster is an unordered collection of replicas of a single CRDT kind.
// The State/Delta type parameters mirror the corresponding crdt.DeltaCRDT
// instantiation, e.g. Cluster[*crdt.GCounter[string], crdt.GCounterState[string], crdt.GCounterDelta[string]].
type Cluster[T crdt.DeltaCRDT[T, State, Delta], State any, Delta any] struct {
	members []*Member[T, State, Delta]
}

// NewCluster creates an empty cluster.
func NewCluster[T crdt.DeltaCRDT[T, State, Delta], State any, Delta any]() *Cluster[T, State, Delta] {
	return &Cluster[T, State, Delta]{}
}

// Join adds a replica to the cluster under name. name must be unique within
// the cluster; Join does not check this.
func (c *Cluster[T, State, Delta]) Join(name string, replica T) {
	c.members = append(c.members, &Member[T, State, Delta]{Name: name, CRDT: replica})
}

// Get returns the replica joined under name.
func (c *Cluster[T, State, Delta]) Get(name string) (T, bool) {
	for _, m := range c.members {
		if m.Name == name {
			return m.CRDT, true
		}
	}
	var zero T
	return zero, false
}

// Names returns every member's name, in join order.
func (c *Cluster[T, State, Delta]) Names() []string {
	names := make([]string, len(c.members))
	for i, m := range c.members {
		names[i] = m.Name
	}
	return names
}

// maxGossipRounds bounds how many full all-pairs rounds Gossip runs before
// giving up, guarding against a delta sequence that never reaches a fixed
// point.
const maxGossipRounds = 32

// Gossip repeatedly exchanges deltas between every ordered pair of members
// until a full round applies nothing, meaning every replica has converged
// on the same observed history. It returns a ConflictingHistory-wrapping
// error the first time a merge surfaces one.
func (c *Cluster[T, State, Delta]) Gossip() error {
	for round := 0; round < maxGossipRounds; round++ {
		changed := false
		for _, from := range c.members {
			for _, to := range c.members {
				if from == to {
					continue
				}
				toState := to.CRDT.State()
				delta := from.CRDT.Delta(&toState)
				if delta == nil {
					continue
				}
				if err := to.CRDT.MergeDelta(*delta); err != nil {
					return fmt.Errorf("replicaset: merging %s into %s: %w", from.Name, to.Name, err)
				}
				changed = true
			}
		}
		if !changed {
			return nil
		}
	}
	return fmt.Errorf("replicaset: gossip did not converge after %d rounds", maxGossipRounds)
}
