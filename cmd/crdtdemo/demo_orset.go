package main

import (
	"fmt"
	"log"
	"sort"

	"github.com/shinyes/yep_crdt/crdt"
	"github.com/shinyes/yep_crdt/crdtcodec"
	"github.com/shinyes/yep_crdt/replicaset"
	"github.com/shinyes/yep_crdt/replicastore"
)

func runORSet(actors []string, store *replicastore.Store) error {
	cluster := replicaset.NewCluster[*crdt.ORSet[string, string], crdt.ORSetState[string], crdt.ORSetDelta[string, string]]()

	for i, actor := range actors {
		s := crdt.NewORSet[string, string](actor, 0)
		s.Insert(fmt.Sprintf("item-%d", i))
		cluster.Join(actor, s)
		log.Printf("orset: %s starts with %d elements", actor, s.Count())
	}

	if err := cluster.Gossip(); err != nil {
		return err
	}

	fmt.Println("orset converged:")
	for _, actor := range actors {
		s, _ := cluster.Get(actor)
		values := s.Values()
		sort.Strings(values)
		fmt.Printf("  %s => %v\n", actor, values)

		if store == nil {
			continue
		}
		data, err := crdtcodec.EncodeORSet(s)
		if err != nil {
			return err
		}
		if err := store.Save("orset/"+actor, data); err != nil {
			return err
		}
	}
	return nil
}
