package main

import (
	"fmt"
	"log"

	"github.com/shinyes/yep_crdt/crdt"
	"github.com/shinyes/yep_crdt/crdtcodec"
	"github.com/shinyes/yep_crdt/replicaset"
	"github.com/shinyes/yep_crdt/replicastore"
)

func runPNCounter(actors []string, store *replicastore.Store) error {
	cluster := replicaset.NewCluster[*crdt.PNCounter[string], crdt.PNCounterState[string], crdt.PNCounterDelta[string]]()

	for i, actor := range actors {
		c := crdt.NewPNCounter(actor, 0)
		for n := 0; n < i+1; n++ {
			c.Increment()
		}
		if i%2 == 1 {
			c.Decrement()
		}
		cluster.Join(actor, c)
		log.Printf("pncounter: %s starts at %d", actor, c.Value())
	}

	if err := cluster.Gossip(); err != nil {
		return err
	}

	fmt.Println("pncounter converged:")
	for _, actor := range actors {
		c, _ := cluster.Get(actor)
		fmt.Printf("  %s => %d\n", actor, c.Value())

		if store == nil {
			continue
		}
		data, err := crdtcodec.EncodePNCounter(c)
		if err != nil {
			return err
		}
		if err := store.Save("pncounter/"+actor, data); err != nil {
			return err
		}
	}
	return nil
}
