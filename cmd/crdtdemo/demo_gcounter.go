package main

import (
	"fmt"
	"log"

	"github.com/shinyes/yep_crdt/crdt"
	"github.com/shinyes/yep_crdt/crdtcodec"
	"github.com/shinyes/yep_crdt/replicaset"
	"github.com/shinyes/yep_crdt/replicastore"
)

func runGCounter(actors []string, store *replicastore.Store) error {
	cluster := replicaset.NewCluster[*crdt.GCounter[string], crdt.GCounterState[string], crdt.GCounterDelta[string]]()

	for i, actor := range actors {
		c := crdt.NewGCounter(actor, 0)
		for n := 0; n <= i; n++ {
			c.Increment()
		}
		cluster.Join(actor, c)
		log.Printf("gcounter: %s starts at %d", actor, c.Value())
	}

	if err := cluster.Gossip(); err != nil {
		return err
	}

	fmt.Println("gcounter converged:")
	for _, actor := range actors {
		c, _ := cluster.Get(actor)
		fmt.Printf("  %s => %d\n", actor, c.Value())

		if store == nil {
			continue
		}
		data, err := crdtcodec.EncodeGCounter(c)
		if err != nil {
			return err
		}
		if err := store.Save("gcounter/"+actor, data); err != nil {
			return err
		}
	}

	if store == nil {
		return nil
	}
	return verifyGCounterRoundTrip(store, actors[0])
}

func verifyGCounterRoundTrip(store *replicastore.Store, actor string) error {
	data, err := store.Load("gcounter/" + actor)
	if err != nil {
		return err
	}
	reloaded, err := crdtcodec.DecodeGCounter[string](data)
	if err != nil {
		return err
	}
	fmt.Printf("reloaded %s from disk => %d\n", actor, reloaded.Value())
	return nil
}
