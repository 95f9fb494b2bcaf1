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

func runORMap(actors []string, store *replicastore.Store) error {
	cluster := replicaset.NewCluster[*crdt.ORMap[string, string, int], crdt.ORMapState[string], crdt.ORMapDelta[string, string, int]]()

	for i, actor := range actors {
		m := crdt.NewORMap[string, string, int](actor, 0)
		m.Set("owner", i)
		cluster.Join(actor, m)
		log.Printf("ormap: %s starts with owner=%d", actor, i)
	}

	if err := cluster.Gossip(); err != nil {
		return err
	}

	fmt.Println("ormap converged:")
	for _, actor := range actors {
		m, _ := cluster.Get(actor)
		keys := m.Keys()
		sort.Strings(keys)
		fmt.Printf("  %s => ", actor)
		for _, k := range keys {
			v, _ := m.Get(k)
			fmt.Printf("%s=%d ", k, v)
		}
		fmt.Println()

		if store == nil {
			continue
		}
		data, err := crdtcodec.EncodeORMap(m)
		if err != nil {
			return err
		}
		if err := store.Save("ormap/"+actor, data); err != nil {
			return err
		}
	}
	return nil
}
