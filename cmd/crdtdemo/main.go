package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/shinyes/yep_crdt/replicastore"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	kind := flag.String("kind", "gcounter", "which CRDT to demo: gcounter, pncounter, orset, ormap")
	actors := flag.String("actors", "A,B,C", "comma-separated actor names, one replica per name")
	dataDir := flag.String("data", "", "directory to persist replica state in; empty runs in-memory only")
	debug := flag.Bool("debug", false, "log each replica's starting value")
	flag.Parse()

	if !*debug {
		log.SetOutput(io.Discard)
	}

	names := strings.Split(*actors, ",")
	if len(names) < 2 {
		return fmt.Errorf("need at least 2 actors, got %q", *actors)
	}

	var store *replicastore.Store
	if *dataDir != "" {
		s, err := replicastore.Open(*dataDir)
		if err != nil {
			return err
		}
		defer s.Close()
		store = s
	}

	switch *kind {
	case "gcounter":
		return runGCounter(names, store)
	case "pncounter":
		return runPNCounter(names, store)
	case "orset":
		return runORSet(names, store)
	case "ormap":
		return runORMap(names, store)
	default:
		return fmt.Errorf("unknown kind %q, want one of gcounter, pncounter, orset, ormap", *kind)
	}
}
