package crdtcodec

import (
	"cmp"

	"github.com/shinyes/yep_crdt/crdt"
)

// EncodePNCounter serializes a PNCounter's full value.
func EncodePNCounter[A cmp.Ordered](c *crdt.PNCounter[A]) ([]byte, error) {
	return Encode(c.Snapshot())
}

// DecodePNCounter deserializes a PNCounter's full value.
func DecodePNCounter[A cmp.Ordered](data []byte) (*crdt.PNCounter[A], error) {
	var snap crdt.PNCounterSnapshot[A]
	if err := Decode(data, &snap); err != nil {
		return nil, err
	}
	return crdt.PNCounterFromSnapshot(snap), nil
}

// EncodePNCounterState serializes a PNCounter's compact summary.
func EncodePNCounterState[A cmp.Ordered](s crdt.PNCounterState[A]) ([]byte, error) {
	return Encode(s)
}

// DecodePNCounterState deserializes a PNCounter's compact summary.
func DecodePNCounterState[A cmp.Ordered](data []byte) (crdt.PNCounterState[A], error) {
	var s crdt.PNCounterState[A]
	err := Decode(data, &s)
	return s, err
}

// EncodePNCounterDelta serializes a PNCounter delta.
func EncodePNCounterDelta[A cmp.Ordered](d crdt.PNCounterDelta[A]) ([]byte, error) {
	return Encode(d)
}

// DecodePNCounterDelta deserializes a PNCounter delta.
func DecodePNCounterDelta[A cmp.Ordered](data []byte) (crdt.PNCounterDelta[A], error) {
	var d crdt.PNCounterDelta[A]
	err := Decode(data, &d)
	return d, err
}
