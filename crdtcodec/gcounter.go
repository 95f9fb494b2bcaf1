package crdtcodec

import (
	"cmp"

	"github.com/shinyes/yep_crdt/crdt"
)

// EncodeGCounter serializes a GCounter's full value.
func EncodeGCounter[A cmp.Ordered](c *crdt.GCounter[A]) ([]byte, error) {
	return Encode(c.Snapshot())
}

// DecodeGCounter deserializes a GCounter's full value.
func DecodeGCounter[A cmp.Ordered](data []byte) (*crdt.GCounter[A], error) {
	var snap crdt.GCounterSnapshot[A]
	if err := Decode(data, &snap); err != nil {
		return nil, err
	}
	return crdt.GCounterFromSnapshot(snap), nil
}

// EncodeGCounterState serializes a GCounter's compact summary.
func EncodeGCounterState[A cmp.Ordered](s crdt.GCounterState[A]) ([]byte, error) {
	return Encode(s)
}

// DecodeGCounterState deserializes a GCounter's compact summary.
func DecodeGCounterState[A cmp.Ordered](data []byte) (crdt.GCounterState[A], error) {
	var s crdt.GCounterState[A]
	if err := Decode(data, &s); err != nil {
		return nil, err
	}
	return s, nil
}

// EncodeGCounterDelta serializes a GCounter delta.
func EncodeGCounterDelta[A cmp.Ordered](d crdt.GCounterDelta[A]) ([]byte, error) {
	return Encode(d)
}

// DecodeGCounterDelta deserializes a GCounter delta.
func DecodeGCounterDelta[A cmp.Ordered](data []byte) (crdt.GCounterDelta[A], error) {
	var d crdt.GCounterDelta[A]
	err := Decode(data, &d)
	return d, err
}
