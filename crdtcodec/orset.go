package crdtcodec

import (
	"cmp"

	"github.com/shinyes/yep_crdt/crdt"
)

// EncodeORSet serializes an ORSet's full value.
func EncodeORSet[A cmp.Ordered, T comparable](s *crdt.ORSet[A, T]) ([]byte, error) {
	return Encode(s.Snapshot())
}

// DecodeORSet deserializes an ORSet's full value.
func DecodeORSet[A cmp.Ordered, T comparable](data []byte) (*crdt.ORSet[A, T], error) {
	var snap crdt.ORSetSnapshot[A, T]
	if err := Decode(data, &snap); err != nil {
		return nil, err
	}
	return crdt.ORSetFromSnapshot(snap), nil
}

// EncodeORSetState serializes an ORSet's compact summary.
func EncodeORSetState[A cmp.Ordered](s crdt.ORSetState[A]) ([]byte, error) {
	return Encode(s)
}

// DecodeORSetState deserializes an ORSet's compact summary.
func DecodeORSetState[A cmp.Ordered](data []byte) (crdt.ORSetState[A], error) {
	var s crdt.ORSetState[A]
	err := Decode(data, &s)
	return s, err
}

// EncodeORSetDelta serializes an ORSet delta.
func EncodeORSetDelta[A cmp.Ordered, T comparable](d crdt.ORSetDelta[A, T]) ([]byte, error) {
	return Encode(d)
}

// DecodeORSetDelta deserializes an ORSet delta.
func DecodeORSetDelta[A cmp.Ordered, T comparable](data []byte) (crdt.ORSetDelta[A, T], error) {
	var d crdt.ORSetDelta[A, T]
	err := Decode(data, &d)
	return d, err
}
