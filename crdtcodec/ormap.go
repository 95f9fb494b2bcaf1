package crdtcodec

import (
	"cmp"

	"github.com/shinyes/yep_crdt/crdt"
)

// EncodeORMap serializes an ORMap's full value.
func EncodeORMap[A cmp.Ordered, K comparable, V comparable](m *crdt.ORMap[A, K, V]) ([]byte, error) {
	return Encode(m.Snapshot())
}

// DecodeORMap deserializes an ORMap's full value.
func DecodeORMap[A cmp.Ordered, K comparable, V comparable](data []byte) (*crdt.ORMap[A, K, V], error) {
	var snap crdt.ORMapSnapshot[A, K, V]
	if err := Decode(data, &snap); err != nil {
		return nil, err
	}
	return crdt.ORMapFromSnapshot(snap), nil
}

// EncodeORMapState serializes an ORMap's compact summary.
func EncodeORMapState[A cmp.Ordered](s crdt.ORMapState[A]) ([]byte, error) {
	return Encode(s)
}

// DecodeORMapState deserializes an ORMap's compact summary.
func DecodeORMapState[A cmp.Ordered](data []byte) (crdt.ORMapState[A], error) {
	var s crdt.ORMapState[A]
	err := Decode(data, &s)
	return s, err
}

// EncodeORMapDelta serializes an ORMap delta.
func EncodeORMapDelta[A cmp.Ordered, K comparable, V comparable](d crdt.ORMapDelta[A, K, V]) ([]byte, error) {
	return Encode(d)
}

// DecodeORMapDelta deserializes an ORMap delta.
func DecodeORMapDelta[A cmp.Ordered, K comparable, V comparable](data []byte) (crdt.ORMapDelta[A, K, V], error) {
	var d crdt.ORMapDelta[A, K, V]
	err := Decode(data, &d)
	return d, err
}
