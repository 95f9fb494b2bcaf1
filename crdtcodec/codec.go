// Package crdtcodec encodes and decodes every CRDT's full value, State,
// and Delta shape. The core crdt package never imports this package — it
// only exposes exported Snapshot/FromSnapshot and State/Delta shapes for a
// codec like this one to work with.
package crdtcodec

import "github.com/vmihailenco/msgpack/v5"

// Encode serializes v with msgpack.
func Encode(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

// Decode deserializes data into *out, which must be a pointer.
func Decode(data []byte, out any) error {
	return msgpack.Unmarshal(data, out)
}
