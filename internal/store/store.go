// Package store is the local persistence layer: a key-value store of
// whole JSON documents, one file per collection key. It mirrors the
// contract the web client had with browser local storage — reads that
// yield unparseable JSON are treated as absent, and every write
// replaces the whole collection.
package store

import "encoding/json"

type Store interface {
	// Read returns the raw document for key. ok is false when the key
	// is missing or its content is not valid JSON; callers fall back to
	// an empty collection or their seed dataset.
	Read(key string) (raw json.RawMessage, ok bool)

	// Write replaces the document for key with the JSON encoding of value.
	Write(key string, value any) error

	// Update runs fn under the store lock with the current raw document
	// (nil when absent/corrupt) and writes the returned value back.
	// If fn returns an error nothing is written. Appends go through
	// Update so two request goroutines cannot drop each other's record;
	// across processes the store is still last-write-wins.
	Update(key string, fn func(raw json.RawMessage) (any, error)) error
}
