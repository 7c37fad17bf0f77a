// Package docstore holds the document stores the school calendar and
// publication metadata are read from: opaque keys mapped to raw JSON objects.
package docstore

import (
	"context"
	"errors"

	"github.com/goccy/go-json"
)

// ErrNotFound is returned by Get when no document exists under the key.
var ErrNotFound = errors.New("document not found")

// Document is a raw JSON object keyed by field name.
type Document map[string]json.RawMessage

// Store reads and writes documents by key.
type Store interface {
	Get(ctx context.Context, key string) (Document, error)
	Set(ctx context.Context, key string, doc Document) error
}

// Clone returns a copy of d that shares no map with it.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = append(json.RawMessage(nil), v...)
	}
	return out
}

// Keys returns the document's field names in no particular order.
func (d Document) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	return keys
}
