package catalog

import (
	"context"
	"encoding/json"
	"time"
)

// Entry is the serialized cache payload: the built store plus the moment it
// was written, in milliseconds since the epoch.
type Entry struct {
	Timestamp int64 `json:"timestamp"`
	Data      Store `json:"data"`
}

// Cache is session-scoped key-value storage for serialized entries. The
// loader judges freshness from Entry.Timestamp; implementations only hold
// bytes. Writes are advisory and last-writer-wins.
type Cache interface {
	Ping(ctx context.Context) error
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, payload []byte) error
}

func encodeEntry(store Store, now time.Time) ([]byte, error) {
	return json.Marshal(Entry{
		Timestamp: now.UnixMilli(),
		Data:      store,
	})
}

func decodeEntry(payload []byte) (Entry, error) {
	var e Entry
	err := json.Unmarshal(payload, &e)
	return e, err
}
