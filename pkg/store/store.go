// Package store persists the journal as a single JSON blob in a durable
// key-value backend.
package store

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"

	"tableflip.dev/dietlog/pkg/entry"
)

// Key is the storage key the whole collection lives under.
const Key = "dietLogs"

// Storage is the durable side of the log store. Every save replaces the
// whole collection.
type Storage interface {
	LoadAll(ctx context.Context) ([]entry.LogItem, error)
	SaveAll(ctx context.Context, items []entry.LogItem) error
}

// Backend is a Storage that can also report external changes.
type Backend interface {
	Storage
	// Watch streams change events until ctx is cancelled.
	Watch(ctx context.Context) (<-chan Event, error)
	// Describe names the backend and where it keeps its data.
	Describe() string
	Close() error
}

// Open returns the backend selected by cfg.
func Open(cfg *Config) (Backend, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	switch cfg.Backend {
	case BackendDiskv:
		return NewDiskv(cfg.BasePath())
	case BackendSQLite:
		return NewSQLite(cfg.BasePath())
	default:
		return nil, fmt.Errorf("store: unknown backend %q", cfg.Backend)
	}
}

func encode(items []entry.LogItem) ([]byte, error) {
	if items == nil {
		items = []entry.LogItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("store: encode: %w", err)
	}
	return data, nil
}

func decode(data []byte) ([]entry.LogItem, error) {
	if len(data) == 0 {
		return []entry.LogItem{}, nil
	}
	var items []entry.LogItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("store: decode %s: %w", Key, err)
	}
	if items == nil {
		items = []entry.LogItem{}
	}
	return items, nil
}
