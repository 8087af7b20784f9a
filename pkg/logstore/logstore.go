// Package logstore holds the journal in memory and writes it through to
// durable storage after every change.
package logstore

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"tableflip.dev/dietlog/pkg/category"
	"tableflip.dev/dietlog/pkg/entry"
	"tableflip.dev/dietlog/pkg/store"
)

// ErrPersistence matches every PersistenceError.
var ErrPersistence = errors.New("logstore: persistence failed")

// PersistenceError reports a failed write-through. The in-memory change it
// belongs to has already been applied.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("logstore: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

// Store is the ordered collection of log items.
type Store struct {
	storage store.Storage

	mu    sync.RWMutex
	items []entry.LogItem
}

// New returns an empty store over storage. Call Load before reading.
func New(storage store.Storage) *Store {
	return &Store{storage: storage}
}

// Load replaces the in-memory collection with the stored one.
func (s *Store) Load(ctx context.Context) error {
	items, err := s.storage.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("logstore: load: %w", err)
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

// Insert appends item and persists the collection.
func (s *Store) Insert(ctx context.Context, item entry.LogItem) error {
	s.mu.Lock()
	s.items = append(s.items, item)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()
	return s.persist(ctx, "insert", snapshot)
}

// Delete removes the item with id and persists the collection. An unknown id
// changes nothing but is still persisted; found reports whether it existed.
func (s *Store) Delete(ctx context.Context, id string) (found bool, err error) {
	s.mu.Lock()
	kept := s.items[:0:0]
	for _, item := range s.items {
		if item.ID == id {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	s.items = kept
	snapshot := s.snapshotLocked()
	s.mu.Unlock()
	return found, s.persist(ctx, "delete", snapshot)
}

// Reset removes every item and persists the empty collection.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()
	return s.persist(ctx, "reset", []entry.LogItem{})
}

// All returns a copy of the collection in insertion order.
func (s *Store) All() []entry.LogItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Get returns the item with id.
func (s *Store) Get(id string) (entry.LogItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return entry.LogItem{}, false
}

// ByDate returns the items of date by ascending timestamp. Equal timestamps
// keep insertion order.
func (s *Store) ByDate(date string) []entry.LogItem {
	out := s.filter(func(item entry.LogItem) bool {
		return item.Date == date
	})
	sortEntries(out, false)
	return out
}

// ByCategoryBeforeDate returns the items of c dated strictly before date,
// most recent first.
func (s *Store) ByCategoryBeforeDate(c category.Category, date string) []entry.LogItem {
	out := s.filter(func(item entry.LogItem) bool {
		return item.Category == c && item.Date < date
	})
	sortEntries(out, true)
	return out
}

// ByCategoryOnDate returns the items of c on date, most recent first.
func (s *Store) ByCategoryOnDate(c category.Category, date string) []entry.LogItem {
	out := s.filter(func(item entry.LogItem) bool {
		return item.Category == c && item.Date == date
	})
	sortEntries(out, true)
	return out
}

func (s *Store) filter(keep func(entry.LogItem) bool) []entry.LogItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entry.LogItem, 0)
	for _, item := range s.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

func (s *Store) snapshotLocked() []entry.LogItem {
	out := make([]entry.LogItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) persist(ctx context.Context, op string, items []entry.LogItem) error {
	if err := s.storage.SaveAll(ctx, items); err != nil {
		return &PersistenceError{Op: op, Err: err}
	}
	return nil
}

// sortEntries orders by date, then timestamp within the date.
func sortEntries(all []entry.LogItem, newestFirst bool) {
	sort.SliceStable(all, func(i, j int) bool {
		a, b := all[i], all[j]
		if a.Date != b.Date {
			if newestFirst {
				return a.Date > b.Date
			}
			return a.Date < b.Date
		}
		if newestFirst {
			return a.Timestamp > b.Timestamp
		}
		return a.Timestamp < b.Timestamp
	})
}
