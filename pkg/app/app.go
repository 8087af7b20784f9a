// Package app coordinates the journal: it turns raw category input into
// stored entries and answers the queries the commands need.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"tableflip.dev/dietlog/pkg/category"
	"tableflip.dev/dietlog/pkg/celebrate"
	"tableflip.dev/dietlog/pkg/entry"
	"tableflip.dev/dietlog/pkg/format"
	"tableflip.dev/dietlog/pkg/logstore"
	"tableflip.dev/dietlog/pkg/store"
	"tableflip.dev/dietlog/pkg/timeline"
)

// Service owns the log store. It is not safe for concurrent edits.
type Service struct {
	Logs       *logstore.Store
	Resolver   *timeline.Resolver
	Celebrator celebrate.Evaluator
	Logger     zerolog.Logger
}

// Options tune a Service. The zero value uses time.Local, strict yesterday
// celebrations and a disabled logger.
type Options struct {
	Resolver      *timeline.Resolver
	CelebrateMode celebrate.Mode
	Logger        *zerolog.Logger
}

var (
	ErrNoStore      = errors.New("app: no log store configured")
	ErrDateNotEmpty = errors.New("app: date already has entries")
)

// Open loads storage into a new Service.
func Open(ctx context.Context, storage store.Storage, opts Options) (*Service, error) {
	s := &Service{
		Logs:       logstore.New(storage),
		Resolver:   opts.Resolver,
		Celebrator: celebrate.Evaluator{Mode: opts.CelebrateMode},
		Logger:     zerolog.Nop(),
	}
	if s.Resolver == nil {
		s.Resolver = timeline.New(nil)
	}
	if opts.Logger != nil {
		s.Logger = *opts.Logger
	}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload rereads durable storage, dropping the in-memory collection.
func (s *Service) Reload(ctx context.Context) error {
	if s.Logs == nil {
		return ErrNoStore
	}
	if err := s.Logs.Load(ctx); err != nil {
		return err
	}
	s.Logger.Debug().Int("entries", len(s.Logs.All())).Msg("journal loaded")
	return nil
}

// Result is the outcome of AddEntry.
type Result struct {
	Item entry.LogItem
	// Celebration is the weight lost in grams, nil when there is nothing
	// to celebrate.
	Celebration *int
}

// AddEntry formats fields for c, files the entry under date and stores it.
// When only the write-through fails, the populated Result is returned with a
// *logstore.PersistenceError; the entry stays in memory.
func (s *Service) AddEntry(ctx context.Context, c category.Category, fields format.Fields, date string) (Result, error) {
	if s.Logs == nil {
		return Result{}, ErrNoStore
	}
	if _, err := entry.ParseDate(date); err != nil {
		return Result{}, fmt.Errorf("app: %w", err)
	}
	formatted, err := format.Format(c, fields)
	if err != nil {
		return Result{}, err
	}
	ts, err := s.Resolver.Resolve(c, formatted.Content, date, s.Logs.ByDate(date))
	if err != nil {
		return Result{}, fmt.Errorf("app: resolve timestamp: %w", err)
	}

	item := entry.New(c, formatted.Content, date, ts)
	item.ImageURL = formatted.ImageURL
	res := Result{Item: item}

	// The new entry must not take part in its own comparison.
	if c == category.Weight {
		if grams, ok := s.Celebrator.Evaluate(item.Content, date, s.Logs); ok {
			res.Celebration = &grams
		}
	}

	if err := s.Logs.Insert(ctx, item); err != nil {
		s.Logger.Warn().Err(err).Str("id", item.ID).Msg("entry kept in memory only")
		return res, err
	}
	s.Logger.Info().
		Str("id", item.ID).
		Str("category", string(c)).
		Str("date", date).
		Str("content", item.Content).
		Msg("entry added")
	return res, nil
}

// DeleteEntry removes the entry with id. Deleting an unknown id is not an
// error; found reports whether anything was removed.
func (s *Service) DeleteEntry(ctx context.Context, id string) (found bool, err error) {
	if s.Logs == nil {
		return false, ErrNoStore
	}
	found, err = s.Logs.Delete(ctx, id)
	if err != nil {
		s.Logger.Warn().Err(err).Str("id", id).Msg("delete kept in memory only")
		return found, err
	}
	s.Logger.Info().Str("id", id).Bool("found", found).Msg("entry deleted")
	return found, nil
}

// QueryByDate returns the entries of date in display order.
func (s *Service) QueryByDate(date string) ([]entry.LogItem, error) {
	if s.Logs == nil {
		return nil, ErrNoStore
	}
	if _, err := entry.ParseDate(date); err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	return s.Logs.ByDate(date), nil
}

// Reset deletes every entry.
func (s *Service) Reset(ctx context.Context) error {
	if s.Logs == nil {
		return ErrNoStore
	}
	return s.Logs.Reset(ctx)
}

// CategoryCount is a category and how many entries it has on one date.
type CategoryCount struct {
	category.Info
	Count int
}

// Categories summarizes date in registry order. Categories without entries
// are included with a zero count.
func (s *Service) Categories(date string) ([]CategoryCount, error) {
	items, err := s.QueryByDate(date)
	if err != nil {
		return nil, err
	}
	counts := make(map[category.Category]int)
	for _, item := range items {
		counts[item.Category]++
	}
	all := category.All()
	out := make([]CategoryCount, 0, len(all))
	for _, info := range all {
		out = append(out, CategoryCount{Info: info, Count: counts[info.Category]})
	}
	return out, nil
}
