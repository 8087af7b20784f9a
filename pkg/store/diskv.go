package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/dietlog/pkg/entry"
)

// NewDiskv keeps the collection as one file named Key under basePath.
func NewDiskv(basePath string) (Backend, error) {
	if basePath == "" {
		return nil, fmt.Errorf("store: base path required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &diskvStorage{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			TempDir:      filepath.Join(basePath, ".tmp"),
			Transform:    func(string) []string { return []string{} },
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		basePath: basePath,
	}, nil
}

type diskvStorage struct {
	d        *diskv.Diskv
	basePath string
}

func (s *diskvStorage) LoadAll(ctx context.Context) ([]entry.LogItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !s.d.Has(Key) {
		return []entry.LogItem{}, nil
	}
	// Read past the cache so changes written by another process are seen.
	rc, err := s.d.ReadStream(Key, true)
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", Key, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", Key, err)
	}
	return decode(data)
}

func (s *diskvStorage) SaveAll(ctx context.Context, items []entry.LogItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := encode(items)
	if err != nil {
		return err
	}
	if err := s.d.Write(Key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", Key, err)
	}
	return nil
}

func (s *diskvStorage) Watch(ctx context.Context) (<-chan Event, error) {
	return watchDir(ctx, s.basePath, func(name string) bool {
		return name == Key
	})
}

func (s *diskvStorage) Describe() string {
	return "diskv " + filepath.Join(s.basePath, Key)
}

func (s *diskvStorage) Close() error {
	return nil
}
