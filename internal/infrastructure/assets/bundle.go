// Package assets fetches the raw files behind a stage as a single bundle.
package assets

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Bundle holds the raw bytes of a set of asset files fetched together.
type Bundle struct {
	files map[string][]byte
}

// Load fetches every named file from fsys in parallel. It fails on the
// first missing or unreadable file.
func Load(ctx context.Context, fsys fs.FS, names ...string) (*Bundle, error) {
	b := &Bundle{files: make(map[string][]byte, len(names))}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	for _, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := fs.ReadFile(fsys, name)
			if err != nil {
				return fmt.Errorf("fetch %s: %w", name, err)
			}
			mu.Lock()
			b.files[name] = data
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return b, nil
}

// File returns the raw bytes of a fetched file, or nil when absent.
func (b *Bundle) File(name string) []byte {
	return b.files[name]
}

// Decode unmarshals a fetched JSON file into v.
func (b *Bundle) Decode(name string, v any) error {
	data, ok := b.files[name]
	if !ok {
		return fmt.Errorf("asset %s not in bundle", name)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}
