// Package store persists the date -> tree mapping as a single JSON document.
package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"tableflip.dev/daily/pkg/node"
)

// ErrCorrupt reports a data file whose contents match none of the supported
// shapes. The file is left untouched so the user can recover it.
var ErrCorrupt = errors.New("store: data file corrupt")

// Persistence owns loading and saving of the whole per-date mapping. Every
// mutation saves the entire mapping; the reader accepts all historical file
// shapes and the writer emits only the canonical one.
type Persistence interface {
	Load(ctx context.Context) (map[string]*node.Folder, error)
	Save(ctx context.Context, days map[string]*node.Folder) error
}

// Load creates a Persistence backed by the data file from the provided
// config, loading the config itself when nil.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return &persistence{path: cfg.DataPath()}, nil
}

// At creates a Persistence for an explicit data file path. Intended for tests
// and tooling.
func At(path string) Persistence {
	return &persistence{path: path}
}

type persistence struct {
	path string
}

// Load reads the whole mapping. A missing file is an empty mapping, not an
// error.
func (p *persistence) Load(ctx context.Context) (map[string]*node.Folder, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return make(map[string]*node.Folder), nil
		}
		return nil, fmt.Errorf("store: read %s: %w", p.path, err)
	}
	days, err := decodeFile(data)
	if err != nil {
		return nil, fmt.Errorf("store: %s: %w", p.path, err)
	}
	return days, nil
}

// Save writes the whole mapping through a temporary file and an atomic
// rename, so a crash mid-save never leaves a truncated data file behind. The
// temporary file is synced before the rename so the rename cannot land on
// disk ahead of the data it points at.
func (p *persistence) Save(ctx context.Context, days map[string]*node.Folder) error {
	data, err := encodeFile(days)
	if err != nil {
		return fmt.Errorf("store: encode: %w", err)
	}
	if dir := filepath.Dir(p.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("store: ensure %s: %w", dir, err)
		}
	}
	tmp := p.path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("store: write %s: %w", tmp, err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("store: write %s: %w", tmp, err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("store: sync %s: %w", tmp, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("store: close %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, p.path); err != nil {
		return fmt.Errorf("store: replace %s: %w", p.path, err)
	}
	return nil
}
