// Package app owns the in-memory date -> snapshot mapping and writes every
// change through to persistence.
package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"tableflip.dev/daily/pkg/node"
	"tableflip.dev/daily/pkg/snapshot"
	"tableflip.dev/daily/pkg/store"
)

// LayoutISO is the date-key format. Lexical order of keys is chronological
// order because the format is zero-padded.
const LayoutISO = "2006-01-02"

var (
	// ErrNoSourceDate reports a copy from a date that holds no snapshot.
	ErrNoSourceDate = errors.New("app: no source date")
	// ErrNoPersistence reports a service without a configured store.
	ErrNoPersistence = errors.New("app: no persistence configured")
)

// Today returns the current date key.
func Today() string {
	return time.Now().Format(LayoutISO)
}

// ValidateDate checks a date key against the ISO layout.
func ValidateDate(date string) error {
	if _, err := time.Parse(LayoutISO, date); err != nil {
		return fmt.Errorf("app: bad date %q: %w", date, err)
	}
	return nil
}

// Service provides the operations the CLI and MCP surfaces share: structural
// edits, value edits, snapshot transitions, and read access to the mapping.
// It is the sole owner of the mapping for the process's lifetime. All methods
// are safe for concurrent use; the MCP HTTP transport calls them from
// separate request goroutines, and the mutex also keeps each save ordered
// after the mutation that triggered it and before the next one.
type Service struct {
	Persistence store.Persistence

	mu   sync.Mutex
	days map[string]*snapshot.Snapshot
}

// New loads the whole mapping from persistence.
func New(ctx context.Context, p store.Persistence) (*Service, error) {
	if p == nil {
		return nil, ErrNoPersistence
	}
	roots, err := p.Load(ctx)
	if err != nil {
		return nil, err
	}
	days := make(map[string]*snapshot.Snapshot, len(roots))
	for date, root := range roots {
		days[date] = snapshot.New(root)
	}
	return &Service{Persistence: p, days: days}, nil
}

// Dates returns every date holding a snapshot, ascending.
func (s *Service) Dates() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	dates := make([]string, 0, len(s.days))
	for date := range s.days {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// Day returns the snapshot for a date if one exists.
func (s *Service) Day(date string) (*snapshot.Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	day, ok := s.days[date]
	return day, ok
}

// Previous returns the nearest date strictly before the given one that holds
// a snapshot.
func (s *Service) Previous(date string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.previousLocked(date)
}

func (s *Service) previousLocked(date string) (string, bool) {
	best := ""
	for candidate := range s.days {
		if candidate < date && candidate > best {
			best = candidate
		}
	}
	return best, best != ""
}

// AddFolder appends a new folder under the parent path and saves.
func (s *Service) AddFolder(ctx context.Context, date string, parent snapshot.Path, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	day := s.dayLocked(date)
	if _, err := day.AddFolder(parent, name); err != nil {
		return err
	}
	return s.saveLocked(ctx)
}

// AddItem appends a new item of the declared type under the parent path and
// saves.
func (s *Service) AddItem(ctx context.Context, date string, parent snapshot.Path, name string, t node.Type) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	day := s.dayLocked(date)
	if _, err := day.AddItem(parent, name, t); err != nil {
		return err
	}
	return s.saveLocked(ctx)
}

// SetValue coerces and records a value on the item at the path, then saves.
func (s *Service) SetValue(ctx context.Context, date string, itemPath snapshot.Path, raw string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	day, ok := s.days[date]
	if !ok {
		return fmt.Errorf("app: no snapshot for %s: %w", date, snapshot.ErrNotFound)
	}
	if err := day.SetValue(itemPath, raw); err != nil {
		return err
	}
	return s.saveLocked(ctx)
}

// Move relocates the node at src under the target parent at the given
// position, then saves.
func (s *Service) Move(ctx context.Context, date string, src, targetParent snapshot.Path, at int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	day, ok := s.days[date]
	if !ok {
		return fmt.Errorf("app: no snapshot for %s: %w", date, snapshot.ErrNotFound)
	}
	if err := day.Move(src, targetParent, at); err != nil {
		return err
	}
	return s.saveLocked(ctx)
}

// MoveToRoot appends the node at src to the root, then saves.
func (s *Service) MoveToRoot(ctx context.Context, date string, src snapshot.Path) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	day, ok := s.days[date]
	if !ok {
		return fmt.Errorf("app: no snapshot for %s: %w", date, snapshot.ErrNotFound)
	}
	if err := day.MoveToRoot(src); err != nil {
		return err
	}
	return s.saveLocked(ctx)
}

// Roots exposes the raw mapping for aggregation and persistence. Callers must
// not mutate it directly.
func (s *Service) Roots() map[string]*node.Folder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rootsLocked()
}

func (s *Service) rootsLocked() map[string]*node.Folder {
	roots := make(map[string]*node.Folder, len(s.days))
	for date, day := range s.days {
		roots[date] = day.Root
	}
	return roots
}

// Snapshots exposes the mapping of live snapshots for aggregation. The map
// is a copy; the snapshots are the live ones.
func (s *Service) Snapshots() map[string]*snapshot.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	days := make(map[string]*snapshot.Snapshot, len(s.days))
	for date, day := range s.days {
		days[date] = day
	}
	return days
}

// dayLocked returns the snapshot for the date, starting an empty one when the
// date has never been visited.
func (s *Service) dayLocked(date string) *snapshot.Snapshot {
	if existing, ok := s.days[date]; ok {
		return existing
	}
	created := snapshot.New(nil)
	s.days[date] = created
	return created
}

// saveLocked writes the whole mapping through. On failure the in-memory
// change is kept so the user can retry.
func (s *Service) saveLocked(ctx context.Context) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	if err := s.Persistence.Save(ctx, s.rootsLocked()); err != nil {
		return fmt.Errorf("app: change kept in memory, save failed: %w", err)
	}
	return nil
}
