package app

import (
	"context"
	"fmt"

	"tableflip.dev/daily/pkg/snapshot"
)

// CopyForward deep-clones the source date's tree into the destination date,
// values included, overwriting anything already there. The clone shares no
// nodes with the source: later edits to either date never touch the other.
func (s *Service) CopyForward(ctx context.Context, from, to string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	src, ok := s.days[from]
	if !ok {
		return fmt.Errorf("app: %s: %w", from, ErrNoSourceDate)
	}
	s.days[to] = snapshot.New(src.Root.Clone())
	return s.saveLocked(ctx)
}

// CopyStructureOnly deep-clones the source date's tree into the destination
// date with every item reset to its type default.
func (s *Service) CopyStructureOnly(ctx context.Context, from, to string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyStructureLocked(ctx, from, to)
}

func (s *Service) copyStructureLocked(ctx context.Context, from, to string) error {
	src, ok := s.days[from]
	if !ok {
		return fmt.Errorf("app: %s: %w", from, ErrNoSourceDate)
	}
	s.days[to] = snapshot.New(src.Root.CloneStructure())
	return s.saveLocked(ctx)
}

// EnsureDay returns the date's snapshot, deriving one when the date has never
// been visited: the structure of the nearest date strictly before it, items
// reset to defaults, or an empty tree when no earlier date exists. A derived
// snapshot is persisted immediately.
func (s *Service) EnsureDay(ctx context.Context, date string) (*snapshot.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if day, ok := s.days[date]; ok {
		return day, nil
	}
	if prev, ok := s.previousLocked(date); ok {
		if err := s.copyStructureLocked(ctx, prev, date); err != nil {
			return nil, err
		}
		return s.days[date], nil
	}
	day := s.dayLocked(date)
	return day, s.saveLocked(ctx)
}
