// Package mcp provides the Model Context Protocol server integration for
// daily tracking data.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"tableflip.dev/daily/pkg/app"
	"tableflip.dev/daily/pkg/history"
	"tableflip.dev/daily/pkg/node"
	"tableflip.dev/daily/pkg/snapshot"
)

// Service coordinates the core operations shared by the MCP server. The
// streamable HTTP transport runs handlers on separate goroutines, so every
// method serializes on one mutex: a DTO is never built from a tree that
// another request is mid-mutation on.
type Service struct {
	App *app.Service

	mu sync.Mutex
}

// NewService builds a service wrapper over the application state.
func NewService(a *app.Service) *Service {
	return &Service{App: a}
}

// DaySummary describes one stored date and basic aggregate metadata.
type DaySummary struct {
	Date        string `json:"date"`
	FolderCount int    `json:"folderCount"`
	ItemCount   int    `json:"itemCount"`
}

// ItemDTO is a transport-friendly projection of an item.
type ItemDTO struct {
	Path      string  `json:"path"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	Value     string  `json:"value"`
	Chartable bool    `json:"chartable"`
	Number    float64 `json:"number,omitempty"`
}

// FolderDTO is a transport-friendly projection of a folder subtree. Child
// folders always precede child items, matching in-memory iteration order.
type FolderDTO struct {
	Name    string      `json:"name,omitempty"`
	Folders []FolderDTO `json:"folders"`
	Items   []ItemDTO   `json:"items"`
}

// PointDTO is one day's numeric reading.
type PointDTO struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// ChartableDTO names one chartable item path and its declared type.
type ChartableDTO struct {
	Path string `json:"path"`
	Type string `json:"type"`
}

// ListDays returns summaries for every stored date, ascending.
func (s *Service) ListDays(ctx context.Context) ([]DaySummary, error) {
	if s.App == nil {
		return nil, errors.New("application state is not configured")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	dates := s.App.Dates()
	summaries := make([]DaySummary, 0, len(dates))
	for _, date := range dates {
		day, _ := s.App.Day(date)
		summary := DaySummary{Date: date}
		day.Root.Walk(func(path []string, n node.Node) {
			switch n.(type) {
			case *node.Folder:
				summary.FolderCount++
			case *node.Item:
				summary.ItemCount++
			}
		})
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// Day returns the full tree for one date, deriving the date's snapshot from
// the nearest earlier one when it does not exist yet.
func (s *Service) Day(ctx context.Context, date string) (*FolderDTO, error) {
	if s.App == nil {
		return nil, errors.New("application state is not configured")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dayDTO(ctx, date)
}

func (s *Service) dayDTO(ctx context.Context, date string) (*FolderDTO, error) {
	if err := app.ValidateDate(date); err != nil {
		return nil, err
	}
	day, err := s.App.EnsureDay(ctx, date)
	if err != nil {
		return nil, err
	}
	dto := toFolderDTO(day, nil, day.Root)
	return &dto, nil
}

// validateName rejects node names a slash-joined path could never address
// again.
func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("name must not be empty")
	}
	if strings.Contains(name, "/") {
		return fmt.Errorf("name %q must not contain '/'", name)
	}
	return nil
}

// CreateFolder adds a folder under the parent path for a date.
func (s *Service) CreateFolder(ctx context.Context, date, parent, name string) (*FolderDTO, error) {
	if s.App == nil {
		return nil, errors.New("application state is not configured")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := app.ValidateDate(date); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := s.App.AddFolder(ctx, date, snapshot.ParsePath(parent), name); err != nil {
		return nil, err
	}
	return s.dayDTO(ctx, date)
}

// CreateItem adds an item of the declared type under the parent path for a
// date, holding the type's default value.
func (s *Service) CreateItem(ctx context.Context, date, parent, name, rawType string) (*FolderDTO, error) {
	if s.App == nil {
		return nil, errors.New("application state is not configured")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := app.ValidateDate(date); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	t, err := node.ParseType(rawType)
	if err != nil {
		return nil, err
	}
	if err := s.App.AddItem(ctx, date, snapshot.ParsePath(parent), name, t); err != nil {
		return nil, err
	}
	return s.dayDTO(ctx, date)
}

// SetValue coerces and records a value on the item at the path for a date.
func (s *Service) SetValue(ctx context.Context, date, path, raw string) (*ItemDTO, error) {
	if s.App == nil {
		return nil, errors.New("application state is not configured")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := app.ValidateDate(date); err != nil {
		return nil, err
	}
	p := snapshot.ParsePath(path)
	if err := s.App.SetValue(ctx, date, p, raw); err != nil {
		return nil, err
	}
	day, _ := s.App.Day(date)
	it, err := day.Item(p)
	if err != nil {
		return nil, err
	}
	dto := toItemDTO(p, it)
	return &dto, nil
}

// MoveNode relocates the node at source under the target parent at the given
// position. A negative position appends; an empty target with toRoot set
// appends at the root.
func (s *Service) MoveNode(ctx context.Context, date, source, target string, index int, toRoot bool) (*FolderDTO, error) {
	if s.App == nil {
		return nil, errors.New("application state is not configured")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := app.ValidateDate(date); err != nil {
		return nil, err
	}
	if index < 0 {
		index = math.MaxInt
	}
	src := snapshot.ParsePath(source)
	if toRoot {
		if err := s.App.MoveToRoot(ctx, date, src); err != nil {
			return nil, err
		}
	} else {
		if err := s.App.Move(ctx, date, src, snapshot.ParsePath(target), index); err != nil {
			return nil, err
		}
	}
	return s.dayDTO(ctx, date)
}

// Carry copies the source date's snapshot into the target date, values
// included or structure only.
func (s *Service) Carry(ctx context.Context, from, to string, itemsOnly bool) (*FolderDTO, error) {
	if s.App == nil {
		return nil, errors.New("application state is not configured")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := app.ValidateDate(to); err != nil {
		return nil, err
	}
	if from == "" {
		prev, ok := s.App.Previous(to)
		if !ok {
			return nil, app.ErrNoSourceDate
		}
		from = prev
	} else if err := app.ValidateDate(from); err != nil {
		return nil, err
	}
	if itemsOnly {
		if err := s.App.CopyStructureOnly(ctx, from, to); err != nil {
			return nil, err
		}
	} else {
		if err := s.App.CopyForward(ctx, from, to); err != nil {
			return nil, err
		}
	}
	return s.dayDTO(ctx, to)
}

// ChartableItems returns the deduplicated chartable index across all dates.
func (s *Service) ChartableItems(ctx context.Context) ([]ChartableDTO, error) {
	if s.App == nil {
		return nil, errors.New("application state is not configured")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	infos := history.Chartable(s.App.Snapshots())
	dtos := make([]ChartableDTO, 0, len(infos))
	for _, info := range infos {
		dtos = append(dtos, ChartableDTO{Path: info.Path.String(), Type: string(info.Type)})
	}
	return dtos, nil
}

// Series returns the ordered (date, number) sequence for one item path.
func (s *Service) Series(ctx context.Context, path string) ([]PointDTO, error) {
	if s.App == nil {
		return nil, errors.New("application state is not configured")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	points := history.Series(s.App.Snapshots(), snapshot.ParsePath(path))
	dtos := make([]PointDTO, 0, len(points))
	for _, p := range points {
		dtos = append(dtos, PointDTO{Date: p.Date, Value: p.Value})
	}
	return dtos, nil
}

func toFolderDTO(day *snapshot.Snapshot, prefix snapshot.Path, f *node.Folder) FolderDTO {
	dto := FolderDTO{
		Name:    f.Name,
		Folders: make([]FolderDTO, 0, len(f.Folders)),
		Items:   make([]ItemDTO, 0, len(f.Items)),
	}
	for _, sub := range f.Folders {
		dto.Folders = append(dto.Folders, toFolderDTO(day, append(prefix, sub.Name), sub))
	}
	for _, it := range f.Items {
		dto.Items = append(dto.Items, toItemDTO(append(prefix, it.Name), it))
	}
	return dto
}

func toItemDTO(path snapshot.Path, it *node.Item) ItemDTO {
	dto := ItemDTO{
		Path:      path.String(),
		Name:      it.Name,
		Type:      string(it.Type),
		Value:     it.Value.String(),
		Chartable: it.Type.Chartable(),
	}
	if n, ok := it.Value.Number(); ok {
		dto.Number = n
	}
	return dto
}
