// Package snapshot addresses and mutates one day's tree by path.
package snapshot

import (
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/daily/pkg/node"
)

var (
	// ErrNotFound reports a path that does not resolve within the snapshot.
	ErrNotFound = errors.New("snapshot: not found")
	// ErrInvalidMove reports a move that would detach a node into its own
	// subtree or collide with an existing sibling.
	ErrInvalidMove = errors.New("snapshot: invalid move")
)

// Path is the ordered list of names from the snapshot root down to a node.
// The empty path denotes the root folder.
type Path []string

// ParsePath splits a slash-joined path. Empty input and "/" denote the root.
func ParsePath(raw string) Path {
	raw = strings.Trim(strings.TrimSpace(raw), "/")
	if raw == "" {
		return nil
	}
	return strings.Split(raw, "/")
}

func (p Path) String() string {
	return strings.Join(p, "/")
}

// IsRoot reports whether the path denotes the snapshot root.
func (p Path) IsRoot() bool {
	return len(p) == 0
}

// Parent returns the path one level up. The root's parent is the root.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1]
}

// Snapshot is one day's tree plus a node-identity index so that the path of
// any node can be recovered without parent links. The index is rebuilt after
// every structural change.
type Snapshot struct {
	Root  *node.Folder
	index map[node.Node]Path
}

// New wraps a root folder. A nil root starts an empty day.
func New(root *node.Folder) *Snapshot {
	if root == nil {
		root = node.NewFolder("")
	}
	s := &Snapshot{Root: root}
	s.reindex()
	return s
}

// Resolve descends the tree level by level, searching child folders before
// child items at each step. Segments beyond an item fail: items are leaves.
func (s *Snapshot) Resolve(p Path) (node.Node, error) {
	if p.IsRoot() {
		return s.Root, nil
	}
	current := s.Root
	for i, name := range p {
		last := i == len(p)-1
		if sub := current.ChildFolder(name); sub != nil {
			if last {
				return sub, nil
			}
			current = sub
			continue
		}
		if it := current.ChildItem(name); it != nil && last {
			return it, nil
		}
		return nil, fmt.Errorf("snapshot: %q: %w", Path(p[:i+1]), ErrNotFound)
	}
	return nil, fmt.Errorf("snapshot: %q: %w", p, ErrNotFound)
}

// Folder resolves a path that must denote a folder. The root path resolves to
// the root folder.
func (s *Snapshot) Folder(p Path) (*node.Folder, error) {
	n, err := s.Resolve(p)
	if err != nil {
		return nil, err
	}
	f, ok := n.(*node.Folder)
	if !ok {
		return nil, fmt.Errorf("snapshot: %q is not a folder: %w", p, ErrNotFound)
	}
	return f, nil
}

// Item resolves a path that must denote an item.
func (s *Snapshot) Item(p Path) (*node.Item, error) {
	n, err := s.Resolve(p)
	if err != nil {
		return nil, err
	}
	it, ok := n.(*node.Item)
	if !ok {
		return nil, fmt.Errorf("snapshot: %q is not an item: %w", p, ErrNotFound)
	}
	return it, nil
}

// PathOf returns the current path of a node within the snapshot.
func (s *Snapshot) PathOf(n node.Node) (Path, bool) {
	if n == node.Node(s.Root) {
		return nil, true
	}
	p, ok := s.index[n]
	return p, ok
}

func (s *Snapshot) reindex() {
	s.index = make(map[node.Node]Path)
	s.Root.Walk(func(path []string, n node.Node) {
		s.index[n] = append(Path(nil), path...)
	})
}
