package snapshot

import (
	"fmt"

	"tableflip.dev/daily/pkg/node"
)

// AddFolder appends a new folder under the parent path.
func (s *Snapshot) AddFolder(parent Path, name string) (*node.Folder, error) {
	dst, err := s.Folder(parent)
	if err != nil {
		return nil, err
	}
	f := node.NewFolder(name)
	if err := dst.InsertFolder(f, len(dst.Folders)); err != nil {
		return nil, err
	}
	s.reindex()
	return f, nil
}

// AddItem appends a new item of the declared type under the parent path,
// holding the type's default value.
func (s *Snapshot) AddItem(parent Path, name string, t node.Type) (*node.Item, error) {
	dst, err := s.Folder(parent)
	if err != nil {
		return nil, err
	}
	it := node.NewItem(name, t)
	if err := dst.InsertItem(it, len(dst.Items)); err != nil {
		return nil, err
	}
	s.reindex()
	return it, nil
}

// SetValue coerces raw input to the item's declared type and records it. On a
// coercion failure the prior value is untouched.
func (s *Snapshot) SetValue(itemPath Path, raw string) error {
	it, err := s.Item(itemPath)
	if err != nil {
		return err
	}
	v, err := node.Coerce(it.Type, raw)
	if err != nil {
		return err
	}
	it.Value = v
	return nil
}

// Move detaches the node at src and inserts it into the target parent's list
// of its own kind at the given position, clamped to the list's bounds. Moving
// a folder into its own subtree fails, as does a move that would collide with
// an existing name in the target.
func (s *Snapshot) Move(src Path, targetParent Path, at int) error {
	if src.IsRoot() {
		return fmt.Errorf("snapshot: cannot move the root: %w", ErrInvalidMove)
	}
	n, err := s.Resolve(src)
	if err != nil {
		return err
	}
	oldParent, err := s.Folder(src.Parent())
	if err != nil {
		return err
	}
	dst, err := s.Folder(targetParent)
	if err != nil {
		return err
	}

	if f, ok := n.(*node.Folder); ok && reaches(f, dst) {
		return fmt.Errorf("snapshot: %q into its own subtree: %w", src, ErrInvalidMove)
	}

	name := n.NodeName()
	switch moved := n.(type) {
	case *node.Folder:
		if dst != oldParent && dst.HasName(name) {
			return fmt.Errorf("snapshot: %q exists under %q: %w", name, targetParent, ErrInvalidMove)
		}
		oldParent.RemoveFolder(name)
		if err := dst.InsertFolder(moved, at); err != nil {
			return err
		}
	case *node.Item:
		if dst != oldParent && dst.HasName(name) {
			return fmt.Errorf("snapshot: %q exists under %q: %w", name, targetParent, ErrInvalidMove)
		}
		oldParent.RemoveItem(name)
		if err := dst.InsertItem(moved, at); err != nil {
			return err
		}
	}
	s.reindex()
	return nil
}

// MoveToRoot appends the node at src to the root's list of its kind. This is
// the drop-outside-any-target gesture.
func (s *Snapshot) MoveToRoot(src Path) error {
	n, err := s.Resolve(src)
	if err != nil {
		return err
	}
	at := len(s.Root.Items)
	if _, ok := n.(*node.Folder); ok {
		at = len(s.Root.Folders)
	}
	return s.Move(src, nil, at)
}

// reaches reports whether target is from, or sits anywhere inside from's
// subtree.
func reaches(from *node.Folder, target *node.Folder) bool {
	if from == target {
		return true
	}
	for _, sub := range from.Folders {
		if reaches(sub, target) {
			return true
		}
	}
	return false
}
