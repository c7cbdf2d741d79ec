package node

import (
	"errors"
	"fmt"
)

// ErrNameCollision reports an attempt to give two siblings the same name.
// Names are reserved across kinds: a folder and an item may not share a name
// at the same level either.
var ErrNameCollision = errors.New("node: name collision")

// Node is a Folder or an Item in the tree.
type Node interface {
	NodeName() string
}

// Item is a leaf metric with a declared type and the value recorded for one day.
type Item struct {
	Name  string
	Type  Type
	Value Value
}

// NewItem creates an item holding the default value for its type.
func NewItem(name string, t Type) *Item {
	return &Item{
		Name:  name,
		Type:  t,
		Value: DefaultValue(t),
	}
}

// NodeName implements Node.
func (i *Item) NodeName() string {
	return i.Name
}

// Clone returns an independent copy.
func (i *Item) Clone() *Item {
	c := *i
	return &c
}

// Folder groups child folders and items. Iteration order is always all child
// folders in stored order, then all child items in stored order.
type Folder struct {
	Name    string
	Folders []*Folder
	Items   []*Item
}

// NewFolder creates an empty folder.
func NewFolder(name string) *Folder {
	return &Folder{Name: name}
}

// NodeName implements Node.
func (f *Folder) NodeName() string {
	return f.Name
}

// ChildFolder returns the child folder with the given name, or nil.
func (f *Folder) ChildFolder(name string) *Folder {
	for _, c := range f.Folders {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ChildItem returns the child item with the given name, or nil.
func (f *Folder) ChildItem(name string) *Item {
	for _, c := range f.Items {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// HasName reports whether any direct child of either kind uses the name.
func (f *Folder) HasName(name string) bool {
	return f.ChildFolder(name) != nil || f.ChildItem(name) != nil
}

// InsertFolder places child at the given position in the folder list, clamped
// to its bounds. The sibling name must be free across both kinds.
func (f *Folder) InsertFolder(child *Folder, at int) error {
	if f.HasName(child.Name) {
		return fmt.Errorf("node: folder %q: %w", child.Name, ErrNameCollision)
	}
	f.Folders = insertFolderAt(f.Folders, child, at)
	return nil
}

// InsertItem places child at the given position in the item list, clamped to
// its bounds. The sibling name must be free across both kinds.
func (f *Folder) InsertItem(child *Item, at int) error {
	if f.HasName(child.Name) {
		return fmt.Errorf("node: item %q: %w", child.Name, ErrNameCollision)
	}
	f.Items = insertItemAt(f.Items, child, at)
	return nil
}

// RemoveFolder detaches and returns the named child folder, or nil.
func (f *Folder) RemoveFolder(name string) *Folder {
	for i, c := range f.Folders {
		if c.Name == name {
			f.Folders = append(f.Folders[:i], f.Folders[i+1:]...)
			return c
		}
	}
	return nil
}

// RemoveItem detaches and returns the named child item, or nil.
func (f *Folder) RemoveItem(name string) *Item {
	for i, c := range f.Items {
		if c.Name == name {
			f.Items = append(f.Items[:i], f.Items[i+1:]...)
			return c
		}
	}
	return nil
}

// Clone deep-copies the subtree, values included. The copy shares no nodes
// with the original.
func (f *Folder) Clone() *Folder {
	c := &Folder{Name: f.Name}
	if len(f.Folders) > 0 {
		c.Folders = make([]*Folder, 0, len(f.Folders))
		for _, sub := range f.Folders {
			c.Folders = append(c.Folders, sub.Clone())
		}
	}
	if len(f.Items) > 0 {
		c.Items = make([]*Item, 0, len(f.Items))
		for _, it := range f.Items {
			c.Items = append(c.Items, it.Clone())
		}
	}
	return c
}

// CloneStructure deep-copies the subtree with every item reset to the default
// value for its declared type.
func (f *Folder) CloneStructure() *Folder {
	c := f.Clone()
	c.Walk(func(path []string, n Node) {
		if it, ok := n.(*Item); ok {
			it.Value = DefaultValue(it.Type)
		}
	})
	return c
}

// Walk visits every descendant depth-first, folders before items at each
// level. The path holds the names from the receiver (exclusive) down to the
// visited node (inclusive) and is only valid for the duration of the call.
func (f *Folder) Walk(visit func(path []string, n Node)) {
	f.walk(nil, visit)
}

func (f *Folder) walk(prefix []string, visit func(path []string, n Node)) {
	for _, sub := range f.Folders {
		p := append(prefix, sub.Name)
		visit(p, sub)
		sub.walk(p, visit)
	}
	for _, it := range f.Items {
		visit(append(prefix, it.Name), it)
	}
}

// Equal reports structural equality: same names, order, declared types, and
// values throughout.
func Equal(a, b *Folder) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Name != b.Name || len(a.Folders) != len(b.Folders) || len(a.Items) != len(b.Items) {
		return false
	}
	for i := range a.Folders {
		if !Equal(a.Folders[i], b.Folders[i]) {
			return false
		}
	}
	for i := range a.Items {
		x, y := a.Items[i], b.Items[i]
		if x.Name != y.Name || x.Type != y.Type || !x.Value.Equal(y.Value) {
			return false
		}
	}
	return true
}

func insertFolderAt(list []*Folder, child *Folder, at int) []*Folder {
	at = clamp(at, len(list))
	list = append(list, nil)
	copy(list[at+1:], list[at:])
	list[at] = child
	return list
}

func insertItemAt(list []*Item, child *Item, at int) []*Item {
	at = clamp(at, len(list))
	list = append(list, nil)
	copy(list[at+1:], list[at:])
	list[at] = child
	return list
}

func clamp(at, max int) int {
	if at < 0 {
		return 0
	}
	if at > max {
		return max
	}
	return at
}
