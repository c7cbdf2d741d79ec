package snapshot

import (
	"errors"
	"testing"

	"tableflip.dev/daily/pkg/node"
)

func buildDay(t *testing.T) *Snapshot {
	t.Helper()
	s := New(nil)
	if _, err := s.AddFolder(nil, "health"); err != nil {
		t.Fatalf("add folder: %v", err)
	}
	if _, err := s.AddFolder(ParsePath("health"), "gym"); err != nil {
		t.Fatalf("add folder: %v", err)
	}
	if _, err := s.AddItem(ParsePath("health/gym"), "pushups", node.TypeInt); err != nil {
		t.Fatalf("add item: %v", err)
	}
	if _, err := s.AddItem(ParsePath("health"), "weight", node.TypeFloat); err != nil {
		t.Fatalf("add item: %v", err)
	}
	if _, err := s.AddItem(nil, "mood", node.TypeString); err != nil {
		t.Fatalf("add item: %v", err)
	}
	return s
}

func TestParsePath(t *testing.T) {
	if p := ParsePath(""); !p.IsRoot() {
		t.Fatalf("empty should be root")
	}
	if p := ParsePath("/"); !p.IsRoot() {
		t.Fatalf("slash should be root")
	}
	p := ParsePath("health/gym/pushups")
	if len(p) != 3 || p[2] != "pushups" {
		t.Fatalf("unexpected path %v", p)
	}
	if p.Parent().String() != "health/gym" {
		t.Fatalf("unexpected parent %v", p.Parent())
	}
}

func TestResolve(t *testing.T) {
	s := buildDay(t)

	n, err := s.Resolve(ParsePath("health/gym/pushups"))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if it, ok := n.(*node.Item); !ok || it.Type != node.TypeInt {
		t.Fatalf("expected int item, got %T", n)
	}

	if _, err := s.Resolve(ParsePath("health/pool")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	// Items are leaves: segments beyond one do not resolve.
	if _, err := s.Resolve(ParsePath("mood/deeper")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound past an item, got %v", err)
	}
}

func TestPathOf(t *testing.T) {
	s := buildDay(t)
	it, err := s.Item(ParsePath("health/gym/pushups"))
	if err != nil {
		t.Fatalf("item: %v", err)
	}
	p, ok := s.PathOf(it)
	if !ok || p.String() != "health/gym/pushups" {
		t.Fatalf("expected health/gym/pushups, got %v %v", p, ok)
	}

	// The index follows structural changes.
	if err := s.Move(ParsePath("health/gym"), nil, 0); err != nil {
		t.Fatalf("move: %v", err)
	}
	p, ok = s.PathOf(it)
	if !ok || p.String() != "gym/pushups" {
		t.Fatalf("index stale after move: %v %v", p, ok)
	}

	if _, ok := s.PathOf(node.NewItem("stray", node.TypeInt)); ok {
		t.Fatalf("unknown node should not resolve to a path")
	}
}

func TestSetValue(t *testing.T) {
	s := buildDay(t)
	if err := s.SetValue(ParsePath("health/gym/pushups"), "25"); err != nil {
		t.Fatalf("set: %v", err)
	}
	it, _ := s.Item(ParsePath("health/gym/pushups"))
	if it.Value.Int() != 25 {
		t.Fatalf("expected 25, got %d", it.Value.Int())
	}

	// A failed coercion keeps the prior value.
	if err := s.SetValue(ParsePath("health/gym/pushups"), "a lot"); !errors.Is(err, node.ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch, got %v", err)
	}
	if it.Value.Int() != 25 {
		t.Fatalf("value changed by failed coercion: %d", it.Value.Int())
	}

	if err := s.SetValue(ParsePath("health"), "1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("setting a folder should be ErrNotFound, got %v", err)
	}
}

func TestMoveReorders(t *testing.T) {
	s := New(nil)
	for _, name := range []string{"a", "b", "c"} {
		if _, err := s.AddItem(nil, name, node.TypeInt); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	if err := s.Move(ParsePath("c"), nil, 0); err != nil {
		t.Fatalf("move: %v", err)
	}
	got := []string{s.Root.Items[0].Name, s.Root.Items[1].Name, s.Root.Items[2].Name}
	if got[0] != "c" || got[1] != "a" || got[2] != "b" {
		t.Fatalf("unexpected order %v", got)
	}

	// Out-of-range target index clamps to the end.
	if err := s.Move(ParsePath("c"), nil, 99); err != nil {
		t.Fatalf("move: %v", err)
	}
	if s.Root.Items[2].Name != "c" {
		t.Fatalf("expected c at the end, got %v", s.Root.Items[2].Name)
	}
}

func TestMoveAcrossFolders(t *testing.T) {
	s := buildDay(t)
	if err := s.Move(ParsePath("health/weight"), ParsePath("health/gym"), 0); err != nil {
		t.Fatalf("move: %v", err)
	}
	if _, err := s.Item(ParsePath("health/gym/weight")); err != nil {
		t.Fatalf("item missing after move: %v", err)
	}
	if _, err := s.Item(ParsePath("health/weight")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("item still at the old path")
	}

	// Folders stay before items at every level.
	gym, _ := s.Folder(ParsePath("health/gym"))
	if _, err := s.AddFolder(ParsePath("health/gym"), "cardio"); err != nil {
		t.Fatalf("add folder: %v", err)
	}
	if len(gym.Folders) != 1 || len(gym.Items) != 2 {
		t.Fatalf("kind grouping broken: %d folders, %d items", len(gym.Folders), len(gym.Items))
	}
}

func TestMoveIntoOwnSubtree(t *testing.T) {
	s := buildDay(t)
	before := s.Root.Clone()

	err := s.Move(ParsePath("health"), ParsePath("health/gym"), 0)
	if !errors.Is(err, ErrInvalidMove) {
		t.Fatalf("expected ErrInvalidMove, got %v", err)
	}
	err = s.Move(ParsePath("health"), ParsePath("health"), 0)
	if !errors.Is(err, ErrInvalidMove) {
		t.Fatalf("expected ErrInvalidMove for self target, got %v", err)
	}
	if !node.Equal(before, s.Root) {
		t.Fatalf("tree changed by rejected move")
	}
}

func TestMoveCollision(t *testing.T) {
	s := buildDay(t)
	if _, err := s.AddItem(ParsePath("health/gym"), "mood", node.TypeString); err != nil {
		t.Fatalf("add: %v", err)
	}
	err := s.Move(ParsePath("health/gym/mood"), nil, 0)
	if !errors.Is(err, ErrInvalidMove) {
		t.Fatalf("expected ErrInvalidMove on collision, got %v", err)
	}
	if _, err := s.Item(ParsePath("health/gym/mood")); err != nil {
		t.Fatalf("source lost on rejected move: %v", err)
	}
}

func TestMoveToRoot(t *testing.T) {
	s := buildDay(t)
	if err := s.MoveToRoot(ParsePath("health/gym")); err != nil {
		t.Fatalf("move to root: %v", err)
	}
	if s.Root.ChildFolder("gym") == nil {
		t.Fatalf("folder not appended to root")
	}
	if err := s.MoveToRoot(ParsePath("health/weight")); err != nil {
		t.Fatalf("move to root: %v", err)
	}
	if s.Root.Items[len(s.Root.Items)-1].Name != "weight" {
		t.Fatalf("item not appended to the end of the root items")
	}
}
