package history

import (
	"testing"

	"tableflip.dev/daily/pkg/node"
	"tableflip.dev/daily/pkg/snapshot"
)

func day(t *testing.T, build func(s *snapshot.Snapshot)) *snapshot.Snapshot {
	t.Helper()
	s := snapshot.New(nil)
	build(s)
	return s
}

func addItem(t *testing.T, s *snapshot.Snapshot, parent, name string, typ node.Type, raw string) {
	t.Helper()
	if _, err := s.AddItem(snapshot.ParsePath(parent), name, typ); err != nil {
		t.Fatalf("add %s: %v", name, err)
	}
	if raw != "" {
		p := snapshot.ParsePath(parent + "/" + name)
		if parent == "" {
			p = snapshot.ParsePath(name)
		}
		if err := s.SetValue(p, raw); err != nil {
			t.Fatalf("set %s: %v", name, err)
		}
	}
}

func TestChartableDedupes(t *testing.T) {
	days := map[string]*snapshot.Snapshot{
		"2024-01-01": day(t, func(s *snapshot.Snapshot) {
			addItem(t, s, "", "water", node.TypeInt, "3")
			addItem(t, s, "", "mood", node.TypeString, "ok")
		}),
		"2024-01-02": day(t, func(s *snapshot.Snapshot) {
			addItem(t, s, "", "water", node.TypeInt, "5")
			addItem(t, s, "", "meditate", node.TypeCheck, "true")
		}),
	}

	infos := Chartable(days)
	if len(infos) != 2 {
		t.Fatalf("expected 2 chartable items, got %d: %v", len(infos), infos)
	}
	// Ordered by path; the string item never appears.
	if infos[0].Path.String() != "meditate" || infos[0].Type != node.TypeCheck {
		t.Fatalf("unexpected first info %v", infos[0])
	}
	if infos[1].Path.String() != "water" || infos[1].Type != node.TypeInt {
		t.Fatalf("unexpected second info %v", infos[1])
	}
}

func TestChartableNestedPaths(t *testing.T) {
	days := map[string]*snapshot.Snapshot{
		"2024-01-01": day(t, func(s *snapshot.Snapshot) {
			if _, err := s.AddFolder(nil, "health"); err != nil {
				t.Fatalf("add folder: %v", err)
			}
			addItem(t, s, "health", "pushups", node.TypeInt, "")
		}),
	}
	infos := Chartable(days)
	if len(infos) != 1 || infos[0].Path.String() != "health/pushups" {
		t.Fatalf("expected health/pushups, got %v", infos)
	}
}

func TestSeriesSkipsGaps(t *testing.T) {
	days := map[string]*snapshot.Snapshot{
		"2024-01-01": day(t, func(s *snapshot.Snapshot) {
			addItem(t, s, "", "water", node.TypeInt, "3")
		}),
		"2024-01-02": day(t, func(s *snapshot.Snapshot) {
			addItem(t, s, "", "mood", node.TypeString, "meh")
		}),
		"2024-01-03": day(t, func(s *snapshot.Snapshot) {
			addItem(t, s, "", "water", node.TypeInt, "5")
		}),
	}

	points := Series(days, snapshot.ParsePath("water"))
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %v", points)
	}
	if points[0].Date != "2024-01-01" || points[0].Value != 3 {
		t.Fatalf("unexpected first point %v", points[0])
	}
	if points[1].Date != "2024-01-03" || points[1].Value != 5 {
		t.Fatalf("unexpected second point %v", points[1])
	}
}

func TestSeriesBooleanMapping(t *testing.T) {
	days := map[string]*snapshot.Snapshot{
		"2024-01-01": day(t, func(s *snapshot.Snapshot) {
			addItem(t, s, "", "meditate", node.TypeCheck, "true")
		}),
		"2024-01-02": day(t, func(s *snapshot.Snapshot) {
			addItem(t, s, "", "meditate", node.TypeCheck, "false")
		}),
	}
	points := Series(days, snapshot.ParsePath("meditate"))
	if len(points) != 2 || points[0].Value != 1 || points[1].Value != 0 {
		t.Fatalf("expected 1 then 0, got %v", points)
	}
}

func TestSeriesSkipsNonChartable(t *testing.T) {
	days := map[string]*snapshot.Snapshot{
		"2024-01-01": day(t, func(s *snapshot.Snapshot) {
			addItem(t, s, "", "mood", node.TypeString, "ok")
		}),
	}
	if points := Series(days, snapshot.ParsePath("mood")); len(points) != 0 {
		t.Fatalf("string items must not chart, got %v", points)
	}
	if points := Series(days, snapshot.ParsePath("absent")); len(points) != 0 {
		t.Fatalf("unknown path should produce an empty series, got %v", points)
	}
}
