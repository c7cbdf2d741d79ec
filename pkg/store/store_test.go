package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"tableflip.dev/daily/pkg/node"
)

func testRoot(t *testing.T) *node.Folder {
	t.Helper()
	root := node.NewFolder("")
	health := node.NewFolder("health")
	if err := root.InsertFolder(health, 0); err != nil {
		t.Fatalf("insert: %v", err)
	}
	pushups := node.NewItem("pushups", node.TypeInt)
	pushups.Value = node.IntValue(25)
	if err := health.InsertItem(pushups, 0); err != nil {
		t.Fatalf("insert: %v", err)
	}
	weight, err := node.Coerce(node.TypeFloat, "72.5")
	if err != nil {
		t.Fatalf("coerce: %v", err)
	}
	w := node.NewItem("weight", node.TypeFloat)
	w.Value = weight
	if err := health.InsertItem(w, 1); err != nil {
		t.Fatalf("insert: %v", err)
	}
	mood := node.NewItem("mood", node.TypeString)
	mood.Value = node.TextValue("ok")
	if err := root.InsertItem(mood, 0); err != nil {
		t.Fatalf("insert: %v", err)
	}
	done := node.NewItem("meditate", node.TypeCheck)
	done.Value = node.BoolValue(true)
	if err := root.InsertItem(done, 1); err != nil {
		t.Fatalf("insert: %v", err)
	}
	return root
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracking_data.json")
	p := At(path)
	ctx := context.Background()

	days := map[string]*node.Folder{
		"2024-01-01": testRoot(t),
		"2024-01-02": node.NewFolder(""),
	}
	if err := p.Save(ctx, days); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := p.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 dates, got %d", len(loaded))
	}
	if !node.Equal(days["2024-01-01"], loaded["2024-01-01"]) {
		t.Fatalf("round trip changed the tree")
	}
	if !node.Equal(days["2024-01-02"], loaded["2024-01-02"]) {
		t.Fatalf("round trip changed the empty tree")
	}
}

func TestLoadMissingFile(t *testing.T) {
	p := At(filepath.Join(t.TempDir(), "absent.json"))
	days, err := p.Load(context.Background())
	if err != nil {
		t.Fatalf("missing file should load empty, got %v", err)
	}
	if len(days) != 0 {
		t.Fatalf("expected empty mapping, got %d dates", len(days))
	}
}

func TestLoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracking_data.json")
	if err := os.WriteFile(path, []byte("not json at all"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := At(path).Load(context.Background()); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}

	if err := os.WriteFile(path, []byte(`{"2024-01-01": {"pushups": {"type": "minutes", "value": 3}}}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := At(path).Load(context.Background()); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt for unknown type, got %v", err)
	}
}

func TestLoadFlatShape(t *testing.T) {
	// Earliest revision: flat item map, plain booleans or typed objects.
	doc := `{
	  "2023-11-05": {
	    "meditate": false,
	    "pushups": {"type": "int", "value": 30},
	    "weight": {"type": "double", "value": 72.5},
	    "mood": "tired"
	  }
	}`
	path := filepath.Join(t.TempDir(), "tracking_data.json")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	days, err := At(path).Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	root := days["2023-11-05"]
	if root == nil {
		t.Fatalf("date missing")
	}
	if len(root.Folders) != 0 || len(root.Items) != 4 {
		t.Fatalf("expected 4 flat items, got %d folders %d items", len(root.Folders), len(root.Items))
	}
	if it := root.ChildItem("meditate"); it.Type != node.TypeCheck || it.Value.Bool() {
		t.Fatalf("bare boolean should become complete/incomplete")
	}
	if it := root.ChildItem("pushups"); it.Type != node.TypeInt || it.Value.Int() != 30 {
		t.Fatalf("typed int not decoded: %v %v", it.Type, it.Value)
	}
	if it := root.ChildItem("weight"); it.Type != node.TypeFloat || it.Value.Float() != 72.5 {
		t.Fatalf("legacy double not decoded: %v %v", it.Type, it.Value)
	}
	if it := root.ChildItem("mood"); it.Type != node.TypeString || it.Value.Text() != "tired" {
		t.Fatalf("bare string not decoded: %v %v", it.Type, it.Value)
	}
}

func TestLoadKeyedShape(t *testing.T) {
	// Intermediate revision: name-keyed folder and item maps.
	doc := `{
	  "2024-03-10": {
	    "folders": {
	      "health": {
	        "folders": {},
	        "items": {
	          "pushups": {"type": "int", "value": 12}
	        }
	      }
	    },
	    "items": {
	      "mood": {"type": "string", "value": "fine"}
	    }
	  }
	}`
	path := filepath.Join(t.TempDir(), "tracking_data.json")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	days, err := At(path).Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	root := days["2024-03-10"]
	health := root.ChildFolder("health")
	if health == nil {
		t.Fatalf("nested folder missing")
	}
	if it := health.ChildItem("pushups"); it == nil || it.Value.Int() != 12 {
		t.Fatalf("nested item not decoded")
	}
	if it := root.ChildItem("mood"); it == nil || it.Value.Text() != "fine" {
		t.Fatalf("root item not decoded")
	}
}

func TestLoadNormalizesToCanonical(t *testing.T) {
	// A legacy file, once loaded and saved, re-reads identically through the
	// canonical shape.
	doc := `{"2023-11-05": {"meditate": true}}`
	path := filepath.Join(t.TempDir(), "tracking_data.json")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	ctx := context.Background()
	p := At(path)
	days, err := p.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := p.Save(ctx, days); err != nil {
		t.Fatalf("save: %v", err)
	}
	again, err := p.Load(ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !node.Equal(days["2023-11-05"], again["2023-11-05"]) {
		t.Fatalf("normalized save did not round trip")
	}
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tracking_data.json")
	if err := At(path).Save(context.Background(), map[string]*node.Folder{}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("temporary file left behind")
	}
}

func TestLoadFlatShapeWithReservedNames(t *testing.T) {
	// A flat day may track items literally named "folders" or "items"; their
	// typed object values must not be mistaken for the keyed shape.
	doc := `{
	  "2023-11-06": {
	    "folders": {"type": "int", "value": 3},
	    "items": {"type": "check", "value": true},
	    "pushups": false
	  }
	}`
	path := filepath.Join(t.TempDir(), "tracking_data.json")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	days, err := At(path).Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	root := days["2023-11-06"]
	if root == nil {
		t.Fatalf("date missing")
	}
	if len(root.Folders) != 0 || len(root.Items) != 3 {
		t.Fatalf("expected 3 flat items, got %d folders %d items", len(root.Folders), len(root.Items))
	}
	if it := root.ChildItem("folders"); it.Type != node.TypeInt || it.Value.Int() != 3 {
		t.Fatalf("item named folders not decoded: %+v", it)
	}
	if it := root.ChildItem("items"); it.Type != node.TypeCheck || !it.Value.Bool() {
		t.Fatalf("item named items not decoded: %+v", it)
	}
}

func TestSaveReplacesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracking_data.json")
	ctx := context.Background()
	p := At(path)

	if err := p.Save(ctx, map[string]*node.Folder{"2024-01-01": testRoot(t)}); err != nil {
		t.Fatalf("save: %v", err)
	}
	next := map[string]*node.Folder{
		"2024-01-01": testRoot(t),
		"2024-01-02": node.NewFolder(""),
	}
	if err := p.Save(ctx, next); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := p.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 dates after second save, got %d", len(loaded))
	}
	if _, err := os.Stat(path + ".tmp"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("temporary file left behind")
	}
}
