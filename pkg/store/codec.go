package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"tableflip.dev/daily/pkg/node"
)

// The data file accreted three shapes over its life. The reader normalizes
// all of them into the node model at the load boundary; the writer only ever
// emits the ordered-array shape, the one form that keeps explicit sibling
// order lossless.
//
//	flat (earliest):   {"pushups": false} or {"pushups": {"type": "int", "value": 3}}
//	keyed:             {"folders": {name: subtree}, "items": {name: {"type": .., "value": ..}}}
//	ordered (written): {"folders": [{name, folders, items}], "items": [{name, type, value}]}

type wireFolder struct {
	Name    string       `json:"name"`
	Folders []wireFolder `json:"folders"`
	Items   []wireItem   `json:"items"`
}

type wireItem struct {
	Name  string          `json:"name"`
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

type wireDay struct {
	Folders []wireFolder `json:"folders"`
	Items   []wireItem   `json:"items"`
}

func encodeFile(days map[string]*node.Folder) ([]byte, error) {
	doc := make(map[string]wireDay, len(days))
	for date, root := range days {
		doc[date] = wireDay{
			Folders: encodeFolders(root.Folders),
			Items:   encodeItems(root.Items),
		}
	}
	return json.MarshalIndent(doc, "", "  ")
}

func encodeFolders(folders []*node.Folder) []wireFolder {
	out := make([]wireFolder, 0, len(folders))
	for _, f := range folders {
		out = append(out, wireFolder{
			Name:    f.Name,
			Folders: encodeFolders(f.Folders),
			Items:   encodeItems(f.Items),
		})
	}
	return out
}

func encodeItems(items []*node.Item) []wireItem {
	out := make([]wireItem, 0, len(items))
	for _, it := range items {
		out = append(out, wireItem{
			Name:  it.Name,
			Type:  string(it.Type),
			Value: encodeValue(it.Value),
		})
	}
	return out
}

func encodeValue(v node.Value) json.RawMessage {
	var data []byte
	switch v.Kind() {
	case node.TypeCheck:
		data = []byte(strconv.FormatBool(v.Bool()))
	case node.TypeInt:
		data = []byte(strconv.FormatInt(v.Int(), 10))
	case node.TypeFloat:
		data, _ = json.Marshal(v.Float())
	default:
		data, _ = json.Marshal(v.Text())
	}
	return data
}

func decodeFile(data []byte) (map[string]*node.Folder, error) {
	days := make(map[string]*node.Folder)
	if len(bytes.TrimSpace(data)) == 0 {
		return days, nil
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	for date, raw := range doc {
		root, err := decodeDay(raw)
		if err != nil {
			return nil, fmt.Errorf("date %s: %w", date, err)
		}
		days[date] = root
	}
	return days, nil
}

func decodeDay(raw json.RawMessage) (*node.Folder, error) {
	var probe struct {
		Folders json.RawMessage `json:"folders"`
		Items   json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	switch {
	case firstByte(probe.Folders) == '[' || firstByte(probe.Items) == '[':
		return decodeOrderedDay(raw)
	case firstByte(probe.Folders) == '{' || firstByte(probe.Items) == '{':
		root, err := decodeKeyedDay(raw)
		if err == nil {
			return root, nil
		}
		// A flat day may track an item literally named "folders" or
		// "items" whose typed value probes as an object. Retry as flat
		// before giving up.
		if flat, ferr := decodeFlatDay(raw); ferr == nil {
			return flat, nil
		}
		return nil, err
	default:
		return decodeFlatDay(raw)
	}
}

func firstByte(raw json.RawMessage) byte {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}

// decodeOrderedDay reads the canonical shape with explicit sibling order.
func decodeOrderedDay(raw json.RawMessage) (*node.Folder, error) {
	var day wireDay
	if err := json.Unmarshal(raw, &day); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	root := node.NewFolder("")
	if err := fillFolder(root, day.Folders, day.Items); err != nil {
		return nil, err
	}
	return root, nil
}

func fillFolder(dst *node.Folder, folders []wireFolder, items []wireItem) error {
	for _, wf := range folders {
		sub := node.NewFolder(wf.Name)
		if err := fillFolder(sub, wf.Folders, wf.Items); err != nil {
			return err
		}
		if err := dst.InsertFolder(sub, len(dst.Folders)); err != nil {
			return fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
	}
	for _, wi := range items {
		it, err := decodeItem(wi.Name, wi.Type, wi.Value)
		if err != nil {
			return err
		}
		if err := dst.InsertItem(it, len(dst.Items)); err != nil {
			return fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
	}
	return nil
}

// decodeKeyedDay reads the name-keyed intermediate shape. Map order is not
// preserved in JSON, so siblings come back sorted by name.
func decodeKeyedDay(raw json.RawMessage) (*node.Folder, error) {
	root := node.NewFolder("")
	if err := fillKeyedFolder(root, raw); err != nil {
		return nil, err
	}
	return root, nil
}

func fillKeyedFolder(dst *node.Folder, raw json.RawMessage) error {
	var day struct {
		Folders map[string]json.RawMessage `json:"folders"`
		Items   map[string]wireItem        `json:"items"`
	}
	if err := json.Unmarshal(raw, &day); err != nil {
		return fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	for _, name := range sortedKeys(day.Folders) {
		sub := node.NewFolder(name)
		if err := fillKeyedFolder(sub, day.Folders[name]); err != nil {
			return err
		}
		if err := dst.InsertFolder(sub, len(dst.Folders)); err != nil {
			return fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
	}
	itemNames := make([]string, 0, len(day.Items))
	for name := range day.Items {
		itemNames = append(itemNames, name)
	}
	sort.Strings(itemNames)
	for _, name := range itemNames {
		wi := day.Items[name]
		it, err := decodeItem(name, wi.Type, wi.Value)
		if err != nil {
			return err
		}
		if err := dst.InsertItem(it, len(dst.Items)); err != nil {
			return fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
	}
	return nil
}

// decodeFlatDay reads the earliest shape: a flat item-name map with either
// typed objects or bare scalars as values. The very first revision stored
// plain booleans.
func decodeFlatDay(raw json.RawMessage) (*node.Folder, error) {
	var day map[string]json.RawMessage
	if err := json.Unmarshal(raw, &day); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	root := node.NewFolder("")
	for _, name := range sortedKeys(day) {
		it, err := decodeFlatItem(name, day[name])
		if err != nil {
			return nil, err
		}
		if err := root.InsertItem(it, len(root.Items)); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
	}
	return root, nil
}

func decodeFlatItem(name string, raw json.RawMessage) (*node.Item, error) {
	var typed struct {
		Type  *string         `json:"type"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(raw, &typed); err == nil && typed.Type != nil {
		return decodeItem(name, *typed.Type, typed.Value)
	}

	// Bare scalar: infer the type from the JSON kind.
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		it := node.NewItem(name, node.TypeCheck)
		it.Value = node.BoolValue(b)
		return it, nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		it := node.NewItem(name, node.TypeFloat)
		it.Value = node.FloatValue(f)
		return it, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		it := node.NewItem(name, node.TypeString)
		it.Value = node.TextValue(s)
		return it, nil
	}
	return nil, fmt.Errorf("%w: item %q has no recognizable value", ErrCorrupt, name)
}

func decodeItem(name, rawType string, rawValue json.RawMessage) (*node.Item, error) {
	t, err := node.ParseType(rawType)
	if err != nil {
		return nil, fmt.Errorf("%w: item %q: %v", ErrCorrupt, name, err)
	}
	it := node.NewItem(name, t)
	if len(bytes.TrimSpace(rawValue)) == 0 || bytes.Equal(bytes.TrimSpace(rawValue), []byte("null")) {
		return it, nil
	}
	switch t {
	case node.TypeCheck:
		var b bool
		if err := json.Unmarshal(rawValue, &b); err != nil {
			return nil, fmt.Errorf("%w: item %q: %v", ErrCorrupt, name, err)
		}
		it.Value = node.BoolValue(b)
	case node.TypeInt:
		var n json.Number
		if err := json.Unmarshal(rawValue, &n); err != nil {
			return nil, fmt.Errorf("%w: item %q: %v", ErrCorrupt, name, err)
		}
		i, err := n.Int64()
		if err != nil {
			// Accept a float written by an older revision.
			f, ferr := n.Float64()
			if ferr != nil {
				return nil, fmt.Errorf("%w: item %q: %v", ErrCorrupt, name, err)
			}
			i = int64(f)
		}
		it.Value = node.IntValue(i)
	case node.TypeFloat:
		var f float64
		if err := json.Unmarshal(rawValue, &f); err != nil {
			return nil, fmt.Errorf("%w: item %q: %v", ErrCorrupt, name, err)
		}
		it.Value = node.FloatValue(f)
	default:
		var s string
		if err := json.Unmarshal(rawValue, &s); err != nil {
			return nil, fmt.Errorf("%w: item %q: %v", ErrCorrupt, name, err)
		}
		it.Value = node.TextValue(s)
	}
	return it, nil
}

func sortedKeys(m map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
