// Package history aggregates item values across every stored date.
package history

import (
	"sort"

	"tableflip.dev/daily/pkg/node"
	"tableflip.dev/daily/pkg/snapshot"
)

// ItemInfo identifies a chartable item by path together with its declared
// type.
type ItemInfo struct {
	Path snapshot.Path
	Type node.Type
}

// Point is one day's numeric reading for an item.
type Point struct {
	Date  string
	Value float64
}

// Chartable walks every stored snapshot and returns the deduplicated set of
// item paths whose declared type can feed a series. Text items never chart.
// The result is ordered by path.
func Chartable(days map[string]*snapshot.Snapshot) []ItemInfo {
	seen := make(map[string]ItemInfo)
	for _, day := range days {
		day.Root.Walk(func(path []string, n node.Node) {
			it, ok := n.(*node.Item)
			if !ok || !it.Type.Chartable() {
				return
			}
			p := append(snapshot.Path(nil), path...)
			key := p.String()
			if _, dup := seen[key]; !dup {
				seen[key] = ItemInfo{Path: p, Type: it.Type}
			}
		})
	}
	infos := make([]ItemInfo, 0, len(seen))
	for _, info := range seen {
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Path.String() < infos[j].Path.String()
	})
	return infos
}

// Series resolves the path on every stored date, ascending. Dates where the
// path is missing, resolves to a folder, or holds a non-chartable value are
// skipped: a partial series is normal, items come and go over time.
func Series(days map[string]*snapshot.Snapshot, p snapshot.Path) []Point {
	dates := make([]string, 0, len(days))
	for date := range days {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	points := make([]Point, 0, len(dates))
	for _, date := range dates {
		it, err := days[date].Item(p)
		if err != nil {
			continue
		}
		n, ok := it.Value.Number()
		if !ok {
			continue
		}
		points = append(points, Point{Date: date, Value: n})
	}
	return points
}
