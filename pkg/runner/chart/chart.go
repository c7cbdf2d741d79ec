// Package chart provides runners that summarize item history across dates.
package chart

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/daily/pkg/app"
	"tableflip.dev/daily/pkg/history"
	"tableflip.dev/daily/pkg/node"
	"tableflip.dev/daily/pkg/printers"
	"tableflip.dev/daily/pkg/snapshot"
	"tableflip.dev/daily/pkg/timeutil"
)

// Chart prints the (date, value) series for one chartable item across every
// stored date, optionally bounded to a window ending today.
type Chart struct {
	Path   snapshot.Path
	Window string

	Service *app.Service
}

func (n *Chart) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not chart, no service")
	}

	points := history.Series(n.Service.Snapshots(), n.Path)

	if n.Window != "" {
		cutoff, err := timeutil.Cutoff(time.Now(), n.Window)
		if err != nil {
			return err
		}
		kept := points[:0]
		for _, p := range points {
			if p.Date >= cutoff {
				kept = append(kept, p)
			}
		}
		points = kept
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Series(n.Path.String(), points)

	if n.isCheckItem() {
		pp.MonthGrid(time.Now(), points)
	}
	return nil
}

// isCheckItem reports whether the charted path held a complete/incomplete
// item on any date.
func (n *Chart) isCheckItem() bool {
	for _, info := range history.Chartable(n.Service.Snapshots()) {
		if info.Path.String() == n.Path.String() {
			return info.Type == node.TypeCheck
		}
	}
	return false
}

// Items prints the deduplicated chartable index across all dates.
type Items struct {
	Service *app.Service
}

func (n *Items) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list items, no service")
	}
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("chartable items")
	pp.Items(history.Chartable(n.Service.Snapshots()))
	return nil
}
