package move

import (
	"context"
	"errors"
	"math"

	"tableflip.dev/daily/pkg/app"
	"tableflip.dev/daily/pkg/printers"
	"tableflip.dev/daily/pkg/snapshot"
)

// Move relocates or reorders a node within one date's tree. Without a target
// the node lands at the end of the root, matching a drop outside any folder.
type Move struct {
	Date   string
	Source snapshot.Path
	Target snapshot.Path
	Index  int
	ToRoot bool

	Service *app.Service
}

func (n *Move) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not move, no service")
	}
	if n.Date == "" {
		n.Date = app.Today()
	}
	if err := app.ValidateDate(n.Date); err != nil {
		return err
	}

	if n.ToRoot {
		if err := n.Service.MoveToRoot(ctx, n.Date, n.Source); err != nil {
			return err
		}
	} else {
		at := n.Index
		if at < 0 {
			at = math.MaxInt
		}
		if err := n.Service.Move(ctx, n.Date, n.Source, n.Target, at); err != nil {
			return err
		}
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title(n.Date)
	day, _ := n.Service.Day(n.Date)
	pp.Tree(day.Root)
	return nil
}
