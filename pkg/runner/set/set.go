package set

import (
	"context"
	"errors"

	"tableflip.dev/daily/pkg/app"
	"tableflip.dev/daily/pkg/printers"
	"tableflip.dev/daily/pkg/snapshot"
)

// Set records a value on an item for one date. The raw input is coerced to
// the item's declared type; a failed coercion leaves the prior value alone.
type Set struct {
	Date string
	Path snapshot.Path
	Raw  string

	Service *app.Service
}

func (n *Set) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not set, no service")
	}
	if n.Date == "" {
		n.Date = app.Today()
	}
	if err := app.ValidateDate(n.Date); err != nil {
		return err
	}

	if err := n.Service.SetValue(ctx, n.Date, n.Path, n.Raw); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title(n.Date)
	day, _ := n.Service.Day(n.Date)
	pp.Tree(day.Root)
	return nil
}
