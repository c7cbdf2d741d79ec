package carry

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/daily/pkg/app"
	"tableflip.dev/daily/pkg/printers"
)

// Carry copies a previous date's snapshot into the target date: the whole
// tree with values, or structure only when ItemsOnly is set. Without an
// explicit source the nearest date before the target is used.
type Carry struct {
	From      string
	To        string
	ItemsOnly bool

	Service *app.Service
}

func (n *Carry) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not carry, no service")
	}
	if n.To == "" {
		n.To = app.Today()
	}
	if err := app.ValidateDate(n.To); err != nil {
		return err
	}

	from := n.From
	if from == "" {
		prev, ok := n.Service.Previous(n.To)
		if !ok {
			return fmt.Errorf("app: nothing before %s: %w", n.To, app.ErrNoSourceDate)
		}
		from = prev
	} else if err := app.ValidateDate(from); err != nil {
		return err
	}

	if n.ItemsOnly {
		if err := n.Service.CopyStructureOnly(ctx, from, n.To); err != nil {
			return err
		}
	} else {
		if err := n.Service.CopyForward(ctx, from, n.To); err != nil {
			return err
		}
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title(n.To)
	day, _ := n.Service.Day(n.To)
	pp.Tree(day.Root)
	return nil
}
