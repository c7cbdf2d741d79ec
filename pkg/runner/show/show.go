package show

import (
	"context"
	"errors"

	"tableflip.dev/daily/pkg/app"
	"tableflip.dev/daily/pkg/printers"
)

// Show prints one date's tree. Visiting a date with no snapshot derives one
// from the nearest earlier date, structure only, the way date navigation did.
type Show struct {
	Date     string
	ShowType bool

	Service *app.Service
}

func (n *Show) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show, no service")
	}
	if n.Date == "" {
		n.Date = app.Today()
	}
	if err := app.ValidateDate(n.Date); err != nil {
		return err
	}

	day, err := n.Service.EnsureDay(ctx, n.Date)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowType: n.ShowType}
	pp.NewLine()
	pp.Title(n.Date)
	pp.Tree(day.Root)
	return nil
}
