package add

import (
	"context"
	"errors"

	"tableflip.dev/daily/pkg/app"
	"tableflip.dev/daily/pkg/node"
	"tableflip.dev/daily/pkg/printers"
	"tableflip.dev/daily/pkg/snapshot"
)

// Add creates a folder or an item under a parent path for one date.
type Add struct {
	Date   string
	Parent snapshot.Path
	Name   string
	Type   node.Type
	Folder bool

	Service *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}
	if n.Date == "" {
		n.Date = app.Today()
	}
	if err := app.ValidateDate(n.Date); err != nil {
		return err
	}

	if n.Folder {
		if err := n.Service.AddFolder(ctx, n.Date, n.Parent, n.Name); err != nil {
			return err
		}
	} else {
		if err := n.Service.AddItem(ctx, n.Date, n.Parent, n.Name, n.Type); err != nil {
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
