package dates

import (
	"context"
	"errors"

	"tableflip.dev/daily/pkg/app"
	"tableflip.dev/daily/pkg/node"
	"tableflip.dev/daily/pkg/printers"
)

// Dates lists every date that has a snapshot, oldest first.
type Dates struct {
	Service *app.Service
}

func (n *Dates) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list dates, no service")
	}

	all := n.Service.Dates()
	counts := make([]int, 0, len(all))
	for _, d := range all {
		day, _ := n.Service.Day(d)
		nodes := 0
		day.Root.Walk(func(path []string, _ node.Node) {
			nodes++
		})
		counts = append(counts, nodes)
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("dates")
	pp.Dates(all, counts)
	return nil
}
