package commands

import (
	"context"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/daily/pkg/app"
	"tableflip.dev/daily/pkg/commands/options"
	"tableflip.dev/daily/pkg/history"
	"tableflip.dev/daily/pkg/store"
)

var (
	oo = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "daily",
		Short: base.Wrap80("Track daily items and habits on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addSet(topLevel)
	addMove(topLevel)
	addShow(topLevel)
	addCarry(topLevel)
	addChart(topLevel)
	addItems(topLevel)
	addDates(topLevel)
	addInfo(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// loadService builds the application service over the configured data file.
func loadService(ctx context.Context) (*app.Service, error) {
	p, err := store.Load(nil)
	if err != nil {
		return nil, err
	}
	return app.New(ctx, p)
}

func pathCompletions(toComplete string) []string {
	svc, err := loadService(context.Background())
	if err != nil {
		return nil
	}
	infos := history.Chartable(svc.Snapshots())
	out := make([]string, 0, len(infos))
	for _, info := range infos {
		p := info.Path.String()
		if toComplete != "" && !strings.HasPrefix(p, toComplete) {
			continue
		}
		out = append(out, strconv.Quote(p))
	}
	return out
}
