package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/daily/pkg/commands/options"
	"tableflip.dev/daily/pkg/runner/chart"
	"tableflip.dev/daily/pkg/snapshot"
)

func addChart(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}
	var path snapshot.Path

	cmd := &cobra.Command{
		Use:   "chart <path>",
		Short: "Chart one item's values across dates",
		Long: `Print the (date, value) series for a boolean or numeric item across
every date that holds it. Complete/incomplete items chart as 1 and 0
and also get a month grid.`,
		Example: `
daily chart health/water
daily chart meditate --window 2w
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires an item path")
			}
			path = snapshot.ParsePath(args[0])
			if path.IsRoot() {
				return errors.New("requires an item path")
			}
			return nil
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) != 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return pathCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(cmd.Context())
			if err != nil {
				return err
			}
			s := chart.Chart{
				Path:    path,
				Window:  wo.Window,
				Service: svc,
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	options.AddWindowArgs(cmd, wo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addItems(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "items",
		Short: "List every chartable item path",
		Example: `
daily items
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(cmd.Context())
			if err != nil {
				return err
			}
			s := chart.Items{
				Service: svc,
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
