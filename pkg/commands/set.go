package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/daily/pkg/commands/options"
	"tableflip.dev/daily/pkg/runner/set"
	"tableflip.dev/daily/pkg/snapshot"
)

func addSet(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	var path snapshot.Path
	var raw string

	cmd := &cobra.Command{
		Use:   "set <path> <value>",
		Short: "Record a value on an item",
		Long: `Record a value on an item. The value is coerced to the item's declared
type; a value that does not coerce is rejected and the prior value kept.`,
		Example: `
daily set meditate true
daily set health/water 5
daily set mood "pretty good" --date 2026-02-28
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("requires an item path and a value")
			}
			path = snapshot.ParsePath(args[0])
			if path.IsRoot() {
				return errors.New("requires an item path")
			}
			raw = strings.Join(args[1:], " ")
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
			s := set.Set{
				Date:    do.Date,
				Path:    path,
				Raw:     raw,
				Service: svc,
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	options.AddDateArgs(cmd, do)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
