package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/daily/pkg/commands/options"
	"tableflip.dev/daily/pkg/runner/move"
	"tableflip.dev/daily/pkg/snapshot"
)

func addMove(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	var (
		source snapshot.Path
		target snapshot.Path
		index  int
		toRoot bool
	)

	cmd := &cobra.Command{
		Use:   "move <source> [target]",
		Short: "Move or reorder a folder or item",
		Long: `Move a folder or item into a target folder, or reorder it among its
siblings. Folders stay before items within a folder; the index counts
within the node's own kind and is clamped to bounds.`,
		Example: `
daily move health/water morning
daily move health/water health --index 0
daily move morning/stretch --root
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a source path")
			}
			source = snapshot.ParsePath(args[0])
			if source.IsRoot() {
				return errors.New("the root can not be moved")
			}
			if len(args) > 1 {
				target = snapshot.ParsePath(args[1])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(cmd.Context())
			if err != nil {
				return err
			}
			s := move.Move{
				Date:    do.Date,
				Source:  source,
				Target:  target,
				Index:   index,
				ToRoot:  toRoot,
				Service: svc,
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().IntVarP(&index, "index", "i", -1,
		"Position among siblings of the same kind. Negative appends at the end.")
	cmd.Flags().BoolVar(&toRoot, "root", false,
		"Append the node to the root instead of naming a target.")

	options.AddDateArgs(cmd, do)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
