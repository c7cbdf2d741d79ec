package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/daily/pkg/commands/options"
	"tableflip.dev/daily/pkg/runner/add"
	"tableflip.dev/daily/pkg/snapshot"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a folder or an item to a date's tree",
		Example: `
daily add folder health
daily add item health/water --type int
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addAddFolder(cmd)
	addAddItem(cmd)

	topLevel.AddCommand(cmd)
}

func addAddFolder(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	var path snapshot.Path

	cmd := &cobra.Command{
		Use:   "folder <path>",
		Short: "Add a folder",
		Example: `
daily add folder health
daily add folder health/exercise --date 2026-02-28
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a folder path")
			}
			path = snapshot.ParsePath(args[0])
			if path.IsRoot() {
				return errors.New("requires a folder name")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(cmd.Context())
			if err != nil {
				return err
			}
			s := add.Add{
				Date:    do.Date,
				Parent:  path.Parent(),
				Name:    path[len(path)-1],
				Folder:  true,
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

func addAddItem(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	to := &options.TypeOptions{}
	var path snapshot.Path

	cmd := &cobra.Command{
		Use:   "item <path>",
		Short: "Add an item",
		Long: `Add an item holding the default value for its type: incomplete for
complete/incomplete, 0 for int and float, empty for string.`,
		Example: `
daily add item meditate
daily add item health/water --type int
daily add item health/weight --type float --date 2026-02-28
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires an item path")
			}
			path = snapshot.ParsePath(args[0])
			if path.IsRoot() {
				return errors.New("requires an item name")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			t, err := to.Type()
			if err != nil {
				return err
			}
			svc, err := loadService(cmd.Context())
			if err != nil {
				return err
			}
			s := add.Add{
				Date:    do.Date,
				Parent:  path.Parent(),
				Name:    path[len(path)-1],
				Type:    t,
				Service: svc,
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	options.AddDateArgs(cmd, do)
	options.AddTypeArgs(cmd, to)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
