package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/daily/pkg/commands/options"
	"tableflip.dev/daily/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	var showType bool

	cmd := &cobra.Command{
		Use:   "show [date]",
		Short: "Show one date's tree",
		Long: `Show the folders and items recorded for a date. A date that has no
snapshot yet gets one derived from the nearest earlier date, structure
only, so a fresh day starts with every value at its default.`,
		Example: `
daily show
daily show 2026-02-28 --types
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("too many dates, confused")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(cmd.Context())
			if err != nil {
				return err
			}
			s := show.Show{
				ShowType: showType,
				Service:  svc,
			}
			if len(args) == 1 {
				s.Date = args[0]
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&showType, "types", false,
		"Show each item's declared type.")

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
