package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/daily/pkg/commands/options"
	"tableflip.dev/daily/pkg/runner/carry"
)

func addCarry(topLevel *cobra.Command) {
	var (
		from      string
		itemsOnly bool
	)

	cmd := &cobra.Command{
		Use:   "carry [date]",
		Short: "Copy a previous date's snapshot into a date",
		Long: `Copy a source date's snapshot into the target date. The default copies
the whole tree with its values; --items-only keeps the structure and
resets every value to its type default. Without --from the nearest date
before the target is used.`,
		Example: `
daily carry
daily carry 2026-03-01 --from 2026-02-28
daily carry --items-only
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(cmd.Context())
			if err != nil {
				return err
			}
			s := carry.Carry{
				From:      from,
				ItemsOnly: itemsOnly,
				Service:   svc,
			}
			if len(args) == 1 {
				s.To = args[0]
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&from, "from", "",
		"Source date. Defaults to the nearest date before the target.")
	cmd.Flags().BoolVar(&itemsOnly, "items-only", false,
		"Carry the structure only, resetting every value to its default.")

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
