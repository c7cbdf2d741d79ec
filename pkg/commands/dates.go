package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/daily/pkg/runner/dates"
)

func addDates(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "dates",
		Short: "List every date that has a snapshot",
		Example: `
daily dates
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(cmd.Context())
			if err != nil {
				return err
			}
			s := dates.Dates{
				Service: svc,
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
