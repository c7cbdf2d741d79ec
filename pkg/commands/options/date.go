// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// DateOptions selects the date a command operates on.
type DateOptions struct {
	Date string
}

// AddDateArgs wires the date flag on the provided command. An empty value
// means today.
func AddDateArgs(cmd *cobra.Command, o *DateOptions) {
	cmd.Flags().StringVarP(&o.Date, "date", "d", "",
		`Specify an ISO date, example: --date="2026-02-28". Defaults to today.`)
}
