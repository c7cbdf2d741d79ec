package options

import (
	"github.com/spf13/cobra"
)

// WindowOptions limits history output to a trailing window.
type WindowOptions struct {
	Window string
}

// AddWindowArgs wires the window flag on the provided command. An empty
// value means the full history.
func AddWindowArgs(cmd *cobra.Command, o *WindowOptions) {
	cmd.Flags().StringVarP(&o.Window, "window", "w", "",
		`Limit to a trailing window, example: --window="2w" or --window="1m3d".`)
}
