package options

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/daily/pkg/node"
)

// TypeOptions selects the declared value type for a new item.
type TypeOptions struct {
	Raw string
}

// AddTypeArgs wires the type flag on the provided command.
func AddTypeArgs(cmd *cobra.Command, o *TypeOptions) {
	all := node.AllTypes()
	names := make([]string, 0, len(all))
	for _, t := range all {
		names = append(names, string(t))
	}
	cmd.Flags().StringVarP(&o.Raw, "type", "t", string(node.TypeCheck),
		"Item value type, one of: "+strings.Join(names, ", ")+".")
}

// Type resolves the flag value to a known type.
func (o *TypeOptions) Type() (node.Type, error) {
	return node.ParseType(o.Raw)
}
