package options

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/dietlog/pkg/printers"
)

// FormatOptions picks how listings are rendered.
type FormatOptions struct {
	Output string
}

func AddFormatArgs(cmd *cobra.Command, o *FormatOptions) {
	cmd.Flags().StringVarP(&o.Output, "output", "o", printers.OutputPretty,
		"Output format. One of 'pretty', 'json' or 'yaml'.")
}

func (o *FormatOptions) Validate() error {
	switch o.Output {
	case printers.OutputPretty, printers.OutputJSON, printers.OutputYAML:
		return nil
	}
	return fmt.Errorf("unknown output %q, expected pretty, json or yaml", o.Output)
}

// Apply lets the shared --json flag stand in for --output=json.
func (o *FormatOptions) Apply(json bool) error {
	if json {
		o.Output = printers.OutputJSON
	}
	return o.Validate()
}
