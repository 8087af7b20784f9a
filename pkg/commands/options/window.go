package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/dietlog/pkg/timeutil"
)

// WindowOptions bounds how many days a history covers.
type WindowOptions struct {
	Last string
}

func AddWindowArgs(cmd *cobra.Command, o *WindowOptions) {
	cmd.Flags().StringVar(&o.Last, "last", timeutil.DefaultWindow,
		`How far back to look, example: --last=3d, --last=2w.`)
}

// Days parses the window.
func (o *WindowOptions) Days() (int, string, error) {
	return timeutil.ParseWindow(o.Last)
}
