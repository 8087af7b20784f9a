package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/dietlog/pkg/timeutil"
)

// OnOptions selects the day a command works on.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "today",
		`Specify a date, example: --on=2024-02-28, --on=yesterday.`)
}

// GetOn resolves the flag to a YYYY-MM-DD date in loc.
func (o *OnOptions) GetOn(loc *time.Location) (string, error) {
	return timeutil.ResolveDate(o.OnString, time.Now(), loc)
}
