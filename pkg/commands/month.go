package commands

import (
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/dietlog/pkg/commands/options"
	"tableflip.dev/dietlog/pkg/runner/month"
)

func addMonth(topLevel *cobra.Command) {
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Calendar of the days that have entries",
		Example: `
dietlog month
dietlog month --on=2024-02-01
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := openEnv(cmd.Context())
			if err != nil {
				return output.HandleError(err)
			}
			defer e.Close()

			date, err := oo.GetOn(e.Loc)
			if err != nil {
				return output.HandleError(err)
			}
			s := month.Month{
				Service: e.Service,
				Date:    date,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
