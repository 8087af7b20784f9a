package commands

import (
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/dietlog/pkg/commands/options"
	"tableflip.dev/dietlog/pkg/runner/weights"
)

func addWeights(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	wo := &options.WindowOptions{}
	io := &options.IDOptions{}
	fo := &options.FormatOptions{}

	cmd := &cobra.Command{
		Use:     "weights",
		Aliases: []string{"weight-history"},
		Short:   "Weight logged on the days before a date",
		Example: `
dietlog weights
dietlog weights --last=2w -o json
dietlog weights --on=2024-03-10 --last=3d
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if err := fo.Apply(output.JSON); err != nil {
				return output.HandleError(err)
			}
			days, _, err := wo.Days()
			if err != nil {
				return output.HandleError(err)
			}
			e, err := openEnv(cmd.Context())
			if err != nil {
				return output.HandleError(err)
			}
			defer e.Close()

			date, err := oo.GetOn(e.Loc)
			if err != nil {
				return output.HandleError(err)
			}
			s := weights.Weights{
				Service: e.Service,
				Date:    date,
				Days:    days,
				ShowID:  io.ShowID,
				Output:  fo.Output,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddWindowArgs(cmd, wo)
	options.AddShowIDArgs(cmd, io)
	options.AddFormatArgs(cmd, fo)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
