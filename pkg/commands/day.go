package commands

import (
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/dietlog/pkg/commands/options"
	"tableflip.dev/dietlog/pkg/runner/day"
)

func addDay(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	io := &options.IDOptions{}
	fo := &options.FormatOptions{}

	cmd := &cobra.Command{
		Use:     "day",
		Aliases: []string{"log", "today"},
		Short:   "View the entries of a day",
		Example: `
dietlog day
dietlog day --on=yesterday --show-id
dietlog day --on=2024-03-10 -o yaml
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if err := fo.Apply(output.JSON); err != nil {
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
			s := day.Day{
				Service: e.Service,
				Date:    date,
				ShowID:  io.ShowID,
				Output:  fo.Output,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)
	options.AddFormatArgs(cmd, fo)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
