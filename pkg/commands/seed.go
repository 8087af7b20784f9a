package commands

import (
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/dietlog/pkg/commands/options"
	"tableflip.dev/dietlog/pkg/runner/seed"
)

func addSeed(topLevel *cobra.Command) {
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill an empty day with sample entries",
		Example: `
dietlog seed
dietlog seed --on=yesterday
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
			s := seed.Seed{
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
