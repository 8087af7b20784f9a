package commands

import (
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/dietlog/pkg/runner/reset"
)

func addReset(topLevel *cobra.Command) {
	yes := false

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every entry",
		Example: `
dietlog reset --yes
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := openEnv(cmd.Context())
			if err != nil {
				return output.HandleError(err)
			}
			defer e.Close()

			s := reset.Reset{
				Service: e.Service,
				Confirm: yes,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm deleting the whole journal.")
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
