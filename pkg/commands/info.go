package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/dietlog/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the config and where the journal is stored.",
		Example: `
dietlog info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := openEnv(cmd.Context())
			if err != nil {
				return output.HandleError(err)
			}
			defer e.Close()

			s := info.Info{
				Config:  e.Config,
				Backend: e.Backend,
				Service: e.Service,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
