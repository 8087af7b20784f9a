package commands

import (
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/dietlog/pkg/runner/serve"
)

func addServe(topLevel *cobra.Command) {
	addr := ""
	metrics := true

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP endpoint that echoes posted entries",
		Example: `
dietlog serve
dietlog serve --addr=127.0.0.1:9000 --metrics=false
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, logger, err := loadConfig()
			if err != nil {
				return output.HandleError(err)
			}
			if addr == "" {
				addr = cfg.Serve.Addr
			}
			s := serve.Serve{
				Addr:    addr,
				Metrics: metrics,
				Logger:  logger,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address, defaults to serve.addr from the config.")
	cmd.Flags().BoolVar(&metrics, "metrics", true, "Expose Prometheus metrics on /metrics.")
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
