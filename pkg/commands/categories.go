package commands

import (
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/dietlog/pkg/category"
	"tableflip.dev/dietlog/pkg/commands/options"
	"tableflip.dev/dietlog/pkg/runner/categories"
)

func addCategories(topLevel *cobra.Command) {
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:     "categories [category]",
		Aliases: []string{"cats"},
		Short:   "List categories and how many entries each has on a day",
		Example: `
dietlog categories
dietlog categories --on=yesterday
dietlog categories poopy
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) > 0 {
				c, err := category.Parse(args[0])
				if err != nil {
					return output.HandleError(err)
				}
				s := categories.Categories{Category: c}
				return output.HandleError(s.Do(cmd.Context()))
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
			s := categories.Categories{
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
