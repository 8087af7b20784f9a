package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	output = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "dietlog",
		Short: base.Wrap80("A personal diet and wellness journal on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addDelete(topLevel)
	addDay(topLevel)
	addMonth(topLevel)
	addWeights(topLevel)
	addCategories(topLevel)
	addSeed(topLevel)
	addReset(topLevel)
	addWatch(topLevel)
	addServe(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
