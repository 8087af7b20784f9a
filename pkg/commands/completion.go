package commands

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/dietlog/pkg/category"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(dietlog completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(dietlog completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

// labelCompletions offers the fixed options of the category named by the
// first argument.
func labelCompletions(args []string) []string {
	if len(args) == 0 {
		return nil
	}
	c, err := category.Parse(args[0])
	if err != nil {
		return nil
	}
	opts := c.Info().Options
	out := make([]string, 0, len(opts))
	for _, o := range opts {
		out = append(out, strconv.Quote(o))
	}
	return out
}
