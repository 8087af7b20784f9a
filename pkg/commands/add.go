package commands

import (
	"errors"
	"fmt"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/dietlog/pkg/category"
	"tableflip.dev/dietlog/pkg/commands/options"
	"tableflip.dev/dietlog/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	eo := &options.EntryOptions{}
	oo := &options.OnOptions{}
	io := &options.IDOptions{}
	fo := &options.FormatOptions{}
	var c category.Category

	long := strings.Builder{}
	long.WriteString("Add an entry to the journal.\n\n")
	long.WriteString("Categories and their input:\n")
	validArgs := make([]string, 0, len(category.All()))
	for _, info := range category.All() {
		long.WriteString(fmt.Sprintf("  %-16s %s\n", info.Category, info.Kind))
		validArgs = append(validArgs, string(info.Category))
	}

	cmd := &cobra.Command{
		Use:   "add <category> [value]",
		Short: "Add an entry",
		Long:  long.String(),
		Example: `
dietlog add weight 80,4
dietlog add wake-up-time 7:30
dietlog add activity --start=09:00 --end=09:40 --label=Walking
dietlog add working-hours 09:00 18:00
dietlog add dinner 19:00 Soup
dietlog add breakfast --start=08:00 --end=08:30 --desc="Eggs, toast" --image=eggs.jpg
dietlog add supplements --item="Vitamin D" --item=Zinc
dietlog add stomach-feeling --label=Other --other="Heavy" --on=yesterday
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a category")
			}
			var err error
			c, err = category.Parse(args[0])
			return err
		},
		ValidArgs: validArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if err := fo.Apply(output.JSON); err != nil {
				return output.HandleError(err)
			}
			fields, err := eo.Fields(c, args[1:])
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
			s := add.Add{
				Service:   e.Service,
				Category:  c,
				Fields:    fields,
				Date:      date,
				ImagePath: eo.Image,
				ShowID:    io.ShowID,
				Output:    fo.Output,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddEntryArgs(cmd, eo)
	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)
	options.AddFormatArgs(cmd, fo)
	_ = cmd.RegisterFlagCompletionFunc("label", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return labelCompletions(args), cobra.ShellCompDirectiveNoFileComp
	})
	base.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
