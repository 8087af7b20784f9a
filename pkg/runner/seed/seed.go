package seed

import (
	"context"
	"errors"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/dietlog/pkg/app"
	"tableflip.dev/dietlog/pkg/printers"
)

type Seed struct {
	Service *app.Service
	Date    string
	Out     io.Writer
}

func (n *Seed) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not seed, no journal")
	}
	added, err := n.Service.Seed(ctx, n.Date)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: n.Out, Loc: n.Service.Resolver.Location()}
	_, _ = color.New(color.FgGreen).Fprintf(pp.Writer(), "Seeded %d sample entries\n\n", len(added))
	day, err := n.Service.QueryByDate(n.Date)
	if err != nil {
		return err
	}
	pp.Day(n.Date, day)
	return nil
}
