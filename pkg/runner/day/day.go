package day

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/dietlog/pkg/app"
	"tableflip.dev/dietlog/pkg/printers"
)

type Day struct {
	Service *app.Service
	Date    string
	ShowID  bool
	Output  string
	Out     io.Writer
}

func (n *Day) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show day, no journal")
	}
	items, err := n.Service.QueryByDate(n.Date)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out, Loc: n.Service.Resolver.Location()}
	if n.Output != "" && n.Output != printers.OutputPretty {
		return printers.Structured(pp.Writer(), n.Output, printers.NewDayView(n.Date, items))
	}
	pp.Day(n.Date, items)
	return nil
}
