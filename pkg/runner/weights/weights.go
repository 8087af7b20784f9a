package weights

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/dietlog/pkg/app"
	"tableflip.dev/dietlog/pkg/printers"
)

type Weights struct {
	Service *app.Service
	// Date is the day the history ends before.
	Date   string
	Days   int
	ShowID bool
	Output string
	Out    io.Writer
}

func (n *Weights) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show weights, no journal")
	}
	days := n.Days
	if days == 0 {
		days = app.DefaultHistoryDays
	}
	h, err := n.Service.QueryWeightHistory(n.Date, days)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	if n.Output != "" && n.Output != printers.OutputPretty {
		return printers.Structured(pp.Writer(), n.Output, printers.NewWeightsView(h))
	}
	pp.Weights(h)
	return nil
}
