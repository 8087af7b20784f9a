package month

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/dietlog/pkg/app"
	"tableflip.dev/dietlog/pkg/entry"
	"tableflip.dev/dietlog/pkg/printers"
)

type Month struct {
	Service *app.Service
	// Date is any day of the month to show.
	Date string
	Out  io.Writer
}

func (n *Month) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show month, no journal")
	}
	then, err := entry.ParseDate(n.Date)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.Title(then.Format("January 2006"))
	pp.Month(then, n.Service.Logs.All())
	return nil
}
