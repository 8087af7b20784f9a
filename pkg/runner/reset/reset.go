package reset

import (
	"context"
	"errors"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/dietlog/pkg/app"
)

type Reset struct {
	Service *app.Service
	Confirm bool
	Out     io.Writer
}

func (n *Reset) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not reset, no journal")
	}
	if !n.Confirm {
		return errors.New("refusing to delete every entry without --yes")
	}
	count := len(n.Service.Logs.All())
	if err := n.Service.Reset(ctx); err != nil {
		return err
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	_, _ = color.New(color.FgYellow).Fprintf(out, "Deleted %d entries\n", count)
	return nil
}
