package delete

import (
	"context"
	"errors"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/dietlog/pkg/app"
)

type Delete struct {
	Service *app.Service
	ID      string
	Out     io.Writer
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not delete, no journal")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	item, _ := n.Service.Logs.Get(n.ID)
	found, err := n.Service.DeleteEntry(ctx, n.ID)
	if err != nil {
		return err
	}
	if !found {
		_, _ = color.New(color.Faint).Fprintf(out, "no entry with id %s\n", n.ID)
		return nil
	}
	_, _ = color.New(color.FgGreen).Fprintf(out, "Deleted %s\n", item)
	return nil
}
