package watch

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/dietlog/pkg/app"
	"tableflip.dev/dietlog/pkg/printers"
	"tableflip.dev/dietlog/pkg/store"
)

// Watch reprints a day whenever the stored journal changes.
type Watch struct {
	Service *app.Service
	Backend store.Backend
	Date    string
	ShowID  bool
	Out     io.Writer
}

func (n *Watch) Do(ctx context.Context) error {
	if n.Service == nil || n.Backend == nil {
		return errors.New("can not watch, no journal")
	}
	events, err := n.Backend.Watch(ctx)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out, Loc: n.Service.Resolver.Location()}
	if err := n.print(pp); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			n.Service.Logger.Debug().Stringer("event", ev.Type).Str("name", ev.Name).Msg("journal changed")
			if err := n.Service.Reload(ctx); err != nil {
				n.Service.Logger.Warn().Err(err).Msg("reload journal")
				continue
			}
			if err := n.print(pp); err != nil {
				return err
			}
		}
	}
}

func (n *Watch) print(pp printers.PrettyPrint) error {
	items, err := n.Service.QueryByDate(n.Date)
	if err != nil {
		return err
	}
	pp.Day(n.Date, items)
	return nil
}
