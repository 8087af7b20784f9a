package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/dietlog/pkg/app"
	"tableflip.dev/dietlog/pkg/store"
)

type Info struct {
	Config  *store.Config
	Backend store.Backend
	Service *app.Service
	Out     io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("DIETLOG_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "DIETLOG_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, "DIETLOG_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintln(out, "Config.path:", n.Config.BasePath())
	_, _ = fmt.Fprintln(out, "Config.timezone:", n.Config.Timezone)
	_, _ = fmt.Fprintln(out, "Config.celebration.mode:", n.Config.Celebration.Mode)

	if n.Backend == nil {
		return fmt.Errorf("failed to open storage")
	}
	_, _ = fmt.Fprintln(out, "Storage:", n.Backend.Describe())

	if n.Service == nil {
		return nil
	}
	all := n.Service.Logs.All()
	days := make(map[string]struct{})
	for _, item := range all {
		days[item.Date] = struct{}{}
	}
	_, _ = fmt.Fprintf(out, "Entries: %d over %d days\n", len(all), len(days))
	return nil
}
