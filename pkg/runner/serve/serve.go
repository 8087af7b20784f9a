package serve

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	"tableflip.dev/dietlog/pkg/echo"
)

// Serve runs the echo endpoint until ctx is cancelled.
type Serve struct {
	Addr    string
	Metrics bool
	Logger  zerolog.Logger
}

func (n *Serve) Do(ctx context.Context) error {
	var reg *prometheus.Registry
	if n.Metrics {
		reg = prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	return echo.Serve(ctx, n.Addr, echo.NewMux(n.Logger, reg), n.Logger)
}
