package commands

import (
	"log/slog"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"git.home.luguber.info/inful/navbuilder/internal/config"
	"git.home.luguber.info/inful/navbuilder/internal/generate"
	"git.home.luguber.info/inful/navbuilder/internal/logfields"
	"git.home.luguber.info/inful/navbuilder/internal/metrics"
	"git.home.luguber.info/inful/navbuilder/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	MetricsAddr string `name:"metrics-addr" help:"Override metrics.listen_addr (e.g. :9090)"`
}

func (w *WatchCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root.Config)
	if err != nil {
		return err
	}
	if w.MetricsAddr != "" {
		cfg.Metrics.ListenAddr = w.MetricsAddr
		if cfg.Metrics.Path == "" {
			cfg.Metrics.Path = config.DefaultMetricsPath
		}
	}

	ctx, cancel := signalContext()
	defer cancel()

	var opts []generate.Option
	if cfg.Metrics.ListenAddr != "" {
		reg := prom.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		opts = append(opts, generate.WithRecorder(metrics.NewPrometheusRecorder(reg)))

		srv, err := watch.NewMetricsServer(cfg.Metrics.ListenAddr, cfg.Metrics.Path, reg)
		if err != nil {
			return err
		}
		go func() {
			if err := srv.Serve(ctx); err != nil {
				slog.Error("Metrics server stopped", logfields.Error(err))
			}
		}()
	}

	out := g.stdout()
	watcher, err := watch.New(cfg, generate.New(cfg, opts...), watch.WithResultHandler(func(result *generate.Result, err error) {
		if err == nil {
			printSummary(out, result)
		}
	}))
	if err != nil {
		return err
	}
	return watcher.Run(ctx)
}
