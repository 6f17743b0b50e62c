package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/welgo/internal/config"
	"github.com/vango-dev/welgo/internal/errors"
	"github.com/vango-dev/welgo/pkg/server"
)

func serveCmd() *cobra.Command {
	var (
		dir    string
		port   int
		host   string
		reload bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve configured routes over HTTP",
		Long: `Serve every route in welgo.yaml over HTTP.

Each request renders its document with the request path, URL parameters
and query values in the resolver context. /healthz always answers;
/metrics is served when metrics are enabled.

Examples:
  welgo serve
  welgo serve --port=8080 --host=0.0.0.0
  welgo serve --reload`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(dir)
			if err != nil {
				return err
			}
			if port != 0 {
				cfg.Server.Port = port
			}
			if host != "" {
				cfg.Server.Host = host
			}

			srv, err := newServer(cfg, reload)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			success(cmd, "Serving %d routes at %s", len(cfg.Routes), cfg.URL())
			if err := srv.ListenAndServe(ctx); err != nil {
				return errors.New("E081").Wrap(err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "Project directory")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from welgo.yaml)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from welgo.yaml)")
	cmd.Flags().BoolVar(&reload, "reload", false, "Re-read documents on every request")

	return cmd
}

// newServer builds the HTTP server for cfg.
func newServer(cfg *config.Config, reload bool) (*server.Server, error) {
	observer, metrics := observers(cfg)

	routes := make([]server.Route, 0, len(cfg.Routes))
	for _, r := range cfg.Routes {
		routes = append(routes, server.Route{
			Pattern:  r.Path,
			Document: cfg.DocumentPath(r),
			Title:    r.Title,
		})
	}

	return server.New(server.Config{
		Address:     cfg.Address(),
		Routes:      routes,
		Renderer:    newRenderer(cfg.Render, observer),
		Registry:    newRegistry(),
		Context:     cfg.Context,
		Lang:        cfg.Render.Lang,
		Reload:      reload,
		Metrics:     metrics,
		MetricsPath: cfg.Metrics.Path,
	})
}
