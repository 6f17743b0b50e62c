package main

import (
	"context"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vango-dev/welgo/internal/config"
	"github.com/vango-dev/welgo/pkg/document"
	"github.com/vango-dev/welgo/pkg/publish"
)

func buildCmd() *cobra.Command {
	var (
		dir string
		out string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render every route into a static site",
		Long: `Render every route in welgo.yaml and publish the pages.

Pages go to build.output, or to build.s3 when a bucket is configured.
--out overrides both with a directory or an s3://bucket/prefix URL.
Routes with URL parameters cannot be built statically and are skipped.

Examples:
  welgo build
  welgo build --out=public
  welgo build --out=s3://my-site/v2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runBuild(ctx, cmd, dir, out)
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "Project directory")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output directory or s3://bucket/prefix (default from welgo.yaml)")

	return cmd
}

func runBuild(ctx context.Context, cmd *cobra.Command, dir, out string) error {
	start := time.Now()
	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}

	target, err := buildTarget(cfg, out)
	if err != nil {
		return err
	}
	sink, err := target.Open(s3Options(cfg))
	if err != nil {
		return err
	}

	observer, _ := observers(cfg)
	r := newRenderer(cfg.Render, observer)
	reg := newRegistry()

	info(cmd, "Building %d routes...", len(cfg.Routes))
	pages := make(map[string][]byte, len(cfg.Routes))
	for _, route := range cfg.Routes {
		if strings.Contains(route.Path, "{") {
			warn(cmd, "Skipping %s: routes with parameters need a server", route.Path)
			continue
		}

		doc, err := document.Load(cfg.DocumentPath(route), reg)
		if err != nil {
			return err
		}
		page := doc.Page()
		if route.Title != "" {
			page.Title = route.Title
		}
		if page.Lang == "" {
			page.Lang = cfg.Render.Lang
		}

		rc := mergeContext(cfg.Context, doc.Context, map[string]any{
			"path":   route.Path,
			"params": map[string]string{},
			"query":  map[string]string{},
		})
		html, err := r.RenderPageString(ctx, page, rc)
		if err != nil {
			return err
		}
		pages[route.Path] = []byte(html)
	}

	locations, err := publish.Publish(ctx, sink, pages)
	if err != nil {
		return err
	}
	for _, loc := range locations {
		info(cmd, "%s", loc)
	}
	success(cmd, "Built %d pages in %s", len(locations), time.Since(start).Round(time.Millisecond))
	return nil
}

// buildTarget picks the publish target: --out, then build.s3, then
// build.output.
func buildTarget(cfg *config.Config, out string) (publish.Target, error) {
	switch {
	case out != "":
		return publish.ParseTarget(out)
	case cfg.Build.S3.Bucket != "":
		return publish.Target{Bucket: cfg.Build.S3.Bucket, Prefix: strings.Trim(cfg.Build.S3.Prefix, "/")}, nil
	default:
		return publish.Target{Dir: cfg.OutputPath()}, nil
	}
}
