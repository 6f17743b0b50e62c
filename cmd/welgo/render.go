package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/welgo/internal/config"
	"github.com/vango-dev/welgo/pkg/document"
	"github.com/vango-dev/welgo/pkg/publish"
)

func renderCmd() *cobra.Command {
	var (
		out         string
		contextFile string
		fragment    bool
		lang        string
		region      string
		rcfg        config.RenderConfig
	)

	cmd := &cobra.Command{
		Use:   "render <document>",
		Short: "Render a document",
		Long: `Render a YAML or JSON document to HTML.

The page is written to stdout unless --out names a file or an
s3://bucket/key location. Values from --context are merged over the
document's own context.

Examples:
  welgo render pages/home.yaml
  welgo render pages/home.yaml --context data.yaml --out dist/index.html
  welgo render pages/home.yaml --fragment --out s3://my-site/snippets/home.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			doc, err := document.Load(args[0], newRegistry())
			if err != nil {
				return err
			}

			rc := doc.Context
			if contextFile != "" {
				extra, err := loadContext(contextFile)
				if err != nil {
					return err
				}
				rc = mergeContext(doc.Context, extra)
			}

			r := newRenderer(rcfg, nil)
			var html string
			if fragment {
				html, err = r.Render(ctx, doc.Body, rc)
			} else {
				page := doc.Page()
				if page.Lang == "" {
					page.Lang = lang
				}
				html, err = r.RenderPageString(ctx, page, rc)
			}
			if err != nil {
				return err
			}

			if out == "" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), html)
				return err
			}

			target, err := publish.ParseTarget(out)
			if err != nil {
				return err
			}
			parent, key := target.Split()
			sink, err := parent.Open(publish.S3Options{Region: region})
			if err != nil {
				return err
			}
			if err := sink.Put(ctx, key, []byte(html)); err != nil {
				return err
			}
			success(cmd, "Rendered %s → %s", args[0], sink.Location(key))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file or s3://bucket/key (default stdout)")
	cmd.Flags().StringVarP(&contextFile, "context", "c", "", "YAML or JSON file with resolver context values")
	cmd.Flags().BoolVar(&fragment, "fragment", false, "Render only the body, without the document shell")
	cmd.Flags().StringVar(&lang, "lang", "en", "Page language when the document sets none")
	cmd.Flags().StringVar(&region, "region", "", "S3 region (default AWS_REGION)")
	cmd.Flags().IntVar(&rcfg.MaxDepth, "max-depth", 0, "Leave components at this depth unrendered (0 renders everything)")
	cmd.Flags().IntVar(&rcfg.Concurrency, "concurrency", 0, "Maximum siblings resolved at once per level (0 is unbounded)")
	cmd.Flags().BoolVar(&rcfg.SanitizeRawHTML, "sanitize", false, "Sanitize raw HTML with a UGC policy")

	return cmd
}
