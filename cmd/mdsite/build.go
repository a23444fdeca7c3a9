package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"

	mdsite "github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/config"
)

// runBuild generates the site once and prints a summary.
func runBuild(args []string, stdout, stderr io.Writer) error {
	f, err := parseBuildFlags(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(f.config)
	if err != nil {
		return err
	}
	mergeBuildFlags(cfg, f)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return buildSite(ctx, cfg, f, stdout, stderr)
}

// buildSite runs one build with the merged configuration and reports
// the result. Shared by the build and serve commands.
func buildSite(ctx context.Context, cfg *config.Config, f *buildFlags, stdout, stderr io.Writer) error {
	svc, err := newService(cfg)
	if err != nil {
		return err
	}

	start := time.Now()
	result, err := svc.Build(ctx, mdsite.Site{
		ContentDir: cfg.Content,
		StaticDir:  cfg.Static,
		OutputDir:  cfg.Output,
		Template:   cfg.Template,
		BasePath:   cfg.BasePath,
		Clean:      !f.noClean,
	})
	if err != nil {
		return err
	}

	var pages, skipped int
	var pageBytes int64
	for _, page := range result.Pages {
		if page.Skipped {
			skipped++
			if f.verbose {
				fmt.Fprintf(stderr, " - %s (draft, skipped)\n", page.SourcePath)
			}
			continue
		}
		pages++
		pageBytes += page.Bytes
		if f.verbose {
			fmt.Fprintf(stderr, " * %s -> %s (%s)\n",
				page.SourcePath, page.OutputPath, humanize.Bytes(uint64(page.Bytes)))
		}
	}

	fmt.Fprintf(stdout, "generated %d pages (%s)", pages, humanize.Bytes(uint64(pageBytes)))
	if skipped > 0 {
		fmt.Fprintf(stdout, ", skipped %d drafts", skipped)
	}
	if result.StaticFiles > 0 {
		fmt.Fprintf(stdout, ", copied %d static files (%s)",
			result.StaticFiles, humanize.Bytes(uint64(result.StaticBytes)))
	}
	fmt.Fprintf(stdout, " in %s\n", time.Since(start).Round(time.Millisecond))
	return nil
}

// newService builds a Service from config, wiring the highlighter when
// a chroma style is configured.
func newService(cfg *config.Config) (*mdsite.Service, error) {
	opts := []mdsite.Option{mdsite.WithWorkers(cfg.Workers)}
	if cfg.Highlight != "" {
		hl, err := mdsite.NewHighlighter(cfg.Highlight)
		if err != nil {
			return nil, err
		}
		opts = append(opts, mdsite.WithHighlighter(hl))
	}
	return mdsite.New(opts...), nil
}
