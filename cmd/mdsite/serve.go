package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/alnah/go-mdsite/internal/server"
)

// runServe builds the site and serves it over HTTP until interrupted.
// Serving is always rooted at /, so any configured base path is
// overridden for the local build.
func runServe(args []string, stdout, stderr io.Writer) error {
	f, err := parseServeFlags(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(f.build.config)
	if err != nil {
		return err
	}
	mergeBuildFlags(cfg, &f.build)
	cfg.BasePath = "/"

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := buildSite(ctx, cfg, &f.build, stdout, stderr); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "serving %s on %s\n", cfg.Output, f.addr)
	return server.Serve(ctx, f.addr, cfg.Output)
}
