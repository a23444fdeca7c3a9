package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-mdsite/internal/config"
)

// buildFlags holds flags shared by the build and serve commands.
type buildFlags struct {
	config    string
	content   string
	static    string
	output    string
	template  string
	basePath  string
	highlight string
	workers   int
	noClean   bool
	verbose   bool
}

// serveFlags holds flags for the serve command.
type serveFlags struct {
	build buildFlags
	addr  string
}

// checkFlags holds flags for the check command.
type checkFlags struct {
	config string
	output string
}

// registerBuildFlags wires the shared build flags onto fs.
func registerBuildFlags(fs *flag.FlagSet, f *buildFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file path")
	fs.StringVar(&f.content, "content", "", "Markdown content directory")
	fs.StringVar(&f.static, "static", "", "static asset directory")
	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.StringVarP(&f.template, "template", "t", "", "page template path")
	fs.StringVarP(&f.basePath, "base-path", "b", "", "prefix for root-relative URLs")
	fs.StringVar(&f.highlight, "highlight", "", "chroma style for code blocks")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel page workers (0 = auto)")
	fs.BoolVar(&f.noClean, "no-clean", false, "keep existing output dir contents")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "per-page progress output")
}

func parseBuildFlags(args []string) (*buildFlags, error) {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var f buildFlags
	registerBuildFlags(fs, &f)
	if err := parse(fs, args); err != nil {
		return nil, err
	}
	return &f, nil
}

func parseServeFlags(args []string) (*serveFlags, error) {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var f serveFlags
	registerBuildFlags(fs, &f.build)
	fs.StringVarP(&f.addr, "addr", "a", ":8888", "listen address")
	if err := parse(fs, args); err != nil {
		return nil, err
	}
	return &f, nil
}

func parseCheckFlags(args []string) (*checkFlags, error) {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var f checkFlags
	fs.StringVarP(&f.config, "config", "c", "", "config file path")
	fs.StringVarP(&f.output, "output", "o", "", "site directory to check")
	if err := parse(fs, args); err != nil {
		return nil, err
	}
	return &f, nil
}

// parse runs fs over args and rejects positional leftovers.
func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected argument %q", ErrUsage, fs.Arg(0))
	}
	return nil
}

// loadConfig loads the explicit config path, or mdsite.yaml if present,
// or built-in defaults.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadOrDefault()
}

// mergeBuildFlags applies flag overrides onto the loaded config.
// Only flags the user set carry over; zero values keep config values.
func mergeBuildFlags(cfg *config.Config, f *buildFlags) {
	if f.content != "" {
		cfg.Content = f.content
	}
	if f.static != "" {
		cfg.Static = f.static
	}
	if f.output != "" {
		cfg.Output = f.output
	}
	if f.template != "" {
		cfg.Template = f.template
	}
	if f.basePath != "" {
		cfg.BasePath = f.basePath
	}
	if f.highlight != "" {
		cfg.Highlight = f.highlight
	}
	if f.workers > 0 {
		cfg.Workers = f.workers
	}
}
