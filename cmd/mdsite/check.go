package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/alnah/go-mdsite/internal/linkcheck"
)

// ErrBrokenLinks reports that the generated site has unresolved
// internal references.
var ErrBrokenLinks = errors.New("site has broken internal references")

// runCheck verifies internal links and image sources in the generated
// site.
func runCheck(args []string, stdout io.Writer) error {
	f, err := parseCheckFlags(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(f.config)
	if err != nil {
		return err
	}
	root := cfg.Output
	if f.output != "" {
		root = f.output
	}

	problems, err := linkcheck.Check(root)
	if err != nil {
		return err
	}

	if len(problems) == 0 {
		fmt.Fprintf(stdout, "%s: all internal references resolve\n", root)
		return nil
	}
	for _, p := range problems {
		fmt.Fprintln(stdout, p)
	}
	return fmt.Errorf("%w: %d found", ErrBrokenLinks, len(problems))
}
