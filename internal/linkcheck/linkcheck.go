// Package linkcheck verifies internal references in a generated site.
package linkcheck

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Problem is one broken internal reference.
type Problem struct {
	Page   string // page path relative to the site root
	Target string // the href/src value that does not resolve
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: broken reference %q", p.Page, p.Target)
}

// Check walks every .html file under root and reports root-relative
// links and image sources that do not resolve to a file under root.
// External URLs, fragments, and relative references are skipped.
func Check(root string) ([]Problem, error) {
	var problems []Problem

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || filepath.Ext(path) != ".html" {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		targets, err := pageTargets(path)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", rel, err)
		}
		for _, target := range targets {
			if !resolves(root, target) {
				problems = append(problems, Problem{Page: rel, Target: target})
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return problems, nil
}

// pageTargets extracts checkable reference targets from one page.
func pageTargets(path string) ([]string, error) {
	f, err := os.Open(path) // #nosec G304 -- path comes from walking the site root
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, err
	}

	var targets []string
	collect := func(attr string) func(int, *goquery.Selection) {
		return func(_ int, sel *goquery.Selection) {
			if v, ok := sel.Attr(attr); ok && checkable(v) {
				targets = append(targets, v)
			}
		}
	}
	doc.Find("a[href]").Each(collect("href"))
	doc.Find("img[src]").Each(collect("src"))
	return targets, nil
}

// checkable reports whether target is a root-relative reference this
// checker can verify on disk.
func checkable(target string) bool {
	return strings.HasPrefix(target, "/") && !strings.HasPrefix(target, "//")
}

// resolves reports whether a root-relative target exists under root.
// Directory targets resolve through their index.html.
func resolves(root, target string) bool {
	// Drop fragment and query parts.
	if i := strings.IndexAny(target, "#?"); i >= 0 {
		target = target[:i]
	}
	if target == "/" || target == "" {
		target = "/index.html"
	}

	path := filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(target, "/")))
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if info.IsDir() {
		info, err = os.Stat(filepath.Join(path, "index.html"))
		return err == nil && !info.IsDir()
	}
	return true
}
