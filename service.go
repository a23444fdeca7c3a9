package mdsite

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdsite/internal/fileutil"
)

// Service orchestrates the Markdown-to-site pipeline: discovery,
// rendering, template assembly, base-path rewriting, and static copy.
// The engine itself is stateless; a Service only carries configuration,
// so one instance may run builds from multiple goroutines.
type Service struct {
	highlighter *Highlighter
	workers     int
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithHighlighter).
func New(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Build generates the site described by site. Pages render
// independently on a worker pool; results keep discovery order.
// The context cancels in-flight page generation between pages.
func (s *Service) Build(ctx context.Context, site Site) (*BuildResult, error) {
	tpl, err := resolveTemplate(site.Template)
	if err != nil {
		return nil, err
	}

	sources, err := discoverPages(site.ContentDir)
	if err != nil {
		return nil, err
	}

	if site.Clean {
		if err := fileutil.CleanDir(site.OutputDir); err != nil {
			return nil, fmt.Errorf("cleaning output dir: %w", err)
		}
	}
	if err := os.MkdirAll(site.OutputDir, 0o750); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	result := &BuildResult{Pages: make([]PageResult, len(sources))}

	workers := ResolveWorkers(s.workers)
	err = runPool(ctx, workers, len(sources), func(i int) error {
		page, err := s.generatePage(site, tpl, sources[i])
		result.Pages[i] = page
		return err
	})
	if err != nil {
		return nil, err
	}

	// A site without static assets is fine; only copy what exists.
	if info, statErr := os.Stat(site.StaticDir); site.StaticDir != "" && statErr == nil && info.IsDir() {
		files, bytes, err := fileutil.CopyDir(site.StaticDir, site.OutputDir)
		if err != nil {
			return nil, fmt.Errorf("copying static assets: %w", err)
		}
		result.StaticFiles = files
		result.StaticBytes = bytes
	}

	return result, nil
}

// generatePage runs the per-page pipeline: read, frontmatter split,
// render, title resolution, template substitution, base-path rewrite,
// write.
func (s *Service) generatePage(site Site, tpl string, src sourcePage) (PageResult, error) {
	data, err := os.ReadFile(src.inputPath) // #nosec G304 -- path comes from walking the content dir
	if err != nil {
		return PageResult{}, fmt.Errorf("%w: %s: %v", ErrReadPage, src.inputPath, err)
	}

	meta, body := splitFrontmatter(data)
	if meta.Draft {
		return PageResult{SourcePath: src.inputPath, Skipped: true}, nil
	}

	rendered := renderBlocks(SplitLines(string(body)), s.codeRenderer())
	title := resolveTitle(meta, rendered, src.inputPath)

	outPath := filepath.Join(site.OutputDir, src.relOutput)
	page, err := applyTemplate(tpl, escapeHTML(title), rendered.Body)
	if err != nil {
		return PageResult{}, err
	}
	page = applyBasePath(page, site.BasePath)

	if err := os.MkdirAll(filepath.Dir(outPath), 0o750); err != nil {
		return PageResult{}, fmt.Errorf("%w: %s: %v", ErrWritePage, outPath, err)
	}
	if err := os.WriteFile(outPath, []byte(page), 0o600); err != nil {
		return PageResult{}, fmt.Errorf("%w: %s: %v", ErrWritePage, outPath, err)
	}

	return PageResult{
		SourcePath: src.inputPath,
		OutputPath: outPath,
		Title:      title,
		Bytes:      int64(len(page)),
	}, nil
}

// codeRenderer picks the fenced-code renderer for this Service.
func (s *Service) codeRenderer() codeRenderer {
	if s.highlighter != nil {
		return s.highlighter.renderCode
	}
	return renderCodePlain
}

// resolveTitle picks the page title: frontmatter wins, then the first
// H1, then the file's base name. The original tooling failed on pages
// without an H1; degrading keeps the build total.
func resolveTitle(meta PageMeta, page RenderedPage, inputPath string) string {
	if meta.Title != "" {
		return meta.Title
	}
	if page.HasTitle {
		return page.Title
	}
	base := filepath.Base(inputPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// resolveTemplate loads the template file at path, or returns the
// embedded default when path is empty.
func resolveTemplate(path string) (string, error) {
	if path == "" {
		return DefaultTemplate, nil
	}
	data, err := os.ReadFile(path) // #nosec G304 -- template path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, path)
		}
		return "", fmt.Errorf("reading template: %w", err)
	}
	return string(data), nil
}

// sourcePage pairs a discovered Markdown file with its output path
// relative to the output dir.
type sourcePage struct {
	inputPath string
	relOutput string
}

// discoverPages walks contentDir and maps every Markdown file to the
// same relative path with an .html extension.
func discoverPages(contentDir string) ([]sourcePage, error) {
	info, err := os.Stat(contentDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrContentDirNotFound, contentDir)
	}

	var pages []sourcePage
	err = filepath.WalkDir(contentDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !fileutil.IsMarkdown(path) {
			return nil
		}
		rel, err := filepath.Rel(contentDir, path)
		if err != nil {
			return err
		}
		ext := filepath.Ext(rel)
		pages = append(pages, sourcePage{
			inputPath: path,
			relOutput: strings.TrimSuffix(rel, ext) + ".html",
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pages, nil
}
