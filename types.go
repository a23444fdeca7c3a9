package mdsite

// Site describes one build: where content lives and where HTML goes.
type Site struct {
	ContentDir string // Markdown sources (required)
	StaticDir  string // assets copied verbatim (optional, "" = none)
	OutputDir  string // generated site root (required)
	Template   string // page template path ("" = embedded default)
	BasePath   string // prefix for root-relative URLs ("" or "/" = none)
	Clean      bool   // remove existing output dir contents first
}

// PageResult reports one generated page.
type PageResult struct {
	SourcePath string // Markdown file path
	OutputPath string // written HTML file path, empty when skipped
	Title      string // resolved page title
	Skipped    bool   // true for draft pages
	Bytes      int64  // size of the written page
}

// BuildResult summarizes a site build.
type BuildResult struct {
	Pages       []PageResult // in discovery order
	StaticFiles int
	StaticBytes int64
}

// Option configures a Service.
type Option func(*Service)

// WithHighlighter enables chroma syntax highlighting for fenced code
// blocks. A nil highlighter keeps the default plain escaped output.
func WithHighlighter(h *Highlighter) Option {
	return func(s *Service) {
		s.highlighter = h
	}
}

// WithWorkers sets how many pages render concurrently.
// Zero or negative means auto-sizing via ResolveWorkers.
func WithWorkers(n int) Option {
	return func(s *Service) {
		s.workers = n
	}
}
