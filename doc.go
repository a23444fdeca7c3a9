// Package mdsite generates a static HTML site from a tree of Markdown
// documents.
//
// # Quick Start
//
// Create a service and build a site:
//
//	svc := mdsite.New()
//	result, err := svc.Build(ctx, mdsite.Site{
//	    ContentDir: "content",
//	    StaticDir:  "static",
//	    OutputDir:  "public",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("generated %d pages\n", len(result.Pages))
//
// The rendering engine is also usable directly:
//
//	page := mdsite.RenderDocument("# Hello\n\nWorld")
//	fmt.Println(page.Title, page.Body)
//
// # Generation Pipeline
//
// Each page goes through these stages:
//
//  1. Frontmatter split (title override, draft flag)
//  2. Markdown rendering (block segmentation + inline rendering)
//  3. Template substitution ({{ Title }} and {{ Content }} tokens)
//  4. Base-path rewriting of root-relative URLs
//
// # Rendering Engine
//
// The engine is a single-pass line state machine, not an AST parser. It
// recognizes headings, paragraphs, unordered and ordered lists, fenced
// code blocks, and blockquotes at the block level, and bold, italic,
// inline code, links, and images inside block text. It is total: any
// input produces valid HTML. Malformed markup degrades to literal
// escaped text, and the three HTML metacharacters are escaped before
// any markup recognition, so source content can never inject tags.
//
// # Parallel Generation
//
// Pages render independently with no shared state, so Build fans them
// out to a worker pool. Use WithWorkers to pin the pool size, or let
// ResolveWorkers derive it from GOMAXPROCS.
//
// # Syntax Highlighting
//
// Fenced code blocks are emitted escaped and unstyled by default.
// Enable chroma highlighting with a style name:
//
//	hl, err := mdsite.NewHighlighter("monokai")
//	svc := mdsite.New(mdsite.WithHighlighter(hl))
package mdsite
