package mdsite

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Highlighter renders fenced code blocks with chroma syntax
// highlighting. Inline styles are used so the output needs no
// stylesheet. Blocks with no recognized language token, and any
// highlighting failure, fall back to the plain escaped form.
type Highlighter struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// NewHighlighter returns a highlighter using the named chroma style.
func NewHighlighter(style string) (*Highlighter, error) {
	st := styles.Get(style)
	if st == styles.Fallback && style != styles.Fallback.Name {
		return nil, fmt.Errorf("%w: %q", ErrUnknownHighlightStyle, style)
	}
	return &Highlighter{
		style:     st,
		formatter: chromahtml.New(chromahtml.WithClasses(false)),
	}, nil
}

// renderCode is the codeRenderer used when highlighting is enabled.
func (h *Highlighter) renderCode(lang string, raw []string) string {
	lexer := lexers.Get(lang)
	if lexer == nil {
		return renderCodePlain(lang, raw)
	}

	source := strings.Join(raw, "\n")
	if len(raw) > 0 {
		source += "\n"
	}

	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, source)
	if err != nil {
		return renderCodePlain(lang, raw)
	}

	var b strings.Builder
	if err := h.formatter.Format(&b, h.style, iterator); err != nil {
		return renderCodePlain(lang, raw)
	}
	return b.String()
}
