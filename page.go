package mdsite

import (
	"bytes"

	"github.com/adrg/frontmatter"
)

// PageMeta is the optional frontmatter block at the top of a content
// file, delimited by --- fences.
type PageMeta struct {
	Title string `yaml:"title"` // overrides the H1-derived title
	Draft bool   `yaml:"draft"` // draft pages are not generated
}

// splitFrontmatter separates frontmatter from the Markdown body. A
// missing block yields an empty meta; a malformed block degrades to
// treating the whole input as Markdown, consistent with the engine's
// no-fatal-errors policy.
func splitFrontmatter(src []byte) (PageMeta, []byte) {
	var meta PageMeta
	rest, err := frontmatter.Parse(bytes.NewReader(src), &meta)
	if err != nil {
		return PageMeta{}, src
	}
	return meta, rest
}
