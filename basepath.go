package mdsite

import "strings"

// applyBasePath prefixes root-relative href and src attribute values
// with basePath. The engine emits root-relative URLs unmodified; this
// runs over assembled page text as a plain string rewrite.
func applyBasePath(html, basePath string) string {
	prefix := strings.TrimSuffix(basePath, "/")
	if prefix == "" {
		return html
	}
	html = strings.ReplaceAll(html, `href="/`, `href="`+prefix+`/`)
	return strings.ReplaceAll(html, `src="/`, `src="`+prefix+`/`)
}
