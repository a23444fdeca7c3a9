package mdsite

import (
	_ "embed"
	"fmt"
	"strings"
)

// Placeholder tokens replaced during page assembly.
const (
	TitleToken   = "{{ Title }}"
	ContentToken = "{{ Content }}"
)

// DefaultTemplate is the embedded page template used when a site does
// not provide its own.
//
//go:embed template.html
var DefaultTemplate string

// applyTemplate substitutes the two placeholder tokens. Substitution is
// literal string replacement: the body is already HTML and must not be
// re-escaped, and the title is escaped by the caller.
func applyTemplate(tpl, title, body string) (string, error) {
	if !strings.Contains(tpl, TitleToken) {
		return "", fmt.Errorf("%w: %s", ErrTemplateToken, TitleToken)
	}
	if !strings.Contains(tpl, ContentToken) {
		return "", fmt.Errorf("%w: %s", ErrTemplateToken, ContentToken)
	}
	out := strings.ReplaceAll(tpl, TitleToken, title)
	return strings.ReplaceAll(out, ContentToken, body), nil
}
