package mdsite

import "strings"

// htmlEscaper rewrites the three HTML metacharacters to entities.
// Escaping happens before any markup recognition, so literal angle
// brackets in source text can never become tags.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// inlineSpecials are the bytes that can open an inline construct.
// Everything else is copied through untouched.
const inlineSpecials = "![`*_"

// escapeHTML escapes <, >, and & for safe embedding in HTML text.
func escapeHTML(text string) string {
	return htmlEscaper.Replace(text)
}

// renderInline converts one logical run of Markdown text into an HTML
// fragment. The input is escaped first, then scanned once left to right.
func renderInline(text string) string {
	return scanInline(escapeHTML(text), false)
}

// scanInline recognizes inline constructs over already-escaped text.
// At each position the first matching rule wins: image, link, code,
// bold, italic. An opening delimiter with no closing counterpart is
// emitted as literal text; the scanner never fails.
//
// insideLink suppresses link and image recognition so link text cannot
// contain further links (one recursion level, by contract).
func scanInline(s string, insideLink bool) string {
	var b strings.Builder
	b.Grow(len(s) + len(s)/4)

	for i := 0; i < len(s); {
		// Copy the run of plain bytes up to the next candidate delimiter.
		next := strings.IndexAny(s[i:], inlineSpecials)
		if next < 0 {
			b.WriteString(s[i:])
			break
		}
		b.WriteString(s[i : i+next])
		i += next

		switch {
		case s[i] == '!' && !insideLink:
			if alt, src, n := parseBracketPair(s[i+1:]); n > 0 {
				b.WriteString(`<img src="` + src + `" alt="` + alt + `">`)
				i += 1 + n
				continue
			}
			b.WriteByte('!')
			i++

		case s[i] == '[' && !insideLink:
			if text, href, n := parseBracketPair(s[i:]); n > 0 {
				b.WriteString(`<a href="` + href + `">` + scanInline(text, true) + `</a>`)
				i += n
				continue
			}
			b.WriteByte('[')
			i++

		case s[i] == '`':
			// Code span content is escaped but never re-rendered.
			if j := strings.IndexByte(s[i+1:], '`'); j >= 0 {
				b.WriteString("<code>" + s[i+1:i+1+j] + "</code>")
				i += j + 2
				continue
			}
			b.WriteByte('`')
			i++

		case strings.HasPrefix(s[i:], "**"), strings.HasPrefix(s[i:], "__"):
			// Double delimiter checked before single at the same position.
			d := s[i : i+2]
			if j := strings.Index(s[i+2:], d); j >= 0 {
				b.WriteString("<strong>" + scanInline(s[i+2:i+2+j], insideLink) + "</strong>")
				i += j + 4
				continue
			}
			b.WriteString(d)
			i += 2

		case s[i] == '*' || s[i] == '_':
			d := s[i]
			if j := strings.IndexByte(s[i+1:], d); j >= 0 {
				b.WriteString("<em>" + scanInline(s[i+1:i+1+j], insideLink) + "</em>")
				i += j + 2
				continue
			}
			b.WriteByte(d)
			i++

		default:
			// '!' or '[' while inside link text: plain character.
			b.WriteByte(s[i])
			i++
		}
	}

	return b.String()
}

// parseBracketPair reads a "[text](url)" form starting at s[0] == '['.
// text may not contain brackets and url may not contain parentheses.
// Returns n == 0 when the shape is absent, leaving the caller to emit
// the opening byte literally.
func parseBracketPair(s string) (text, url string, n int) {
	if len(s) == 0 || s[0] != '[' {
		return "", "", 0
	}
	j := strings.IndexAny(s[1:], "[]")
	if j < 0 || s[1+j] != ']' {
		return "", "", 0
	}
	j++ // index of ']'
	if j+1 >= len(s) || s[j+1] != '(' {
		return "", "", 0
	}
	k := strings.IndexAny(s[j+2:], "()")
	if k < 0 || s[j+2+k] != ')' {
		return "", "", 0
	}
	return s[1:j], s[j+2 : j+2+k], j + 2 + k + 1
}

// inlineText renders inline Markdown to plain text: delimiters are
// stripped, links collapse to their text, images to their alt text.
// Used for title extraction, where the result is not HTML.
func inlineText(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		next := strings.IndexAny(s[i:], inlineSpecials)
		if next < 0 {
			b.WriteString(s[i:])
			break
		}
		b.WriteString(s[i : i+next])
		i += next

		switch {
		case s[i] == '!':
			if alt, _, n := parseBracketPair(s[i+1:]); n > 0 {
				b.WriteString(alt)
				i += 1 + n
				continue
			}
			b.WriteByte('!')
			i++

		case s[i] == '[':
			if text, _, n := parseBracketPair(s[i:]); n > 0 {
				b.WriteString(inlineText(text))
				i += n
				continue
			}
			b.WriteByte('[')
			i++

		case s[i] == '`':
			if j := strings.IndexByte(s[i+1:], '`'); j >= 0 {
				b.WriteString(s[i+1 : i+1+j])
				i += j + 2
				continue
			}
			b.WriteByte('`')
			i++

		case strings.HasPrefix(s[i:], "**"), strings.HasPrefix(s[i:], "__"):
			d := s[i : i+2]
			if j := strings.Index(s[i+2:], d); j >= 0 {
				b.WriteString(inlineText(s[i+2 : i+2+j]))
				i += j + 4
				continue
			}
			b.WriteString(d)
			i += 2

		case s[i] == '*' || s[i] == '_':
			d := s[i]
			if j := strings.IndexByte(s[i+1:], d); j >= 0 {
				b.WriteString(inlineText(s[i+1 : i+1+j]))
				i += j + 2
				continue
			}
			b.WriteByte(d)
			i++
		}
	}

	return b.String()
}
