package mdsite

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Precompiled line classifiers.
var (
	// ATX heading: 1-6 # characters then whitespace
	headingLine = regexp.MustCompile(`^(#{1,6})\s+(.*)$`)

	// Blockquote marker with one optional following space
	quoteLine = regexp.MustCompile(`^>\s?(.*)$`)

	// List item markers
	unorderedLine = regexp.MustCompile(`^[-*+]\s+(.*)$`)
	orderedLine   = regexp.MustCompile(`^(\d+)\.\s+(.*)$`)

	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)
)

// fenceMarker opens and closes verbatim code blocks.
const fenceMarker = "```"

// blockKind identifies the structural role of a segmented block.
type blockKind int

const (
	blockParagraph blockKind = iota
	blockHeading
	blockCode
	blockQuote
	blockList
)

// block is one segmented unit of the document. Every input line belongs
// to exactly one block; blocks preserve input order.
type block struct {
	kind    blockKind
	level   int        // heading level 1..6
	ordered bool       // list orderedness
	lang    string     // code fence language token, may be empty
	lines   []string   // paragraph, quote, or code content
	items   []listItem // list content
}

// listItem is a single list entry. index carries the source numbering of
// ordered items; output numbering is left to the browser.
type listItem struct {
	index int
	text  string
}

// RenderedPage is the engine output for one document.
type RenderedPage struct {
	Title    string // plain-text content of the first H1
	HasTitle bool   // false when the document has no H1
	Body     string // concatenated HTML blocks, no outer wrapper
}

// Render converts raw Markdown lines into a rendered page. It is total:
// any input, including empty or binary garbage, yields valid HTML.
// Fenced code blocks are emitted escaped and unhighlighted; see
// Service for optional syntax highlighting.
func Render(lines []string) RenderedPage {
	return renderBlocks(lines, renderCodePlain)
}

// RenderDocument is Render over a whole source string. Line endings are
// normalized to \n before splitting.
func RenderDocument(source string) RenderedPage {
	return Render(SplitLines(source))
}

// SplitLines normalizes \r\n and \r to \n and splits into lines.
func SplitLines(source string) []string {
	return strings.Split(crlfOrCR.ReplaceAllString(source, "\n"), "\n")
}

// codeRenderer turns a fenced code block into HTML. raw holds the lines
// between the fences, verbatim.
type codeRenderer func(lang string, raw []string) string

// renderCodePlain is the default code renderer: escaped, never
// inline-rendered.
func renderCodePlain(_ string, raw []string) string {
	if len(raw) == 0 {
		return "<pre><code></code></pre>"
	}
	return "<pre><code>" + escapeHTML(strings.Join(raw, "\n")) + "\n</code></pre>"
}

// renderBlocks segments lines into blocks and emits them in order. The
// first H1 encountered doubles as the page title.
func renderBlocks(lines []string, code codeRenderer) RenderedPage {
	var (
		b        strings.Builder
		title    string
		hasTitle bool
	)

	for _, blk := range segmentBlocks(lines) {
		switch blk.kind {
		case blockHeading:
			text := blk.lines[0]
			if blk.level == 1 && !hasTitle {
				title = strings.TrimSpace(inlineText(text))
				hasTitle = true
			}
			fmt.Fprintf(&b, "<h%d>%s</h%d>", blk.level, renderInline(text), blk.level)

		case blockCode:
			b.WriteString(code(blk.lang, blk.lines))

		case blockQuote:
			b.WriteString("<blockquote>" + renderInline(strings.Join(blk.lines, " ")) + "</blockquote>")

		case blockList:
			tag := "ul"
			if blk.ordered {
				tag = "ol"
			}
			b.WriteString("<" + tag + ">")
			for _, item := range blk.items {
				b.WriteString("<li>" + renderInline(item.text) + "</li>")
			}
			b.WriteString("</" + tag + ">")

		case blockParagraph:
			b.WriteString("<p>" + renderInline(strings.Join(blk.lines, " ")) + "</p>")
		}
	}

	return RenderedPage{Title: title, HasTitle: hasTitle, Body: b.String()}
}

// segmentBlocks folds the input lines into blocks in a single forward
// pass. Rules are tested top to bottom per line; a rule match closes
// whatever block is currently open. The one stateful exception is an
// open code fence, which suppresses all other rules until the closing
// fence or end of input.
func segmentBlocks(lines []string) []block {
	var (
		blocks  []block
		cur     block
		curOpen bool
		inFence bool
	)

	flush := func() {
		if curOpen {
			blocks = append(blocks, cur)
			curOpen = false
		}
	}

	for _, line := range lines {
		if inFence {
			if strings.HasPrefix(line, fenceMarker) {
				inFence = false
				flush()
				continue
			}
			cur.lines = append(cur.lines, line)
			continue
		}

		switch {
		case headingLine.MatchString(line):
			flush()
			m := headingLine.FindStringSubmatch(line)
			blocks = append(blocks, block{kind: blockHeading, level: len(m[1]), lines: []string{m[2]}})

		case strings.HasPrefix(line, fenceMarker):
			flush()
			cur = block{kind: blockCode, lang: fenceLang(line)}
			curOpen = true
			inFence = true

		case quoteLine.MatchString(line):
			m := quoteLine.FindStringSubmatch(line)
			if curOpen && cur.kind == blockQuote {
				cur.lines = append(cur.lines, m[1])
				continue
			}
			flush()
			cur = block{kind: blockQuote, lines: []string{m[1]}}
			curOpen = true

		case unorderedLine.MatchString(line):
			m := unorderedLine.FindStringSubmatch(line)
			if curOpen && cur.kind == blockList && !cur.ordered {
				cur.items = append(cur.items, listItem{text: m[1]})
				continue
			}
			flush()
			cur = block{kind: blockList, items: []listItem{{text: m[1]}}}
			curOpen = true

		case orderedLine.MatchString(line):
			m := orderedLine.FindStringSubmatch(line)
			index, _ := strconv.Atoi(m[1])
			if curOpen && cur.kind == blockList && cur.ordered {
				cur.items = append(cur.items, listItem{index: index, text: m[2]})
				continue
			}
			flush()
			cur = block{kind: blockList, ordered: true, items: []listItem{{index: index, text: m[2]}}}
			curOpen = true

		case strings.TrimSpace(line) == "":
			// Blank lines separate blocks and are never emitted.
			flush()

		default:
			if curOpen && cur.kind == blockParagraph {
				cur.lines = append(cur.lines, line)
				continue
			}
			flush()
			cur = block{kind: blockParagraph, lines: []string{line}}
			curOpen = true
		}
	}

	// An unterminated fence consumes to end of input.
	flush()
	return blocks
}

// fenceLang extracts the optional language token following a fence
// marker. Anything beyond the first token is ignored.
func fenceLang(line string) string {
	fields := strings.Fields(line[len(fenceMarker):])
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
