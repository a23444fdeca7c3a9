package mdsite

import (
	"errors"
	"strings"
	"testing"
)

func TestNewHighlighter(t *testing.T) {
	t.Parallel()

	t.Run("known style", func(t *testing.T) {
		t.Parallel()

		hl, err := NewHighlighter("monokai")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if hl == nil {
			t.Fatal("highlighter is nil")
		}
	})

	t.Run("unknown style", func(t *testing.T) {
		t.Parallel()

		_, err := NewHighlighter("no-such-style")
		if !errors.Is(err, ErrUnknownHighlightStyle) {
			t.Fatalf("err = %v, want %v", err, ErrUnknownHighlightStyle)
		}
	})
}

func TestHighlighterRenderCode(t *testing.T) {
	t.Parallel()

	hl, err := NewHighlighter("monokai")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("recognized language produces styled output", func(t *testing.T) {
		t.Parallel()

		got := hl.renderCode("go", []string{`x := "hi"`})
		if !strings.Contains(got, "<pre") {
			t.Errorf("renderCode() = %q, want a <pre block", got)
		}
		if got == renderCodePlain("go", []string{`x := "hi"`}) {
			t.Error("renderCode() fell back to plain output for a known language")
		}
	})

	t.Run("unknown language falls back to plain", func(t *testing.T) {
		t.Parallel()

		raw := []string{"**not bold**"}
		got := hl.renderCode("", raw)
		if got != renderCodePlain("", raw) {
			t.Errorf("renderCode() = %q, want plain fallback", got)
		}
	})
}

func TestRenderCodePlain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      []string
		expected string
	}{
		{
			name:     "empty block",
			raw:      nil,
			expected: "<pre><code></code></pre>",
		},
		{
			name:     "single line",
			raw:      []string{"x"},
			expected: "<pre><code>x\n</code></pre>",
		},
		{
			name:     "escapes and keeps lines",
			raw:      []string{"<a>", "& b"},
			expected: "<pre><code>&lt;a&gt;\n&amp; b\n</code></pre>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := renderCodePlain("", tt.raw)
			if got != tt.expected {
				t.Errorf("renderCodePlain() = %q, want %q", got, tt.expected)
			}
		})
	}
}
