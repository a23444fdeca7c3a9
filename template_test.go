package mdsite

import (
	"errors"
	"strings"
	"testing"
)

func TestApplyTemplate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		tpl         string
		title       string
		body        string
		expected    string
		expectedErr error
	}{
		{
			name:     "both tokens replaced",
			tpl:      "<title>{{ Title }}</title><main>{{ Content }}</main>",
			title:    "Home",
			body:     "<p>hi</p>",
			expected: "<title>Home</title><main><p>hi</p></main>",
		},
		{
			name:     "repeated tokens all replaced",
			tpl:      "{{ Title }}|{{ Title }}|{{ Content }}",
			title:    "T",
			body:     "B",
			expected: "T|T|B",
		},
		{
			name:        "missing title token",
			tpl:         "<main>{{ Content }}</main>",
			expectedErr: ErrTemplateToken,
		},
		{
			name:        "missing content token",
			tpl:         "<title>{{ Title }}</title>",
			expectedErr: ErrTemplateToken,
		},
		{
			name:     "body is not re-escaped",
			tpl:      "{{ Title }}{{ Content }}",
			title:    "",
			body:     "<strong>&amp;</strong>",
			expected: "<strong>&amp;</strong>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := applyTemplate(tt.tpl, tt.title, tt.body)
			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Fatalf("err = %v, want %v", err, tt.expectedErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("applyTemplate() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDefaultTemplateHasTokens(t *testing.T) {
	t.Parallel()

	if !strings.Contains(DefaultTemplate, TitleToken) {
		t.Errorf("default template missing %q", TitleToken)
	}
	if !strings.Contains(DefaultTemplate, ContentToken) {
		t.Errorf("default template missing %q", ContentToken)
	}
}
