package linkcheck

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestCheck(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "index.html"), `<html><body>
<a href="/about.html">ok</a>
<a href="/missing.html">broken</a>
<a href="/sub/">dir with index</a>
<a href="/about.html#section">fragment stripped</a>
<a href="https://example.com/x">external skipped</a>
<a href="relative.html">relative skipped</a>
<img src="/img/logo.png" alt="ok">
<img src="/img/gone.png" alt="broken">
</body></html>`)
	writeFile(t, filepath.Join(root, "about.html"), "<html></html>")
	writeFile(t, filepath.Join(root, "sub", "index.html"), "<html></html>")
	writeFile(t, filepath.Join(root, "img", "logo.png"), "png")

	problems, err := Check(root)
	if err != nil {
		t.Fatalf("Check() error: %v", err)
	}

	want := map[string]bool{
		"/missing.html": true,
		"/img/gone.png": true,
	}
	if len(problems) != len(want) {
		t.Fatalf("problems = %v, want %d entries", problems, len(want))
	}
	for _, p := range problems {
		if !want[p.Target] {
			t.Errorf("unexpected problem: %v", p)
		}
		if p.Page != "index.html" {
			t.Errorf("problem page = %q, want %q", p.Page, "index.html")
		}
	}
}

func TestCheckCleanSite(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "index.html"),
		`<html><body><a href="/">self</a></body></html>`)

	problems, err := Check(root)
	if err != nil {
		t.Fatalf("Check() error: %v", err)
	}
	if len(problems) != 0 {
		t.Errorf("problems = %v, want none", problems)
	}
}

func TestCheckable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		target   string
		expected bool
	}{
		{name: "root relative", target: "/a.html", expected: true},
		{name: "protocol relative", target: "//cdn.example.com/a.js", expected: false},
		{name: "absolute url", target: "https://example.com", expected: false},
		{name: "relative", target: "a.html", expected: false},
		{name: "fragment only", target: "#top", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := checkable(tt.target); got != tt.expected {
				t.Errorf("checkable(%q) = %v, want %v", tt.target, got, tt.expected)
			}
		})
	}
}
