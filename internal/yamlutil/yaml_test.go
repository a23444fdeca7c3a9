package yamlutil

import (
	"errors"
	"strings"
	"testing"
)

type testDoc struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	t.Run("valid document", func(t *testing.T) {
		t.Parallel()

		var doc testDoc
		if err := Unmarshal([]byte("name: a\ncount: 2\n"), &doc); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.Name != "a" || doc.Count != 2 {
			t.Errorf("doc = %+v, want {a 2}", doc)
		}
	})

	t.Run("empty data", func(t *testing.T) {
		t.Parallel()

		var doc testDoc
		if err := Unmarshal(nil, &doc); !errors.Is(err, ErrNilData) {
			t.Fatalf("err = %v, want %v", err, ErrNilData)
		}
	})

	t.Run("nil destination", func(t *testing.T) {
		t.Parallel()

		if err := Unmarshal([]byte("a: 1"), nil); !errors.Is(err, ErrNilDestination) {
			t.Fatalf("err = %v, want %v", err, ErrNilDestination)
		}
	})

	t.Run("oversized input", func(t *testing.T) {
		t.Parallel()

		var doc testDoc
		data := []byte("name: " + strings.Repeat("a", MaxInputSize))
		if err := Unmarshal(data, &doc); !errors.Is(err, ErrInputTooLarge) {
			t.Fatalf("err = %v, want %v", err, ErrInputTooLarge)
		}
	})
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	t.Run("rejects unknown fields", func(t *testing.T) {
		t.Parallel()

		var doc testDoc
		if err := UnmarshalStrict([]byte("name: a\nbogus: 1\n"), &doc); err == nil {
			t.Fatal("expected error for unknown field, got nil")
		}
	})

	t.Run("accepts known fields", func(t *testing.T) {
		t.Parallel()

		var doc testDoc
		if err := UnmarshalStrict([]byte("name: a\n"), &doc); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
