package domain_test

import (
	"encoding/json"
	"testing"

	"go.trai.ch/press/internal/core/domain"
)

func TestPagePath(t *testing.T) {
	s1 := "posts/hello.md"
	s2 := "posts/hello.md"

	p1 := domain.NewPagePath(s1)
	p2 := domain.NewPagePath(s2)

	// Verify that the underlying handles are equal
	if p1 != p2 {
		t.Errorf("Expected paths to be equal for identical strings, got %v and %v", p1, p2)
	}

	// Verify String() method
	if p1.String() != s1 {
		t.Errorf("Expected String() to return %q, got %q", s1, p1.String())
	}

	// Distinct spellings stay distinct, no normalization happens
	p3 := domain.NewPagePath("posts//hello.md")
	if p1 == p3 {
		t.Error("expected literal string identity, got normalized equality")
	}
}

func TestPagePath_Zero(t *testing.T) {
	var p domain.PagePath
	if p.String() != "" {
		t.Errorf("expected zero PagePath to render empty, got %q", p.String())
	}
}

func TestPagePathJSON(t *testing.T) {
	t.Run("Marshal and Unmarshal preserve path value", func(t *testing.T) {
		original := domain.NewPagePath("pages/about.md")

		data, err := json.Marshal(original)
		if err != nil {
			t.Fatalf("Failed to marshal PagePath: %v", err)
		}

		expectedJSON := `"pages/about.md"`
		if string(data) != expectedJSON {
			t.Errorf("Expected JSON %q, got %q", expectedJSON, string(data))
		}

		var unmarshaled domain.PagePath
		err = json.Unmarshal(data, &unmarshaled)
		if err != nil {
			t.Fatalf("Failed to unmarshal PagePath: %v", err)
		}

		// Round-trip restores an equal value
		if unmarshaled != original {
			t.Errorf("Expected unmarshaled path %q, got %q", original.String(), unmarshaled.String())
		}
	})

	t.Run("Marshal and Unmarshal in struct", func(t *testing.T) {
		type TestStruct struct {
			Source domain.PagePath `json:"source"`
		}

		original := TestStruct{
			Source: domain.NewPagePath("index.md"),
		}

		data, err := json.Marshal(original)
		if err != nil {
			t.Fatalf("Failed to marshal struct: %v", err)
		}

		expectedJSON := `{"source":"index.md"}`
		if string(data) != expectedJSON {
			t.Errorf("Expected JSON %q, got %q", expectedJSON, string(data))
		}

		var unmarshaled TestStruct
		err = json.Unmarshal(data, &unmarshaled)
		if err != nil {
			t.Fatalf("Failed to unmarshal struct: %v", err)
		}

		if unmarshaled.Source != original.Source {
			t.Errorf("Expected unmarshaled source %q, got %q", original.Source.String(), unmarshaled.Source.String())
		}
	})
}

func TestNewPagePaths(t *testing.T) {
	t.Run("Convert strings to PagePaths", func(t *testing.T) {
		strings := []string{"a.md", "b.md", "c.md"}

		paths := domain.NewPagePaths(strings...)

		if len(paths) != len(strings) {
			t.Errorf("Expected %d paths, got %d", len(strings), len(paths))
		}

		for i, expected := range strings {
			if paths[i].String() != expected {
				t.Errorf("Expected path at index %d to be %q, got %q", i, expected, paths[i].String())
			}
		}
	})

	t.Run("No arguments returns nil", func(t *testing.T) {
		if paths := domain.NewPagePaths(); len(paths) != 0 {
			t.Errorf("Expected empty slice, got %d elements", len(paths))
		}
	})
}
