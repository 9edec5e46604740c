package domain_test

import (
	"testing"

	"go.trai.ch/press/internal/core/domain"
)

func TestPage_Context(t *testing.T) {
	t.Run("Generated keys", func(t *testing.T) {
		page := domain.Page{
			Path: domain.NewPagePath("pages/about.md"),
			Body: "Hello.",
		}

		ctx := page.Context()
		if ctx[domain.KeyBody] != "Hello." {
			t.Errorf("expected body key, got %q", ctx[domain.KeyBody])
		}
		if ctx[domain.KeyPath] != "pages/about.md" {
			t.Errorf("expected path key, got %q", ctx[domain.KeyPath])
		}
	})

	t.Run("Metadata carried over", func(t *testing.T) {
		page := domain.Page{
			Path: domain.NewPagePath("posts/one.md"),
			Meta: map[string]string{"title": "One", "date": "2024-01-02"},
			Body: "body",
		}

		ctx := page.Context()
		if ctx["title"] != "One" {
			t.Errorf("expected title One, got %q", ctx["title"])
		}
		if ctx["date"] != "2024-01-02" {
			t.Errorf("expected date 2024-01-02, got %q", ctx["date"])
		}
	})

	t.Run("Metadata shadows generated keys", func(t *testing.T) {
		page := domain.Page{
			Path: domain.NewPagePath("posts/two.md"),
			Meta: map[string]string{domain.KeyPath: "elsewhere.md"},
			Body: "body",
		}

		ctx := page.Context()
		if ctx[domain.KeyPath] != "elsewhere.md" {
			t.Errorf("expected metadata to shadow path, got %q", ctx[domain.KeyPath])
		}
		if ctx[domain.KeyBody] != "body" {
			t.Errorf("expected body untouched, got %q", ctx[domain.KeyBody])
		}
	})

	t.Run("No metadata", func(t *testing.T) {
		page := domain.Page{Path: domain.NewPagePath("index.md")}

		ctx := page.Context()
		if len(ctx) != 2 {
			t.Errorf("expected exactly body and path, got %v", ctx)
		}
	})
}
