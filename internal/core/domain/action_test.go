package domain_test

import (
	"context"
	"testing"

	"go.trai.ch/press/internal/core/domain"
)

func TestStaticDestination(t *testing.T) {
	dest := domain.StaticDestination("posts/index.html")

	for i := 0; i < 3; i++ {
		got, err := dest(context.Background())
		if err != nil {
			t.Fatalf("destination failed: %v", err)
		}
		if got != "posts/index.html" {
			t.Errorf("expected posts/index.html, got %q", got)
		}
	}
}

func TestAction_BuildContext(t *testing.T) {
	t.Run("Builds the declared context", func(t *testing.T) {
		action := domain.Action{
			Build: func(context.Context) (domain.Context, error) {
				return domain.Context{"title": "About"}, nil
			},
		}

		got, err := action.BuildContext(context.Background())
		if err != nil {
			t.Fatalf("BuildContext failed: %v", err)
		}
		if got["title"] != "About" {
			t.Errorf("expected title About, got %q", got["title"])
		}
	})

	t.Run("Nil build yields empty context", func(t *testing.T) {
		var action domain.Action

		got, err := action.BuildContext(context.Background())
		if err != nil {
			t.Fatalf("BuildContext failed: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected empty context, got %v", got)
		}
	})

	t.Run("Build runs fresh on every call", func(t *testing.T) {
		calls := 0
		action := domain.Action{
			Build: func(context.Context) (domain.Context, error) {
				calls++
				return domain.Context{"n": "same"}, nil
			},
		}

		first, err := action.BuildContext(context.Background())
		if err != nil {
			t.Fatalf("first build failed: %v", err)
		}
		second, err := action.BuildContext(context.Background())
		if err != nil {
			t.Fatalf("second build failed: %v", err)
		}

		if calls != 2 {
			t.Errorf("expected 2 build runs, got %d", calls)
		}
		if first["n"] != second["n"] {
			t.Errorf("expected identical results, got %q and %q", first["n"], second["n"])
		}
	})
}
