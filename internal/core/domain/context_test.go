package domain_test

import (
	"testing"

	"go.trai.ch/press/internal/core/domain"
)

func TestUnion_PrimaryWins(t *testing.T) {
	primary := domain.Context{"title": "left", "author": "jane"}
	secondary := domain.Context{"title": "right", "date": "2024-03-01"}

	merged := domain.Union(primary, secondary)

	if merged["title"] != "left" {
		t.Errorf("expected primary value for title, got %q", merged["title"])
	}
	if merged["author"] != "jane" {
		t.Errorf("expected author from primary, got %q", merged["author"])
	}
	if merged["date"] != "2024-03-01" {
		t.Errorf("expected date from secondary, got %q", merged["date"])
	}
	if len(merged) != 3 {
		t.Errorf("expected 3 keys, got %d", len(merged))
	}
}

func TestUnion_DoesNotMutateInputs(t *testing.T) {
	primary := domain.Context{"k": "p"}
	secondary := domain.Context{"k": "s", "other": "v"}

	merged := domain.Union(primary, secondary)
	merged["new"] = "x"

	if len(primary) != 1 || len(secondary) != 2 {
		t.Error("expected Union to leave its inputs untouched")
	}
	if secondary["k"] != "s" {
		t.Errorf("expected secondary to keep its value, got %q", secondary["k"])
	}
}

func TestUnion_Empty(t *testing.T) {
	t.Run("Both empty", func(t *testing.T) {
		merged := domain.Union(domain.Context{}, domain.Context{})
		if len(merged) != 0 {
			t.Errorf("expected empty union, got %v", merged)
		}
	})

	t.Run("Nil operands", func(t *testing.T) {
		merged := domain.Union(nil, domain.Context{"k": "v"})
		if merged["k"] != "v" {
			t.Errorf("expected value from secondary, got %q", merged["k"])
		}
	})
}

func TestContext_Keys_Sorted(t *testing.T) {
	c := domain.Context{"zebra": "1", "alpha": "2", "mid": "3"}

	keys := c.Keys()

	expected := []string{"alpha", "mid", "zebra"}
	if len(keys) != len(expected) {
		t.Fatalf("expected %d keys, got %d", len(expected), len(keys))
	}
	for i, k := range expected {
		if keys[i] != k {
			t.Errorf("expected key %q at index %d, got %q", k, i, keys[i])
		}
	}
}

func TestContext_Clone(t *testing.T) {
	c := domain.Context{"k": "v"}
	clone := c.Clone()
	clone["k"] = "changed"

	if c["k"] != "v" {
		t.Errorf("expected original to be unchanged, got %q", c["k"])
	}
}
