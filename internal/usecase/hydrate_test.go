package usecase

import (
	"testing"

	"github.com/dermalens/backend/internal/domain"
)

func TestHydrate(t *testing.T) {
	catalog := []domain.Product{
		{Name: "Anti-Acne Gel", VariantID: "X", Price: "USD 12.00"},
		{Name: "Daily Moisturizer", VariantID: "Y", Price: "USD 18.00"},
	}

	t.Run("drops entries referencing unknown products", func(t *testing.T) {
		entries := []domain.RecommendationEntry{
			{ProductID: "X", Slot: "treatment"},
			{ProductID: "ghost", Slot: "cleanser"},
		}

		out := Hydrate(entries, catalog)

		if len(out) != 1 {
			t.Fatalf("Hydrate() len = %d, want 1 (unknown entries dropped silently)", len(out))
		}
		if out[0].Name != "Anti-Acne Gel" {
			t.Errorf("hydrated product = %s, want Anti-Acne Gel", out[0].Name)
		}
		if out[0].Slot != "treatment" {
			t.Errorf("slot = %s, want treatment", out[0].Slot)
		}
	})

	t.Run("falls back to name match when variant ID is unknown", func(t *testing.T) {
		entries := []domain.RecommendationEntry{
			{ProductID: "wrong-id", ProductName: "Daily Moisturizer", Slot: "moisturizer"},
		}

		out := Hydrate(entries, catalog)

		if len(out) != 1 {
			t.Fatalf("Hydrate() len = %d, want 1", len(out))
		}
		if out[0].VariantID != "Y" {
			t.Errorf("hydrated variant = %s, want Y", out[0].VariantID)
		}
	})

	t.Run("preserves entry order", func(t *testing.T) {
		entries := []domain.RecommendationEntry{
			{ProductID: "Y", Slot: "moisturizer"},
			{ProductID: "X", Slot: "treatment"},
		}

		out := Hydrate(entries, catalog)

		if len(out) != 2 {
			t.Fatalf("Hydrate() len = %d, want 2", len(out))
		}
		if out[0].VariantID != "Y" || out[1].VariantID != "X" {
			t.Errorf("hydration must preserve input order, got %s then %s", out[0].VariantID, out[1].VariantID)
		}
	})

	t.Run("carries full catalog record onto output", func(t *testing.T) {
		out := Hydrate([]domain.RecommendationEntry{{ProductID: "X", Slot: "treatment", Reason: "targets acne"}}, catalog)

		if len(out) != 1 {
			t.Fatalf("Hydrate() len = %d, want 1", len(out))
		}
		if out[0].Price != "USD 12.00" {
			t.Errorf("price = %s, want USD 12.00", out[0].Price)
		}
		if out[0].Reason != "targets acne" {
			t.Errorf("reason = %s, want 'targets acne'", out[0].Reason)
		}
	})

	t.Run("empty entries yield empty output", func(t *testing.T) {
		if out := Hydrate(nil, catalog); len(out) != 0 {
			t.Errorf("Hydrate(nil) len = %d, want 0", len(out))
		}
	})
}
