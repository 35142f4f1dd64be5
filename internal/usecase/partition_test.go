package usecase

import (
	"testing"

	"github.com/dermalens/backend/internal/domain"
)

func namesOf(products []domain.Product) []string {
	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
	}
	return names
}

func TestPartition(t *testing.T) {
	catalog := []domain.Product{
		{Name: "Anti-Acne Gel"},
		{Name: "Hair Growth Shampoo"},
		{Name: "Minoxidil Serum"},
		{Name: "Daily Moisturizer"},
	}

	t.Run("include mode selects hair products", func(t *testing.T) {
		hair := Partition(catalog, defaultHairKeywords, ModeInclude)

		want := []string{"Hair Growth Shampoo", "Minoxidil Serum"}
		got := namesOf(hair)
		if len(got) != len(want) {
			t.Fatalf("hair partition = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("hair partition[%d] = %s, want %s", i, got[i], want[i])
			}
		}
	})

	t.Run("exclude mode is the exact complement", func(t *testing.T) {
		skincare := Partition(catalog, defaultHairKeywords, ModeExclude)

		want := []string{"Anti-Acne Gel", "Daily Moisturizer"}
		got := namesOf(skincare)
		if len(got) != len(want) {
			t.Fatalf("skincare partition = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("skincare partition[%d] = %s, want %s", i, got[i], want[i])
			}
		}
	})

	t.Run("partitions are disjoint and exhaustive", func(t *testing.T) {
		hair := Partition(catalog, defaultHairKeywords, ModeInclude)
		skincare := Partition(catalog, defaultHairKeywords, ModeExclude)

		if len(hair)+len(skincare) != len(catalog) {
			t.Errorf("partition sizes %d + %d != catalog size %d", len(hair), len(skincare), len(catalog))
		}
		seen := map[string]bool{}
		for _, p := range append(hair, skincare...) {
			if seen[p.Name] {
				t.Errorf("product %q appears in both partitions", p.Name)
			}
			seen[p.Name] = true
		}
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		products := []domain.Product{{Name: "SCALP Treatment Oil"}}
		if got := Partition(products, defaultHairKeywords, ModeInclude); len(got) != 1 {
			t.Errorf("expected case-insensitive keyword match, got %v", namesOf(got))
		}
	})

	t.Run("empty catalog yields empty partitions", func(t *testing.T) {
		if got := Partition(nil, defaultHairKeywords, ModeInclude); len(got) != 0 {
			t.Errorf("Partition(nil) = %v, want empty", namesOf(got))
		}
	})
}
