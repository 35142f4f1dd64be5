package usecase

import (
	"strings"

	"github.com/dermalens/backend/internal/domain"
)

// PartitionMode selects whether matching products are kept or removed
type PartitionMode int

const (
	// ModeInclude keeps products whose name contains any keyword
	ModeInclude PartitionMode = iota
	// ModeExclude keeps products whose name contains no keyword
	ModeExclude
)

// defaultHairKeywords is the vocabulary separating hair/scalp products from
// general skincare. The skincare partition is defined as the complement of
// this test, so the two partitions are disjoint and exhaustive by
// construction. The table is configuration: services accept an override so a
// tagged-field lookup can replace the name heuristic if the storefront ever
// exposes a category field.
var defaultHairKeywords = []string{
	"hair", "scalp", "shampoo", "conditioner", "minoxidil",
	"dandruff", "follicle", "keratin", "biotin", "beard",
}

// Partition filters the catalog by a case-insensitive substring test of the
// keywords against product names. Pure and cheap; recomputed per call rather
// than cached.
func Partition(products []domain.Product, keywords []string, mode PartitionMode) []domain.Product {
	var subset []domain.Product
	for _, product := range products {
		matched := matchesAny(product.Name, keywords)
		if (mode == ModeInclude) == matched {
			subset = append(subset, product)
		}
	}
	return subset
}

// matchesAny reports whether the name contains any keyword, ignoring case
func matchesAny(name string, keywords []string) bool {
	lower := strings.ToLower(name)
	for _, keyword := range keywords {
		if strings.Contains(lower, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}
