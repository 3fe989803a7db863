package catalog

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"estore/internal/domain"
)

type SortKey string

const (
	SortName      SortKey = "name"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
	SortRelevance SortKey = "relevance" // keep post-filter order
)

// ParseSortKey maps a raw query value to a known key; anything else sorts by name.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortPriceLow, SortPriceHigh, SortRating, SortRelevance:
		return SortKey(s)
	default:
		return SortName
	}
}

// PriceRange is inclusive on both ends. Min > Max is a valid input that
// matches nothing.
type PriceRange struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

// FilterSpec is built fresh per request and never persisted.
type FilterSpec struct {
	Category   string // exact category name; unknown values match nothing
	Price      *PriceRange
	SearchTerm string
	Sort       SortKey
}

// Query applies category, price and search filters in that order, then a
// stable sort. It never fails: degenerate specs (unknown category, inverted
// price range, blank search term) shape the result instead of erroring.
// Inputs are not mutated; identical inputs yield identically ordered output.
func Query(products []domain.Product, spec FilterSpec) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if spec.Category != "" && p.Category != spec.Category {
			continue
		}
		out = append(out, p)
	}

	if spec.Price != nil {
		kept := out[:0:0]
		if !spec.Price.Min.GreaterThan(spec.Price.Max) {
			for _, p := range out {
				if p.Price.GreaterThanOrEqual(spec.Price.Min) && p.Price.LessThanOrEqual(spec.Price.Max) {
					kept = append(kept, p)
				}
			}
		}
		out = kept
	}

	if term := strings.ToLower(strings.TrimSpace(spec.SearchTerm)); term != "" {
		kept := out[:0:0]
		for _, p := range out {
			if containsFold(p.Name, term) || containsFold(p.Description, term) || containsFold(p.Category, term) {
				kept = append(kept, p)
			}
		}
		out = kept
	}

	sortProducts(out, spec.Sort)
	if out == nil {
		out = []domain.Product{}
	}
	return out
}

// containsFold expects term already lowercased.
func containsFold(field, term string) bool {
	return strings.Contains(strings.ToLower(field), term)
}

func sortProducts(out []domain.Product, key SortKey) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price.LessThan(out[j].Price) })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price.GreaterThan(out[j].Price) })
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case SortRelevance:
		// surviving order already reflects catalog/relevance order
	default:
		// Collators are not safe for concurrent use, so build one per call.
		col := collate.New(language.English)
		sort.SliceStable(out, func(i, j int) bool { return col.CompareString(out[i].Name, out[j].Name) < 0 })
	}
}
