package domain

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort keys accepted by the query engine.
const (
	SortRelevance = "relevance"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortName      = "name"
	SortPopular   = "popular"
	SortRecent    = "recent"
)

// Filter describes a catalog query. All supplied criteria
// are combined with AND; zero values mean "no constraint".
type Filter struct {
	Search      string
	Category    string
	Subcategory string
	MaxPrice    int64
	ActiveOnly  bool
	Sort        string
}

// Query filters and sorts the catalog. The input slice is never mutated; a
// new slice is returned. Sorting is stable, so equal keys keep their
// incoming order.
func Query(products []Product, f Filter) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if matches(&p, f) {
			out = append(out, p)
		}
	}

	switch f.Sort {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortName:
		c := collate.New(language.Portuguese)
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].Name, out[j].Name) < 0
		})
	case SortPopular:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Clicks > out[j].Clicks })
	case SortRecent:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}

	return out
}

func matches(p *Product, f Filter) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Subcategory != "" && p.Subcategory != f.Subcategory {
		return false
	}
	if f.MaxPrice > 0 && p.Price > f.MaxPrice {
		return false
	}
	if f.ActiveOnly && !p.Active {
		return false
	}
	if f.Search != "" && !matchesSearch(p, f.Search) {
		return false
	}
	return true
}

// matchesSearch does a case-insensitive substring match against name,
// description, category, subcategory and tags (OR across fields).
func matchesSearch(p *Product, search string) bool {
	q := strings.ToLower(search)
	if strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Category), q) ||
		strings.Contains(strings.ToLower(p.Subcategory), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// Subcategories returns the distinct subcategories of a category in
// first-seen order.
func Subcategories(products []Product, category string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range products {
		if p.Category != category || p.Subcategory == "" {
			continue
		}
		if _, ok := seen[p.Subcategory]; ok {
			continue
		}
		seen[p.Subcategory] = struct{}{}
		out = append(out, p.Subcategory)
	}
	return out
}
