// Package catalog holds the fetched equipment collection and derives the
// visible subset from the category, free-text and location filters.
package catalog

import (
	"strings"

	"github.com/nmil1484-source/the-wild-share/internal/models"
)

// LocationAll is the location filter value meaning "no location scoping".
const LocationAll = "all"

// Filter is one combination of the three independent filter inputs.
type Filter struct {
	Category models.Category
	Query    string
	Location string
}

// NoFilter is the all-pass filter combination.
func NoFilter() Filter {
	return Filter{Category: models.CategoryAll, Query: "", Location: LocationAll}
}

// Match reports whether an item passes all three predicates. Missing fields
// behave as empty strings and never cause a panic.
func (f Filter) Match(item *models.EquipmentItem) bool {
	if f.Category != "" && f.Category != models.CategoryAll && item.Category != f.Category {
		return false
	}

	if f.Query != "" {
		query := strings.ToLower(f.Query)
		matchesName := strings.Contains(strings.ToLower(item.Name), query)
		matchesDescription := strings.Contains(strings.ToLower(item.Description), query)
		matchesLocation := strings.Contains(strings.ToLower(item.Location), query)
		if !matchesName && !matchesDescription && !matchesLocation {
			return false
		}
	}

	if f.Location != "" && f.Location != LocationAll && item.Location != f.Location {
		return false
	}

	return true
}

// Apply returns the ordered subset of items passing the filter. The filter is
// stable: original collection order is preserved, nothing is resorted.
func Apply(items []models.EquipmentItem, f Filter) []models.EquipmentItem {
	result := make([]models.EquipmentItem, 0, len(items))
	for i := range items {
		if f.Match(&items[i]) {
			result = append(result, items[i])
		}
	}
	return result
}

// Locations returns the distinct non-empty locations across the unfiltered
// collection, deduplicated in first-seen order. The facet is always computed
// over the full collection, never the filtered subset.
func Locations(items []models.EquipmentItem) []string {
	seen := make(map[string]bool, len(items))
	locations := make([]string, 0, len(items))
	for i := range items {
		loc := items[i].Location
		if loc == "" || seen[loc] {
			continue
		}
		seen[loc] = true
		locations = append(locations, loc)
	}
	return locations
}
