package catalog

import (
	"slices"

	"branchsite/models"
)

// Facets summarises a record set for the filter controls.
type Facets struct {
	Years      []int                    `json:"years"`
	Types      []models.EventType       `json:"types"`
	TypeCounts map[models.EventType]int `json:"typeCounts"`
	Total      int                      `json:"total"`
	Upcoming   int                      `json:"upcoming"`
	Past       int                      `json:"past"`
}

// UniqueYears lists the distinct years of the past events in records,
// most recent first.
func (c *Catalog) UniqueYears(records []models.Event) []int {
	seen := map[int]struct{}{}
	years := []int{}
	for _, e := range c.FilterPast(records) {
		if _, ok := seen[e.Year]; ok {
			continue
		}
		seen[e.Year] = struct{}{}
		years = append(years, e.Year)
	}
	slices.Sort(years)
	slices.Reverse(years)
	return years
}

// UniqueTypes lists the distinct types of the past events in records, in
// the order they first appear.
func (c *Catalog) UniqueTypes(records []models.Event) []models.EventType {
	seen := map[models.EventType]struct{}{}
	types := []models.EventType{}
	for _, e := range c.FilterPast(records) {
		if _, ok := seen[e.Type]; ok {
			continue
		}
		seen[e.Type] = struct{}{}
		types = append(types, e.Type)
	}
	return types
}

func (c *Catalog) Facets(records []models.Event) Facets {
	past := c.FilterPast(records)
	counts := make(map[models.EventType]int)
	for _, e := range past {
		counts[e.Type]++
	}
	return Facets{
		Years:      c.UniqueYears(records),
		Types:      c.UniqueTypes(records),
		TypeCounts: counts,
		Total:      len(records),
		Upcoming:   len(c.FilterByStatus(records, StatusUpcoming)),
		Past:       len(c.FilterByStatus(records, StatusPast)),
	}
}
