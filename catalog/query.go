package catalog

import "branchsite/models"

// Query is the full set of controls on the Events and Gallery views. Zero
// values disable the matching filter.
type Query struct {
	Status StatusFilter     `json:"status,omitempty"`
	Search string           `json:"search,omitempty"`
	Year   int              `json:"year,omitempty"`
	Type   models.EventType `json:"type,omitempty"`
	Sort   SortKey          `json:"sort,omitempty"`
}

// Apply narrows records by status, text, year and type, in that order,
// and sorts what is left. Sorting always happens last.
func (c *Catalog) Apply(records []models.Event, q Query) []models.Event {
	out := c.FilterByStatus(records, q.Status)
	out = SearchText(out, q.Search)
	out = FilterByYear(out, q.Year)
	out = FilterByType(out, q.Type)
	return SortEvents(out, q.Sort)
}

// Gallery runs q over the completed events. An empty sort key means
// DefaultSort here, matching the gallery's initial state.
func (c *Catalog) Gallery(q Query) []models.Event {
	q.Status = StatusAll
	if q.Sort == "" {
		q.Sort = DefaultSort
	}
	return c.Apply(c.FilterPast(c.events), q)
}
