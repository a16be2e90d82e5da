package catalog

import "branchsite/models"

// SiteStats are the homepage impact figures.
type SiteStats struct {
	Members      int `json:"members"`
	EventsHosted int `json:"eventsHosted"`
	YearsActive  int `json:"yearsActive"`
	Workshops    int `json:"workshops"`
}

// Stats counts the catalog's past events and past workshops. members and
// foundedYear are not in the catalog and come from site configuration; a
// foundedYear of zero or in the future reports zero years.
func (c *Catalog) Stats(members, foundedYear int) SiteStats {
	f := c.Facets(c.events)
	st := SiteStats{
		Members:      max(members, 0),
		EventsHosted: f.Past,
		Workshops:    f.TypeCounts[models.TypeWorkshop],
	}
	if foundedYear > 0 {
		st.YearsActive = max(c.Today().Year()-foundedYear, 0)
	}
	return st
}
