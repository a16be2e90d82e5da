package catalog

import (
	"fmt"

	ical "github.com/arran4/golang-ical"

	"branchsite/models"
)

// ICS renders records as an iCalendar feed of all-day events so visitors
// can subscribe to the branch calendar.
func (c *Catalog) ICS(records []models.Event, name string) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//branchsite//events//EN")
	if name != "" {
		cal.SetXWRCalName(name)
	}

	stamp := c.now().UTC()
	for _, e := range records {
		ev := cal.AddEvent(fmt.Sprintf("event-%d@branchsite", e.ID))
		ev.SetDtStampTime(stamp)
		ev.SetSummary(e.Title)
		if e.Description != "" {
			ev.SetDescription(e.Description)
		}
		if e.Location != "" {
			ev.SetLocation(e.Location)
		}
		if e.Type != "" {
			ev.SetProperty(ical.ComponentPropertyCategories, string(e.Type))
		}
		ev.SetAllDayStartAt(e.Date.Time())
		ev.SetAllDayEndAt(e.Date.AddDays(1).Time())
	}
	return cal.Serialize()
}
