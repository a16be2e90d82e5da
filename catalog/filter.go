package catalog

import (
	"strconv"
	"strings"

	"branchsite/models"
)

type StatusFilter string

const (
	StatusAll      StatusFilter = "all"
	StatusUpcoming StatusFilter = "upcoming"
	StatusPast     StatusFilter = "past"
)

// ParseStatusFilter falls back to StatusAll for unknown values.
func ParseStatusFilter(s string) StatusFilter {
	switch f := StatusFilter(strings.ToLower(strings.TrimSpace(s))); f {
	case StatusUpcoming, StatusPast:
		return f
	}
	return StatusAll
}

// AllYears disables the year filter.
const AllYears = 0

// ParseYear reads a year filter value; "all", blank and malformed input
// all mean AllYears.
func ParseYear(s string) int {
	y, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || y < 0 {
		return AllYears
	}
	return y
}

// AllTypes disables the type filter. The empty type does the same.
const AllTypes models.EventType = "all"

func filter(records []models.Event, keep func(models.Event) bool) []models.Event {
	out := make([]models.Event, 0, len(records))
	for _, e := range records {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// FilterByStatus keeps upcoming (date on or after today) or past (date
// before today) records. In stored mode the status field decides, with
// ongoing counted as upcoming.
func (c *Catalog) FilterByStatus(records []models.Event, f StatusFilter) []models.Event {
	switch f {
	case StatusUpcoming:
		return filter(records, c.isUpcoming)
	case StatusPast:
		return filter(records, c.isPast)
	default:
		return clone(records)
	}
}

func (c *Catalog) isUpcoming(e models.Event) bool {
	if c.mode == StatusStored {
		return e.Status == models.StatusUpcoming || e.Status == models.StatusOngoing
	}
	return !e.Date.Before(c.Today())
}

func (c *Catalog) isPast(e models.Event) bool {
	if c.mode == StatusStored {
		return e.Status == models.StatusCompleted
	}
	return e.Date.Before(c.Today())
}

// FilterPast keeps completed events, the only ones the gallery shows. In
// StatusStored mode the result depends on the records alone. In
// StatusDerived mode it depends on the date WithClock reports, so an event
// moves into the gallery the day after it takes place.
func (c *Catalog) FilterPast(records []models.Event) []models.Event {
	return filter(records, func(e models.Event) bool {
		return c.Status(e) == models.StatusCompleted
	})
}

func FilterByYear(records []models.Event, year int) []models.Event {
	if year == AllYears {
		return clone(records)
	}
	return filter(records, func(e models.Event) bool { return e.Year == year })
}

func FilterByType(records []models.Event, t models.EventType) []models.Event {
	if t == AllTypes || t == "" {
		return clone(records)
	}
	return filter(records, func(e models.Event) bool { return e.Type == t })
}

// SearchText keeps records whose title, description or location contains
// query, ignoring case and surrounding whitespace.
func SearchText(records []models.Event, query string) []models.Event {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return clone(records)
	}
	return filter(records, func(e models.Event) bool {
		return strings.Contains(strings.ToLower(e.Title), q) ||
			strings.Contains(strings.ToLower(e.Description), q) ||
			strings.Contains(strings.ToLower(e.Location), q)
	})
}
