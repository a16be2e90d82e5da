// Package catalog answers the Events page and Past Events Gallery queries
// over an immutable, in-memory set of event records.
//
// Every query is a pure function of its inputs: results are fresh slices in
// catalog order (or the requested sort order), never cached and never
// aliased to the catalog's own storage. No query returns an error; a filter
// that matches nothing yields an empty, non-nil slice.
package catalog

import (
	"strings"
	"time"

	"branchsite/models"
)

// StatusMode selects where an event's status comes from.
type StatusMode int

const (
	// StatusDerived compares the event date with the injected clock.
	StatusDerived StatusMode = iota
	// StatusStored trusts the status field of each record, even when it
	// has gone stale relative to the real clock.
	StatusStored
)

func (m StatusMode) String() string {
	if m == StatusStored {
		return "stored"
	}
	return "derived"
}

// ParseStatusMode maps a config value to a StatusMode. Anything other than
// "stored" selects StatusDerived.
func ParseStatusMode(s string) StatusMode {
	if strings.EqualFold(strings.TrimSpace(s), "stored") {
		return StatusStored
	}
	return StatusDerived
}

type Option func(*Catalog)

// WithClock injects the "now" used for status derivation.
func WithClock(now func() time.Time) Option {
	return func(c *Catalog) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLocation sets the time zone in which "today" is evaluated.
func WithLocation(loc *time.Location) Option {
	return func(c *Catalog) {
		if loc != nil {
			c.loc = loc
		}
	}
}

func WithStatusMode(m StatusMode) Option {
	return func(c *Catalog) { c.mode = m }
}

type Catalog struct {
	events []models.Event
	byID   map[int]int
	now    func() time.Time
	loc    *time.Location
	mode   StatusMode
}

// New builds a catalog from a snapshot of events. The input is deep-copied,
// so later changes to it are not observed.
func New(events []models.Event, opts ...Option) *Catalog {
	c := &Catalog{
		events: make([]models.Event, len(events)),
		byID:   make(map[int]int, len(events)),
		now:    time.Now,
		loc:    time.UTC,
	}
	for i, e := range events {
		c.events[i] = cloneEvent(e)
		c.byID[e.ID] = i
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Catalog) Len() int { return len(c.events) }

func (c *Catalog) Mode() StatusMode { return c.mode }

// ListAll returns every record in catalog order.
func (c *Catalog) ListAll() []models.Event {
	return clone(c.events)
}

// Get looks up one record by id.
func (c *Catalog) Get(id int) (models.Event, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Event{}, false
	}
	return cloneEvent(c.events[i]), true
}

// Today is the current civil date in the catalog's time zone.
func (c *Catalog) Today() models.Date {
	return models.DateOf(c.now(), c.loc)
}

// Status returns the effective status of e under the catalog's mode.
func (c *Catalog) Status(e models.Event) models.Status {
	if c.mode == StatusStored {
		return e.Status
	}
	today := c.Today()
	switch {
	case e.Date.After(today):
		return models.StatusUpcoming
	case e.Date.Equal(today):
		return models.StatusOngoing
	default:
		return models.StatusCompleted
	}
}

// WithStatus returns copies of records whose Status field holds the
// effective status, which is what API clients render.
func (c *Catalog) WithStatus(records []models.Event) []models.Event {
	out := clone(records)
	for i := range out {
		out[i].Status = c.Status(out[i])
	}
	return out
}

func clone(records []models.Event) []models.Event {
	out := make([]models.Event, len(records))
	copy(out, records)
	return out
}

func cloneEvent(e models.Event) models.Event {
	if e.Images != nil {
		e.Images = append([]string{}, e.Images...)
	}
	if e.Highlights != nil {
		e.Highlights = append([]string{}, e.Highlights...)
	}
	if e.AttendanceCount != nil {
		n := *e.AttendanceCount
		e.AttendanceCount = &n
	}
	return e
}
