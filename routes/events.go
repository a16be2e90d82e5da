package routes

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"branchsite/catalog"
	"branchsite/models"
)

/* -------------------- Events -------------------- */

// queryFrom reads the filter controls. Unknown values fall back to "no
// filter" rather than failing the request.
func queryFrom(c *gin.Context) catalog.Query {
	return catalog.Query{
		Status: catalog.ParseStatusFilter(c.Query("status")),
		Search: c.Query("search"),
		Year:   catalog.ParseYear(c.Query("year")),
		Type:   models.EventType(c.Query("type")),
		Sort:   catalog.ParseSortKey(c.Query("sort")),
	}
}

// GET /events
func (d *deps) getEvents(c *gin.Context) {
	q := queryFrom(c)
	events := d.catalog.Apply(d.catalog.ListAll(), q)
	c.JSON(http.StatusOK, gin.H{
		"events": d.catalog.WithStatus(events),
		"total":  len(events),
		"query":  q,
	})
}

// GET /events/past
func (d *deps) getPastEvents(c *gin.Context) {
	q := queryFrom(c)
	q.Status = catalog.StatusAll
	gallery := d.catalog.Gallery(q)
	c.JSON(http.StatusOK, gin.H{
		"events":  d.catalog.WithStatus(gallery),
		"showing": len(gallery),
		"total":   len(d.catalog.FilterPast(d.catalog.ListAll())),
		"query":   q,
	})
}

// GET /events/facets
func (d *deps) getFacets(c *gin.Context) {
	c.JSON(http.StatusOK, d.catalog.Facets(d.catalog.ListAll()))
}

// GET /stats
func (d *deps) getStats(c *gin.Context) {
	c.JSON(http.StatusOK, d.catalog.Stats(d.members, d.founded))
}

// GET /events/calendar.ics?status=upcoming|past|all (default upcoming)
func (d *deps) getCalendar(c *gin.Context) {
	status := catalog.StatusUpcoming
	if s := c.Query("status"); s != "" {
		status = catalog.ParseStatusFilter(s)
	}
	events := d.catalog.FilterByStatus(d.catalog.ListAll(), status)
	c.Header("Content-Disposition", `inline; filename="events.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(d.catalog.ICS(events, d.calName)))
}

// GET /events/:id
func (d *deps) getEvent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Could not parse event id."})
		return
	}
	event, ok := d.catalog.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Event not found."})
		return
	}
	event.Status = d.catalog.Status(event)
	c.JSON(http.StatusOK, event)
}
