package catalog

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"branchsite/models"
)

// 3 seed events fall after this date, 5 before it
var refNow = time.Date(2025, 9, 20, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return refNow }

func newSeedCatalog(opts ...Option) *Catalog {
	return New(models.SeedEvents(), append([]Option{WithClock(fixedClock)}, opts...)...)
}

func ids(records []models.Event) []int {
	out := make([]int, 0, len(records))
	for _, e := range records {
		out = append(out, e.ID)
	}
	return out
}

func attendance(n int) *int { return &n }

func ev(id int, date string, typ models.EventType) models.Event {
	d := models.MustDate(date)
	return models.Event{ID: id, Title: "event", Date: d, Year: d.Year(), Type: typ, Status: models.StatusCompleted}
}

// isSubsequence reports whether sub appears in full in the same relative order.
func isSubsequence(sub, full []int) bool {
	i := 0
	for _, v := range full {
		if i < len(sub) && sub[i] == v {
			i++
		}
	}
	return i == len(sub)
}

func TestListAll_CatalogOrder(t *testing.T) {
	c := newSeedCatalog()
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, ids(c.ListAll()))
	assert.Equal(t, 8, c.Len())
}

func TestFilterByStatus_Upcoming(t *testing.T) {
	c := newSeedCatalog()
	got := c.FilterByStatus(c.ListAll(), StatusUpcoming)
	assert.Equal(t, []int{2, 3, 6}, ids(got))

	past := c.FilterByStatus(c.ListAll(), StatusPast)
	assert.Equal(t, []int{1, 4, 5, 7, 8}, ids(past))
}

func TestFilterByStatus_TodayCountsAsUpcoming(t *testing.T) {
	c := New(models.SeedEvents(), WithClock(func() time.Time {
		return time.Date(2025, 9, 22, 23, 0, 0, 0, time.UTC)
	}))
	got := c.FilterByStatus(c.ListAll(), StatusUpcoming)
	assert.Equal(t, []int{2, 3, 6}, ids(got))

	e, ok := c.Get(2)
	require.True(t, ok)
	assert.Equal(t, models.StatusOngoing, c.Status(e))
}

func TestFilterByStatus_UsesLocation(t *testing.T) {
	// 2025-09-21 20:00 UTC is already 09-22 in Kolkata
	loc := time.FixedZone("IST", 5*3600+1800)
	c := New(models.SeedEvents(),
		WithClock(func() time.Time { return time.Date(2025, 9, 21, 20, 0, 0, 0, time.UTC) }),
		WithLocation(loc))
	e, _ := c.Get(2)
	assert.Equal(t, models.StatusOngoing, c.Status(e))
}

func TestFilterByStatus_StoredMode(t *testing.T) {
	c := newSeedCatalog(WithStatusMode(StatusStored))
	assert.Equal(t, []int{1, 2, 3, 6, 7}, ids(c.FilterByStatus(c.ListAll(), StatusUpcoming)))
	assert.Equal(t, []int{4, 5, 8}, ids(c.FilterByStatus(c.ListAll(), StatusPast)))
	assert.Equal(t, []int{4, 5, 8}, ids(c.FilterPast(c.ListAll())))
}

func TestFilterByStatus_UnknownIsAll(t *testing.T) {
	c := newSeedCatalog()
	assert.Equal(t, ids(c.ListAll()), ids(c.FilterByStatus(c.ListAll(), ParseStatusFilter("someday"))))
}

func TestFilterPast_Derived(t *testing.T) {
	c := newSeedCatalog()
	assert.Equal(t, []int{1, 4, 5, 7, 8}, ids(c.FilterPast(c.ListAll())))
}

func TestFilters_AllIsIdentity(t *testing.T) {
	c := newSeedCatalog()
	all := c.ListAll()
	assert.Equal(t, all, FilterByYear(all, AllYears))
	assert.Equal(t, all, FilterByYear(all, ParseYear("all")))
	assert.Equal(t, all, FilterByType(all, AllTypes))
	assert.Equal(t, all, FilterByType(all, ""))
	assert.Equal(t, all, SearchText(all, "   "))
}

func TestFilters_PreserveRelativeOrder(t *testing.T) {
	c := newSeedCatalog()
	all := c.ListAll()
	full := ids(all)

	cases := map[string][]models.Event{
		"upcoming": c.FilterByStatus(all, StatusUpcoming),
		"past":     c.FilterByStatus(all, StatusPast),
		"gallery":  c.FilterPast(all),
		"year":     FilterByYear(all, 2025),
		"workshop": FilterByType(all, models.TypeWorkshop),
		"seminar":  FilterByType(all, models.TypeSeminar),
		"text":     SearchText(all, "pace computer"),
	}
	for name, got := range cases {
		assert.Truef(t, isSubsequence(ids(got), full), "%s: %v is not a subsequence of %v", name, ids(got), full)
	}
}

func TestFilters_EmptyResultIsNotNil(t *testing.T) {
	c := newSeedCatalog()
	got := FilterByYear(c.ListAll(), 1999)
	require.NotNil(t, got)
	assert.Empty(t, got)

	got = SearchText(nil, "x")
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSearchText_React(t *testing.T) {
	c := newSeedCatalog()
	got := SearchText(c.ListAll(), "  REACT ")

	require.Contains(t, ids(got), 1)
	assert.Equal(t, "React Workshop for Beginners", got[0].Title)
	for _, e := range got {
		hay := strings.ToLower(e.Title + " " + e.Description + " " + e.Location)
		assert.Containsf(t, hay, "react", "event %d should not match", e.ID)
	}
	// the bootcamp and React Native workshop mention it in their descriptions
	assert.Equal(t, []int{1, 4, 6}, ids(got))
}

func TestSearchText_MissingFields(t *testing.T) {
	records := []models.Event{
		{ID: 1, Title: "Robotics Meetup"},
		{ID: 2, Title: "Quiz", Location: "Robotics Lab"},
	}
	assert.Equal(t, []int{1, 2}, ids(SearchText(records, "robotics")))
	assert.Equal(t, []int{}, ids(SearchText(records, "lab 9")))
}

func TestParseYear(t *testing.T) {
	assert.Equal(t, 2024, ParseYear(" 2024 "))
	assert.Equal(t, AllYears, ParseYear("all"))
	assert.Equal(t, AllYears, ParseYear(""))
	assert.Equal(t, AllYears, ParseYear("20x4"))
}

func TestGet(t *testing.T) {
	c := newSeedCatalog()
	e, ok := c.Get(5)
	require.True(t, ok)
	assert.Equal(t, "AI & Machine Learning Symposium", e.Title)

	_, ok = c.Get(99)
	assert.False(t, ok)
}

func TestNew_CopiesInput(t *testing.T) {
	src := models.SeedEvents()
	c := New(src, WithClock(fixedClock))

	src[3].Title = "changed"
	src[3].Images[0] = "changed.jpg"
	*src[3].AttendanceCount = 1

	e, _ := c.Get(4)
	assert.Equal(t, "Web Development Bootcamp", e.Title)
	assert.Equal(t, "/images/events/bootcamp-1.jpg", e.Images[0])
	assert.Equal(t, 120, e.Attendance())

	all := c.ListAll()
	all[0].Title = "changed"
	e, _ = c.Get(1)
	assert.Equal(t, "React Workshop for Beginners", e.Title)
}

func TestWithStatus_Derived(t *testing.T) {
	c := newSeedCatalog()
	got := c.WithStatus(c.ListAll())
	// stored as upcoming, already in the past on the reference date
	assert.Equal(t, models.StatusCompleted, got[6].Status)
	assert.Equal(t, models.StatusUpcoming, got[1].Status)
	// the catalog itself keeps the stored value
	e, _ := c.Get(7)
	assert.Equal(t, models.StatusUpcoming, e.Status)
}

func TestParseStatusMode(t *testing.T) {
	assert.Equal(t, StatusStored, ParseStatusMode(" Stored "))
	assert.Equal(t, StatusDerived, ParseStatusMode("derived"))
	assert.Equal(t, StatusDerived, ParseStatusMode(""))
	assert.Equal(t, "stored", StatusStored.String())
}
