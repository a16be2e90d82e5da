package catalog

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"branchsite/models"
)

type SortKey string

const (
	SortDateDesc   SortKey = "date-desc"
	SortDateAsc    SortKey = "date-asc"
	SortNameAsc    SortKey = "name-asc"
	SortNameDesc   SortKey = "name-desc"
	SortAttendance SortKey = "attendance"
)

// DefaultSort is the gallery's initial ordering.
const DefaultSort = SortDateDesc

// ParseSortKey returns the key unchanged when it is known and "" otherwise,
// which SortEvents treats as "keep the current order".
func ParseSortKey(s string) SortKey {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case SortDateDesc, SortDateAsc, SortNameAsc, SortNameDesc, SortAttendance:
		return k
	}
	return ""
}

// SortEvents returns a sorted copy of records. The sort is stable, so ties
// keep their prior relative order and sorting twice changes nothing. An
// unknown key returns the records in their original order.
func SortEvents(records []models.Event, key SortKey) []models.Event {
	out := clone(records)

	var order func(a, b models.Event) int
	switch key {
	case SortDateDesc:
		order = func(a, b models.Event) int { return b.Date.Compare(a.Date) }
	case SortDateAsc:
		order = func(a, b models.Event) int { return a.Date.Compare(b.Date) }
	case SortNameAsc, SortNameDesc:
		// a Collator keeps scratch buffers, so one per call
		col := collate.New(language.English)
		order = func(a, b models.Event) int { return col.CompareString(a.Title, b.Title) }
		if key == SortNameDesc {
			order = func(a, b models.Event) int { return col.CompareString(b.Title, a.Title) }
		}
	case SortAttendance:
		order = func(a, b models.Event) int { return cmp.Compare(b.Attendance(), a.Attendance()) }
	default:
		return out
	}

	slices.SortStableFunc(out, order)
	return out
}
