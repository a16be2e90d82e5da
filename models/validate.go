package models

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Normalize checks a freshly loaded catalog. Duplicate ids, missing dates
// and negative attendance are rejected; every offending record is reported
// in the returned error. A zero Year is filled from Date; a Year that
// disagrees with Date is kept but reported in the warnings.
func Normalize(events []Event) ([]Event, []string, error) {
	out := make([]Event, len(events))
	seen := make(map[int]struct{}, len(events))
	var warnings []string
	var errs *multierror.Error

	for i, e := range events {
		if _, dup := seen[e.ID]; dup {
			errs = multierror.Append(errs, fmt.Errorf("event %d: duplicate id", e.ID))
		}
		seen[e.ID] = struct{}{}

		if e.Date.IsZero() {
			errs = multierror.Append(errs, fmt.Errorf("event %d: missing date", e.ID))
		}
		if e.AttendanceCount != nil && *e.AttendanceCount < 0 {
			errs = multierror.Append(errs, fmt.Errorf("event %d: negative attendance count", e.ID))
		}

		switch {
		case e.Date.IsZero():
		case e.Year == 0:
			e.Year = e.Date.Year()
		case e.Year != e.Date.Year():
			warnings = append(warnings, fmt.Sprintf("event %d: year %d does not match date %s", e.ID, e.Year, e.Date))
		}
		out[i] = e
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, nil, err
	}
	return out, warnings, nil
}
