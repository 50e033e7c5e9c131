// Package timefmt renders metadata timestamps for table cells.
package timefmt

import (
	"time"

	"github.com/dustin/go-humanize"
)

// DateTimeLayout is the absolute format used for start times.
const DateTimeLayout = "2006-01-02 15:04:05"

// Age renders t relative to now, e.g. "3 days ago" or "2 hours from now".
func Age(t, now time.Time) string {
	return humanize.RelTime(t, now, "ago", "from now")
}

// DateTime renders t as an absolute date-time in loc. A nil loc means UTC.
func DateTime(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(DateTimeLayout)
}

// OptionalDateTime is DateTime for nullable timestamps; nil renders empty.
func OptionalDateTime(t *time.Time, loc *time.Location) string {
	if t == nil {
		return ""
	}
	return DateTime(*t, loc)
}
