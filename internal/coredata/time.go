// Package coredata converts Core Data timestamps as stored by Apple
// applications: seconds since 2001-01-01 00:00:00 UTC, not the Unix
// epoch.
package coredata

import "time"

// Epoch is the Core Data reference date.
var Epoch = time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)

// Time converts a Core Data timestamp to a time.Time. Sub-second
// precision is preserved.
func Time(seconds float64) time.Time {
	return Epoch.Add(time.Duration(seconds * float64(time.Second)))
}

// DateString formats a Core Data timestamp as YYYY-MM-DD. A zero or
// negative timestamp means the date was never recorded, so it falls
// back to today.
func DateString(seconds float64) string {
	if seconds <= 0 {
		return time.Now().UTC().Format(time.DateOnly)
	}
	return Time(seconds).Format(time.DateOnly)
}
