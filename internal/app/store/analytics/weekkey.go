// internal/app/store/analytics/weekkey.go
package analyticsstore

import "time"

// WeekKeyOf buckets a time into a (year, week) pair. Weeks are counted in
// fixed seven-day blocks from January 1st of the year, so week 1 covers
// days 1 through 7 and the final week of a year can be short. This is not
// ISO-8601 week numbering and never splits a bucket across years.
func WeekKeyOf(t time.Time) (year, week int) {
	t = t.UTC()
	return t.Year(), (t.YearDay()-1)/7 + 1
}
