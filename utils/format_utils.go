package utils

import "time"

// FormatDate renders a date the way field reports are read on site: day
// first, two digits, slash separated.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// FormatDateTime renders a timestamp with the same day-first convention
func FormatDateTime(t time.Time) string {
	return t.Format("02/01/2006 15:04:05")
}
