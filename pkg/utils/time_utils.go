package utils

import "time"

func NowUnixSeconds() int64 { return time.Now().Unix() }

func NowUnixMillis() int64 { return time.Now().UnixMilli() }

// FormatRFC3339 renders a time for API payloads; zero times render empty so
// callers can decide how to display "never".
func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

// FormatBookingDate matches the "2006-01-02" date strings the site has
// always stored on bookings and itinerary days.
func FormatBookingDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
