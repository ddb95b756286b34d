package utils

import (
	"fmt"
	"time"
)

// Booking id prefixes by booking type, matching what the site's front end
// has always generated.
const (
	BookingPrefixPackage = "BK"
	BookingPrefixTaxi    = "TX"
	BookingPrefixAIPlan  = "AI"
	BookingPrefixGeneral = "GE"
)

// NewBookingID builds a "<prefix>-<unix millis>" id.
func NewBookingID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixMilli())
}

// NewBookingIDDisambiguated is used after an id collision; the nanosecond
// suffix keeps retries within the same millisecond apart.
func NewBookingIDDisambiguated(prefix string) string {
	return fmt.Sprintf("%s-%d-%d", prefix, time.Now().UnixMilli(), time.Now().Nanosecond()%1000)
}
