package ports

import "context"

// Contract for looking up the reference location of an IANA time zone.
type TimezoneLocator interface {
	// Return the decimal latitude and longitude recorded for zone.
	Locate(ctx context.Context, zone string) (lat float64, lon float64, err error)
}
