package config

import (
	"log"
	"os"
	"time"
)

var viewLocation *time.Location

// ViewLocation is the single viewing timezone used for both day-bucketing
// and display. Set VIEW_TIMEZONE to an IANA name; defaults to the host's
// local zone.
func ViewLocation() *time.Location {
	if viewLocation != nil {
		return viewLocation
	}
	if name := os.Getenv("VIEW_TIMEZONE"); name != "" {
		loc, err := time.LoadLocation(name)
		if err != nil {
			log.Printf("Invalid VIEW_TIMEZONE %q, falling back to local: %v", name, err)
		} else {
			viewLocation = loc
			return viewLocation
		}
	}
	viewLocation = time.Local
	return viewLocation
}
