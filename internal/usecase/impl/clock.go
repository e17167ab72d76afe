package impl

import "time"

// nowFunc is the clock used by the services; tests replace it per instance.
type nowFunc func() time.Time

func systemClock() time.Time {
	return time.Now().UTC()
}
