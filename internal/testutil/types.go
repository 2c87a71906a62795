package testutil

import "time"

// WriteRecord is one call observed by the RecorderModule writer.
type WriteRecord struct {
	Emitted string
	IsDebug bool
	At      time.Time
}
