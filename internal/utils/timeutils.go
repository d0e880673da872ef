package utils

import "time"

// UTCTimestamp returns the current time as an ISO 8601 UTC string with
// millisecond precision and a trailing Z, e.g. "2025-10-06T12:34:56.789Z".
func UTCTimestamp() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
