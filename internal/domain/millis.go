package domain

import "time"

// Millis is a Unix timestamp in milliseconds, the wire format every
// record uses for time fields.
type Millis = int64

// NowMillis returns the current time as epoch milliseconds.
func NowMillis() Millis {
	return time.Now().UnixMilli()
}
