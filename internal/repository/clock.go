package repository

import "time"

// now is the creation timestamp source. MongoDB stores dates at millisecond
// precision, so the value is truncated to match what a later read returns.
var now = func() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
