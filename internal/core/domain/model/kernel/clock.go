package kernel

import "time"

// StoragePrecision is the resolution PostgreSQL keeps for timestamptz.
const StoragePrecision = time.Microsecond

// Now returns the current UTC time at storage precision, without a
// monotonic reading, so a timestamp survives a save/load round trip unchanged.
func Now() time.Time {
	return time.Now().UTC().Truncate(StoragePrecision)
}
