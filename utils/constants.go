// File: utils/constants.go
package utils

// DraftKeyPrefix is the prefix used for pending-booking draft keys in the
// session cache. One draft per client session, last write wins.
const DraftKeyPrefix = "draft:"

// AvailabilityKeyPrefix is the prefix for cached day-availability snapshots.
const AvailabilityKeyPrefix = "avail:"
