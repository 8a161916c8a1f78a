// Package snowflake generates unique, roughly time-ordered 64-bit IDs
// without locks. An ID packs a 32-bit millisecond timestamp above a 22-bit
// per-millisecond sequence; a single atomically-updated word holds the
// generator state, so one in-process generator can be shared by any number
// of goroutines.
package snowflake

import (
	"strconv"
	"time"
)

const (
	// SequenceBits is the width of the per-millisecond sequence field.
	SequenceBits = 22
	// TimestampBits is the width of the millisecond timestamp field.
	TimestampBits = 32

	// MaxSequence is the largest sequence value within one millisecond.
	MaxSequence = 1<<SequenceBits - 1

	sequenceMask  = 1<<SequenceBits - 1
	timestampMask = 1<<TimestampBits - 1

	// epochMillis is Jan 01 2026 00:00:00 UTC in Unix milliseconds.
	// The timestamp field counts milliseconds from this instant and wraps
	// after 2^32 ms; a wrapped reading presents as clock regression.
	epochMillis = 1_767_225_600_000
)

// ID is a generated identifier. IDs from one generator compare in
// generation order as plain unsigned integers.
type ID uint64

// compose packs a millisecond count and sequence into an ID word.
func compose(ms, seq uint64) uint64 {
	return ms<<SequenceBits | seq
}

// split is the inverse of compose.
func split(word uint64) (ms, seq uint64) {
	return word >> SequenceBits, word & sequenceMask
}

// Uint64 returns the raw 64-bit value.
func (id ID) Uint64() uint64 {
	return uint64(id)
}

// Time returns the wall-clock instant encoded in the timestamp field, in UTC.
func (id ID) Time() time.Time {
	ms, _ := split(uint64(id))
	return time.UnixMilli(epochMillis + int64(ms)).UTC()
}

// Sequence returns the low 22 bits, the position of this ID within its
// millisecond.
func (id ID) Sequence() uint32 {
	_, seq := split(uint64(id))
	return uint32(seq)
}

// String renders the ID in decimal. The wire format remains the 64-bit
// integer itself.
func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}
