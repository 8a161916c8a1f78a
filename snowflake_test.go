package snowflake

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDLayout(t *testing.T) {
	word := compose(12345, 678)
	require.Equal(t, uint64(12345)<<SequenceBits|678, word)

	ms, seq := split(word)
	assert.Equal(t, uint64(12345), ms)
	assert.Equal(t, uint64(678), seq)

	id := ID(word)
	assert.Equal(t, word, id.Uint64())
	assert.Equal(t, uint32(678), id.Sequence())
	assert.Equal(t, time.UnixMilli(epochMillis+12345).UTC(), id.Time())
}

func TestIDReservedBits(t *testing.T) {
	// A full 32-bit timestamp with a full sequence still leaves the top
	// 10 bits clear.
	word := compose(timestampMask, MaxSequence)
	assert.Zero(t, word>>(TimestampBits+SequenceBits))
}

func TestIDString(t *testing.T) {
	assert.Equal(t, "0", ID(0).String())
	assert.Equal(t, "4194304", ID(compose(1, 0)).String())
}
