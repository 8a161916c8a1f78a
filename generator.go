package snowflake

import (
	"runtime"
	"time"

	"go.uber.org/atomic"
)

// Generator issues IDs from a single packed state word. It is safe for
// concurrent use; one instance should be shared by all callers, since
// uniqueness holds only within an instance.
type Generator struct {
	// state is the last installed ID word. Once a word is installed it is
	// never replaced by a smaller one, which is what makes every returned
	// ID both unique and non-decreasing.
	state atomic.Uint64

	// nowMillis reports milliseconds since the epoch, truncated to the
	// timestamp field width. Swapped out by tests.
	nowMillis func() uint64
}

// New returns a generator with sentinel (all-zero) state.
func New() *Generator {
	return &Generator{nowMillis: wallMillis}
}

func wallMillis() uint64 {
	ms := time.Now().UnixMilli() - epochMillis
	if ms < 0 {
		ms = 0
	}
	return uint64(ms) & timestampMask
}

// Generate returns the next ID. It never fails and never sleeps: the state
// word is advanced with a compare-and-swap, and a lost race simply retries
// with fresh state and a fresh clock reading. When the sequence for the
// current millisecond is exhausted, or the clock reads behind the installed
// state (including after the 32-bit timestamp wraps), the call spins until
// the clock permits progress rather than ever returning a duplicate or
// out-of-order value.
func (g *Generator) Generate() ID {
	last := g.state.Load()
	for {
		lastMS, lastSeq := split(last)
		now := g.nowMillis()

		var next uint64
		switch {
		case now > lastMS:
			next = compose(now, 0)
		case now == lastMS && lastSeq < MaxSequence:
			next = compose(now, lastSeq+1)
		default:
			// Sequence exhausted, or the clock is behind the installed
			// state. Yield and retry with a fresh reading.
			runtime.Gosched()
			last = g.state.Load()
			continue
		}

		if g.state.CompareAndSwap(last, next) {
			return ID(next)
		}
		last = g.state.Load()
	}
}
