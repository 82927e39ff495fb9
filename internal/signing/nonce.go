package signing

import (
	"sync"

	"github.com/dropbox/godropbox/time2"
)

// NonceSource hands out millisecond timestamps that strictly increase, even
// when called more than once per millisecond or when the clock steps back.
type NonceSource struct {
	mu    sync.Mutex
	clock time2.Clock
	last  uint64
}

func NewNonceSource(clock time2.Clock) *NonceSource {
	if clock == nil {
		clock = time2.DefaultClock
	}
	return &NonceSource{clock: clock}
}

// Next returns the next nonce.
func (n *NonceSource) Next() uint64 {
	n.mu.Lock()
	defer n.mu.Unlock()

	now := uint64(n.clock.Now().UnixMilli())
	if now <= n.last {
		now = n.last + 1
	}
	n.last = now

	return now
}
