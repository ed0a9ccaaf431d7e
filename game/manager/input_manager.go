package manager

import (
	"sync"
	"time"

	"snake-arcade/game/types"
)

// DefaultInputGate suppresses key-repeat bursts of the same intent.
const DefaultInputGate = 10 * time.Millisecond

// InputManager turns raw direction requests into at most one committed
// direction change per tick. It holds a single pending slot: later requests
// overwrite earlier ones until the next Consume.
type InputManager struct {
	mu           sync.Mutex
	committed    types.Direction
	pending      types.Direction
	hasPending   bool
	lastAccepted time.Time
	gate         time.Duration
	// momentum is set while the snake is longer than one cell; only then
	// is a reversal illegal.
	momentum bool
}

func NewInputManager(initial types.Direction, gate time.Duration) *InputManager {
	return &InputManager{
		committed: initial,
		gate:      gate,
		momentum:  true,
	}
}

// Reset commits dir, drops any pending request and forgets the gate.
func (im *InputManager) Reset(dir types.Direction, momentum bool) {
	im.mu.Lock()
	defer im.mu.Unlock()

	im.committed = dir
	im.hasPending = false
	im.lastAccepted = time.Time{}
	im.momentum = momentum
}

func (im *InputManager) SetMomentum(momentum bool) {
	im.mu.Lock()
	im.momentum = momentum
	im.mu.Unlock()
}

// Submit queues requested unless it is invalid, reverses the committed
// direction, or arrives within the gate of the last accepted request.
func (im *InputManager) Submit(requested types.Direction, now time.Time) bool {
	im.mu.Lock()
	defer im.mu.Unlock()

	if !requested.Valid() {
		return false
	}
	if im.momentum && requested == im.committed.Opposite() {
		return false
	}
	if !im.lastAccepted.IsZero() && now.Sub(im.lastAccepted) <= im.gate {
		return false
	}
	im.pending = requested
	im.hasPending = true
	im.lastAccepted = now
	return true
}

// Consume resolves the direction for this tick. The pending request is
// validated again against the current committed direction, then dropped.
func (im *InputManager) Consume() types.Direction {
	im.mu.Lock()
	defer im.mu.Unlock()

	if im.hasPending {
		if !im.momentum || im.pending != im.committed.Opposite() {
			im.committed = im.pending
		}
		im.hasPending = false
	}
	return im.committed
}

func (im *InputManager) Committed() types.Direction {
	im.mu.Lock()
	defer im.mu.Unlock()
	return im.committed
}

// Pending returns the queued request, if any.
func (im *InputManager) Pending() (types.Direction, bool) {
	im.mu.Lock()
	defer im.mu.Unlock()
	return im.pending, im.hasPending
}
