package manager

import (
	"testing"
	"time"

	"snake-arcade/game/types"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestSubmitRejectsReversal(t *testing.T) {
	im := NewInputManager(types.Right, DefaultInputGate)
	if im.Submit(types.Left, epoch) {
		t.Fatalf("reversal accepted")
	}
	if _, ok := im.Pending(); ok {
		t.Fatalf("reversal left a pending request")
	}
	if got := im.Consume(); got != types.Right {
		t.Fatalf("Consume = %v, want right", got)
	}
}

func TestSubmitAllowsReversalWithoutMomentum(t *testing.T) {
	im := NewInputManager(types.Right, DefaultInputGate)
	im.SetMomentum(false)
	if !im.Submit(types.Left, epoch) {
		t.Fatalf("single cell snake may reverse")
	}
	if got := im.Consume(); got != types.Left {
		t.Fatalf("Consume = %v, want left", got)
	}
}

func TestSubmitGate(t *testing.T) {
	im := NewInputManager(types.Right, DefaultInputGate)
	if !im.Submit(types.Up, epoch) {
		t.Fatalf("first request rejected")
	}
	if im.Submit(types.Down, epoch.Add(5*time.Millisecond)) {
		t.Fatalf("request inside the gate accepted")
	}
	if im.Submit(types.Down, epoch.Add(DefaultInputGate)) {
		t.Fatalf("request exactly at the gate accepted")
	}
	if got, _ := im.Pending(); got != types.Up {
		t.Fatalf("pending = %v, want up", got)
	}
	if !im.Submit(types.Down, epoch.Add(DefaultInputGate+time.Millisecond)) {
		t.Fatalf("request after the gate rejected")
	}
}

func TestLaterRequestOverwritesPending(t *testing.T) {
	im := NewInputManager(types.Right, DefaultInputGate)
	im.Submit(types.Up, epoch)
	im.Submit(types.Down, epoch.Add(20*time.Millisecond))
	if got := im.Consume(); got != types.Down {
		t.Fatalf("Consume = %v, want down", got)
	}
}

func TestConsumeRevalidatesAndClears(t *testing.T) {
	im := NewInputManager(types.Up, DefaultInputGate)
	// Queue Right while heading up, then force the committed direction to
	// Left as if it had changed since submission.
	im.Submit(types.Right, epoch)
	im.mu.Lock()
	im.committed = types.Left
	im.mu.Unlock()

	if got := im.Consume(); got != types.Left {
		t.Fatalf("Consume = %v, want left (reversal dropped)", got)
	}
	if _, ok := im.Pending(); ok {
		t.Fatalf("pending slot not cleared")
	}
	if got := im.Consume(); got != types.Left {
		t.Fatalf("second Consume = %v, want left", got)
	}
}

func TestSubmitIgnoresInvalidDirection(t *testing.T) {
	im := NewInputManager(types.Right, DefaultInputGate)
	if im.Submit(types.Direction(9), epoch) {
		t.Fatalf("invalid direction accepted")
	}
	if im.Submit(types.Direction(-1), epoch) {
		t.Fatalf("negative direction accepted")
	}
}

func TestResetDropsPendingAndGate(t *testing.T) {
	im := NewInputManager(types.Right, DefaultInputGate)
	im.Submit(types.Up, epoch)
	im.Reset(types.Right, true)
	if _, ok := im.Pending(); ok {
		t.Fatalf("pending survived reset")
	}
	if !im.Submit(types.Down, epoch.Add(time.Millisecond)) {
		t.Fatalf("gate survived reset")
	}
}

func TestReversalLawOverBurst(t *testing.T) {
	im := NewInputManager(types.Right, DefaultInputGate)
	now := epoch
	for i := 0; i < 50; i++ {
		now = now.Add(15 * time.Millisecond)
		im.Submit(im.Committed().Opposite(), now)
		before := im.Committed()
		if got := im.Consume(); got == before.Opposite() {
			t.Fatalf("tick %d reversed %v into %v", i, before, got)
		}
	}
}
