package spatial

import "time"

// Timer counts ebiten ticks toward a wall-clock target.
type Timer struct {
	currentTicks int
	targetTicks  int
}

func NewTimer(target time.Duration) *Timer {
	return &Timer{
		currentTicks: 0,
		targetTicks:  int(target.Seconds() * tickRate),
	}
}

func (t *Timer) Update() {
	t.currentTicks++
}

func (t *Timer) IsReady() bool {
	return t.currentTicks >= t.targetTicks
}

func (t *Timer) Reset() {
	t.currentTicks = 0
}
