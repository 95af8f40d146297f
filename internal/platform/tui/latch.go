package tui

import (
	"time"

	"github.com/vovakirdan/sdl-shooter/internal/core"
)

// Terminals report key presses and auto-repeats but never releases.
// KeyLatch turns that stream into press/release edges: the first press of a
// key is a key-down, further presses are repeats, and the key counts as
// released once no repeat has arrived for a while.
const (
	// DefaultFirstHold covers the usual auto-repeat start delay.
	DefaultFirstHold = 600 * time.Millisecond
	// DefaultRepeatHold covers the gap between two auto-repeats.
	DefaultRepeatHold = 150 * time.Millisecond
)

// KeyLatch tracks which held actions are currently down.
type KeyLatch struct {
	firstHold  time.Duration
	repeatHold time.Duration
	deadlines  map[core.Action]time.Time
}

// NewKeyLatch creates a latch with the given hold times.
func NewKeyLatch(firstHold, repeatHold time.Duration) *KeyLatch {
	return &KeyLatch{
		firstHold:  firstHold,
		repeatHold: repeatHold,
		deadlines:  make(map[core.Action]time.Time),
	}
}

// Press records a key press at now and returns the event to deliver.
func (l *KeyLatch) Press(a core.Action, now time.Time) core.KeyEvent {
	if _, held := l.deadlines[a]; held {
		l.deadlines[a] = now.Add(l.repeatHold)
		return core.KeyEvent{Action: a, Down: true, Repeat: true}
	}
	l.deadlines[a] = now.Add(l.firstHold)
	return core.KeyEvent{Action: a, Down: true}
}

// Expire appends a release for every held action whose deadline has passed.
func (l *KeyLatch) Expire(now time.Time, dst []core.KeyEvent) []core.KeyEvent {
	for _, a := range heldActions {
		deadline, held := l.deadlines[a]
		if !held || now.Before(deadline) {
			continue
		}
		delete(l.deadlines, a)
		dst = append(dst, core.KeyEvent{Action: a, Down: false})
	}
	return dst
}

// Held reports whether a is currently latched down.
func (l *KeyLatch) Held(a core.Action) bool {
	_, held := l.deadlines[a]
	return held
}

// Reset forgets every held key without producing releases.
func (l *KeyLatch) Reset() {
	clear(l.deadlines)
}
