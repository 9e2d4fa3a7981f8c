package gallery

import (
	"errors"
	"math"
	"time"
)

// Scroll lock tuning. The epsilon absorbs environments that settle a pixel
// or two short of the requested offset; the timeout bounds environments that
// never report completion at all.
const (
	SettleEpsilon = 2.0
	LockTimeout   = 1600 * time.Millisecond
)

// ErrScrollLocked is returned when a forced scroll is requested while a
// different one is still in flight.
var ErrScrollLocked = errors.New("gallery: forced scroll already in flight")

// ScrollLock serializes programmatic scroll animations. While locked, only
// the in-flight target is accepted; a request for any other offset is
// rejected outright rather than queued, so the running animation always
// completes uninterrupted.
//
// The lock remembers which item it is scrolling for. The hover controller
// ignores enter events for other items while the lock is held, but keeps
// tracking leave events for the holder itself.
type ScrollLock struct {
	locked    bool
	targetY   float64
	startTime time.Time
	holder    ItemKey
	onSettled func()
}

// Locked reports whether a forced scroll is in flight.
func (l *ScrollLock) Locked() bool { return l.locked }

// Target returns the offset the in-flight scroll is heading for. Only
// meaningful while Locked.
func (l *ScrollLock) Target() float64 { return l.targetY }

// Holder returns the item the in-flight scroll serves. Only meaningful
// while Locked.
func (l *ScrollLock) Holder() ItemKey { return l.holder }

// HeldFor reports whether the lock is engaged on behalf of key.
func (l *ScrollLock) HeldFor(key ItemKey) bool {
	return l.locked && l.holder == key
}

// ForceScrollTo acquires the lock and starts an animated scroll to y via
// start. If the lock is already held for the same target the call is a
// no-op; for any other target it returns ErrScrollLocked. onSettled fires
// exactly once, from the Tick that releases the lock.
func (l *ScrollLock) ForceScrollTo(y float64, holder ItemKey, now time.Time, start func(target float64), onSettled func()) error {
	if l.locked {
		if y == l.targetY {
			return nil
		}
		return ErrScrollLocked
	}
	l.locked = true
	l.targetY = y
	l.startTime = now
	l.holder = holder
	l.onSettled = onSettled
	if start != nil {
		start(y)
	}
	return nil
}

// Tick checks the in-flight scroll against the current offset. The lock
// releases when the offset is within SettleEpsilon of the target, or when
// LockTimeout has elapsed since acquisition, whichever comes first. Returns
// true when this call released the lock.
func (l *ScrollLock) Tick(now time.Time, currentY float64) bool {
	if !l.locked {
		return false
	}
	settled := math.Abs(currentY-l.targetY) <= SettleEpsilon
	timedOut := now.Sub(l.startTime) >= LockTimeout
	if !settled && !timedOut {
		return false
	}
	l.locked = false
	cb := l.onSettled
	l.onSettled = nil
	if cb != nil {
		cb()
	}
	return true
}
