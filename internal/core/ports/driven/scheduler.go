package driven

import "time"

// WriteScheduler defers a single function call by a fixed delay.
// The returned cancel stops the call if it has not fired yet; cancelling an
// already-fired call is a no-op. The sync policy keeps at most one pending
// call alive at a time, cancelling the previous one on every reschedule.
//
// Implementations: schedule.TimerScheduler (wall clock) for production, a
// manual-fire fake in tests so debounce behaviour is testable without
// real waits.
type WriteScheduler interface {
	Schedule(delay time.Duration, fn func()) (cancel func())
}
