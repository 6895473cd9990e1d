// Package schedule provides the wall-clock implementation of the deferred
// write scheduler used by the sync policy.
package schedule

import (
	"time"

	"github.com/threec-labs/leads-cli/internal/core/ports/driven"
)

// Ensure TimerScheduler implements the interface.
var _ driven.WriteScheduler = (*TimerScheduler)(nil)

// TimerScheduler defers calls with time.AfterFunc.
type TimerScheduler struct{}

// New creates a wall-clock scheduler.
func New() *TimerScheduler {
	return &TimerScheduler{}
}

// Schedule runs fn after delay unless cancelled first. The returned cancel
// is safe to call more than once and after the timer fired.
func (*TimerScheduler) Schedule(delay time.Duration, fn func()) (cancel func()) {
	t := time.AfterFunc(delay, fn)
	return func() { t.Stop() }
}
