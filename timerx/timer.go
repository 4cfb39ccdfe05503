package timerx

import "time"

// StopTimer stops the timer and drains its channel so a stale tick is never
// observed after the stop.
func StopTimer(timer *time.Timer) {
	if !timer.Stop() {
		select {
		case <-timer.C:
			// drained timer channel
		default:
			// timer channel was empty
		}
	}
}

// ResetTimer safely re-arms a timer for the given duration. The timer must not
// be concurrently received from.
func ResetTimer(timer *time.Timer, d time.Duration) {
	StopTimer(timer)
	timer.Reset(d)
}
