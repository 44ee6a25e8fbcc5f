package engine

// Timer is a one-shot callback scheduled on a Timers queue.
type Timer struct {
	Remaining float32 // seconds until the callback fires
	callback  func()
	stopped   bool
	fired     bool
}

// Stop cancels the timer. Safe to call more than once or after it fired.
func (t *Timer) Stop() {
	if t == nil {
		return
	}
	t.stopped = true
}

// Pending reports whether the timer will still fire.
func (t *Timer) Pending() bool {
	return t != nil && !t.stopped && !t.fired
}

// Timers runs one-shot callbacks off the game tick, so pausing the game
// pauses them too.
type Timers struct {
	active []*Timer
}

// After schedules fn to run once seconds of game time have passed.
func (ts *Timers) After(seconds float32, fn func()) *Timer {
	t := &Timer{Remaining: seconds, callback: fn}
	ts.active = append(ts.active, t)
	return t
}

// Update advances all timers and fires the ones that ran out.
// Callbacks may schedule new timers; those start counting on the next Update.
func (ts *Timers) Update(deltaTime float32) {
	due := ts.active[:0:0]
	kept := ts.active[:0]
	for _, t := range ts.active {
		if t.stopped {
			continue
		}
		t.Remaining -= deltaTime
		if t.Remaining <= 0 {
			due = append(due, t)
			continue
		}
		kept = append(kept, t)
	}
	// Clear the tail so dropped timers can be collected.
	for i := len(kept); i < len(ts.active); i++ {
		ts.active[i] = nil
	}
	ts.active = kept

	for _, t := range due {
		if t.stopped {
			continue
		}
		t.fired = true
		if t.callback != nil {
			t.callback()
		}
	}
}

// Clear stops every pending timer.
func (ts *Timers) Clear() {
	for _, t := range ts.active {
		t.stopped = true
	}
	ts.active = nil
}

// Len returns the number of timers still counting down.
func (ts *Timers) Len() int {
	n := 0
	for _, t := range ts.active {
		if !t.stopped {
			n++
		}
	}
	return n
}
