package engine

import "testing"

func TestTimerFiresOnceAfterDelay(t *testing.T) {
	var ts Timers
	fired := 0
	timer := ts.After(0.5, func() { fired++ })

	ts.Update(0.25)
	if fired != 0 || !timer.Pending() {
		t.Fatal("timer fired early")
	}
	ts.Update(0.25)
	if fired != 1 {
		t.Fatalf("expected timer to fire, fired = %d", fired)
	}
	ts.Update(1)
	if fired != 1 {
		t.Error("one-shot timer fired twice")
	}
	if timer.Pending() || ts.Len() != 0 {
		t.Error("fired timer should no longer be pending")
	}
}

func TestTimerStopCancels(t *testing.T) {
	var ts Timers
	fired := false
	timer := ts.After(0.1, func() { fired = true })

	timer.Stop()
	timer.Stop()
	ts.Update(1)

	if fired {
		t.Error("stopped timer should not fire")
	}
	var nilTimer *Timer
	nilTimer.Stop() // Should not panic
}

func TestTimerCallbackCanSchedule(t *testing.T) {
	var ts Timers
	order := []string{}
	ts.After(0.1, func() {
		order = append(order, "first")
		ts.After(0.1, func() { order = append(order, "second") })
	})

	ts.Update(0.1)
	if len(order) != 1 {
		t.Fatalf("expected only the first timer, got %v", order)
	}
	ts.Update(0.1)
	if len(order) != 2 || order[1] != "second" {
		t.Errorf("chained timer did not fire: %v", order)
	}
}

func TestTimersClear(t *testing.T) {
	var ts Timers
	fired := false
	timer := ts.After(0.1, func() { fired = true })
	ts.Clear()
	ts.Update(1)

	if fired || timer.Pending() {
		t.Error("Clear should stop pending timers")
	}
}
