package stream

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestAppendLifecycle(t *testing.T) {
	a := New(ModeAppend, ReplaceIfEmpty, "FAILED", 0, nil)
	if a.State() != StateIdle {
		t.Fatalf("initial state = %v", a.State())
	}

	a.Push("ignored before begin")
	if a.Snapshot() != "" {
		t.Error("push before Begin mutated text")
	}

	a.Begin()
	a.Push("alpha ")
	a.Push("beta")
	if got := a.Snapshot(); got != "alpha beta" {
		t.Errorf("snapshot = %q", got)
	}

	a.Complete()
	if a.State() != StateComplete {
		t.Errorf("state = %v", a.State())
	}

	a.Push("after complete")
	if got := a.Snapshot(); got != "alpha beta" {
		t.Errorf("terminal state mutated: %q", got)
	}
}

func TestReplaceMode(t *testing.T) {
	a := New(ModeReplace, ReplaceIfEmpty, "FAILED", 0, nil)
	a.Begin()
	a.Push("draft one")
	a.Push("draft two")
	if got := a.Snapshot(); got != "draft two" {
		t.Errorf("snapshot = %q, want latest fragment only", got)
	}
}

func TestFailReplacesOnlyWhenEmpty(t *testing.T) {
	a := New(ModeAppend, ReplaceIfEmpty, "ERROR: connection lost", 0, nil)
	a.Begin()
	a.Fail(errors.New("boom"))
	if got := a.Snapshot(); got != "ERROR: connection lost" {
		t.Errorf("empty stream: snapshot = %q", got)
	}
	if a.State() != StateFailed {
		t.Errorf("state = %v", a.State())
	}

	b := New(ModeAppend, ReplaceIfEmpty, "ERROR: connection lost", 0, nil)
	b.Begin()
	b.Push("partial content")
	b.Fail(errors.New("boom"))
	if got := b.Snapshot(); got != "partial content" {
		t.Errorf("partial stream overwritten: %q", got)
	}
}

func TestFailAppendMarker(t *testing.T) {
	a := New(ModeAppend, AppendMarker, "\n[interrupted]", 0, nil)
	a.Begin()
	a.Push("lecture body")
	a.Fail(errors.New("boom"))
	if got := a.Snapshot(); got != "lecture body\n[interrupted]" {
		t.Errorf("snapshot = %q", got)
	}
}

func TestThrottledUpdatesAndFinalFlush(t *testing.T) {
	var mu sync.Mutex
	var updates []string
	a := New(ModeAppend, ReplaceIfEmpty, "FAILED", 10*time.Millisecond, func(s string) {
		mu.Lock()
		updates = append(updates, s)
		mu.Unlock()
	})

	a.Begin()
	a.Push("one ")
	time.Sleep(30 * time.Millisecond)
	a.Push("two")
	a.Complete()

	mu.Lock()
	defer mu.Unlock()
	if len(updates) == 0 {
		t.Fatal("no updates published")
	}
	if last := updates[len(updates)-1]; last != "one two" {
		t.Errorf("final snapshot = %q", last)
	}
	for i := 1; i < len(updates); i++ {
		if len(updates[i]) < len(updates[i-1]) {
			t.Errorf("snapshots regressed: %q after %q", updates[i], updates[i-1])
		}
	}
}

func TestStaleSnapshotNotDeliveredAfterFinal(t *testing.T) {
	var mu sync.Mutex
	var updates []string
	a := New(ModeAppend, ReplaceIfEmpty, "FAILED", 0, func(s string) {
		mu.Lock()
		updates = append(updates, s)
		mu.Unlock()
	})

	a.Begin()
	a.Push("one ")
	a.Push("two")
	a.Complete()

	// A ticker snapshot captured before the terminal flush must be dropped,
	// not delivered late on top of the final text.
	a.deliver("one ", 1)

	mu.Lock()
	defer mu.Unlock()
	if last := updates[len(updates)-1]; last != "one two" {
		t.Errorf("final snapshot = %q, stale delivery overtook the flush", last)
	}
	if len(updates) != 1 {
		t.Errorf("expected 1 delivery, got %d: %v", len(updates), updates)
	}
}

func TestCompleteWithoutBeginIsNoop(t *testing.T) {
	called := false
	a := New(ModeAppend, ReplaceIfEmpty, "FAILED", 0, func(string) { called = true })
	a.Complete()
	a.Fail(errors.New("boom"))
	if a.State() != StateIdle {
		t.Errorf("state = %v", a.State())
	}
	if called {
		t.Error("callback fired from idle state")
	}
}
