// Package stream accumulates model output fragments and publishes throttled
// snapshots so renderers are not hammered once per token.
package stream

import (
	"sync"
	"time"
)

// Mode controls how Push folds a fragment into the accumulated text.
type Mode int

const (
	// ModeAppend concatenates fragments, for token streams.
	ModeAppend Mode = iota
	// ModeReplace keeps only the latest fragment, for whole-document passes.
	ModeReplace
)

// State is the accumulator lifecycle. Terminal states never transition back.
type State int

const (
	StateIdle State = iota
	StateStreaming
	StateComplete
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateStreaming:
		return "streaming"
	case StateComplete:
		return "complete"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FailurePolicy decides what Fail leaves in the accumulated text.
type FailurePolicy int

const (
	// ReplaceIfEmpty swaps in the failure text only when nothing streamed.
	ReplaceIfEmpty FailurePolicy = iota
	// AppendMarker always appends the failure text to whatever streamed.
	AppendMarker
)

// Accumulator gathers fragments between Begin and Complete/Fail, invoking
// onUpdate with the full snapshot at most once per interval plus a final
// flush on either terminal transition. Safe for concurrent use.
type Accumulator struct {
	mu       sync.Mutex
	mode     Mode
	policy   FailurePolicy
	failText string
	text     string
	state    State
	dirty    bool
	seq      uint64
	onUpdate func(snapshot string)
	ticker   *time.Ticker
	done     chan struct{}
	interval time.Duration

	deliverMu     sync.Mutex
	lastDelivered uint64
}

// New builds an idle accumulator. onUpdate may be nil when the caller only
// polls Snapshot.
func New(mode Mode, policy FailurePolicy, failText string, interval time.Duration, onUpdate func(string)) *Accumulator {
	return &Accumulator{
		mode:     mode,
		policy:   policy,
		failText: failText,
		interval: interval,
		onUpdate: onUpdate,
	}
}

// Begin moves idle→streaming and starts the snapshot ticker. Beginning twice
// or from a terminal state is a no-op.
func (a *Accumulator) Begin() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state != StateIdle {
		return
	}
	a.state = StateStreaming
	a.text = ""
	a.dirty = false
	if a.onUpdate != nil && a.interval > 0 {
		a.ticker = time.NewTicker(a.interval)
		a.done = make(chan struct{})
		go a.loop(a.ticker, a.done)
	}
}

func (a *Accumulator) loop(ticker *time.Ticker, done chan struct{}) {
	for {
		select {
		case <-ticker.C:
			a.publish()
		case <-done:
			return
		}
	}
}

func (a *Accumulator) publish() {
	a.mu.Lock()
	if !a.dirty {
		a.mu.Unlock()
		return
	}
	text := a.text
	seq := a.seq
	a.dirty = false
	a.mu.Unlock()
	a.deliver(text, seq)
}

// deliver hands a snapshot to onUpdate unless a newer one already went out.
// The snapshot is taken outside the state lock, so a ticker publish can race
// the terminal flush; the sequence check keeps delivery monotonic.
func (a *Accumulator) deliver(text string, seq uint64) {
	if a.onUpdate == nil {
		return
	}
	a.deliverMu.Lock()
	defer a.deliverMu.Unlock()
	if seq <= a.lastDelivered {
		return
	}
	a.lastDelivered = seq
	a.onUpdate(text)
}

// Push folds a fragment in. Ignored unless streaming.
func (a *Accumulator) Push(fragment string) {
	a.mu.Lock()
	if a.state != StateStreaming {
		a.mu.Unlock()
		return
	}
	switch a.mode {
	case ModeReplace:
		a.text = fragment
	default:
		a.text += fragment
	}
	a.dirty = true
	a.seq++
	a.mu.Unlock()
}

func (a *Accumulator) stopTicker() {
	if a.ticker != nil {
		a.ticker.Stop()
		close(a.done)
		a.ticker = nil
	}
}

// Complete moves streaming→complete and flushes the final snapshot.
func (a *Accumulator) Complete() {
	a.mu.Lock()
	if a.state != StateStreaming {
		a.mu.Unlock()
		return
	}
	a.state = StateComplete
	a.stopTicker()
	a.seq++
	text := a.text
	seq := a.seq
	a.dirty = false
	a.mu.Unlock()
	a.deliver(text, seq)
}

// Fail moves streaming→failed, applies the failure policy, and flushes.
func (a *Accumulator) Fail(err error) {
	a.mu.Lock()
	if a.state != StateStreaming {
		a.mu.Unlock()
		return
	}
	a.state = StateFailed
	a.stopTicker()
	switch a.policy {
	case AppendMarker:
		a.text += a.failText
	default:
		if a.text == "" {
			a.text = a.failText
		}
	}
	a.seq++
	text := a.text
	seq := a.seq
	a.dirty = false
	a.mu.Unlock()
	a.deliver(text, seq)
}

// Snapshot returns the current accumulated text.
func (a *Accumulator) Snapshot() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.text
}

// State returns the current lifecycle state.
func (a *Accumulator) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}
