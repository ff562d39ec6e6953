package studio

import (
	"context"
	"errors"
	"testing"
)

type fakeEditor struct {
	calls []string
	fail  map[string]error
	out   []byte

	cancel     context.CancelFunc
	cancelOn   string
	inFlight   int
	maxInFlight int
}

func (f *fakeEditor) EditAsset(ctx context.Context, image []byte, mime, directive string) ([]byte, string, error) {
	f.inFlight++
	if f.inFlight > f.maxInFlight {
		f.maxInFlight = f.inFlight
	}
	defer func() { f.inFlight-- }()

	key := string(image)
	f.calls = append(f.calls, key)
	if f.cancelOn == key && f.cancel != nil {
		f.cancel()
		return nil, "", ctx.Err()
	}
	if err, ok := f.fail[key]; ok {
		return nil, "", err
	}
	return f.out, "image/png", nil
}

func TestRunBatchOrderAndIsolation(t *testing.T) {
	ed := &fakeEditor{
		out:  []byte("edited"),
		fail: map[string]error{"b": errors.New("synthesis refused")},
	}
	q := NewQueue(ed)
	q.Enqueue([]byte("a"), "image/png")
	q.Enqueue([]byte("b"), "image/jpeg")
	q.Enqueue([]byte("c"), "image/png")

	var transitions []string
	err := q.RunBatch(context.Background(), "sharpen", func(a Asset) {
		transitions = append(transitions, string(a.Status))
	})
	if err != nil {
		t.Fatalf("RunBatch: %v", err)
	}

	if got := len(ed.calls); got != 3 {
		t.Fatalf("editor calls = %d", got)
	}
	for i, want := range []string{"a", "b", "c"} {
		if ed.calls[i] != want {
			t.Errorf("call %d = %q, want %q", i, ed.calls[i], want)
		}
	}
	if ed.maxInFlight != 1 {
		t.Errorf("max in flight = %d, want 1", ed.maxInFlight)
	}

	assets := q.Assets()
	if assets[0].Status != StatusDone || string(assets[0].Edited) != "edited" {
		t.Errorf("asset 0 = %+v", assets[0])
	}
	if assets[1].Status != StatusError || assets[1].Err != "synthesis refused" {
		t.Errorf("asset 1 = %+v", assets[1])
	}
	if assets[1].Edited != nil {
		t.Error("failed asset carries edited data")
	}
	if assets[2].Status != StatusDone {
		t.Errorf("asset 2 = %+v", assets[2])
	}

	// Every asset goes processing first, then a terminal status.
	want := []string{"processing", "done", "processing", "error", "processing", "done"}
	if len(transitions) != len(want) {
		t.Fatalf("transitions = %v", transitions)
	}
	for i := range want {
		if transitions[i] != want[i] {
			t.Errorf("transition %d = %q, want %q", i, transitions[i], want[i])
		}
	}
}

func TestRunBatchSkipsDone(t *testing.T) {
	ed := &fakeEditor{out: []byte("edited")}
	q := NewQueue(ed)
	q.Enqueue([]byte("a"), "image/png")
	q.Enqueue([]byte("b"), "image/png")

	if err := q.RunBatch(context.Background(), "pass one", nil); err != nil {
		t.Fatalf("first batch: %v", err)
	}
	ed.calls = nil

	id := q.Assets()[0].ID
	q.Reset(id)
	if err := q.RunBatch(context.Background(), "pass two", nil); err != nil {
		t.Fatalf("second batch: %v", err)
	}
	if len(ed.calls) != 1 || ed.calls[0] != "a" {
		t.Errorf("second batch calls = %v, want only the reset asset", ed.calls)
	}
	if q.Assets()[0].Edited == nil {
		t.Error("reset asset not re-edited")
	}
}

func TestRunBatchCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ed := &fakeEditor{out: []byte("edited"), cancel: cancel, cancelOn: "b"}
	q := NewQueue(ed)
	q.Enqueue([]byte("a"), "image/png")
	q.Enqueue([]byte("b"), "image/png")
	q.Enqueue([]byte("c"), "image/png")

	err := q.RunBatch(ctx, "shift", nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("RunBatch error = %v", err)
	}

	assets := q.Assets()
	if assets[0].Status != StatusDone {
		t.Errorf("asset 0 = %+v", assets[0])
	}
	if assets[1].Status != StatusError || assets[1].Err != "cancelled" {
		t.Errorf("in-flight asset = %+v", assets[1])
	}
	if assets[2].Status != StatusIdle {
		t.Errorf("asset after cancellation touched: %+v", assets[2])
	}
	if len(ed.calls) != 2 {
		t.Errorf("editor called %d times after cancellation", len(ed.calls))
	}
}

type fakeCapture struct{ released int }

func (f *fakeCapture) Release() { f.released++ }

func TestClearReleasesCapture(t *testing.T) {
	q := NewQueue(&fakeEditor{out: []byte("x")})
	capd := &fakeCapture{}
	q.AttachCapture(capd)
	q.Enqueue([]byte("a"), "image/png")

	q.Clear()
	if len(q.Assets()) != 0 {
		t.Error("queue not emptied")
	}
	if capd.released != 1 {
		t.Errorf("capture released %d times", capd.released)
	}

	q.Clear()
	if capd.released != 1 {
		t.Error("capture released again on second Clear")
	}
}

func TestRunBatchRejectsConcurrent(t *testing.T) {
	q := NewQueue(&fakeEditor{out: []byte("x")})
	q.mu.Lock()
	q.running = true
	q.mu.Unlock()
	if err := q.RunBatch(context.Background(), "d", nil); !errors.Is(err, ErrBatchRunning) {
		t.Errorf("err = %v, want ErrBatchRunning", err)
	}
}
