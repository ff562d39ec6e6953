package lounge

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"testing"
	"time"
)

type fakeConn struct {
	mu       sync.Mutex
	written  []interface{}
	incoming chan []byte
	closed   bool
}

func newFakeConn() *fakeConn {
	return &fakeConn{incoming: make(chan []byte, 16)}
}

func (f *fakeConn) WriteJSON(v interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return errors.New("write on closed conn")
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var echo interface{}
	json.Unmarshal(data, &echo)
	f.written = append(f.written, echo)
	return nil
}

func (f *fakeConn) ReadMessage() (int, []byte, error) {
	msg, ok := <-f.incoming
	if !ok {
		return 0, nil, io.EOF
	}
	return 1, msg, nil
}

func (f *fakeConn) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.closed {
		f.closed = true
		close(f.incoming)
	}
	return nil
}

func (f *fakeConn) serve(raw string) { f.incoming <- []byte(raw) }

func collect(t *testing.T, s *Session, n int) []Event {
	t.Helper()
	var events []Event
	timeout := time.After(2 * time.Second)
	for len(events) < n {
		select {
		case ev, ok := <-s.Events():
			if !ok {
				return events
			}
			events = append(events, ev)
		case <-timeout:
			t.Fatalf("timed out after %d events: %v", len(events), events)
		}
	}
	return events
}

func TestStartSendsSetup(t *testing.T) {
	conn := newFakeConn()
	s := NewSession(conn, "live-model", "Zephyr")
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer s.Close()

	conn.mu.Lock()
	defer conn.mu.Unlock()
	if len(conn.written) != 1 {
		t.Fatalf("written = %d messages", len(conn.written))
	}
	setup := conn.written[0].(map[string]interface{})["setup"].(map[string]interface{})
	if setup["model"] != "models/live-model" {
		t.Errorf("model = %v", setup["model"])
	}
	gen := setup["generationConfig"].(map[string]interface{})
	mods := gen["responseModalities"].([]interface{})
	if len(mods) != 1 || mods[0] != "AUDIO" {
		t.Errorf("modalities = %v", mods)
	}
}

func TestSendAudioFramesPCM(t *testing.T) {
	conn := newFakeConn()
	s := NewSession(conn, "m", "Zephyr")
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer s.Close()

	pcm := []byte{1, 2, 3, 4}
	if err := s.SendAudio(pcm); err != nil {
		t.Fatalf("SendAudio: %v", err)
	}

	conn.mu.Lock()
	defer conn.mu.Unlock()
	frame := conn.written[1].(map[string]interface{})["realtimeInput"].(map[string]interface{})
	chunks := frame["mediaChunks"].([]interface{})
	chunk := chunks[0].(map[string]interface{})
	if chunk["mimeType"] != InputMIME {
		t.Errorf("mime = %v", chunk["mimeType"])
	}
	if chunk["data"] != base64.StdEncoding.EncodeToString(pcm) {
		t.Errorf("data = %v", chunk["data"])
	}
}

func TestReceiveAudioAndInterruption(t *testing.T) {
	conn := newFakeConn()
	s := NewSession(conn, "m", "Zephyr")
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	audio := base64.StdEncoding.EncodeToString([]byte("pcm-data"))
	conn.serve(`{"serverContent":{"modelTurn":{"parts":[{"inlineData":{"mimeType":"audio/pcm;rate=24000","data":"` + audio + `"}}]}}}`)
	conn.serve(`{"serverContent":{"interrupted":true}}`)
	conn.serve(`{"serverContent":{"turnComplete":true}}`)

	events := collect(t, s, 3)
	if events[0].Kind != EventAudio || string(events[0].Audio) != "pcm-data" {
		t.Errorf("event 0 = %+v", events[0])
	}
	if events[1].Kind != EventInterrupted {
		t.Errorf("event 1 = %+v", events[1])
	}
	if events[2].Kind != EventTurnComplete {
		t.Errorf("event 2 = %+v", events[2])
	}

	// interruption flushed the playback queue
	if got := s.DrainScheduled(); len(got) != 0 {
		t.Errorf("scheduled after interruption = %d chunks", len(got))
	}
	s.Close()
}

func TestDrainScheduled(t *testing.T) {
	conn := newFakeConn()
	s := NewSession(conn, "m", "Zephyr")
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	audio := base64.StdEncoding.EncodeToString([]byte("abc"))
	conn.serve(`{"serverContent":{"modelTurn":{"parts":[{"inlineData":{"mimeType":"audio/pcm;rate=24000","data":"` + audio + `"}}]}}}`)
	collect(t, s, 1)

	chunks := s.DrainScheduled()
	if len(chunks) != 1 || string(chunks[0]) != "abc" {
		t.Errorf("drained = %v", chunks)
	}
	if again := s.DrainScheduled(); len(again) != 0 {
		t.Error("drain not idempotent")
	}
	s.Close()
}

type fakeCapture struct {
	mu       sync.Mutex
	released int
}

func (f *fakeCapture) Release() {
	f.mu.Lock()
	f.released++
	f.mu.Unlock()
}

func TestCloseIdempotentReleasesCapture(t *testing.T) {
	conn := newFakeConn()
	s := NewSession(conn, "m", "Zephyr")
	capd := &fakeCapture{}
	s.AttachCapture(capd)
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	s.Close()
	s.Close()

	// loop unwinds and closes the event channel
	for range s.Events() {
	}

	capd.mu.Lock()
	defer capd.mu.Unlock()
	if capd.released != 1 {
		t.Errorf("capture released %d times", capd.released)
	}
}

func TestServerCloseEmitsClosedEvent(t *testing.T) {
	conn := newFakeConn()
	s := NewSession(conn, "m", "Zephyr")
	capd := &fakeCapture{}
	s.AttachCapture(capd)
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	conn.Close()
	events := collect(t, s, 1)
	if len(events) != 1 || events[0].Kind != EventClosed {
		t.Errorf("events = %+v", events)
	}
	// wait for the loop to unwind before checking the release
	for range s.Events() {
	}

	capd.mu.Lock()
	defer capd.mu.Unlock()
	if capd.released != 1 {
		t.Errorf("capture released %d times on abnormal close", capd.released)
	}
}
