package metrics

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestRecordAppendsJSONL(t *testing.T) {
	dir := t.TempDir()
	tr := NewTracker(dir)

	tr.Record(SynthesisEvent{Feature: "lecture", Model: "m1", InputTokens: 120, OutputTokens: 900})
	tr.Record(SynthesisEvent{Feature: "slides", Model: "m1", InputTokens: 40, OutputTokens: 300})

	f, err := os.Open(filepath.Join(dir, "metrics", "synthesis.jsonl"))
	if err != nil {
		t.Fatalf("open metrics file: %v", err)
	}
	defer f.Close()

	var events []SynthesisEvent
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var e SynthesisEvent
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			t.Fatalf("bad line %q: %v", sc.Text(), err)
		}
		events = append(events, e)
	}

	if len(events) != 2 {
		t.Fatalf("events = %d", len(events))
	}
	if events[0].Feature != "lecture" || events[0].OutputTokens != 900 {
		t.Errorf("event 0 = %+v", events[0])
	}
	if events[0].Timestamp == "" {
		t.Error("timestamp not defaulted")
	}
}
