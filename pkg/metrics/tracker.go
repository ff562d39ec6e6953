package metrics

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// SynthesisEvent records usage for a single model call.
type SynthesisEvent struct {
	Timestamp    string `json:"ts"`
	Feature      string `json:"feature"`
	Model        string `json:"model"`
	InputTokens  int    `json:"in"`
	OutputTokens int    `json:"out"`
}

// Tracker appends synthesis events to a JSONL file. Recording failures are
// silent; metrics must never break a feature.
type Tracker struct {
	filePath string
	mu       sync.Mutex
}

// NewTracker creates a tracker that writes to workspace/metrics/synthesis.jsonl.
func NewTracker(workspace string) *Tracker {
	dir := filepath.Join(workspace, "metrics")
	os.MkdirAll(dir, 0755)
	return &Tracker{
		filePath: filepath.Join(dir, "synthesis.jsonl"),
	}
}

// Record appends one event.
func (t *Tracker) Record(event SynthesisEvent) {
	if event.Timestamp == "" {
		event.Timestamp = time.Now().Format(time.RFC3339)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	f, err := os.OpenFile(t.filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	defer f.Close()

	f.Write(data)
	f.Write([]byte("\n"))
}
