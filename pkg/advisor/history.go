package advisor

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/seleste/nanosphere/pkg/gateway"
)

// Role tags who authored a message.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Message is one turn of the advisor conversation.
type Message struct {
	Role      Role             `json:"role"`
	Text      string           `json:"text"`
	Grounding []gateway.Source `json:"grounding,omitempty"`
}

// HistoryStore persists the conversation between sessions.
type HistoryStore interface {
	Load() ([]Message, error)
	Save(messages []Message) error
	Clear() error
}

// FileHistory keeps the conversation in a single JSON file under the
// workspace, written atomically via temp-file rename.
type FileHistory struct {
	mu       sync.Mutex
	filePath string
}

// NewFileHistory builds a store at workspace/advisor/history.json.
func NewFileHistory(workspace string) *FileHistory {
	dir := filepath.Join(workspace, "advisor")
	os.MkdirAll(dir, 0755)
	return &FileHistory{filePath: filepath.Join(dir, "history.json")}
}

// Load reads the stored conversation. A missing file is an empty history.
func (f *FileHistory) Load() ([]Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.filePath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	var messages []Message
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	return messages, nil
}

// Save writes the full conversation, replacing what was there.
func (f *FileHistory) Save(messages []Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := json.MarshalIndent(messages, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	tmp := f.filePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, f.filePath); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Clear removes the stored conversation.
func (f *FileHistory) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.Remove(f.filePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}
