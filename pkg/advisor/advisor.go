// Package advisor is the view controller for the academic chat surface. It
// owns the conversation, folds streamed answers into it, and persists every
// mutation so a crash never loses a turn.
package advisor

import (
	"context"
	"sync"

	"github.com/seleste/nanosphere/pkg/logger"
	"github.com/seleste/nanosphere/pkg/prompt"
)

// ErrDisconnected is the text shown in place of an answer when the stream
// fails before producing anything.
const ErrDisconnected = "ERROR: Advisor connection lost. Please verify your neural link."

// Streamer is the gateway surface the advisor needs.
type Streamer interface {
	StreamText(ctx context.Context, req prompt.Request, emit func(chunk string)) error
}

// Advisor holds the conversation state for one user.
type Advisor struct {
	mu       sync.Mutex
	messages []Message
	stream   Streamer
	store    HistoryStore
}

// New loads any persisted conversation and returns the controller. A store
// read failure starts an empty conversation rather than blocking the surface.
func New(stream Streamer, store HistoryStore) *Advisor {
	a := &Advisor{stream: stream, store: store}
	if store != nil {
		msgs, err := store.Load()
		if err != nil {
			logger.WarnCF("advisor", "history load failed, starting fresh", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			a.messages = msgs
		}
	}
	return a
}

// Messages returns a snapshot of the conversation.
func (a *Advisor) Messages() []Message {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Message, len(a.messages))
	copy(out, a.messages)
	return out
}

func (a *Advisor) persist() {
	if a.store == nil {
		return
	}
	if err := a.store.Save(a.messages); err != nil {
		logger.WarnCF("advisor", "history save failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// Ask sends a question and streams the answer into the conversation.
// onSnapshot, when set, receives the model message text after every fold-in.
// On stream failure the placeholder is replaced with ErrDisconnected when
// nothing streamed; partial answers are kept and the error appended as a new
// message. The stream error is returned either way.
func (a *Advisor) Ask(ctx context.Context, question string, onSnapshot func(string)) error {
	a.mu.Lock()
	a.messages = append(a.messages,
		Message{Role: RoleUser, Text: question},
		Message{Role: RoleModel, Text: ""})
	a.persist()
	a.mu.Unlock()

	err := a.stream.StreamText(ctx, prompt.Advisor(question), func(chunk string) {
		a.mu.Lock()
		last := len(a.messages) - 1
		a.messages[last].Text += chunk
		text := a.messages[last].Text
		a.persist()
		a.mu.Unlock()
		if onSnapshot != nil {
			onSnapshot(text)
		}
	})
	if err != nil {
		a.mu.Lock()
		last := len(a.messages) - 1
		if a.messages[last].Role == RoleModel && a.messages[last].Text == "" {
			a.messages[last].Text = ErrDisconnected
		} else {
			a.messages = append(a.messages, Message{Role: RoleModel, Text: ErrDisconnected})
		}
		a.persist()
		a.mu.Unlock()
		if onSnapshot != nil {
			onSnapshot(ErrDisconnected)
		}
		return err
	}

	a.mu.Lock()
	a.persist()
	a.mu.Unlock()
	return nil
}

// Record appends a completed exchange without streaming. Grounded one-shot
// answers enter the conversation this way, citations included.
func (a *Advisor) Record(question string, answer Message) {
	a.mu.Lock()
	a.messages = append(a.messages, Message{Role: RoleUser, Text: question}, answer)
	a.persist()
	a.mu.Unlock()
}

// Clear drops the conversation and its stored copy.
func (a *Advisor) Clear() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.messages = nil
	if a.store == nil {
		return nil
	}
	return a.store.Clear()
}
