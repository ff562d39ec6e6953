// Package lounge drives a realtime voice session against the Gemini Live
// websocket endpoint. Audio goes up as 16 kHz PCM frames and comes back as
// 24 kHz PCM, scheduled into a playback queue that interruptions flush.
package lounge

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/seleste/nanosphere/pkg/logger"
)

const (
	liveEndpoint = "wss://generativelanguage.googleapis.com/ws/google.ai.generativelanguage.v1beta.GenerativeService.BidiGenerateContent"

	// InputMIME is the realtime microphone frame format.
	InputMIME = "audio/pcm;rate=16000"
	// OutputSampleRate is the PCM rate of model audio.
	OutputSampleRate = 24000

	systemInstruction = "You are the Seleste Live Academic Guide. Engage in helpful, high-fidelity technical conversation."
)

// Conn is the websocket surface the session needs. *websocket.Conn
// satisfies it.
type Conn interface {
	WriteJSON(v interface{}) error
	ReadMessage() (messageType int, p []byte, err error)
	Close() error
}

// Capture is an acquired audio input released when the session ends.
type Capture interface {
	Release()
}

// EventKind tags a decoded server event.
type EventKind int

const (
	EventAudio EventKind = iota
	EventInterrupted
	EventTurnComplete
	EventClosed
)

// Event is one decoded server message. Audio is set for EventAudio; Err is
// set on EventClosed when the session ended abnormally.
type Event struct {
	Kind  EventKind
	Audio []byte
	Err   error
}

// wire types for the bidirectional protocol

type setupMessage struct {
	Setup setupPayload `json:"setup"`
}

type setupPayload struct {
	Model             string            `json:"model"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
	SystemInstruction *wireContent      `json:"systemInstruction,omitempty"`
}

type generationConfig struct {
	ResponseModalities []string      `json:"responseModalities,omitempty"`
	SpeechConfig       *speechConfig `json:"speechConfig,omitempty"`
}

type speechConfig struct {
	VoiceConfig voiceConfig `json:"voiceConfig"`
}

type voiceConfig struct {
	PrebuiltVoiceConfig prebuiltVoice `json:"prebuiltVoiceConfig"`
}

type prebuiltVoice struct {
	VoiceName string `json:"voiceName"`
}

type wireContent struct {
	Parts []wirePart `json:"parts"`
}

type wirePart struct {
	Text       string    `json:"text,omitempty"`
	InlineData *wireBlob `json:"inlineData,omitempty"`
}

type wireBlob struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"`
}

type realtimeMessage struct {
	RealtimeInput realtimeInput `json:"realtimeInput"`
}

type realtimeInput struct {
	MediaChunks []wireBlob `json:"mediaChunks"`
}

type serverMessage struct {
	SetupComplete *struct{}      `json:"setupComplete,omitempty"`
	ServerContent *serverContent `json:"serverContent,omitempty"`
}

type serverContent struct {
	ModelTurn    *wireContent `json:"modelTurn,omitempty"`
	Interrupted  bool         `json:"interrupted,omitempty"`
	TurnComplete bool         `json:"turnComplete,omitempty"`
}

// Session is one live conversation. Create with NewSession, then Start.
type Session struct {
	conn    Conn
	model   string
	voice   string
	capture Capture

	events chan Event

	mu        sync.Mutex
	scheduled [][]byte

	closeOnce  sync.Once
	eventsOnce sync.Once
}

// Dial connects to the live endpoint with the API key and wraps the
// connection in a session.
func Dial(ctx context.Context, apiKey, model, voice string) (*Session, error) {
	u := liveEndpoint + "?key=" + url.QueryEscape(apiKey)
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, u, nil)
	if err != nil {
		return nil, fmt.Errorf("dial live endpoint: %w", err)
	}
	return NewSession(conn, model, voice), nil
}

// NewSession wraps an established connection. Used directly by tests.
func NewSession(conn Conn, model, voice string) *Session {
	return &Session{
		conn:   conn,
		model:  model,
		voice:  voice,
		events: make(chan Event, 64),
	}
}

// AttachCapture registers the audio input to release on Close.
func (s *Session) AttachCapture(c Capture) {
	s.mu.Lock()
	s.capture = c
	s.mu.Unlock()
}

// Start sends the setup message and launches the receive loop. Events arrive
// on Events until the connection closes.
func (s *Session) Start() error {
	setup := setupMessage{Setup: setupPayload{
		Model: "models/" + s.model,
		GenerationConfig: &generationConfig{
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig: &speechConfig{
				VoiceConfig: voiceConfig{PrebuiltVoiceConfig: prebuiltVoice{VoiceName: s.voice}},
			},
		},
		SystemInstruction: &wireContent{Parts: []wirePart{{Text: systemInstruction}}},
	}}
	if err := s.conn.WriteJSON(setup); err != nil {
		s.Close()
		s.eventsOnce.Do(func() { close(s.events) })
		return fmt.Errorf("send setup: %w", err)
	}
	logger.InfoCF("lounge", "live session started", map[string]interface{}{
		"model": s.model,
		"voice": s.voice,
	})
	go s.receiveLoop()
	return nil
}

// Events is the stream of decoded server events. Closed when the session
// ends; the final event is EventClosed.
func (s *Session) Events() <-chan Event {
	return s.events
}

// SendAudio frames one microphone buffer as realtime input.
func (s *Session) SendAudio(pcm []byte) error {
	msg := realtimeMessage{RealtimeInput: realtimeInput{
		MediaChunks: []wireBlob{{
			MIMEType: InputMIME,
			Data:     base64.StdEncoding.EncodeToString(pcm),
		}},
	}}
	if err := s.conn.WriteJSON(msg); err != nil {
		return fmt.Errorf("send audio frame: %w", err)
	}
	return nil
}

func (s *Session) receiveLoop() {
	defer func() {
		s.Close()
		s.eventsOnce.Do(func() { close(s.events) })
	}()
	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			// Buffered send; drop the terminal event if nobody is draining.
			select {
			case s.events <- Event{Kind: EventClosed, Err: err}:
			default:
			}
			return
		}

		var msg serverMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			logger.WarnCF("lounge", "undecodable server message", map[string]interface{}{
				"error": err.Error(),
			})
			continue
		}
		if msg.ServerContent == nil {
			continue
		}

		sc := msg.ServerContent
		if sc.ModelTurn != nil {
			for _, part := range sc.ModelTurn.Parts {
				if part.InlineData == nil {
					continue
				}
				audio, err := base64.StdEncoding.DecodeString(part.InlineData.Data)
				if err != nil || len(audio) == 0 {
					continue
				}
				s.mu.Lock()
				s.scheduled = append(s.scheduled, audio)
				s.mu.Unlock()
				s.events <- Event{Kind: EventAudio, Audio: audio}
			}
		}
		if sc.Interrupted {
			s.mu.Lock()
			s.scheduled = nil
			s.mu.Unlock()
			s.events <- Event{Kind: EventInterrupted}
		}
		if sc.TurnComplete {
			s.events <- Event{Kind: EventTurnComplete}
		}
	}
}

// DrainScheduled hands the playback queue to the audio sink and empties it.
// After an interruption it returns nothing.
func (s *Session) DrainScheduled() [][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.scheduled
	s.scheduled = nil
	return out
}

// Close shuts the connection and releases the capture. Safe to call from any
// goroutine any number of times; the receive loop closes the event channel
// once it unwinds.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.conn.Close()
		s.mu.Lock()
		c := s.capture
		s.capture = nil
		s.scheduled = nil
		s.mu.Unlock()
		if c != nil {
			c.Release()
		}
	})
}
