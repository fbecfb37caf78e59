// Package overlay runs the selection helper for one browser tab: selection
// events arrive over a websocket, and popup and modal state is pushed back.
package overlay

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/ziadkadry99/learnhub/internal/assistant"
	"github.com/ziadkadry99/learnhub/internal/diagnostics"
	"github.com/ziadkadry99/learnhub/internal/logger"
	"github.com/ziadkadry99/learnhub/internal/modal"
	"github.com/ziadkadry99/learnhub/internal/selection"
)

// Message types exchanged with the browser.
const (
	TypeSelection      = "selection"
	TypeFollowUp       = "follow_up"
	TypeAskAnother     = "ask_another"
	TypeClose          = "close"
	TypeState          = "state"
	TypeClearSelection = "clear_selection"
	TypeError          = "error"
)

// Sink delivers messages to the browser.
type Sink interface {
	Send(msg any) error
}

// Config holds the timing and layout knobs of a session. Zero values take the
// selection and modal package defaults.
type Config struct {
	Debounce      time.Duration
	MinChars      int
	MarginRight   float64
	MarginBottom  float64
	ResponseDelay time.Duration
	FollowUpDelay time.Duration
}

// Inbound is a message from the browser.
type Inbound struct {
	Type     string             `json:"type"`
	Text     string             `json:"text,omitempty"`
	Rect     *selection.Rect    `json:"rect,omitempty"`
	Viewport selection.Viewport `json:"viewport"`
	Label    string             `json:"label,omitempty"`
}

// Popup is the popup part of a state message.
type Popup struct {
	Visible bool            `json:"visible"`
	Text    string          `json:"text"`
	Anchor  selection.Point `json:"anchor"`
}

// StateMessage carries the full overlay state.
type StateMessage struct {
	Type      string     `json:"type"`
	SessionID string     `json:"session_id"`
	Popup     Popup      `json:"popup"`
	Modal     modal.View `json:"modal"`
}

// Notice is a clear_selection or error message.
type Notice struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id,omitempty"`
	Content   string `json:"content,omitempty"`
}

// ErrUnknownType is returned by Handle for an unrecognised message type.
var ErrUnknownType = errors.New("unknown message type")

// Session owns one observer and one modal. State messages are built from the
// current snapshots at send time, so a late notification never sends stale state.
type Session struct {
	id       string
	sink     Sink
	log      *logger.Logger
	recorder diagnostics.Recorder

	observer *selection.Observer
	modal    *modal.Modal

	sendMu   sync.Mutex
	disposed atomic.Bool
}

// NewSession creates a session with a fresh id. recorder and log may be nil.
func NewSession(clock clockwork.Clock, sink Sink, responder modal.Responder, cfg Config, recorder diagnostics.Recorder, log *logger.Logger) *Session {
	if recorder == nil {
		recorder = diagnostics.Nop{}
	}
	if log == nil {
		log = logger.Nop()
	}
	s := &Session{
		id:       uuid.New().String(),
		sink:     sink,
		recorder: recorder,
	}
	s.log = log.With("session_id", s.id)

	s.modal = modal.New(clock, recordingResponder{inner: responder, session: s}, modal.Options{
		ResponseDelay: cfg.ResponseDelay,
		FollowUpDelay: cfg.FollowUpDelay,
		OnChange:      func(modal.View) { s.pushState() },
	})
	s.observer = selection.New(clock, document{s}, selection.Options{
		Debounce:     cfg.Debounce,
		MinChars:     cfg.MinChars,
		MarginRight:  cfg.MarginRight,
		MarginBottom: cfg.MarginBottom,
		OnShow:       func(snap selection.Snapshot) { s.modal.Open(snap.Text) },
		OnHide:       s.hide,
	})
	return s
}

// ID returns the session id.
func (s *Session) ID() string {
	return s.id
}

// Start sends the initial state.
func (s *Session) Start() {
	s.pushState()
}

// Handle applies one inbound message.
func (s *Session) Handle(msg Inbound) error {
	switch msg.Type {
	case TypeSelection:
		s.observer.Observe(selection.Event{Text: msg.Text, Rect: msg.Rect, Viewport: msg.Viewport})
		s.pushState()
	case TypeFollowUp:
		if msg.Label == "" {
			return errors.New("label is required")
		}
		return s.modal.ChooseFollowUp(msg.Label)
	case TypeAskAnother:
		return s.modal.AskAnother()
	case TypeClose:
		s.Close()
	default:
		return ErrUnknownType
	}
	return nil
}

// Close is the visitor dismissing the helper: every timer is released and the
// page's selection is cleared.
func (s *Session) Close() {
	s.modal.Close()
	s.observer.Close()
	s.pushState()
}

// Dispose releases every timer when the connection goes away. Nothing more is sent.
func (s *Session) Dispose() {
	if s.disposed.Swap(true) {
		return
	}
	s.modal.Close()
	s.observer.Stop()
}

// Pending reports whether any timer is still scheduled.
func (s *Session) Pending() bool {
	return s.observer.Pending() || s.modal.Pending()
}

// State returns the message that would be sent now.
func (s *Session) State() StateMessage {
	snap := s.observer.Snapshot()
	return StateMessage{
		Type:      TypeState,
		SessionID: s.id,
		Popup:     Popup{Visible: snap.Visible, Text: snap.Text, Anchor: snap.Anchor},
		Modal:     s.modal.View(),
	}
}

// SendError reports a problem with an inbound message to the browser.
func (s *Session) SendError(content string) {
	s.send(Notice{Type: TypeError, SessionID: s.id, Content: content})
}

// hide runs when the selection is dropped. The page selection is already gone,
// so only the modal closes.
func (s *Session) hide() {
	s.modal.Close()
	s.pushState()
}

func (s *Session) pushState() {
	s.send(s.State())
}

func (s *Session) send(msg any) {
	if s.disposed.Load() {
		return
	}
	s.sendMu.Lock()
	defer s.sendMu.Unlock()
	if err := s.sink.Send(msg); err != nil {
		s.log.Debug("overlay send failed", "error", err)
	}
}

// document clears the browser's selection through the session's sink.
type document struct{ s *Session }

func (d document) ClearSelection() {
	d.s.send(Notice{Type: TypeClearSelection, SessionID: d.s.id})
}

// recordingResponder records each assistant request as a diagnostic event.
type recordingResponder struct {
	inner   modal.Responder
	session *Session
}

func (r recordingResponder) Respond(text string) assistant.Response {
	resp := r.inner.Respond(text)
	r.session.record(diagnostics.KindAssistantExplain, resp.Rule, text)
	return resp
}

func (r recordingResponder) FollowUp(label, text string) string {
	answer := r.inner.FollowUp(label, text)
	r.session.record(diagnostics.KindAssistantFollowUp, label, text)
	return answer
}

func (s *Session) record(kind diagnostics.Kind, subject, detail string) {
	if err := s.recorder.Record(context.Background(), kind, subject, detail); err != nil {
		s.log.Warn("recording diagnostic event", "kind", kind, "error", err)
	}
}
