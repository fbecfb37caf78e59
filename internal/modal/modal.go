// Package modal implements the assistant's response dialog: a simulated
// loading phase, the explanation, and an optional follow-up answer.
package modal

import (
	"errors"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/ziadkadry99/learnhub/internal/assistant"
)

// State is the dialog's presentation state.
type State string

const (
	StateClosed          State = "closed"
	StateLoading         State = "loading"
	StateExplanation     State = "showing_explanation"
	StateLoadingFollowUp State = "loading_follow_up"
	StateFollowUp        State = "showing_follow_up"
)

// Loading reports whether the state shows the loading indicator.
func (s State) Loading() bool {
	return s == StateLoading || s == StateLoadingFollowUp
}

// ErrInvalidTransition is returned when an action is not allowed in the current state.
var ErrInvalidTransition = errors.New("invalid modal transition")

const (
	DefaultResponseDelay = 1000 * time.Millisecond
	DefaultFollowUpDelay = 800 * time.Millisecond
)

// Responder supplies explanations and follow-up answers.
type Responder interface {
	Respond(text string) assistant.Response
	FollowUp(label, text string) string
}

// View is a point-in-time copy of what the dialog displays.
type View struct {
	State          State    `json:"state"`
	SelectedText   string   `json:"selected_text"`
	Explanation    string   `json:"explanation,omitempty"`
	FollowUps      []string `json:"follow_ups,omitempty"`
	FollowUpAnswer string   `json:"follow_up_answer,omitempty"`
}

// Options tune the modal. Zero delays take the defaults.
type Options struct {
	ResponseDelay time.Duration
	FollowUpDelay time.Duration
	// OnChange runs after every state change, outside the modal's lock.
	OnChange func(View)
}

// Modal is safe for concurrent use. Each pending timer is tagged with a
// generation so a callback that raced with Close or Open is discarded.
type Modal struct {
	clock     clockwork.Clock
	responder Responder
	opts      Options

	mu       sync.Mutex
	state    State
	text     string
	response *assistant.Response
	answer   string
	timer    clockwork.Timer
	gen      uint64
}

// New creates a closed modal.
func New(clock clockwork.Clock, responder Responder, opts Options) *Modal {
	if opts.ResponseDelay <= 0 {
		opts.ResponseDelay = DefaultResponseDelay
	}
	if opts.FollowUpDelay <= 0 {
		opts.FollowUpDelay = DefaultFollowUpDelay
	}
	return &Modal{
		clock:     clock,
		responder: responder,
		opts:      opts,
		state:     StateClosed,
	}
}

// Open shows the dialog for text and starts the loading phase. Opening an
// already open dialog restarts it for the new text.
func (m *Modal) Open(text string) {
	m.mu.Lock()
	m.cancelLocked()
	m.text = text
	m.response = nil
	m.answer = ""
	m.state = StateLoading
	m.scheduleLocked(m.opts.ResponseDelay, m.resolveExplanation)
	v := m.viewLocked()
	m.mu.Unlock()

	m.notify(v)
}

func (m *Modal) resolveExplanation(gen uint64) {
	m.mu.Lock()
	if gen != m.gen || m.state != StateLoading {
		m.mu.Unlock()
		return
	}
	resp := m.responder.Respond(m.text)
	m.response = &resp
	m.state = StateExplanation
	m.timer = nil
	v := m.viewLocked()
	m.mu.Unlock()

	m.notify(v)
}

// ChooseFollowUp asks the follow-up labelled label. It is only valid while the
// explanation is shown.
func (m *Modal) ChooseFollowUp(label string) error {
	m.mu.Lock()
	if m.state != StateExplanation {
		m.mu.Unlock()
		return ErrInvalidTransition
	}
	m.cancelLocked()
	m.state = StateLoadingFollowUp
	m.scheduleLocked(m.opts.FollowUpDelay, func(gen uint64) { m.resolveFollowUp(gen, label) })
	v := m.viewLocked()
	m.mu.Unlock()

	m.notify(v)
	return nil
}

func (m *Modal) resolveFollowUp(gen uint64, label string) {
	m.mu.Lock()
	if gen != m.gen || m.state != StateLoadingFollowUp {
		m.mu.Unlock()
		return
	}
	m.answer = m.responder.FollowUp(label, m.text)
	m.state = StateFollowUp
	m.timer = nil
	v := m.viewLocked()
	m.mu.Unlock()

	m.notify(v)
}

// AskAnother drops the follow-up answer and returns to the explanation.
func (m *Modal) AskAnother() error {
	m.mu.Lock()
	if m.state != StateFollowUp {
		m.mu.Unlock()
		return ErrInvalidTransition
	}
	m.answer = ""
	m.state = StateExplanation
	v := m.viewLocked()
	m.mu.Unlock()

	m.notify(v)
	return nil
}

// Close moves to the terminal closed state from any state and releases the
// pending timer. Closing a closed modal is a no-op.
func (m *Modal) Close() {
	m.mu.Lock()
	if m.state == StateClosed && m.timer == nil {
		m.mu.Unlock()
		return
	}
	m.cancelLocked()
	m.state = StateClosed
	m.text = ""
	m.response = nil
	m.answer = ""
	v := m.viewLocked()
	m.mu.Unlock()

	m.notify(v)
}

// View returns what the dialog currently displays.
func (m *Modal) View() View {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.viewLocked()
}

// Pending reports whether a loading timer is scheduled.
func (m *Modal) Pending() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.timer != nil
}

func (m *Modal) scheduleLocked(d time.Duration, fn func(gen uint64)) {
	gen := m.gen
	m.timer = m.clock.AfterFunc(d, func() { fn(gen) })
}

func (m *Modal) cancelLocked() {
	m.gen++
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

func (m *Modal) viewLocked() View {
	v := View{State: m.state, SelectedText: m.text}
	if m.response != nil && m.state != StateLoading {
		v.Explanation = m.response.Explanation
		if m.state == StateExplanation {
			v.FollowUps = append([]string(nil), m.response.FollowUps...)
		}
	}
	if m.state == StateFollowUp {
		v.FollowUpAnswer = m.answer
	}
	return v
}

func (m *Modal) notify(v View) {
	if m.opts.OnChange != nil {
		m.opts.OnChange(v)
	}
}
