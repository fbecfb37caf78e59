package overlay

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/learnhub/internal/assistant"
	"github.com/ziadkadry99/learnhub/internal/diagnostics"
	"github.com/ziadkadry99/learnhub/internal/modal"
	"github.com/ziadkadry99/learnhub/internal/selection"
)

const (
	waitFor = time.Second
	tick    = 5 * time.Millisecond
)

type fakeSink struct {
	mu   sync.Mutex
	msgs []any
}

func (f *fakeSink) Send(msg any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.msgs = append(f.msgs, msg)
	return nil
}

func (f *fakeSink) count(typ string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, m := range f.msgs {
		switch v := m.(type) {
		case StateMessage:
			if v.Type == typ {
				n++
			}
		case Notice:
			if v.Type == typ {
				n++
			}
		}
	}
	return n
}

func (f *fakeSink) len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.msgs)
}

type fakeRecorder struct {
	mu     sync.Mutex
	events []diagnostics.Kind
}

func (r *fakeRecorder) Record(_ context.Context, kind diagnostics.Kind, _, _ string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, kind)
	return nil
}

func (r *fakeRecorder) kinds() []diagnostics.Kind {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]diagnostics.Kind(nil), r.events...)
}

func newSession(t *testing.T) (*Session, *clockwork.FakeClock, *fakeSink, *fakeRecorder) {
	t.Helper()
	clock := clockwork.NewFakeClock()
	sink := &fakeSink{}
	rec := &fakeRecorder{}
	s := NewSession(clock, sink, assistant.Canned{}, Config{}, rec, nil)
	return s, clock, sink, rec
}

func selectText(text string) Inbound {
	return Inbound{
		Type:     TypeSelection,
		Text:     text,
		Rect:     &selection.Rect{Left: 100, Top: 200, Width: 80, Height: 16},
		Viewport: selection.Viewport{Width: 1280, Height: 800},
	}
}

func waitModal(t *testing.T, s *Session, want modal.State) {
	t.Helper()
	require.Eventually(t, func() bool { return s.State().Modal.State == want }, waitFor, tick,
		"modal never reached %s", want)
}

func TestSelectionOpensModalAndExplains(t *testing.T) {
	s, clock, _, rec := newSession(t)
	s.Start()

	require.NoError(t, s.Handle(selectText("Explain this sorting algorithm")))
	st := s.State()
	assert.False(t, st.Popup.Visible)
	assert.Equal(t, modal.StateClosed, st.Modal.State)

	clock.Advance(selection.DefaultDebounce)
	waitModal(t, s, modal.StateLoading)

	st = s.State()
	assert.True(t, st.Popup.Visible)
	assert.Equal(t, "Explain this sorting algorithm", st.Popup.Text)
	assert.Equal(t, selection.Point{X: 140, Y: 200}, st.Popup.Anchor)
	assert.Equal(t, "Explain this sorting algorithm", st.Modal.SelectedText)

	clock.Advance(modal.DefaultResponseDelay)
	waitModal(t, s, modal.StateExplanation)
	assert.Len(t, s.State().Modal.FollowUps, 3)
	assert.Equal(t, []diagnostics.Kind{diagnostics.KindAssistantExplain}, rec.kinds())
}

func TestFollowUpAndAskAnother(t *testing.T) {
	s, clock, _, rec := newSession(t)

	require.NoError(t, s.Handle(selectText("derivative of x squared")))
	clock.Advance(selection.DefaultDebounce)
	waitModal(t, s, modal.StateLoading)
	clock.Advance(modal.DefaultResponseDelay)
	waitModal(t, s, modal.StateExplanation)

	require.NoError(t, s.Handle(Inbound{Type: TypeFollowUp, Label: "Show formula"}))
	clock.Advance(modal.DefaultFollowUpDelay)
	waitModal(t, s, modal.StateFollowUp)
	assert.Contains(t, s.State().Modal.FollowUpAnswer, "derivative of x squared")

	require.NoError(t, s.Handle(Inbound{Type: TypeAskAnother}))
	assert.Equal(t, modal.StateExplanation, s.State().Modal.State)
	assert.Equal(t, []diagnostics.Kind{diagnostics.KindAssistantExplain, diagnostics.KindAssistantFollowUp}, rec.kinds())
}

func TestHandleRejectsBadMessages(t *testing.T) {
	s, _, _, _ := newSession(t)

	assert.ErrorIs(t, s.Handle(Inbound{Type: "dance"}), ErrUnknownType)
	assert.Error(t, s.Handle(Inbound{Type: TypeFollowUp}))
	assert.ErrorIs(t, s.Handle(Inbound{Type: TypeFollowUp, Label: "Give examples"}), modal.ErrInvalidTransition)
	assert.ErrorIs(t, s.Handle(Inbound{Type: TypeAskAnother}), modal.ErrInvalidTransition)
}

func TestCloseReleasesTimersAndClearsSelection(t *testing.T) {
	s, clock, sink, _ := newSession(t)

	require.NoError(t, s.Handle(selectText("market supply curve")))
	clock.Advance(selection.DefaultDebounce)
	waitModal(t, s, modal.StateLoading)
	require.True(t, s.Pending())

	require.NoError(t, s.Handle(Inbound{Type: TypeClose}))
	assert.False(t, s.Pending())
	assert.Equal(t, 1, sink.count(TypeClearSelection))

	st := s.State()
	assert.Equal(t, modal.StateClosed, st.Modal.State)
	assert.False(t, st.Popup.Visible)

	clock.Advance(5 * time.Second)
	assert.Never(t, func() bool { return s.State().Modal.State != modal.StateClosed }, 50*time.Millisecond, tick)
}

func TestDroppedSelectionClosesModalWithoutClearing(t *testing.T) {
	s, clock, sink, _ := newSession(t)

	require.NoError(t, s.Handle(selectText("linked list nodes")))
	clock.Advance(selection.DefaultDebounce)
	waitModal(t, s, modal.StateLoading)

	require.NoError(t, s.Handle(Inbound{Type: TypeSelection, Text: ""}))
	assert.Equal(t, modal.StateClosed, s.State().Modal.State)
	assert.False(t, s.Pending())
	assert.Equal(t, 0, sink.count(TypeClearSelection))
}

func TestDisposeStopsEverything(t *testing.T) {
	s, clock, sink, _ := newSession(t)

	require.NoError(t, s.Handle(selectText("integral calculus")))
	clock.Advance(selection.DefaultDebounce)
	waitModal(t, s, modal.StateLoading)

	s.Dispose()
	s.Dispose()
	assert.False(t, s.Pending())

	sent := sink.len()
	clock.Advance(5 * time.Second)
	assert.Never(t, func() bool { return sink.len() != sent }, 50*time.Millisecond, tick)
	assert.Equal(t, 0, sink.count(TypeClearSelection))
}
