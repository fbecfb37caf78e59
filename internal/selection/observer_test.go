package selection

import (
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	waitFor = time.Second
	tick    = 5 * time.Millisecond
)

type recorder struct {
	mu      sync.Mutex
	shown   []Snapshot
	hidden  int
	cleared int
}

func (r *recorder) onShow(s Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shown = append(r.shown, s)
}

func (r *recorder) onHide() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hidden++
}

func (r *recorder) ClearSelection() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cleared++
}

func (r *recorder) shows() []Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Snapshot, len(r.shown))
	copy(out, r.shown)
	return out
}

func newObserver(t *testing.T) (*Observer, *clockwork.FakeClock, *recorder) {
	t.Helper()
	clock := clockwork.NewFakeClock()
	rec := &recorder{}
	o := New(clock, rec, Options{OnShow: rec.onShow, OnHide: rec.onHide})
	return o, clock, rec
}

var viewport = Viewport{Width: 1280, Height: 800}

func TestShortSelectionNeverSchedules(t *testing.T) {
	o, clock, rec := newObserver(t)

	for _, text := range []string{"", "   ", "abc", "  ab  ", "\tabc\n"} {
		o.Observe(Event{Text: text, Viewport: viewport})
		assert.False(t, o.Pending(), "text %q scheduled a timer", text)
		assert.Equal(t, StateIdle, o.Snapshot().State)
	}

	clock.Advance(time.Second)
	assert.Never(t, func() bool { return len(rec.shows()) > 0 }, 50*time.Millisecond, tick)
}

func TestQualifyingSelectionShowsAfterDebounce(t *testing.T) {
	o, clock, rec := newObserver(t)

	o.Observe(Event{Text: "  sorting algorithm  ", Rect: &Rect{Left: 100, Top: 50, Width: 200, Height: 20}, Viewport: viewport})
	require.True(t, o.Pending())
	snap := o.Snapshot()
	assert.Equal(t, StatePending, snap.State)
	assert.Equal(t, "sorting algorithm", snap.Text)
	assert.False(t, snap.Visible)
	assert.Equal(t, Point{X: 200, Y: 50}, snap.Anchor)

	clock.Advance(399 * time.Millisecond)
	assert.Never(t, func() bool { return len(rec.shows()) > 0 }, 30*time.Millisecond, tick)

	clock.Advance(time.Millisecond)
	require.Eventually(t, func() bool { return len(rec.shows()) == 1 }, waitFor, tick)

	shown := rec.shows()[0]
	assert.Equal(t, StateVisible, shown.State)
	assert.True(t, shown.Visible)
	assert.Equal(t, "sorting algorithm", shown.Text)
	assert.False(t, o.Pending())
}

func TestBurstOnlyShowsLastSelection(t *testing.T) {
	o, clock, rec := newObserver(t)

	o.Observe(Event{Text: "first selection", Viewport: viewport})
	clock.Advance(200 * time.Millisecond)
	o.Observe(Event{Text: "second selection", Viewport: viewport})

	// The first timer would have fired here.
	clock.Advance(250 * time.Millisecond)
	assert.Never(t, func() bool { return len(rec.shows()) > 0 }, 50*time.Millisecond, tick)

	clock.Advance(150 * time.Millisecond)
	require.Eventually(t, func() bool { return len(rec.shows()) == 1 }, waitFor, tick)

	clock.Advance(time.Second)
	assert.Never(t, func() bool { return len(rec.shows()) > 1 }, 50*time.Millisecond, tick)
	assert.Equal(t, "second selection", rec.shows()[0].Text)
}

func TestShortSelectionCancelsPending(t *testing.T) {
	o, clock, rec := newObserver(t)

	o.Observe(Event{Text: "market equilibrium", Viewport: viewport})
	require.True(t, o.Pending())

	o.Observe(Event{Text: "", Viewport: viewport})
	assert.False(t, o.Pending())
	assert.Equal(t, Snapshot{State: StateIdle}, o.Snapshot())

	clock.Advance(time.Second)
	assert.Never(t, func() bool { return len(rec.shows()) > 0 }, 50*time.Millisecond, tick)

	rec.mu.Lock()
	assert.Equal(t, 1, rec.hidden)
	rec.mu.Unlock()
}

func TestMissingRectKeepsPreviousAnchor(t *testing.T) {
	o, clock, rec := newObserver(t)

	o.Observe(Event{Text: "linked list", Rect: &Rect{Left: 10, Top: 20, Width: 40}, Viewport: viewport})
	o.Observe(Event{Text: "linked lists", Viewport: viewport})

	snap := o.Snapshot()
	assert.Equal(t, "linked lists", snap.Text)
	assert.Equal(t, Point{X: 30, Y: 20}, snap.Anchor)

	clock.Advance(DefaultDebounce)
	require.Eventually(t, func() bool { return len(rec.shows()) == 1 }, waitFor, tick)
}

func TestCloseClearsSelectionAndTimer(t *testing.T) {
	o, clock, rec := newObserver(t)

	o.Observe(Event{Text: "derivative", Viewport: viewport})
	o.Close()

	assert.False(t, o.Pending())
	assert.Equal(t, StateIdle, o.Snapshot().State)
	assert.Empty(t, o.Snapshot().Text)

	clock.Advance(time.Second)
	assert.Never(t, func() bool { return len(rec.shows()) > 0 }, 50*time.Millisecond, tick)

	rec.mu.Lock()
	assert.Equal(t, 1, rec.cleared)
	rec.mu.Unlock()
}

func TestStopDoesNotClearDocument(t *testing.T) {
	o, _, rec := newObserver(t)

	o.Observe(Event{Text: "integral", Viewport: viewport})
	o.Stop()

	assert.False(t, o.Pending())
	rec.mu.Lock()
	assert.Equal(t, 0, rec.cleared)
	rec.mu.Unlock()
}

func TestClampAnchor(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		vp   Viewport
		want Point
	}{
		{"inside", Rect{Left: 100, Top: 100, Width: 100}, Viewport{Width: 1000, Height: 800}, Point{X: 150, Y: 100}},
		{"near right edge", Rect{Left: 900, Top: 100, Width: 80}, Viewport{Width: 1000, Height: 800}, Point{X: 800, Y: 100}},
		{"near bottom edge", Rect{Left: 100, Top: 780, Width: 20}, Viewport{Width: 1000, Height: 800}, Point{X: 110, Y: 700}},
		{"tiny viewport", Rect{Left: 50, Top: 50, Width: 10}, Viewport{Width: 150, Height: 80}, Point{X: 0, Y: 0}},
		{"unknown viewport", Rect{Left: 5000, Top: 5000, Width: 0}, Viewport{}, Point{X: 5000, Y: 5000}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := clampAnchor(tt.rect, tt.vp, DefaultMarginRight, DefaultMarginBottom)
			assert.Equal(t, tt.want, got)
		})
	}
}
