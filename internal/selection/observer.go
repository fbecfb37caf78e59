// Package selection turns raw text-selection events into a debounced
// "show the popup" signal with a viewport-clamped anchor point.
package selection

import (
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/jonboulle/clockwork"
)

// State is the observer's position in its lifecycle.
type State string

const (
	StateIdle    State = "idle"
	StatePending State = "pending_display"
	StateVisible State = "visible"
)

// Rect is the bounding box of the first selection range.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Viewport is the size of the host window.
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Point is an anchor coordinate for the popup.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Event is a single selection-change notification. Rect is nil when the
// selection has no range to measure.
type Event struct {
	Text     string   `json:"text"`
	Rect     *Rect    `json:"rect"`
	Viewport Viewport `json:"viewport"`
}

// Snapshot is the observable selection state.
type Snapshot struct {
	State   State  `json:"state"`
	Text    string `json:"text"`
	Visible bool   `json:"visible"`
	Anchor  Point  `json:"anchor"`
}

// Document is the host page whose text selection the observer can clear.
type Document interface {
	ClearSelection()
}

// Options tune the observer. Zero values take the defaults.
type Options struct {
	Debounce     time.Duration
	MinChars     int
	MarginRight  float64
	MarginBottom float64
	// OnShow runs when the debounce window elapses for the latest selection.
	OnShow func(Snapshot)
	// OnHide runs when a visible or pending selection is dropped.
	OnHide func()
}

const (
	DefaultDebounce     = 400 * time.Millisecond
	DefaultMinChars     = 3
	DefaultMarginRight  = 200
	DefaultMarginBottom = 100
)

func (o *Options) setDefaults() {
	if o.Debounce <= 0 {
		o.Debounce = DefaultDebounce
	}
	if o.MinChars <= 0 {
		o.MinChars = DefaultMinChars
	}
	if o.MarginRight <= 0 {
		o.MarginRight = DefaultMarginRight
	}
	if o.MarginBottom <= 0 {
		o.MarginBottom = DefaultMarginBottom
	}
}

// Observer debounces selection events. At most one display timer is pending
// at any time; scheduling a new one cancels the previous.
type Observer struct {
	clock clockwork.Clock
	doc   Document
	opts  Options

	mu      sync.Mutex
	state   State
	text    string
	visible bool
	anchor  Point
	timer   clockwork.Timer
	gen     uint64
}

// New creates an idle observer. doc may be nil when there is no selection to clear.
func New(clock clockwork.Clock, doc Document, opts Options) *Observer {
	opts.setDefaults()
	return &Observer{
		clock: clock,
		doc:   doc,
		opts:  opts,
		state: StateIdle,
	}
}

// Observe handles one selection-change event.
func (o *Observer) Observe(ev Event) {
	text := strings.TrimSpace(ev.Text)

	o.mu.Lock()
	o.cancelLocked()

	if utf8.RuneCountInString(text) <= o.opts.MinChars {
		wasActive := o.state != StateIdle || o.visible
		o.resetLocked()
		o.mu.Unlock()
		if wasActive && o.opts.OnHide != nil {
			o.opts.OnHide()
		}
		return
	}

	if ev.Rect != nil {
		o.anchor = clampAnchor(*ev.Rect, ev.Viewport, o.opts.MarginRight, o.opts.MarginBottom)
	}
	o.text = text
	o.state = StatePending
	gen := o.gen
	o.timer = o.clock.AfterFunc(o.opts.Debounce, func() { o.fire(gen) })
	o.mu.Unlock()
}

func (o *Observer) fire(gen uint64) {
	o.mu.Lock()
	if gen != o.gen || o.state != StatePending {
		o.mu.Unlock()
		return
	}
	o.timer = nil
	o.state = StateVisible
	o.visible = true
	snap := o.snapshotLocked()
	o.mu.Unlock()

	if o.opts.OnShow != nil {
		o.opts.OnShow(snap)
	}
}

// Close dismisses the popup: it cancels any pending timer, clears the
// captured text and clears the document's selection.
func (o *Observer) Close() {
	o.mu.Lock()
	o.cancelLocked()
	o.resetLocked()
	o.mu.Unlock()

	if o.doc != nil {
		o.doc.ClearSelection()
	}
}

// Stop releases any pending timer without touching the document.
func (o *Observer) Stop() {
	o.mu.Lock()
	o.cancelLocked()
	o.resetLocked()
	o.mu.Unlock()
}

// Snapshot returns the current state.
func (o *Observer) Snapshot() Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.snapshotLocked()
}

// Pending reports whether a display timer is scheduled.
func (o *Observer) Pending() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.timer != nil
}

func (o *Observer) snapshotLocked() Snapshot {
	return Snapshot{
		State:   o.state,
		Text:    o.text,
		Visible: o.visible,
		Anchor:  o.anchor,
	}
}

// cancelLocked stops the pending timer and invalidates its callback.
func (o *Observer) cancelLocked() {
	o.gen++
	if o.timer != nil {
		o.timer.Stop()
		o.timer = nil
	}
}

func (o *Observer) resetLocked() {
	o.state = StateIdle
	o.text = ""
	o.visible = false
}

// clampAnchor centres the anchor horizontally on the selection's top edge and
// keeps it at least the given margins away from the right and bottom edges.
func clampAnchor(r Rect, vp Viewport, marginRight, marginBottom float64) Point {
	p := Point{X: r.Left + r.Width/2, Y: r.Top}
	if vp.Width > 0 {
		p.X = min(p.X, vp.Width-marginRight)
	}
	if vp.Height > 0 {
		p.Y = min(p.Y, vp.Height-marginBottom)
	}
	p.X = max(p.X, 0)
	p.Y = max(p.Y, 0)
	return p
}
