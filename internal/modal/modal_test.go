package modal

import (
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/learnhub/internal/assistant"
)

const (
	waitFor = time.Second
	tick    = 5 * time.Millisecond
)

type changes struct {
	mu    sync.Mutex
	views []View
}

func (c *changes) record(v View) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.views = append(c.views, v)
}

func (c *changes) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.views)
}

func newModal(t *testing.T) (*Modal, *clockwork.FakeClock, *changes) {
	t.Helper()
	clock := clockwork.NewFakeClock()
	ch := &changes{}
	m := New(clock, assistant.Canned{}, Options{OnChange: ch.record})
	return m, clock, ch
}

func waitState(t *testing.T, m *Modal, want State) {
	t.Helper()
	require.Eventually(t, func() bool { return m.View().State == want }, waitFor, tick,
		"modal never reached %s, stuck in %s", want, m.View().State)
}

func TestOpenLoadsThenExplains(t *testing.T) {
	m, clock, _ := newModal(t)

	m.Open("bubble sort algorithm")
	v := m.View()
	assert.Equal(t, StateLoading, v.State)
	assert.True(t, v.State.Loading())
	assert.Equal(t, "bubble sort algorithm", v.SelectedText)
	assert.Empty(t, v.Explanation)

	clock.Advance(999 * time.Millisecond)
	assert.Never(t, func() bool { return m.View().State != StateLoading }, 30*time.Millisecond, tick)

	clock.Advance(time.Millisecond)
	waitState(t, m, StateExplanation)

	v = m.View()
	assert.Contains(t, v.Explanation, `"bubble sort algorithm"`)
	assert.Equal(t, []string{"Show me examples", "Explain time complexity", "Compare algorithms"}, v.FollowUps)
	assert.False(t, m.Pending())
}

func TestFollowUpFlow(t *testing.T) {
	m, clock, _ := newModal(t)

	m.Open("linked list")
	clock.Advance(DefaultResponseDelay)
	waitState(t, m, StateExplanation)

	require.NoError(t, m.ChooseFollowUp("Show visual diagram"))
	assert.Equal(t, StateLoadingFollowUp, m.View().State)
	assert.True(t, m.Pending())

	clock.Advance(DefaultFollowUpDelay)
	waitState(t, m, StateFollowUp)

	v := m.View()
	assert.Contains(t, v.FollowUpAnswer, "Visual representation: linked list")
	assert.Contains(t, v.Explanation, `"linked list" is a data structure`)
	assert.Empty(t, v.FollowUps)

	require.NoError(t, m.AskAnother())
	v = m.View()
	assert.Equal(t, StateExplanation, v.State)
	assert.Empty(t, v.FollowUpAnswer)
	assert.Len(t, v.FollowUps, 3)
}

func TestInvalidTransitions(t *testing.T) {
	m, clock, _ := newModal(t)

	assert.ErrorIs(t, m.ChooseFollowUp("Give examples"), ErrInvalidTransition)
	assert.ErrorIs(t, m.AskAnother(), ErrInvalidTransition)

	m.Open("xyz unrelated phrase")
	assert.ErrorIs(t, m.ChooseFollowUp("Give examples"), ErrInvalidTransition)

	clock.Advance(DefaultResponseDelay)
	waitState(t, m, StateExplanation)
	assert.ErrorIs(t, m.AskAnother(), ErrInvalidTransition)
	assert.Equal(t, StateExplanation, m.View().State)
}

func TestCloseReleasesTimers(t *testing.T) {
	tests := []struct {
		name  string
		setup func(m *Modal, clock *clockwork.FakeClock)
	}{
		{"while loading", func(m *Modal, clock *clockwork.FakeClock) {
			m.Open("market supply")
		}},
		{"while loading follow-up", func(m *Modal, clock *clockwork.FakeClock) {
			m.Open("market supply")
			clock.Advance(DefaultResponseDelay)
			waitState(t, m, StateExplanation)
			require.NoError(t, m.ChooseFollowUp("Show graph"))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, clock, ch := newModal(t)
			tt.setup(m, clock)

			m.Close()
			assert.False(t, m.Pending())
			assert.Equal(t, View{State: StateClosed}, m.View())

			before := ch.count()
			clock.Advance(5 * time.Second)
			assert.Never(t, func() bool { return ch.count() != before }, 50*time.Millisecond, tick)
			assert.Equal(t, StateClosed, m.View().State)
		})
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	m, _, ch := newModal(t)
	m.Close()
	assert.Equal(t, 0, ch.count())

	m.Open("integral")
	m.Close()
	m.Close()
	assert.Equal(t, 2, ch.count())
}

func TestReopenRestartsLoading(t *testing.T) {
	m, clock, _ := newModal(t)

	m.Open("first text here")
	clock.Advance(600 * time.Millisecond)
	m.Open("derivative rules")

	clock.Advance(600 * time.Millisecond)
	assert.Never(t, func() bool { return m.View().State != StateLoading }, 30*time.Millisecond, tick)

	clock.Advance(400 * time.Millisecond)
	waitState(t, m, StateExplanation)
	assert.Contains(t, m.View().Explanation, `"derivative rules" in calculus`)
}
