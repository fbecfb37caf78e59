package assistant

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondRules(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Explain this sorting algorithm", "algorithms"},
		{"Quick Sort", "algorithms"},
		{"supply and demand in the algorithm market", "algorithms"},
		{"An ARRAY of values", "data_structures"},
		{"linked list", "data_structures"},
		{"data structure", "data_structures"},
		{"the derivative of x", "calculus"},
		{"Integral", "calculus"},
		{"market equilibrium", "economics"},
		{"Supply", "economics"},
		{"array market", "data_structures"},
		{"xyz unrelated phrase", DefaultRule},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := Respond(tt.text)
			assert.Equal(t, tt.want, got.Rule)
			assert.Equal(t, tt.want, Rule(tt.text))
			assert.Contains(t, got.Explanation, tt.text)
			assert.Len(t, got.FollowUps, 3)
		})
	}
}

func TestRespondEchoesInputVerbatim(t *testing.T) {
	text := "Explain this sorting algorithm"
	got := Respond(text)

	require.Equal(t, "algorithms", got.Rule)
	assert.True(t, strings.Contains(got.Explanation, `"`+text+`"`))
	assert.Equal(t, []string{"Show me examples", "Explain time complexity", "Compare algorithms"}, got.FollowUps)
}

func TestRespondPriorityOrder(t *testing.T) {
	got := Respond("supply and demand in the algorithm market")
	assert.Equal(t, "algorithms", got.Rule)
	assert.True(t, strings.HasPrefix(got.Explanation, "An algorithm is a step-by-step procedure"))
}

func TestRespondDefault(t *testing.T) {
	got := Respond("xyz unrelated phrase")
	assert.Equal(t, DefaultRule, got.Rule)
	assert.Equal(t, []string{"Explain more simply", "Give examples", "Show related topics"}, got.FollowUps)
	assert.Contains(t, got.Explanation, `"xyz unrelated phrase" is an important concept`)
}

func TestRespondReturnsFreshFollowUps(t *testing.T) {
	a := Respond("algorithm")
	a.FollowUps[0] = "mutated"
	b := Respond("algorithm")
	assert.Equal(t, "Show me examples", b.FollowUps[0])
}

func TestFollowUp(t *testing.T) {
	text := "bubble sort"
	tests := []struct {
		label      string
		wantPrefix string
	}{
		{"Show me examples", "Here's a practical example:"},
		{"Give real-world example", "Here's a practical example:"},
		{"Show formula", "Visual representation:"},
		{"Show visual diagram", "Visual representation:"},
		{"Explain more simply", "In simple terms:"},
		{"Simplify it", "In simple terms:"},
		{"Explain time complexity", "Additional insight:"},
		{"Related concepts", "Additional insight:"},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got := FollowUp(tt.label, text)
			assert.True(t, strings.HasPrefix(got, tt.wantPrefix), "got %q", got)
			assert.Contains(t, got, text)
		})
	}
}

func TestFollowUpIndependentOfRule(t *testing.T) {
	// "Give examples" comes from the default rule but resolves like any other
	// label containing "example".
	assert.Equal(t, FollowUp("Show me examples", "x"), FollowUp("Give examples", "x"))
}

func TestCanned(t *testing.T) {
	var c Canned
	assert.Equal(t, Respond("array"), c.Respond("array"))
	assert.Equal(t, FollowUp("Show graph", "array"), c.FollowUp("Show graph", "array"))
}
