// Package assistant produces the canned explanations shown by the learning
// assistant overlay. Responses are keyword-matched, never inferred.
package assistant

import (
	"fmt"
	"strings"
)

// Response is the explanation for a selected text plus suggested follow-ups.
type Response struct {
	Rule        string   `json:"rule"`
	Explanation string   `json:"explanation"`
	FollowUps   []string `json:"follow_ups"`
}

// rule pairs a keyword predicate with its explanation template. Templates take
// the original, case-preserved text as their only argument.
type rule struct {
	name      string
	keywords  []string
	template  string
	followUps []string
}

func (r rule) matches(lower string) bool {
	if len(r.keywords) == 0 {
		return true
	}
	for _, kw := range r.keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// rules are evaluated in order; the first match wins. The last rule has no
// keywords and always matches.
var rules = []rule{
	{
		name:      "algorithms",
		keywords:  []string{"algorithm", "sort"},
		template:  `An algorithm is a step-by-step procedure for solving a problem. "%s" refers to a systematic approach where we break down complex problems into smaller, manageable steps that can be executed in sequence.`,
		followUps: []string{"Show me examples", "Explain time complexity", "Compare algorithms"},
	},
	{
		name:      "data_structures",
		keywords:  []string{"data structure", "array", "linked list"},
		template:  `"%s" is a data structure - a way of organizing and storing data so it can be accessed and modified efficiently. Different data structures are optimized for different types of operations.`,
		followUps: []string{"Show visual diagram", "Compare with other structures", "When to use this?"},
	},
	{
		name:      "calculus",
		keywords:  []string{"calculus", "derivative", "integral"},
		template:  `"%s" in calculus deals with rates of change and accumulation. It's a fundamental mathematical concept used to analyze how quantities change over time or space.`,
		followUps: []string{"Show formula", "Give real-world example", "Practice problems"},
	},
	{
		name:      "economics",
		keywords:  []string{"economics", "market", "supply"},
		template:  `"%s" is an economic concept that describes how resources, goods, or services interact in a market system. Understanding these relationships helps predict economic behavior.`,
		followUps: []string{"Show graph", "Real-world examples", "Related concepts"},
	},
	{
		name:      "general",
		template:  `"%s" is an important concept in this subject. Let me break it down: this term represents a key idea that builds upon previous knowledge and connects to broader themes in the field.`,
		followUps: []string{"Explain more simply", "Give examples", "Show related topics"},
	},
}

// DefaultRule is the name of the catch-all rule.
const DefaultRule = "general"

func match(text string) rule {
	lower := strings.ToLower(text)
	for _, r := range rules {
		if r.matches(lower) {
			return r
		}
	}
	return rules[len(rules)-1]
}

// Rule returns the name of the rule the text resolves to.
func Rule(text string) string {
	return match(text).name
}

// Respond returns the canned explanation for text. It is pure: the same text
// always yields an equal, freshly allocated Response.
func Respond(text string) Response {
	r := match(text)
	followUps := make([]string, len(r.followUps))
	copy(followUps, r.followUps)
	return Response{
		Rule:        r.name,
		Explanation: fmt.Sprintf(r.template, text),
		FollowUps:   followUps,
	}
}
