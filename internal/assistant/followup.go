package assistant

import (
	"fmt"
	"strings"
)

type followUpRule struct {
	keywords []string
	template string
}

// followUpRules resolve a follow-up label to an answer, regardless of which
// explanation rule offered the label. The last entry is the fallback.
var followUpRules = []followUpRule{
	{
		keywords: []string{"example"},
		template: "Here's a practical example: Consider how %s applies in real-world scenarios. For instance, in software development, this concept helps optimize performance and solve complex problems efficiently.",
	},
	{
		keywords: []string{"formula", "diagram"},
		template: "Visual representation: %s can be better understood through diagrams and formulas. This visual approach helps connect abstract concepts to concrete implementations.",
	},
	{
		keywords: []string{"simply", "simpl"},
		template: "In simple terms: %s is like a recipe or instruction manual. It gives you step-by-step directions to achieve a specific goal or solve a particular problem.",
	},
	{
		template: "Additional insight: %s connects to many other important concepts in this field. Understanding this foundation will help you grasp more advanced topics later.",
	},
}

// FollowUp answers the follow-up label for the originally selected text.
func FollowUp(label, text string) string {
	lower := strings.ToLower(label)
	for _, r := range followUpRules {
		if len(r.keywords) == 0 {
			return fmt.Sprintf(r.template, text)
		}
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return fmt.Sprintf(r.template, text)
			}
		}
	}
	return fmt.Sprintf(followUpRules[len(followUpRules)-1].template, text)
}

// Canned serves Respond and FollowUp behind an interface so the overlay can be
// driven by a different responder in tests.
type Canned struct{}

func (Canned) Respond(text string) Response { return Respond(text) }

func (Canned) FollowUp(label, text string) string { return FollowUp(label, text) }
