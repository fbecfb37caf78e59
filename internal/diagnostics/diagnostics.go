// Package diagnostics records what visitors ran into: unknown routes, unknown
// courses and assistant requests. Nothing here is ever shown to the visitor.
package diagnostics

import (
	"context"
	"time"
)

// Kind classifies a diagnostic event.
type Kind string

const (
	KindRouteNotFound     Kind = "route_not_found"
	KindCourseNotFound    Kind = "course_not_found"
	KindAssistantExplain  Kind = "assistant_explain"
	KindAssistantFollowUp Kind = "assistant_follow_up"
)

// Kinds lists every kind in display order.
var Kinds = []Kind{KindRouteNotFound, KindCourseNotFound, KindAssistantExplain, KindAssistantFollowUp}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// Event is a single recorded occurrence.
type Event struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Subject   string    `json:"subject"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Recorder accepts diagnostic events. Callers log a failed Record and carry on.
type Recorder interface {
	Record(ctx context.Context, kind Kind, subject, detail string) error
}

// Nop is a Recorder that drops every event, used when diagnostics are disabled.
type Nop struct{}

func (Nop) Record(context.Context, Kind, string, string) error { return nil }
