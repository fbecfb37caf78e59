package catalog

import (
	"net/url"
	"strings"
)

// All is the selector sentinel that disables the category or level predicate.
const All = "All"

// Criteria holds the three independent catalog filter values.
type Criteria struct {
	Query    string `json:"query"`
	Category string `json:"category"`
	Level    string `json:"level"`
}

// DefaultCriteria matches every course.
func DefaultCriteria() Criteria {
	return Criteria{Query: "", Category: All, Level: All}
}

// CriteriaFromValues reads q, category and level from URL values. Missing or
// empty selectors fall back to the All sentinel.
func CriteriaFromValues(v url.Values) Criteria {
	c := DefaultCriteria()
	c.Query = v.Get("q")
	if s := v.Get("category"); s != "" {
		c.Category = s
	}
	if s := v.Get("level"); s != "" {
		c.Level = s
	}
	return c
}

// IsDefault reports whether the criteria match everything.
func (c Criteria) IsDefault() bool {
	return c == DefaultCriteria()
}

// Values encodes the criteria as URL query values, omitting defaults.
func (c Criteria) Values() url.Values {
	v := url.Values{}
	if c.Query != "" {
		v.Set("q", c.Query)
	}
	if c.Category != "" && c.Category != All {
		v.Set("category", c.Category)
	}
	if c.Level != "" && c.Level != All {
		v.Set("level", c.Level)
	}
	return v
}

// Matches reports whether the course satisfies all three predicates.
func (c Criteria) Matches(course Course) bool {
	return matchesQuery(course, c.Query) &&
		(c.Category == All || course.Category == c.Category) &&
		(c.Level == All || string(course.Level) == c.Level)
}

func matchesQuery(course Course, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(course.Title), q) ||
		strings.Contains(strings.ToLower(course.Description), q) ||
		strings.Contains(strings.ToLower(course.Instructor), q)
}

// Filter returns the courses matching the criteria, in their original order.
// An empty result is valid.
func Filter(courses []Course, criteria Criteria) []Course {
	out := make([]Course, 0, len(courses))
	for _, course := range courses {
		if criteria.Matches(course) {
			out = append(out, course)
		}
	}
	return out
}
