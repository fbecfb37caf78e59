package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yaml
var defaultCatalog []byte

// ErrInvalidCatalog is returned when catalog data breaks a record invariant.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Catalog is the ordered, read-only list of courses offered on the site.
type Catalog struct {
	courses []Course
	byID    map[string]int
}

// Default returns the catalog bundled with the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// LoadFile reads a catalog from a YAML file. An empty path yields the bundled catalog.
func LoadFile(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a YAML catalog document and validates every record.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	return New(f.Courses)
}

// New builds a catalog from the given courses, preserving their order.
func New(courses []Course) (*Catalog, error) {
	c := &Catalog{
		courses: make([]Course, 0, len(courses)),
		byID:    make(map[string]int, len(courses)),
	}
	for i, course := range courses {
		if err := validateCourse(course); err != nil {
			return nil, fmt.Errorf("%w: course %d: %v", ErrInvalidCatalog, i, err)
		}
		if _, dup := c.byID[course.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate course id %q", ErrInvalidCatalog, course.ID)
		}
		c.byID[course.ID] = len(c.courses)
		c.courses = append(c.courses, course)
	}
	return c, nil
}

func validateCourse(course Course) error {
	if course.ID == "" {
		return errors.New("id is required")
	}
	if course.Title == "" {
		return fmt.Errorf("%s: title is required", course.ID)
	}
	if course.Students < 0 {
		return fmt.Errorf("%s: students must be non-negative", course.ID)
	}
	if course.Lessons < 0 {
		return fmt.Errorf("%s: lessons must be non-negative", course.ID)
	}
	if course.Rating < 0 || course.Rating > 5 {
		return fmt.Errorf("%s: rating %.1f out of range 0-5", course.ID, course.Rating)
	}
	if _, err := ParseLevel(string(course.Level)); err != nil {
		return fmt.Errorf("%s: %v", course.ID, err)
	}
	return nil
}

// All returns a copy of every course in catalog order.
func (c *Catalog) All() []Course {
	out := make([]Course, len(c.courses))
	copy(out, c.courses)
	return out
}

// Len returns the number of courses.
func (c *Catalog) Len() int { return len(c.courses) }

// Get returns the course with the given id.
func (c *Catalog) Get(id string) (Course, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Course{}, false
	}
	return c.courses[i], true
}

// Popular returns the first n courses, used for the home page showcase.
func (c *Catalog) Popular(n int) []Course {
	if n > len(c.courses) {
		n = len(c.courses)
	}
	if n < 0 {
		n = 0
	}
	out := make([]Course, n)
	copy(out, c.courses[:n])
	return out
}

// Categories returns the category selector options: the All sentinel followed
// by each distinct category in order of first appearance.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	out := []string{All}
	for _, course := range c.courses {
		if !seen[course.Category] {
			seen[course.Category] = true
			out = append(out, course.Category)
		}
	}
	return out
}

// Levels returns the level selector options, starting with the All sentinel.
func (c *Catalog) Levels() []string {
	out := []string{All}
	for _, l := range AllLevels {
		out = append(out, string(l))
	}
	return out
}

// Filter applies the criteria to the whole catalog.
func (c *Catalog) Filter(criteria Criteria) []Course {
	return Filter(c.courses, criteria)
}
