package catalog

import "fmt"

// Level is the difficulty tier of a course.
type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

// AllLevels lists the known levels in display order.
var AllLevels = []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}

// ParseLevel returns the Level named by s.
func ParseLevel(s string) (Level, error) {
	for _, l := range AllLevels {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown level %q", s)
}

// Course is a single catalog entry. Courses are loaded once and never mutated.
type Course struct {
	ID          string  `yaml:"id" json:"id"`
	Title       string  `yaml:"title" json:"title"`
	Description string  `yaml:"description" json:"description"`
	Instructor  string  `yaml:"instructor" json:"instructor"`
	Duration    string  `yaml:"duration" json:"duration"`
	Students    int     `yaml:"students" json:"students"`
	Rating      float64 `yaml:"rating" json:"rating"`
	Level       Level   `yaml:"level" json:"level"`
	Category    string  `yaml:"category" json:"category"`
	Color       string  `yaml:"color" json:"color"`
	Lessons     int     `yaml:"lessons" json:"lessons"`
	Price       string  `yaml:"price" json:"price"`
}

// catalogFile is the on-disk layout of a catalog YAML document.
type catalogFile struct {
	Courses []Course `yaml:"courses"`
}
