package lessons

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"gopkg.in/yaml.v3"
)

//go:embed content
var embedded embed.FS

// Lesson is a single pre-authored lesson. Content is rendered HTML.
type Lesson struct {
	ID       int           `yaml:"id" json:"id"`
	Title    string        `yaml:"title" json:"title"`
	Duration string        `yaml:"duration" json:"duration"`
	Content  template.HTML `yaml:"-" json:"content"`
}

// Course is the lesson-bearing detail of a course, keyed by the catalog id.
type Course struct {
	ID          string   `yaml:"-" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Instructor  string   `yaml:"instructor" json:"instructor"`
	Duration    string   `yaml:"duration" json:"duration"`
	Students    int      `yaml:"students" json:"students"`
	Lessons     []Lesson `yaml:"-" json:"lessons"`
}

// Store maps course ids to their lessons. It is read-only after loading.
type Store struct {
	courses map[string]*Course
	order   []string
}

// Default loads the lesson content bundled with the binary.
func Default() (*Store, error) {
	sub, err := fs.Sub(embedded, "content")
	if err != nil {
		return nil, fmt.Errorf("opening embedded content: %w", err)
	}
	return Load(sub)
}

// Load reads every <course>/course.yaml and its <course>/*.md lessons from fsys.
// Lessons are ordered by file name and rendered from Markdown to HTML.
func Load(fsys fs.FS) (*Store, error) {
	metaPaths, err := doublestar.Glob(fsys, "*/course.yaml")
	if err != nil {
		return nil, fmt.Errorf("listing courses: %w", err)
	}
	sort.Strings(metaPaths)

	md := newMarkdown()
	s := &Store{courses: make(map[string]*Course, len(metaPaths))}

	for _, metaPath := range metaPaths {
		id := path.Dir(metaPath)
		course, err := loadCourse(fsys, md, id, metaPath)
		if err != nil {
			return nil, fmt.Errorf("loading course %s: %w", id, err)
		}
		s.courses[id] = course
		s.order = append(s.order, id)
	}
	return s, nil
}

func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
}

func loadCourse(fsys fs.FS, md goldmark.Markdown, id, metaPath string) (*Course, error) {
	data, err := fs.ReadFile(fsys, metaPath)
	if err != nil {
		return nil, err
	}
	var course Course
	if err := yaml.Unmarshal(data, &course); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", metaPath, err)
	}
	course.ID = id

	lessonPaths, err := doublestar.Glob(fsys, id+"/*.md")
	if err != nil {
		return nil, fmt.Errorf("listing lessons: %w", err)
	}
	sort.Strings(lessonPaths)

	seen := make(map[int]string)
	for _, p := range lessonPaths {
		lesson, err := loadLesson(fsys, md, p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		if prev, dup := seen[lesson.ID]; dup {
			return nil, fmt.Errorf("lesson id %d used by both %s and %s", lesson.ID, prev, p)
		}
		seen[lesson.ID] = p
		course.Lessons = append(course.Lessons, lesson)
	}
	return &course, nil
}

func loadLesson(fsys fs.FS, md goldmark.Markdown, p string) (Lesson, error) {
	raw, err := fs.ReadFile(fsys, p)
	if err != nil {
		return Lesson{}, err
	}
	front, body, err := splitFrontMatter(raw)
	if err != nil {
		return Lesson{}, err
	}

	var lesson Lesson
	if err := yaml.Unmarshal(front, &lesson); err != nil {
		return Lesson{}, fmt.Errorf("decoding front matter: %w", err)
	}
	if lesson.Title == "" {
		return Lesson{}, fmt.Errorf("front matter: title is required")
	}

	var buf bytes.Buffer
	if err := md.Convert(body, &buf); err != nil {
		return Lesson{}, fmt.Errorf("converting markdown: %w", err)
	}
	lesson.Content = template.HTML(buf.String())
	return lesson, nil
}

// splitFrontMatter separates a leading "---" delimited YAML block from the body.
func splitFrontMatter(raw []byte) (front, body []byte, err error) {
	text := strings.ReplaceAll(string(raw), "\r\n", "\n")
	if !strings.HasPrefix(text, "---\n") {
		return nil, nil, fmt.Errorf("missing front matter")
	}
	rest := text[len("---\n"):]
	end := strings.Index(rest, "\n---\n")
	if end < 0 {
		return nil, nil, fmt.Errorf("unterminated front matter")
	}
	return []byte(rest[:end]), []byte(rest[end+len("\n---\n"):]), nil
}

// Get returns the course with the given id. A missing id is not an error.
func (s *Store) Get(id string) (*Course, bool) {
	c, ok := s.courses[id]
	return c, ok
}

// IDs returns the ids of every course with lessons, sorted.
func (s *Store) IDs() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
