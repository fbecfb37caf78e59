package lessons

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultStore(t *testing.T) {
	s, err := Default()
	require.NoError(t, err)

	assert.Equal(t, []string{"cs101", "cs102", "econ101", "math101"}, s.IDs())

	cs101, ok := s.Get("cs101")
	require.True(t, ok)
	assert.Equal(t, "CS101: Introduction to Algorithms", cs101.Title)
	assert.Equal(t, 2847, cs101.Students)
	require.Len(t, cs101.Lessons, 2)
	assert.Equal(t, 1, cs101.Lessons[0].ID)
	assert.Equal(t, "What are Algorithms?", cs101.Lessons[0].Title)
	assert.Equal(t, "Sorting Algorithms", cs101.Lessons[1].Title)
	assert.Contains(t, string(cs101.Lessons[0].Content), "<strong>algorithm</strong>")
	assert.Contains(t, string(cs101.Lessons[0].Content), "<blockquote>")
}

func TestGetMissingCourse(t *testing.T) {
	s, err := Default()
	require.NoError(t, err)

	c, ok := s.Get("cs999")
	assert.False(t, ok)
	assert.Nil(t, c)
}

func TestLoadOrdersLessonsByFileName(t *testing.T) {
	fsys := fstest.MapFS{
		"go101/course.yaml":      {Data: []byte("title: Go\ninstructor: Ada\nstudents: 3\n")},
		"go101/02-channels.md":   {Data: []byte("---\nid: 2\ntitle: Channels\nduration: 10 min\n---\nUse `chan`.\n")},
		"go101/01-goroutines.md": {Data: []byte("---\nid: 1\ntitle: Goroutines\nduration: 5 min\n---\n# Hello\n")},
	}

	s, err := Load(fsys)
	require.NoError(t, err)

	c, ok := s.Get("go101")
	require.True(t, ok)
	require.Len(t, c.Lessons, 2)
	assert.Equal(t, "Goroutines", c.Lessons[0].Title)
	assert.Equal(t, "Channels", c.Lessons[1].Title)
	assert.True(t, strings.Contains(string(c.Lessons[0].Content), "<h1>Hello</h1>"))
}

func TestLoadRejectsBadLessons(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
	}{
		{"missing front matter", fstest.MapFS{
			"x/course.yaml": {Data: []byte("title: X\n")},
			"x/01.md":       {Data: []byte("no front matter")},
		}},
		{"unterminated front matter", fstest.MapFS{
			"x/course.yaml": {Data: []byte("title: X\n")},
			"x/01.md":       {Data: []byte("---\nid: 1\ntitle: A\n")},
		}},
		{"duplicate lesson id", fstest.MapFS{
			"x/course.yaml": {Data: []byte("title: X\n")},
			"x/01.md":       {Data: []byte("---\nid: 1\ntitle: A\n---\nA\n")},
			"x/02.md":       {Data: []byte("---\nid: 1\ntitle: B\n---\nB\n")},
		}},
		{"missing title", fstest.MapFS{
			"x/course.yaml": {Data: []byte("title: X\n")},
			"x/01.md":       {Data: []byte("---\nid: 1\n---\nA\n")},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.fsys)
			assert.Error(t, err)
		})
	}
}
