package site

import (
	"encoding/json"
	"html"
	"maps"
	"os"
	"regexp"
	"slices"
	"strings"

	"github.com/ziadkadry99/learnhub/internal/catalog"
	"github.com/ziadkadry99/learnhub/internal/lessons"
	"github.com/ziadkadry99/learnhub/internal/web"
)

// SearchIndexFile is the name of the exported search index.
const SearchIndexFile = "search-index.json"

// maxSearchContent bounds the text indexed per course.
const maxSearchContent = 2000

// SearchEntry represents a single searchable course in the export.
type SearchEntry struct {
	Path     string `json:"path"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Category string `json:"category"`
	Level    string `json:"level"`
	Content  string `json:"content"`
}

var (
	tagPattern   = regexp.MustCompile(`<[^>]*>`)
	spacePattern = regexp.MustCompile(`\s+`)
)

// BuildSearchIndex makes one entry per catalog course, in catalog order.
// Courses with lesson content also index their lesson titles and text.
func BuildSearchIndex(cat *catalog.Catalog, store *lessons.Store) []SearchEntry {
	courses := cat.All()
	entries := make([]SearchEntry, 0, len(courses))
	for _, c := range courses {
		parts := []string{c.Instructor}
		if store != nil {
			if detail, ok := store.Get(c.ID); ok {
				for _, l := range detail.Lessons {
					parts = append(parts, l.Title, plainText(string(l.Content)))
				}
			}
		}
		content := strings.Join(parts, " ")
		if len(content) > maxSearchContent {
			content = strings.ToValidUTF8(content[:maxSearchContent], "")
		}
		entries = append(entries, SearchEntry{
			Path:     strings.TrimPrefix(web.CourseURL(c.ID), "/") + "/",
			Title:    c.Title,
			Summary:  c.Description,
			Category: c.Category,
			Level:    string(c.Level),
			Content:  content,
		})
	}
	return entries
}

// plainText drops markup from rendered lesson HTML.
func plainText(s string) string {
	s = tagPattern.ReplaceAllString(s, " ")
	s = html.UnescapeString(s)
	return strings.TrimSpace(spacePattern.ReplaceAllString(s, " "))
}

// WriteSearchIndex writes the search index as JSON to the given path.
func WriteSearchIndex(entries []SearchEntry, outputPath string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}

func sortedKeys(m map[string]string) []string {
	return slices.Sorted(maps.Keys(m))
}
