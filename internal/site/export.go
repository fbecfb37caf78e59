package site

import (
	"bytes"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/ziadkadry99/learnhub/internal/catalog"
	"github.com/ziadkadry99/learnhub/internal/lessons"
	"github.com/ziadkadry99/learnhub/internal/progress"
	"github.com/ziadkadry99/learnhub/internal/web"
)

// Exporter writes the site as static HTML. Filter query strings have no
// meaning on a static host, so the course browser is exported unfiltered.
type Exporter struct {
	OutputDir string
	Renderer  *web.Renderer
	Catalog   *catalog.Catalog
	Lessons   *lessons.Store
	Reporter  progress.Reporter
}

// page is one file of the export, relative to OutputDir.
type page struct {
	rel    string
	render func(*bytes.Buffer) error
}

// Export writes every page, the static assets and the search index. It
// returns the number of files written.
func (e *Exporter) Export() (int, error) {
	if e.Renderer == nil || e.Catalog == nil {
		return 0, fmt.Errorf("exporter needs a renderer and a catalog")
	}
	if e.Renderer.Navigator().ClientSide() {
		return 0, fmt.Errorf("static export requires plain navigation links")
	}
	reporter := e.Reporter
	if reporter == nil {
		reporter = progress.Nop{}
	}

	pages := e.pages()
	assets := web.Assets()
	total := len(pages) + len(assets) + 1

	if err := os.MkdirAll(e.OutputDir, 0o755); err != nil {
		return 0, fmt.Errorf("creating output dir: %w", err)
	}

	reporter.Start(total)
	defer reporter.Finish()

	written := 0
	for _, p := range pages {
		var buf bytes.Buffer
		if err := p.render(&buf); err != nil {
			return written, fmt.Errorf("rendering %s: %w", p.rel, err)
		}
		if err := e.write(p.rel, buf.Bytes()); err != nil {
			return written, err
		}
		written++
		reporter.Update(written, p.rel)
	}

	for _, name := range sortedKeys(assets) {
		rel := path.Join("static", name)
		if err := e.write(rel, []byte(assets[name])); err != nil {
			return written, err
		}
		written++
		reporter.Update(written, rel)
	}

	entries := BuildSearchIndex(e.Catalog, e.Lessons)
	if err := WriteSearchIndex(entries, filepath.Join(e.OutputDir, SearchIndexFile)); err != nil {
		return written, fmt.Errorf("writing search index: %w", err)
	}
	written++
	reporter.Update(written, SearchIndexFile)

	return written, nil
}

// pages lists the HTML files in the order they are written. Catalog courses
// without lesson content get the course-not-found view at their own URL.
func (e *Exporter) pages() []page {
	r := e.Renderer
	pages := []page{
		{rel: "index.html", render: func(b *bytes.Buffer) error {
			return r.Home(b, web.HomeView{Courses: e.Catalog.Popular(web.PopularCount)})
		}},
		{rel: "courses/index.html", render: func(b *bytes.Buffer) error {
			return r.Courses(b, web.NewCoursesView(e.Catalog, catalog.DefaultCriteria()))
		}},
		{rel: "demo/index.html", render: func(b *bytes.Buffer) error {
			return r.Demo(b)
		}},
	}

	for _, c := range e.Catalog.All() {
		id := c.ID
		rel := path.Join("course", id, "index.html")
		var detail *lessons.Course
		if e.Lessons != nil {
			detail, _ = e.Lessons.Get(id)
		}
		if detail == nil || len(detail.Lessons) == 0 {
			pages = append(pages, page{rel: rel, render: func(b *bytes.Buffer) error {
				return r.CourseNotFound(b, id)
			}})
			continue
		}
		pages = append(pages, page{rel: rel, render: func(b *bytes.Buffer) error {
			return r.Course(b, web.CourseView{Course: detail})
		}})
	}

	pages = append(pages, page{rel: "404.html", render: func(b *bytes.Buffer) error {
		return r.NotFound(b, "")
	}})
	return pages
}

func (e *Exporter) write(rel string, data []byte) error {
	out := filepath.Join(e.OutputDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("creating dir for %s: %w", rel, err)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", rel, err)
	}
	return nil
}
