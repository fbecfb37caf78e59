// Package web renders the LearnHub pages and serves them over chi.
package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/ziadkadry99/learnhub/internal/catalog"
	"github.com/ziadkadry99/learnhub/internal/lessons"
)

// Page names.
const (
	PageHome           = "home"
	PageCourses        = "courses"
	PageDemo           = "demo"
	PageCourse         = "course"
	PageCourseNotFound = "course_not_found"
	PageNotFound       = "not_found"
)

// SiteInfo is the site-wide configuration visible to templates.
type SiteInfo struct {
	Name         string
	DemoVideoURL string
}

// RendererOptions configures a Renderer.
type RendererOptions struct {
	Site      SiteInfo
	Navigator Navigator
	// Overlay enables the selection assistant on the course pages.
	Overlay bool
}

// Renderer turns page views into HTML documents.
type Renderer struct {
	site    SiteInfo
	nav     Navigator
	overlay bool
	pages   map[string]*template.Template
}

// pageData is what the layout template receives.
type pageData struct {
	Site      SiteInfo
	Title     string
	Overlay   bool
	ClientNav bool
	Page      any
}

// HomeView is the data for the home page.
type HomeView struct {
	Courses []catalog.Course
}

// CoursesView is the data for the course browser.
type CoursesView struct {
	Courses    []catalog.Course
	Showing    int
	Total      int
	Criteria   catalog.Criteria
	Categories []string
	Levels     []string
}

// NewCoursesView filters the catalog and fills in the selector options.
func NewCoursesView(c *catalog.Catalog, criteria catalog.Criteria) CoursesView {
	filtered := c.Filter(criteria)
	return CoursesView{
		Courses:    filtered,
		Showing:    len(filtered),
		Total:      c.Len(),
		Criteria:   criteria,
		Categories: c.Categories(),
		Levels:     c.Levels(),
	}
}

// DemoView is the data for the demo page.
type DemoView struct {
	VideoURL string
}

// CourseView is the data for a course detail page.
type CourseView struct {
	Course *lessons.Course
}

// MissingView names what could not be found.
type MissingView struct {
	ID   string
	Path string
}

// NewRenderer parses every page template.
func NewRenderer(opts RendererOptions) (*Renderer, error) {
	r := &Renderer{
		site:    opts.Site,
		nav:     orPlain(opts.Navigator),
		overlay: opts.Overlay,
		pages:   make(map[string]*template.Template),
	}

	funcs := template.FuncMap{
		"link":      r.nav.LinkAttrs,
		"thousands": thousands,
		"filterURL": filterURL,
		"courseURL": CourseURL,
		"add1":      func(i int) int { return i + 1 },
	}

	base, err := template.New("layout").Funcs(funcs).Parse(layoutTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing layout template: %w", err)
	}

	sources := map[string]string{
		PageHome:           homeTemplate,
		PageCourses:        coursesTemplate,
		PageDemo:           demoTemplate,
		PageCourse:         courseTemplate,
		PageCourseNotFound: courseNotFoundTemplate,
		PageNotFound:       notFoundTemplate,
	}
	for name, src := range sources {
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("cloning layout for %s: %w", name, err)
		}
		if _, err := clone.Parse(src); err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", name, err)
		}
		r.pages[name] = clone
	}
	return r, nil
}

// Navigator returns the navigator links are rendered with.
func (r *Renderer) Navigator() Navigator { return r.nav }

func (r *Renderer) Home(w io.Writer, v HomeView) error {
	return r.render(w, PageHome, "Home", false, v)
}

func (r *Renderer) Courses(w io.Writer, v CoursesView) error {
	return r.render(w, PageCourses, "Browse Courses", true, v)
}

func (r *Renderer) Demo(w io.Writer) error {
	return r.render(w, PageDemo, "Platform Demo", false, DemoView{VideoURL: r.site.DemoVideoURL})
}

func (r *Renderer) Course(w io.Writer, v CourseView) error {
	return r.render(w, PageCourse, v.Course.Title, true, v)
}

// CourseNotFound renders the local not-found view for an unknown course id.
func (r *Renderer) CourseNotFound(w io.Writer, id string) error {
	return r.render(w, PageCourseNotFound, "Course Not Found", false, MissingView{ID: id})
}

// NotFound renders the generic not-found view. The path is not shown.
func (r *Renderer) NotFound(w io.Writer, path string) error {
	return r.render(w, PageNotFound, "Page Not Found", false, MissingView{Path: path})
}

// render executes into a buffer first so a template error never leaves a
// half-written page behind.
func (r *Renderer) render(w io.Writer, page, title string, overlay bool, v any) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	data := pageData{
		Site:      r.site,
		Title:     title,
		Overlay:   overlay && r.overlay,
		ClientNav: r.nav.ClientSide(),
		Page:      v,
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("rendering %s: %w", page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// CourseURL is the path of a course detail page.
func CourseURL(id string) string {
	return "/course/" + url.PathEscape(id)
}

// filterURL returns the course browser URL with one selector replaced.
func filterURL(c catalog.Criteria, key, value string) string {
	switch key {
	case "category":
		c.Category = value
	case "level":
		c.Level = value
	case "q":
		c.Query = value
	}
	if enc := c.Values().Encode(); enc != "" {
		return "/courses?" + enc
	}
	return "/courses"
}

// thousands formats n with comma separators.
func thousands(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, ch := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(ch)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
