package web

import (
	"bytes"
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/learnhub/internal/catalog"
	"github.com/ziadkadry99/learnhub/internal/diagnostics"
	"github.com/ziadkadry99/learnhub/internal/lessons"
	"github.com/ziadkadry99/learnhub/internal/logger"
)

// PopularCount is how many catalog courses the home page shows.
const PopularCount = 4

// Pages serves the HTML routes.
type Pages struct {
	renderer *Renderer
	catalog  *catalog.Catalog
	lessons  *lessons.Store
	recorder diagnostics.Recorder
	log      *logger.Logger
}

// NewPages creates the page handlers. recorder and log may be nil.
func NewPages(renderer *Renderer, cat *catalog.Catalog, store *lessons.Store, recorder diagnostics.Recorder, log *logger.Logger) *Pages {
	if recorder == nil {
		recorder = diagnostics.Nop{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Pages{
		renderer: renderer,
		catalog:  cat,
		lessons:  store,
		recorder: recorder,
		log:      log,
	}
}

// RegisterRoutes mounts the pages, their assets and the catch-all on the given router.
func RegisterRoutes(r chi.Router, p *Pages) {
	r.Get("/", p.handleHome)
	r.Get("/courses", p.handleCourses)
	r.Get("/demo", p.handleDemo)
	r.Get("/course/{courseId}", p.handleCourse)
	r.Get("/static/style.css", serveAsset("text/css; charset=utf-8", cssContent))
	r.Get("/static/overlay.js", serveAsset("application/javascript; charset=utf-8", jsContent))
	r.NotFound(p.handleNotFound)
}

func (p *Pages) handleHome(w http.ResponseWriter, r *http.Request) {
	p.write(w, http.StatusOK, func(buf *bytes.Buffer) error {
		return p.renderer.Home(buf, HomeView{Courses: p.catalog.Popular(PopularCount)})
	})
}

func (p *Pages) handleCourses(w http.ResponseWriter, r *http.Request) {
	criteria := catalog.CriteriaFromValues(r.URL.Query())
	p.write(w, http.StatusOK, func(buf *bytes.Buffer) error {
		return p.renderer.Courses(buf, NewCoursesView(p.catalog, criteria))
	})
}

func (p *Pages) handleDemo(w http.ResponseWriter, r *http.Request) {
	p.write(w, http.StatusOK, func(buf *bytes.Buffer) error {
		return p.renderer.Demo(buf)
	})
}

func (p *Pages) handleCourse(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "courseId")
	course, ok := p.lessons.Get(id)
	if !ok {
		p.record(r.Context(), diagnostics.KindCourseNotFound, id, r.URL.Path)
		p.write(w, http.StatusNotFound, func(buf *bytes.Buffer) error {
			return p.renderer.CourseNotFound(buf, id)
		})
		return
	}
	p.write(w, http.StatusOK, func(buf *bytes.Buffer) error {
		return p.renderer.Course(buf, CourseView{Course: course})
	})
}

func (p *Pages) handleNotFound(w http.ResponseWriter, r *http.Request) {
	p.log.Warn("route not found", "path", r.URL.Path)
	p.record(r.Context(), diagnostics.KindRouteNotFound, r.URL.Path, r.Referer())
	p.write(w, http.StatusNotFound, func(buf *bytes.Buffer) error {
		return p.renderer.NotFound(buf, r.URL.Path)
	})
}

func (p *Pages) write(w http.ResponseWriter, status int, render func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		p.log.Error("rendering page", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// record never affects the response; failures are only logged.
func (p *Pages) record(ctx context.Context, kind diagnostics.Kind, subject, detail string) {
	if err := p.recorder.Record(ctx, kind, subject, detail); err != nil {
		p.log.Warn("recording diagnostic event", "kind", kind, "error", err)
	}
}

func serveAsset(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "public, max-age=300")
		w.Write([]byte(body))
	}
}

// Assets returns the static files keyed by their path under /static/.
func Assets() map[string]string {
	return map[string]string{
		"style.css":  cssContent,
		"overlay.js": jsContent,
	}
}
