// Package api exposes the catalog, lessons and assistant as JSON endpoints.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/learnhub/internal/apperr"
	"github.com/ziadkadry99/learnhub/internal/catalog"
	"github.com/ziadkadry99/learnhub/internal/diagnostics"
	"github.com/ziadkadry99/learnhub/internal/lessons"
	"github.com/ziadkadry99/learnhub/internal/logger"
	"github.com/ziadkadry99/learnhub/internal/modal"
)

// MaxTextLength bounds the selected text accepted by the assistant endpoints.
const MaxTextLength = 2000

const maxBodyBytes = 64 << 10

// API holds the handlers' dependencies.
type API struct {
	catalog   *catalog.Catalog
	lessons   *lessons.Store
	responder modal.Responder
	recorder  diagnostics.Recorder
	log       *logger.Logger
	validator *requestValidator
}

// New creates the API. recorder and log may be nil.
func New(cat *catalog.Catalog, store *lessons.Store, responder modal.Responder, recorder diagnostics.Recorder, log *logger.Logger) (*API, error) {
	v, err := newRequestValidator()
	if err != nil {
		return nil, err
	}
	if recorder == nil {
		recorder = diagnostics.Nop{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &API{
		catalog:   cat,
		lessons:   store,
		responder: responder,
		recorder:  recorder,
		log:       log,
		validator: v,
	}, nil
}

// RegisterRoutes mounts the JSON endpoints under /api on the given router.
func RegisterRoutes(r chi.Router, a *API) {
	r.Route("/api/courses", func(r chi.Router) {
		r.Get("/", a.handleListCourses)
		r.Get("/{courseId}", a.handleGetCourse)
	})
	r.Route("/api/assistant", func(r chi.Router) {
		r.Post("/explain", a.handleExplain)
		r.Post("/follow-up", a.handleFollowUp)
	})
}

type listCoursesResponse struct {
	Courses  []catalog.Course `json:"courses"`
	Showing  int              `json:"showing"`
	Total    int              `json:"total"`
	Criteria catalog.Criteria `json:"criteria"`
}

func (a *API) handleListCourses(w http.ResponseWriter, r *http.Request) {
	criteria := catalog.CriteriaFromValues(r.URL.Query())
	courses := a.catalog.Filter(criteria)
	if courses == nil {
		courses = []catalog.Course{}
	}
	writeJSON(w, http.StatusOK, listCoursesResponse{
		Courses:  courses,
		Showing:  len(courses),
		Total:    a.catalog.Len(),
		Criteria: criteria,
	})
}

type courseResponse struct {
	*lessons.Course
	Summary *catalog.Course `json:"summary,omitempty"`
}

func (a *API) handleGetCourse(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "courseId")
	course, ok := a.lessons.Get(id)
	if !ok {
		a.record(r.Context(), diagnostics.KindCourseNotFound, id, r.URL.Path)
		apperr.Write(w, apperr.NewNotFound("course", id))
		return
	}
	resp := courseResponse{Course: course}
	if summary, ok := a.catalog.Get(id); ok {
		resp.Summary = &summary
	}
	writeJSON(w, http.StatusOK, resp)
}

// ExplainRequest is the body of POST /api/assistant/explain.
type ExplainRequest struct {
	Text string `json:"text" validate:"required,notblank,max=2000"`
}

// FollowUpRequest is the body of POST /api/assistant/follow-up.
type FollowUpRequest struct {
	Label string `json:"label" validate:"required,notblank,max=200"`
	Text  string `json:"text" validate:"required,notblank,max=2000"`
}

type followUpResponse struct {
	Label  string `json:"label"`
	Answer string `json:"answer"`
}

func (a *API) handleExplain(w http.ResponseWriter, r *http.Request) {
	var req ExplainRequest
	if err := a.decode(w, r, &req); err != nil {
		apperr.Write(w, err)
		return
	}
	resp := a.responder.Respond(req.Text)
	a.record(r.Context(), diagnostics.KindAssistantExplain, resp.Rule, req.Text)
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) handleFollowUp(w http.ResponseWriter, r *http.Request) {
	var req FollowUpRequest
	if err := a.decode(w, r, &req); err != nil {
		apperr.Write(w, err)
		return
	}
	answer := a.responder.FollowUp(req.Label, req.Text)
	a.record(r.Context(), diagnostics.KindAssistantFollowUp, req.Label, req.Text)
	writeJSON(w, http.StatusOK, followUpResponse{Label: req.Label, Answer: answer})
}

func (a *API) decode(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return apperr.NewInvalidRequest(fmt.Sprintf("invalid JSON body: %v", err), nil)
	}
	return a.validator.check(dst)
}

func (a *API) record(ctx context.Context, kind diagnostics.Kind, subject, detail string) {
	if err := a.recorder.Record(ctx, kind, subject, detail); err != nil {
		a.log.Warn("recording diagnostic event", "kind", kind, "error", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
