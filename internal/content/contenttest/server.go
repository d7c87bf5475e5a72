// Package contenttest provides a fake content service for tests.
package contenttest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/aurenox/aurenox/internal/content"
)

// Server serves fixture collections on the content service routes.
type Server struct {
	*httptest.Server

	mu          sync.Mutex
	collections map[string]any
	failures    map[string]int
	hits        map[string]int
	contactCode int
	submissions []content.ContactForm
}

// New starts a server preloaded with Fixtures and closes it on test cleanup.
func New(t testing.TB) *Server {
	t.Helper()
	s := &Server{
		collections: map[string]any{},
		failures:    map[string]int{},
		hits:        map[string]int{},
		contactCode: http.StatusOK,
	}
	for path, data := range Fixtures() {
		s.collections[route(path)] = data
	}

	r := chi.NewRouter()
	r.Get("/api/{collection}", s.handleCollection)
	r.Post("/api/contact-forms", s.handleContact)
	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

// SetCollection replaces the data served for path. Query strings are ignored.
func (s *Server) SetCollection(path string, data any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[route(path)] = data
}

// Fail makes path answer with code.
func (s *Server) Fail(path string, code int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[route(path)] = code
}

// Heal removes a failure set by Fail.
func (s *Server) Heal(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.failures, route(path))
}

// SetContactStatus sets the status answered to contact submissions.
func (s *Server) SetContactStatus(code int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contactCode = code
}

// Submissions returns the contact forms received so far.
func (s *Server) Submissions() []content.ContactForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]content.ContactForm(nil), s.submissions...)
}

// Hits returns how many requests reached path.
func (s *Server) Hits(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[route(path)]
}

func (s *Server) handleCollection(w http.ResponseWriter, r *http.Request) {
	path := "/api/" + chi.URLParam(r, "collection")

	s.mu.Lock()
	s.hits[path]++
	code, failing := s.failures[path]
	data, ok := s.collections[path]
	s.mu.Unlock()

	if failing {
		http.Error(w, http.StatusText(code), code)
		return
	}
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": data, "meta": map[string]any{}})
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Data content.ContactForm `json:"data"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "bad body", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.hits[content.PathContactForm]++
	s.submissions = append(s.submissions, body.Data)
	code := s.contactCode
	s.mu.Unlock()

	writeJSON(w, code, map[string]any{"data": body.Data})
}

// PathRoute strips the query string from a service path.
func PathRoute(path string) string { return route(path) }

func route(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		return path[:i]
	}
	return path
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
