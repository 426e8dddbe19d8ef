// Package fakeswift provides an in-memory Swift v1 server for tests.
//
// It answers the way a real Swift proxy does (container HEAD is 204, an empty
// listing is 204, uploads are checked against the Etag request header) and
// records every request so tests can assert which calls were made.
package fakeswift

import (
	"crypto/md5" //#nosec G501 -- Swift Etags are MD5
	"encoding/hex"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
)

// Default test account.
const (
	User    = "test:tester"
	Key     = "testing"
	Account = "AUTH_test"
	Token   = "AUTH_tk0123456789"
)

// Request is a recorded request. Path is relative to the storage URL.
type Request struct {
	Method  string
	Path    string
	Header  http.Header
	Payload int64
}

type object struct {
	data        []byte
	contentType string
	etag        string
	modified    time.Time
}

type container struct {
	objects map[string]*object
}

func (c *container) bytes() int64 {
	var n int64
	for _, o := range c.objects {
		n += int64(len(o.data))
	}
	return n
}

// Server is a fake Swift endpoint backed by httptest.Server.
type Server struct {
	*httptest.Server

	mu         sync.Mutex
	containers map[string]*container
	requests   []Request
	overrides  map[string]int
}

// New starts a fake server and registers its shutdown with t.Cleanup.
func New(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		containers: make(map[string]*container),
		overrides:  make(map[string]int),
	}
	s.Server = httptest.NewServer(s.routes())
	t.Cleanup(s.Close)
	return s
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/auth/v1.0", s.handleAuth)

	r.Route("/v1/{account}", func(r chi.Router) {
		r.Use(s.requireToken)
		r.Use(s.record)
		r.Use(s.injectStatus)

		r.Head("/", s.handleAccount)
		r.Get("/", s.handleAccount)

		r.Head("/{container}", s.handleContainerHead)
		r.Get("/{container}", s.handleContainerGet)
		r.Put("/{container}", s.handleContainerPut)
		r.Delete("/{container}", s.handleContainerDelete)

		r.Head("/{container}/*", s.handleObjectGet)
		r.Get("/{container}/*", s.handleObjectGet)
		r.Put("/{container}/*", s.handleObjectPut)
		r.Delete("/{container}/*", s.handleObjectDelete)
	})

	return r
}

// AuthURL returns the v1 auth endpoint.
func (s *Server) AuthURL() string {
	return s.URL + "/auth/v1.0"
}

// StorageURL returns the storage URL handed out by the auth endpoint.
func (s *Server) StorageURL() string {
	return s.URL + "/v1/" + Account
}

// AddContainer creates an empty container.
func (s *Server) AddContainer(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.containers[name]; !ok {
		s.containers[name] = &container{objects: make(map[string]*object)}
	}
}

// AddObject stores data under container/name, creating the container if needed.
func (s *Server) AddObject(containerName, name string, data []byte) {
	s.AddContainer(containerName)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.containers[containerName].objects[name] = &object{
		data:        data,
		contentType: "application/octet-stream",
		etag:        md5Hex(data),
		modified:    time.Now().UTC(),
	}
}

// Object returns the stored bytes and content type of container/name.
func (s *Server) Object(containerName, name string) ([]byte, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.containers[containerName]
	if !ok {
		return nil, "", false
	}
	o, ok := c.objects[name]
	if !ok {
		return nil, "", false
	}
	return o.data, o.contentType, true
}

// HasContainer reports whether the container exists.
func (s *Server) HasContainer(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.containers[name]
	return ok
}

// SetStatus makes every request matching method and path answer with code.
// Path is relative to the storage URL, e.g. "/photos/cat.jpg".
func (s *Server) SetStatus(method, path string, code int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[method+" "+path] = code
}

// Requests returns a copy of the recorded storage requests.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// Count returns how many storage requests used method.
func (s *Server) Count(method string) int {
	n := 0
	for _, r := range s.Requests() {
		if r.Method == method {
			n++
		}
	}
	return n
}

// Reset clears the recorded requests.
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = nil
}

func (s *Server) handleAuth(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("X-Auth-User") != User || r.Header.Get("X-Auth-Key") != Key {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	w.Header().Set("X-Storage-Url", s.StorageURL())
	w.Header().Set("X-Storage-Token", Token)
	w.Header().Set("X-Auth-Token", Token)
	w.WriteHeader(http.StatusOK)
}

func (s *Server) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "account") != Account || r.Header.Get("X-Auth-Token") != Token {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// storagePath returns the request path relative to the storage URL.
func storagePath(r *http.Request) string {
	p := strings.TrimPrefix(r.URL.Path, "/v1/"+Account)
	if p == "" {
		return "/"
	}
	return p
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:  r.Method,
			Path:    storagePath(r),
			Header:  r.Header.Clone(),
			Payload: r.ContentLength,
		})
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) injectStatus(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		code, ok := s.overrides[r.Method+" "+storagePath(r)]
		s.mu.Unlock()
		if ok {
			_, _ = io.Copy(io.Discard, r.Body)
			w.WriteHeader(code)
			if r.Method != http.MethodHead {
				_, _ = io.WriteString(w, "injected "+strconv.Itoa(code))
			}
			return
		}
		next.ServeHTTP(w, r)
	})
}

func param(r *http.Request, name string) string {
	v := chi.URLParam(r, name)
	if unescaped, err := url.PathUnescape(v); err == nil {
		return unescaped
	}
	return v
}

func (s *Server) handleAccount(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	names := make([]string, 0, len(s.containers))
	var objects, used int64
	for name, c := range s.containers {
		names = append(names, name)
		objects += int64(len(c.objects))
		used += c.bytes()
	}
	s.mu.Unlock()
	sort.Strings(names)

	h := w.Header()
	h.Set("X-Account-Container-Count", strconv.Itoa(len(names)))
	h.Set("X-Account-Object-Count", strconv.FormatInt(objects, 10))
	h.Set("X-Account-Bytes-Used", strconv.FormatInt(used, 10))
	h.Set("X-Account-Meta-Quota-Bytes", "1073741824")

	writeListing(w, r, names)
}

// writeListing answers with one name per line, 204 when empty.
func writeListing(w http.ResponseWriter, r *http.Request, names []string) {
	if len(names) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	body := strings.Join(names, "\n") + "\n"
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		_, _ = io.WriteString(w, body)
	}
}

func (s *Server) lookupContainer(name string) (*container, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.containers[name]
	return c, ok
}

func (s *Server) handleContainerHead(w http.ResponseWriter, r *http.Request) {
	c, ok := s.lookupContainer(param(r, "container"))
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	s.mu.Lock()
	w.Header().Set("X-Container-Object-Count", strconv.Itoa(len(c.objects)))
	w.Header().Set("X-Container-Bytes-Used", strconv.FormatInt(c.bytes(), 10))
	s.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleContainerGet(w http.ResponseWriter, r *http.Request) {
	c, ok := s.lookupContainer(param(r, "container"))
	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	s.mu.Lock()
	names := make([]string, 0, len(c.objects))
	for name := range c.objects {
		names = append(names, name)
	}
	s.mu.Unlock()
	sort.Strings(names)
	writeListing(w, r, names)
}

func (s *Server) handleContainerPut(w http.ResponseWriter, r *http.Request) {
	name := param(r, "container")
	if s.HasContainer(name) {
		w.WriteHeader(http.StatusAccepted)
		return
	}
	s.AddContainer(name)
	w.WriteHeader(http.StatusCreated)
}

func (s *Server) handleContainerDelete(w http.ResponseWriter, r *http.Request) {
	name := param(r, "container")
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.containers[name]
	switch {
	case !ok:
		http.Error(w, "Not Found", http.StatusNotFound)
	case len(c.objects) > 0:
		http.Error(w, "There was a conflict when trying to complete your request.", http.StatusConflict)
	default:
		delete(s.containers, name)
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) handleObjectGet(w http.ResponseWriter, r *http.Request) {
	data, contentType, ok := s.Object(param(r, "container"), param(r, "*"))
	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	s.mu.Lock()
	o := s.containers[param(r, "container")].objects[param(r, "*")]
	etag, modified := o.etag, o.modified
	s.mu.Unlock()

	h := w.Header()
	h.Set("Etag", etag)
	h.Set("Content-Type", contentType)
	h.Set("Content-Length", strconv.Itoa(len(data)))
	h.Set("Last-Modified", modified.Format(http.TimeFormat))
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		_, _ = w.Write(data)
	}
}

func (s *Server) handleObjectPut(w http.ResponseWriter, r *http.Request) {
	containerName, name := param(r, "container"), param(r, "*")
	if !s.HasContainer(containerName) {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "read error", http.StatusBadRequest)
		return
	}

	sum := md5Hex(data)
	if want := r.Header.Get("Etag"); want != "" && !strings.EqualFold(want, sum) {
		http.Error(w, "Unprocessable Entity", http.StatusUnprocessableEntity)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	s.mu.Lock()
	s.containers[containerName].objects[name] = &object{
		data:        data,
		contentType: contentType,
		etag:        sum,
		modified:    time.Now().UTC(),
	}
	s.mu.Unlock()

	w.Header().Set("Etag", sum)
	w.WriteHeader(http.StatusCreated)
}

func (s *Server) handleObjectDelete(w http.ResponseWriter, r *http.Request) {
	containerName, name := param(r, "container"), param(r, "*")
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.containers[containerName]
	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	if _, ok := c.objects[name]; !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	delete(c.objects, name)
	w.WriteHeader(http.StatusNoContent)
}

func md5Hex(data []byte) string {
	sum := md5.Sum(data) //#nosec G401 -- Swift Etags are MD5
	return hex.EncodeToString(sum[:])
}
