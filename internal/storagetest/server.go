// Package storagetest runs an in-memory stand-in for the Cloud Storage JSON API.
// The storage client reaches it through STORAGE_EMULATOR_HOST.
package storagetest

import (
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"
)

// Object is an object held by the fake bucket store
type Object struct {
	Bucket       string
	Name         string
	ContentType  string
	CacheControl string
	Data         []byte
	Updated      time.Time
}

// Server serves object uploads and listings from memory
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	objects  []Object
	prefixes []string
	denied   map[string]bool
}

// NewServer starts a fake and points STORAGE_EMULATOR_HOST at it for the test
func NewServer(t testing.TB) *Server {
	t.Helper()
	s := &Server{denied: map[string]bool{}}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /upload/storage/v1/b/{bucket}/o", s.handleUpload)
	mux.HandleFunc("GET /storage/v1/b/{bucket}/o", s.handleList)
	s.Server = httptest.NewServer(mux)

	t.Setenv("STORAGE_EMULATOR_HOST", s.URL)
	t.Cleanup(s.Close)
	return s
}

// Add stores an object as if it had been uploaded earlier
func (s *Server) Add(o Object) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects = append(s.objects, o)
}

// Deny makes every request for bucket fail with 403
func (s *Server) Deny(bucket string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.denied[bucket] = true
}

// Objects returns the stored objects in upload order
func (s *Server) Objects() []Object {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Object(nil), s.objects...)
}

// Prefixes returns the prefix of every listing request received
func (s *Server) Prefixes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.prefixes...)
}

func (s *Server) isDenied(bucket string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.denied[bucket]
}

// handleUpload accepts multipart/related uploads: JSON metadata, then the media
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	bucket := r.PathValue("bucket")
	if s.isDenied(bucket) {
		writeError(w, http.StatusForbidden, "access denied to bucket "+bucket)
		return
	}

	mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || !strings.HasPrefix(mediaType, "multipart/") {
		writeError(w, http.StatusBadRequest, "expected a multipart upload")
		return
	}
	reader := multipart.NewReader(r.Body, params["boundary"])

	var meta struct {
		Name         string `json:"name"`
		ContentType  string `json:"contentType"`
		CacheControl string `json:"cacheControl"`
	}
	part, err := reader.NextPart()
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing metadata part")
		return
	}
	if err := json.NewDecoder(part).Decode(&meta); err != nil {
		writeError(w, http.StatusBadRequest, "bad metadata: "+err.Error())
		return
	}

	part, err = reader.NextPart()
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing media part")
		return
	}
	data, err := io.ReadAll(part)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad media: "+err.Error())
		return
	}
	if meta.Name == "" {
		meta.Name = r.URL.Query().Get("name")
	}
	if meta.ContentType == "" {
		meta.ContentType = part.Header.Get("Content-Type")
	}

	o := Object{
		Bucket:       bucket,
		Name:         meta.Name,
		ContentType:  meta.ContentType,
		CacheControl: meta.CacheControl,
		Data:         data,
		Updated:      time.Now().UTC(),
	}
	s.Add(o)
	writeJSON(w, resource(o))
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	bucket := r.PathValue("bucket")
	if s.isDenied(bucket) {
		writeError(w, http.StatusForbidden, "access denied to bucket "+bucket)
		return
	}
	prefix := r.URL.Query().Get("prefix")

	s.mu.Lock()
	s.prefixes = append(s.prefixes, prefix)
	items := []map[string]any{}
	for _, o := range s.objects {
		if o.Bucket == bucket && strings.HasPrefix(o.Name, prefix) {
			items = append(items, resource(o))
		}
	}
	s.mu.Unlock()

	sort.SliceStable(items, func(i, j int) bool {
		return items[i]["name"].(string) < items[j]["name"].(string)
	})
	writeJSON(w, map[string]any{"kind": "storage#objects", "items": items})
}

func resource(o Object) map[string]any {
	return map[string]any{
		"kind":         "storage#object",
		"bucket":       o.Bucket,
		"name":         o.Name,
		"size":         strconv.Itoa(len(o.Data)),
		"contentType":  o.ContentType,
		"cacheControl": o.CacheControl,
		"generation":   "1",
		"updated":      o.Updated.Format(time.RFC3339Nano),
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{"code": code, "message": message},
	})
}
