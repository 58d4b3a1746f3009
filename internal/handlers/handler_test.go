// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared fakes and the test server used by the
// handler tests.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"webcraft/internal/archive"
	"webcraft/internal/generator"
	"webcraft/internal/models"
	"webcraft/internal/store"
)

// fakeGenerator stores a canned website through the real memory store.
type fakeGenerator struct {
	store *store.MemoryStore
	err   error

	mu       sync.Mutex
	requests []generator.Request
}

func (f *fakeGenerator) Generate(ctx context.Context, req generator.Request) (*models.Website, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.store.Create(ctx, models.WebsiteDraft{
		Prompt:     req.Prompt,
		TemplateID: req.TemplateID,
		Content:    models.Content{Title: "Acme"},
		HTML:       "<h1>Acme</h1>",
		CSS:        "h1 { color: blue; }",
	})
}

func (f *fakeGenerator) Regenerate(ctx context.Context, id int64) (*models.Website, error) {
	prev, err := f.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.store.Create(ctx, models.WebsiteDraft{
		Prompt:     prev.Prompt,
		TemplateID: prev.TemplateID,
		Content:    prev.Content,
		HTML:       prev.HTML + "<!-- again -->",
		CSS:        prev.CSS,
	})
}

// fakeArchiveCache is an in-memory ArchiveCache.
type fakeArchiveCache struct {
	mu   sync.Mutex
	data map[string][]byte
	gets int
}

func cacheKey(id int64, fingerprint string, minified bool) string {
	return strconv.FormatInt(id, 10) + ":" + fingerprint + ":" + strconv.FormatBool(minified)
}

func (c *fakeArchiveCache) Get(_ context.Context, id int64, fingerprint string, minified bool) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	d, ok := c.data[cacheKey(id, fingerprint, minified)]
	return d, ok
}

func (c *fakeArchiveCache) Set(_ context.Context, id int64, fingerprint string, minified bool, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[cacheKey(id, fingerprint, minified)] = data
}

// fakeObjects is an in-memory ArchiveStorage.
type fakeObjects struct {
	mu      sync.Mutex
	objects map[string][]byte
	headErr error
}

func (o *fakeObjects) Exists(_ context.Context, key string) (bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.headErr != nil {
		return false, o.headErr
	}
	_, ok := o.objects[key]
	return ok, nil
}

func (o *fakeObjects) Upload(_ context.Context, key, _ string, data []byte) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.objects[key] = data
	return nil
}

func (o *fakeObjects) PresignedURL(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://s3.example.test/archives/" + key + "?X-Amz-Signature=abc", nil
}

// fakeProviders is a fixed ProviderLister.
type fakeProviders []string

func (p fakeProviders) Available() []string { return p }

var errBackendDown = errors.New("backend down")

// testEnv holds the handlers and fakes behind a test server.
type testEnv struct {
	store    *store.MemoryStore
	gen      *fakeGenerator
	websites *Websites
	catalog  *Catalog
}

// newTestEnv wires handlers to a memory store. archives and objects may be
// nil.
func newTestEnv(t *testing.T, archives ArchiveCache, objects ArchiveStorage) *testEnv {
	t.Helper()
	st := store.NewMemoryStore()
	gen := &fakeGenerator{store: st}

	var tmpl fakeTemplates = map[string]bool{"business": true, "chat": true}
	return &testEnv{
		store:    st,
		gen:      gen,
		websites: NewWebsites(gen, st, archive.New(), archives, objects),
		catalog:  NewCatalog(tmpl, fakeProviders{"gemini", "openai"}, generator.ApproachHybrid),
	}
}

// mustGet loads a stored website or fails the test.
func mustGet(t *testing.T, env *testEnv, id int64) *models.Website {
	t.Helper()
	w, err := env.store.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("store.Get(%d): %v", id, err)
	}
	return w
}

// fingerprint returns the fingerprint of a stored website.
func (e *testEnv) fingerprint(t *testing.T, id int64) string {
	t.Helper()
	return mustGet(t, e, id).Fingerprint()
}

// fakeTemplates reports the ids present in the map.
type fakeTemplates map[string]bool

func (f fakeTemplates) Get(id string) (*models.Template, bool) {
	if f[id] {
		return &models.Template{ID: id}, true
	}
	return nil, false
}

// newTestServer mounts the handlers on a chi router so URL parameters
// resolve the same way they do in production.
func newTestServer(t *testing.T, env *testEnv) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	r.Get("/api/templates", env.catalog.Templates)
	r.Get("/api/options", env.catalog.Options)
	r.Get("/api/ai/status", env.catalog.AIStatus)
	r.Route("/api/websites", func(r chi.Router) {
		r.Post("/", env.websites.Create)
		r.Get("/", env.websites.List)
		r.Get("/{id}", env.websites.Get)
		r.Post("/{id}/regenerate", env.websites.Regenerate)
		r.Get("/{id}/download", env.websites.Download)
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

// noRedirectClient returns redirects to the caller instead of following them.
func noRedirectClient() *http.Client {
	return &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}
