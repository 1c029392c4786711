package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alfdana/danashell/internal/auth"
	"github.com/alfdana/danashell/internal/conf"
	"github.com/alfdana/danashell/internal/push"
	"github.com/alfdana/danashell/internal/shell/cache"
	"github.com/alfdana/danashell/internal/store"
	"github.com/alfdana/danashell/internal/whatsapp"
)

// stubFetcher serves canned upstream responses keyed by request key.
type stubFetcher struct {
	mu        sync.Mutex
	responses map[string]*cache.Response
}

func newStubFetcher() *stubFetcher {
	return &stubFetcher{responses: make(map[string]*cache.Response)}
}

func (f *stubFetcher) serve(key, contentType, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[key] = &cache.Response{
		Status: http.StatusOK,
		Header: http.Header{"Content-Type": []string{contentType}},
		Body:   []byte(body),
	}
}

func (f *stubFetcher) Fetch(_ context.Context, key string, _ bool) (*cache.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if resp, ok := f.responses[key]; ok {
		return resp.Clone(), nil
	}
	return nil, fmt.Errorf("upstream unreachable: %s", key)
}

// harness bundles a fully wired Controller with the pieces tests poke at.
type harness struct {
	ctrl     *Controller
	store    *store.Store
	notifier *push.TrackingNotifier
	registry *push.WindowRegistry
	push     *push.Service
	fetcher  *stubFetcher
	shell    *cache.Controller
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	settings := &conf.Settings{}
	settings.Shell = conf.ShellSettings{
		Upstream:       "https://alfdana.example",
		CacheVersion:   "alf-dana-v1",
		InternalPrefix: "/_next/",
		OfflinePath:    "/offline.html",
		Precache:       []string{"/offline.html", "/manifest.json"},
	}
	settings.Contact.WhatsAppNumber = "971501234567"

	fetcher := newStubFetcher()
	fetcher.serve("/offline.html", "text/html", "<h1>You are offline</h1>")
	fetcher.serve("/manifest.json", "application/json", "{}")

	shell := cache.NewController(cache.Config{
		Version:        settings.Shell.CacheVersion,
		Precache:       settings.Shell.Precache,
		OfflinePath:    settings.Shell.OfflinePath,
		InternalPrefix: settings.Shell.InternalPrefix,
	}, cache.NewMemoryStorage(), fetcher, nil, nil)
	require.NoError(t, shell.Install(context.Background()))
	require.NoError(t, shell.Activate(context.Background()))

	st := store.New(store.NewMemoryKV(), nil)
	notifier := push.NewTrackingNotifier(nil)
	registry := push.NewWindowRegistry()
	pushSvc := push.NewService(st, notifier, registry, nil, nil)

	ctrl := NewController(Deps{
		Settings: settings,
		Store:    st,
		Auth:     auth.NewService(st),
		Push:     pushSvc,
		Notifier: notifier,
		Registry: registry,
		Shell:    shell,
		Links:    whatsapp.NewLinks(settings.Contact.WhatsAppNumber),
	})
	return &harness{
		ctrl:     ctrl,
		store:    st,
		notifier: notifier,
		registry: registry,
		push:     pushSvc,
		fetcher:  fetcher,
		shell:    shell,
	}
}

// httptestRequest builds a body-less request for raw header control.
func httptestRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

// serveRaw runs a prebuilt request through the echo router.
func serveRaw(h *harness, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ctrl.Echo().ServeHTTP(rec, req)
	return rec
}

// do runs a request through the echo router and returns the recorder.
func (h *harness) do(method, target, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ctrl.Echo().ServeHTTP(rec, req)
	return rec
}
