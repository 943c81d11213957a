package thumbs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

func TestResolvePrefersMaxRes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, MaxResAsset) {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	resolver := newResolver(server.Client(), server.URL)

	url := resolver.Resolve(context.Background(), "abc123")
	expected := server.URL + "/abc123/" + MaxResAsset
	if url != expected {
		t.Errorf("Expected '%s', got '%s'", expected, url)
	}
}

func TestResolveFallsBackWhenMaxResMissing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	resolver := newResolver(server.Client(), server.URL)

	url := resolver.Resolve(context.Background(), "abc123")
	expected := server.URL + "/abc123/" + FallbackAsset
	if url != expected {
		t.Errorf("Expected fallback '%s', got '%s'", expected, url)
	}
}

func TestResolveFallsBackOnProbeError(t *testing.T) {
	// Probing an unreachable host must degrade, never error
	resolver := newResolver(&http.Client{}, "http://127.0.0.1:1")

	url := resolver.Resolve(context.Background(), "abc123")
	if !strings.HasSuffix(url, "/abc123/"+FallbackAsset) {
		t.Errorf("Expected fallback URL on probe error, got '%s'", url)
	}
}

func TestProbeHappensOncePerID(t *testing.T) {
	var probes int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&probes, 1)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	resolver := newResolver(server.Client(), server.URL)
	ctx := context.Background()

	first := resolver.Resolve(ctx, "abc123")
	second := resolver.Resolve(ctx, "abc123")
	resolver.Resolve(ctx, "other456")

	if first != second {
		t.Errorf("Expected identical URLs for repeated resolves, got '%s' and '%s'", first, second)
	}
	if n := atomic.LoadInt32(&probes); n != 2 {
		t.Errorf("Expected 2 probes (one per id), got %d", n)
	}
	if !resolver.Probed("abc123") || !resolver.Probed("other456") {
		t.Error("Both ids should be marked probed")
	}
	if resolver.Probed("never-seen") {
		t.Error("Unseen id should not be marked probed")
	}
}

func TestProbeUsesHEAD(t *testing.T) {
	var gotMethod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	resolver := newResolver(server.Client(), server.URL)
	resolver.Resolve(context.Background(), "abc123")

	if gotMethod != http.MethodHead {
		t.Errorf("Expected HEAD probe, got %s", gotMethod)
	}
}
