package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetchSuccess(t *testing.T) {
	const body = "<html><body><p>hello</p></body></html>"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != "TestAgent/1.0" {
			t.Errorf("User-Agent = %q", got)
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(body))
	}))
	defer server.Close()

	f := New(WithUserAgent("TestAgent/1.0"))
	result, err := f.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if result.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d", result.StatusCode)
	}
	if result.HTML != body {
		t.Errorf("HTML = %q", result.HTML)
	}
	if result.ByteLength != len(body) {
		t.Errorf("ByteLength = %d, want %d", result.ByteLength, len(body))
	}
	if result.ContentType != "text/html" {
		t.Errorf("ContentType = %q, want text/html without parameters", result.ContentType)
	}
	if result.Redirected {
		t.Error("Direct fetch should not be marked redirected")
	}
	if result.FetchTimeMs < 0 {
		t.Errorf("FetchTimeMs = %d", result.FetchTimeMs)
	}
}

func TestFetchErrorStatusReturnsResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("<html><body>missing</body></html>"))
	}))
	defer server.Close()

	f := New()
	result, err := f.Fetch(context.Background(), server.URL)
	if err == nil {
		t.Fatal("Expected an error for a 404")
	}
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("Expected *HTTPError, got %T", err)
	}
	if httpErr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d", httpErr.StatusCode)
	}
	if result == nil {
		t.Fatal("A 404 should still return the populated result")
	}
	if result.HTML == "" {
		t.Error("Error page body should be captured")
	}
}

func TestFetchFollowsRedirects(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/old" {
			http.Redirect(w, r, server.URL+"/new", http.StatusMovedPermanently)
			return
		}
		w.Write([]byte("arrived"))
	}))
	defer server.Close()

	f := New()
	result, err := f.Fetch(context.Background(), server.URL+"/old")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if !result.Redirected {
		t.Error("Expected Redirected to be set")
	}
	if result.FinalURL != server.URL+"/new" {
		t.Errorf("FinalURL = %q", result.FinalURL)
	}
}

func TestFetchRedirectLoopStops(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, server.URL+"/again", http.StatusFound)
	}))
	defer server.Close()

	f := New()
	if _, err := f.Fetch(context.Background(), server.URL); err == nil {
		t.Error("Expected a redirect loop to fail")
	}
}

func TestFetchConnectionRefused(t *testing.T) {
	f := New(WithTimeout(2 * time.Second))
	result, err := f.Fetch(context.Background(), "http://127.0.0.1:1/")
	if err == nil {
		t.Fatal("Expected a transport error")
	}
	if result != nil {
		t.Error("Transport failures should return a nil result")
	}
}

func TestProbeDomainSignals(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/robots.txt":
			w.Write([]byte("User-agent: *\nDisallow:\n"))
		case "/llms.txt":
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	f := New()
	signals := f.ProbeDomainSignals(context.Background(), server.URL)
	if signals.RobotsTxt != "User-agent: *\nDisallow:\n" {
		t.Errorf("RobotsTxt = %q", signals.RobotsTxt)
	}
	if !signals.LLMsTxtExists {
		t.Error("llms.txt should be detected")
	}
	if signals.LLMsFullTxtExists {
		t.Error("llms-full.txt should be absent")
	}
}

func TestProbeDomainSignalsUnreachable(t *testing.T) {
	f := New()
	signals := f.ProbeDomainSignals(context.Background(), "http://127.0.0.1:1")
	if signals.RobotsTxt != "" || signals.LLMsTxtExists || signals.LLMsFullTxtExists {
		t.Errorf("Unreachable host should read as all-absent, got %+v", signals)
	}
}
