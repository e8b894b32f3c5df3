package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSiteMeta(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua != "placement-navigator/1.0" {
			t.Errorf("user agent = %q", ua)
		}
		w.Write([]byte(`<html><head>
			<title> Acme Corp </title>
			<meta name="description" content="  We make everything. ">
		</head><body></body></html>`))
	}))
	defer srv.Close()

	f := New(5*time.Second, "placement-navigator/1.0")
	meta, err := f.SiteMeta(context.Background(), srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	if meta.Title != "Acme Corp" {
		t.Errorf("title = %q, want trimmed Acme Corp", meta.Title)
	}
	if meta.Description != "We make everything." {
		t.Errorf("description = %q", meta.Description)
	}
}

func TestSiteMetaOGFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head>
			<meta property="og:description" content="Open graph text">
		</head></html>`))
	}))
	defer srv.Close()

	f := New(5*time.Second, "test")
	meta, err := f.SiteMeta(context.Background(), srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	if meta.Description != "Open graph text" {
		t.Errorf("description = %q, want og:description fallback", meta.Description)
	}
}

func TestSiteMetaErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	f := New(5*time.Second, "test")

	if _, err := f.SiteMeta(context.Background(), srv.URL); err == nil {
		t.Error("expected error for non-200 response")
	}
	if _, err := f.SiteMeta(context.Background(), "ftp://example.com"); err == nil {
		t.Error("expected error for unsupported scheme")
	}
}
