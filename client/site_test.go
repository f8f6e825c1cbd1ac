package client

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aweist/leaguecal/models"
)

type memoryCache struct {
	pages map[string]models.CachedPage
}

func newMemoryCache() *memoryCache {
	return &memoryCache{pages: make(map[string]models.CachedPage)}
}

func (c *memoryCache) GetPage(url string) (*models.CachedPage, error) {
	if page, ok := c.pages[url]; ok {
		return &page, nil
	}
	return nil, nil
}

func (c *memoryCache) SavePage(page models.CachedPage) error {
	c.pages[page.URL] = page
	return nil
}

func TestFetchDocumentUsesCache(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(`<html><body><h1>Schedule</h1></body></html>`))
	}))
	defer server.Close()

	cache := newMemoryCache()
	c := NewSiteClient(server.URL, cache, time.Hour)

	for i := 0; i < 3; i++ {
		doc, err := c.FetchDocument(server.URL + "/schedule")
		if err != nil {
			t.Fatalf("FetchDocument() error = %v", err)
		}
		if got := doc.Find("h1").Text(); got != "Schedule" {
			t.Errorf("Parsed document h1 = %q", got)
		}
	}

	if hits != 1 {
		t.Errorf("Expected 1 server hit through the cache, got %d", hits)
	}
}

func TestFetchFreshDocumentBypassesCache(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(`<html><body></body></html>`))
	}))
	defer server.Close()

	cache := newMemoryCache()
	c := NewSiteClient(server.URL, cache, time.Hour)

	for i := 0; i < 2; i++ {
		if _, err := c.FetchFreshDocument(server.URL + "/schedule"); err != nil {
			t.Fatalf("FetchFreshDocument() error = %v", err)
		}
	}

	if hits != 2 {
		t.Errorf("Expected 2 server hits when bypassing the cache, got %d", hits)
	}

	// Fresh fetches still refill the cache for later cached reads.
	if _, ok := cache.pages[server.URL+"/schedule"]; !ok {
		t.Error("Fresh fetch did not populate the cache")
	}
}

func TestFetchDocumentExpiredCache(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(`<html><body></body></html>`))
	}))
	defer server.Close()

	cache := newMemoryCache()
	cache.SavePage(models.CachedPage{
		URL:       server.URL + "/schedule",
		Body:      []byte("<html></html>"),
		FetchedAt: time.Now().Add(-2 * time.Hour),
	})

	c := NewSiteClient(server.URL, cache, time.Hour)
	if _, err := c.FetchDocument(server.URL + "/schedule"); err != nil {
		t.Fatalf("FetchDocument() error = %v", err)
	}

	if hits != 1 {
		t.Errorf("Expected a refetch for an expired cache entry, got %d hits", hits)
	}
}

func TestFetchDocumentNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	c := NewSiteClient(server.URL, nil, 0)
	if _, err := c.FetchDocument(server.URL + "/schedule"); err == nil {
		t.Error("Expected an error for a 404 response")
	}
}

func TestResolveURL(t *testing.T) {
	tests := []struct {
		base     string
		href     string
		expected string
	}{
		{"https://example.com", "/schedule", "https://example.com/schedule"},
		{"https://example.com/leagues/", "dodgeball", "https://example.com/leagues/dodgeball"},
		{"https://example.com", "https://other.com/x", "https://other.com/x"},
	}

	for _, tt := range tests {
		if got := ResolveURL(tt.base, tt.href); got != tt.expected {
			t.Errorf("ResolveURL(%q, %q) = %q, want %q", tt.base, tt.href, got, tt.expected)
		}
	}
}
