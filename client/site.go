package client

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/aweist/leaguecal/models"
)

// PageCache stores fetched documents so repeated runs within the TTL
// don't re-hit the club's site.
type PageCache interface {
	GetPage(url string) (*models.CachedPage, error)
	SavePage(page models.CachedPage) error
}

type SiteClient struct {
	baseURL    string
	httpClient *http.Client
	cache      PageCache
	cacheTTL   time.Duration
}

func NewSiteClient(baseURL string, cache PageCache, cacheTTL time.Duration) *SiteClient {
	return &SiteClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// FetchDocument retrieves pageURL and parses it into a queryable document,
// serving from the page cache when a fresh enough copy exists.
func (c *SiteClient) FetchDocument(pageURL string) (*goquery.Document, error) {
	body, err := c.fetchPage(pageURL, true)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", pageURL, err)
	}

	return doc, nil
}

// FetchFreshDocument bypasses the page cache. The poller uses this so a
// stale cached page can't mask a schedule change.
func (c *SiteClient) FetchFreshDocument(pageURL string) (*goquery.Document, error) {
	body, err := c.fetchPage(pageURL, false)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", pageURL, err)
	}

	return doc, nil
}

// ResolveURL resolves a possibly relative href against the site base URL.
func (c *SiteClient) ResolveURL(href string) string {
	return ResolveURL(c.baseURL, href)
}

func ResolveURL(baseURL, href string) string {
	base, err := url.Parse(baseURL)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}

func (c *SiteClient) fetchPage(pageURL string, useCache bool) ([]byte, error) {
	if useCache && c.cache != nil {
		page, err := c.cache.GetPage(pageURL)
		if err == nil && page != nil && time.Since(page.FetchedAt) < c.cacheTTL {
			return page.Body, nil
		}
	}

	req, err := http.NewRequest("GET", pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	// Browser-like headers; the site serves a reduced page to obvious bots.
	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Connection", "keep-alive")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: status %d", pageURL, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.cache != nil {
		cached := models.CachedPage{
			URL:       pageURL,
			Body:      body,
			FetchedAt: time.Now(),
		}
		if err := c.cache.SavePage(cached); err != nil {
			// Cache failures are not fatal; the page was still fetched.
			return body, nil
		}
	}

	return body, nil
}
