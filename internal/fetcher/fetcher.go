package fetcher

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Fetcher pulls lightweight metadata off a company's public website. It is
// strictly best-effort: callers treat any error as "no metadata".
type Fetcher struct {
	client    *http.Client
	userAgent string
}

func New(timeout time.Duration, userAgent string) *Fetcher {
	return &Fetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

type SiteMeta struct {
	Title       string
	Description string
}

func (f *Fetcher) SiteMeta(ctx context.Context, rawURL string) (*SiteMeta, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme: %s", u.Scheme)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", u.Host, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", u.Host, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	meta := &SiteMeta{
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
	}
	if desc, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok {
		meta.Description = strings.TrimSpace(desc)
	}
	if meta.Description == "" {
		if desc, ok := doc.Find(`meta[property="og:description"]`).Attr("content"); ok {
			meta.Description = strings.TrimSpace(desc)
		}
	}
	return meta, nil
}
