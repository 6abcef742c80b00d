package extraction

import (
	"context"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

var linkPattern = regexp.MustCompile(`(?:https?://|www\.)[^\s<>"')\]]+`)

// linkAllowPrefixes is the fixed allow-list for href scanning in
// extended mode. Anything else on a fetched page is navigation noise.
var linkAllowPrefixes = []string{
	"http://",
	"https://",
	"ftp://",
	"mailto:",
	"www.linkedin.com",
	"github.com/",
	"twitter.com",
}

const linkFetchTimeout = 30 * time.Second

// Links scans the raw text for URL-shaped tokens. Trailing sentence
// punctuation is trimmed; results are deduplicated case-insensitively.
func (e *Extractor) Links(raw string) []string {
	matches := linkPattern.FindAllString(raw, -1)
	for i, m := range matches {
		matches[i] = strings.TrimRight(m, ".,;:")
	}
	return dedupe(matches)
}

// ExpandLinks fetches a URL found in the document and collects the
// href attributes of its page, filtered to the allow-list. Network or
// parse failures surface as a *StrategyError so the caller can log
// and continue with the plain text links.
func (e *Extractor) ExpandLinks(ctx context.Context, pageURL string) ([]string, error) {
	client := &http.Client{Timeout: linkFetchTimeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, &StrategyError{Field: "links", Cause: err}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &StrategyError{Field: "links", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &StrategyError{Field: "links", Cause: err}
	}

	return HrefLinks(string(body))
}

// HrefLinks parses HTML and returns every allow-listed href value,
// deduplicated in document order.
func HrefLinks(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &StrategyError{Field: "links", Cause: err}
	}

	var links []string
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, exists := s.Attr("href")
		if !exists || href == "" {
			return
		}
		if allowedLink(href) {
			links = append(links, href)
		}
	})
	return dedupe(links), nil
}

func allowedLink(href string) bool {
	for _, prefix := range linkAllowPrefixes {
		if strings.HasPrefix(href, prefix) {
			return true
		}
	}
	return false
}
