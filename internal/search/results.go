package search

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// resultSelectors is the prioritized cascade of structural selectors for
// search-result pages, most specific first. The first selector that yields
// any accepted URL is used exclusively for that page; merging across
// selectors would only duplicate the noise a specific selector already
// filtered out.
var resultSelectors = []string{
	"div.yuRUbf a",
	"div.g div.yuRUbf a",
	"div.rc a",
	"h3.LC20lb a",
	"a[href^='http']",
	"div.g a[href^='http']",
}

// ResultParser discovers outbound result URLs in search-result HTML.
type ResultParser struct {
	engineDomain string
}

// NewResultParser returns a parser that excludes any URL whose host contains
// engineDomain, so the engine's own links never leak into results.
func NewResultParser(engineDomain string) *ResultParser {
	return &ResultParser{engineDomain: engineDomain}
}

// Discover returns the deduplicated set of absolute URLs pointing off the
// search engine's domain. An empty result is a normal outcome, not an error.
func (p *ResultParser) Discover(html string) []string {
	if html == "" {
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	for _, selector := range resultSelectors {
		urls := p.collect(doc, selector)
		if len(urls) > 0 {
			return urls
		}
	}

	// The whole cascade came up empty: scan every anchor, unwrapping
	// redirect-style links to recover the real target.
	seen := make(map[string]struct{})
	var urls []string
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if target, ok := unwrapRedirect(href); ok {
			href = target
		}
		if p.accept(href) {
			if _, dup := seen[href]; !dup {
				seen[href] = struct{}{}
				urls = append(urls, href)
			}
		}
	})
	return urls
}

func (p *ResultParser) collect(doc *goquery.Document, selector string) []string {
	seen := make(map[string]struct{})
	var urls []string
	doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if !p.accept(href) {
			return
		}
		if _, dup := seen[href]; dup {
			return
		}
		seen[href] = struct{}{}
		urls = append(urls, href)
	})
	return urls
}

// accept keeps absolute URLs whose host does not contain the engine domain.
func (p *ResultParser) accept(href string) bool {
	if !strings.HasPrefix(href, "http") {
		return false
	}
	u, err := url.Parse(href)
	if err != nil {
		return false
	}
	return !strings.Contains(u.Host, p.engineDomain)
}

// unwrapRedirect recovers the target of a /url?q=<target>&... style link.
func unwrapRedirect(href string) (string, bool) {
	if !strings.HasPrefix(href, "/url?") {
		return "", false
	}
	u, err := url.Parse(href)
	if err != nil {
		return "", false
	}
	target := u.Query().Get("q")
	if target == "" {
		return "", false
	}
	return target, true
}
