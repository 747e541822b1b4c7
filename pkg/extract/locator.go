// Package extract implements the document-level extraction strategies:
// locating an embedded circular, reading structured data blobs, walking
// visible offer markup, and splitting plain circular text.
package extract

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrNoPDFLink is returned when no tier of the locator finds a PDF
// reference in the page.
var ErrNoPDFLink = errors.New("no PDF link found in page")

// Attributes that commonly carry the circular link.
var pdfLinkAttrs = []string{"href", "src", "data-src", "data-href"}

var (
	absolutePDFRe = regexp.MustCompile(`https?://[^\s'"<>]+\.pdf(?:\?[^'"<>]*)?`)
	quotedPDFRe   = regexp.MustCompile(`['"]([^'"]+\.pdf(?:\?[^'"]*)?)['"]`)
)

// FindPDFLink locates the absolute URL of a PDF document embedded in a
// host page. Three tiers are tried in order, first hit wins:
//
//  1. element attributes (href, src, data-src, data-href) containing
//     ".pdf", resolved against the base URL
//  2. an absolute .pdf URL anywhere in the raw page text, taken verbatim
//  3. any quoted .pdf string in the raw page text, resolved against the
//     base URL
//
// Attribute matches always win over raw-text matches, even when a
// raw-text match appears earlier in the document.
func FindPDFLink(html, baseURL string) (string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}

	if link := pdfLinkFromAttrs(html, base); link != "" {
		return link, nil
	}

	// Some deployments reference the PDF from inline scripts or JSON
	// configuration objects instead of DOM elements.
	if match := absolutePDFRe.FindString(html); match != "" {
		return match, nil
	}
	if m := quotedPDFRe.FindStringSubmatch(html); m != nil {
		return resolveRef(base, m[1]), nil
	}

	return "", ErrNoPDFLink
}

func pdfLinkFromAttrs(html string, base *url.URL) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	var link string
	doc.Find("*").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		for _, attr := range pdfLinkAttrs {
			value, ok := s.Attr(attr)
			if !ok || value == "" {
				continue
			}
			if strings.Contains(strings.ToLower(value), ".pdf") {
				link = resolveRef(base, value)
				return false
			}
		}
		return true
	})
	return link
}

func resolveRef(base *url.URL, ref string) string {
	u, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return base.ResolveReference(u).String()
}
