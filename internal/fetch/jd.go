// Package fetch - jd.go distills fetched HTML into job description text.
package fetch

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// MaxJDLines caps the number of lines kept from a scraped page. Job boards
// bury the posting in long pages and the prompt has a token budget.
const MaxJDLines = 200

// minJDLines is the capture threshold below which the relevance filter is
// assumed to have missed the posting and a length-only fallback is used.
const minJDLines = 20

// noiseTags are elements removed wholesale before text extraction.
var noiseTags = []string{"script", "style", "noscript", "header", "footer", "nav", "iframe"}

// sectionMarkers begin the job description proper. Once one is seen, every
// subsequent line is captured.
var sectionMarkers = []string{
	"about the position", "job description", "what you'll do",
	"what you will do", "responsibilities", "requirements",
	"qualifications", "expertise", "skills required",
}

// skipMarkers identify navigation and footer boilerplate.
var skipMarkers = []string{
	"copyright", "privacy policy", "cookie", "follow us",
	"all rights reserved", "terms of service",
}

// techKeywords capture relevant lines appearing before any section marker.
var techKeywords = []string{
	"javascript", "react", "angular", "vue", "python", "java",
	"typescript", "html", "css", "node", "framework", "api",
	"experience", "developer", "engineer", "years", "must have",
}

// ScrapeJD fetches a job posting URL and returns the extracted description
// text. It tries a plain HTTP fetch first and falls back to headless browser
// rendering when the page is a SPA shell or the fetch fails outright.
func ScrapeJD(ctx context.Context, urlStr string, opts *Options, verbose bool) (string, error) {
	pageHTML, err := URL(ctx, urlStr, opts)
	switch {
	case err != nil:
		if verbose {
			log.Printf("[FETCH] Plain fetch failed, falling back to browser: %v", err)
		}
		pageHTML, err = BrowserSimple(ctx, urlStr, verbose)
		if err != nil {
			return "", err
		}
	case IsDynamic(pageHTML):
		if verbose {
			log.Printf("[FETCH] Detected SPA markup, rendering with browser")
		}
		pageHTML, err = BrowserSimple(ctx, urlStr, verbose)
		if err != nil {
			return "", err
		}
	default:
		if verbose {
			log.Printf("[FETCH] Static page, plain fetch succeeded")
		}
	}

	text, err := ExtractJobDescription(pageHTML)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "failed to extract job description", Cause: err}
	}

	if TooShort(text) && verbose {
		log.Printf("[FETCH] Warning: very little content extracted (%d bytes)", len(text))
	}

	return text, nil
}

// ExtractJobDescription strips noise elements from HTML and filters the
// remaining text down to lines that belong to the job posting.
func ExtractJobDescription(pageHTML string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find(strings.Join(noiseTags, ", ")).Remove()

	raw := textLines(doc)
	return filterJDLines(raw), nil
}

// textLines collects every text node in document order, so block boundaries
// become line boundaries. Node data is split on embedded newlines too; a
// multi-line node kept whole would slip its short or boilerplate lines past
// the per-line filters.
func textLines(doc *goquery.Document) []string {
	var lines []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			lines = append(lines, strings.Split(n.Data, "\n")...)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range doc.Selection.Nodes {
		walk(n)
	}
	return lines
}

// filterJDLines applies the relevance filter: short lines are dropped,
// boilerplate is skipped, and lines are kept once a section marker has been
// seen or when they mention known technology keywords. If the filter keeps
// too little, a length-only pass is used instead.
func filterJDLines(raw []string) string {
	var kept []string
	capture := false

	for _, line := range raw {
		line = strings.TrimSpace(line)
		if len(line) < 15 {
			continue
		}

		lower := strings.ToLower(line)

		if containsAny(lower, sectionMarkers) {
			capture = true
		}
		if containsAny(lower, skipMarkers) {
			continue
		}
		if capture || containsAny(lower, techKeywords) {
			kept = append(kept, line)
		}
	}

	if len(kept) < minJDLines {
		kept = kept[:0]
		for _, line := range raw {
			line = strings.TrimSpace(line)
			if len(line) > 25 {
				kept = append(kept, line)
			}
		}
	}

	if len(kept) > MaxJDLines {
		kept = kept[:MaxJDLines]
	}
	return strings.Join(kept, "\n")
}

func containsAny(s string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(s, needle) {
			return true
		}
	}
	return false
}
