// Package fetch retrieves a job description from a URL and reduces its HTML
// to plain text suitable for keyword extraction.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout bounds a single JD fetch.
const DefaultTimeout = 30 * time.Second

// userAgent identifies us to job boards.
const userAgent = "Mozilla/5.0 (compatible; CandidateProfiler/1.0)"

// minTextLength guards against pages that render their content with
// JavaScript; the stripped text of a real JD is always longer than this.
const minTextLength = 120

// Error wraps a failure to retrieve or process a JD URL.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// JD downloads a job posting and returns its visible text. The caller owns
// retry and timeout policy beyond the per-request timeout.
func JD(ctx context.Context, rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", &Error{URL: rawURL, Message: "invalid URL", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", &Error{URL: rawURL, Message: "failed to build request", Cause: err}
	}
	req.Header.Set("User-Agent", userAgent)

	client := &http.Client{Timeout: DefaultTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", &Error{URL: rawURL, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", &Error{URL: rawURL, Message: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{URL: rawURL, Message: "failed to read body", Cause: err}
	}

	text, err := HTMLToText(string(body))
	if err != nil {
		return "", &Error{URL: rawURL, Message: "failed to parse HTML", Cause: err}
	}
	if len(text) < minTextLength {
		return "", &Error{URL: rawURL, Message: "page contained too little text (JavaScript-rendered?)"}
	}
	return text, nil
}

var multiBlankRe = regexp.MustCompile(`\n{3,}`)

// HTMLToText strips chrome elements and returns the visible text of an HTML
// document, one block element per line.
func HTMLToText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	doc.Find("script, style, noscript, nav, header, footer, form").Remove()

	var sb strings.Builder
	doc.Find("h1, h2, h3, h4, h5, h6, p, li, td, div").Each(func(_ int, s *goquery.Selection) {
		// Only leaf-ish nodes; containers repeat their children's text.
		if s.Children().Filter("p, li, div, ul, ol, table").Length() > 0 {
			return
		}
		text := strings.TrimSpace(s.Text())
		if text != "" {
			sb.WriteString(text)
			sb.WriteString("\n")
		}
	})

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		text = strings.TrimSpace(doc.Find("body").Text())
	}
	return strings.TrimSpace(multiBlankRe.ReplaceAllString(text, "\n\n")), nil
}
