// Package web implements the outbound HTTP actions: page fetches rendered
// to readable text and raw API calls.
package web

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// DefaultMaxBytes caps response bodies so a single fetch cannot flood an
// agent's history.
const DefaultMaxBytes = 512 * 1024

var (
	ErrInvalidURL = errors.New("invalid url")
	ErrHTTPStatus = errors.New("http error status")
)

// Page is one fetched document.
type Page struct {
	URL         string
	Status      int
	ContentType string
	Content     string
	Truncated   bool
}

// Fetcher retrieves pages for the fetch_web action.
type Fetcher struct {
	client *http.Client
	logger *slog.Logger
}

func NewFetcher(timeout time.Duration, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
		logger: logger.With(slog.String("component", "web")),
	}
}

// Fetch GETs an absolute http(s) URL, reading at most maxBytes. HTML bodies
// are reduced to readable text; everything else passes through raw.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string, maxBytes int64) (*Page, error) {
	if err := validateURL(rawURL); err != nil {
		return nil, err
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "text/html, text/plain, application/json;q=0.9, */*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	body, truncated, err := readCapped(resp.Body, maxBytes)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", rawURL, err)
	}

	page := &Page{
		URL:         rawURL,
		Status:      resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Truncated:   truncated,
	}
	if resp.StatusCode >= 400 {
		page.Content = string(body)
		return page, fmt.Errorf("%w: %d fetching %s", ErrHTTPStatus, resp.StatusCode, rawURL)
	}

	if strings.Contains(page.ContentType, "text/html") {
		page.Content = htmlToText(string(body))
	} else {
		page.Content = string(body)
	}
	return page, nil
}

func validateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: scheme %q", ErrInvalidURL, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: missing host", ErrInvalidURL)
	}
	return nil
}

func readCapped(r io.Reader, maxBytes int64) ([]byte, bool, error) {
	body, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, false, err
	}
	if int64(len(body)) > maxBytes {
		return body[:maxBytes], true, nil
	}
	return body, false, nil
}

// htmlToText renders HTML to a compact text form: headings as markdown
// headings, list items as bullets, links inline, script and style dropped.
func htmlToText(src string) string {
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return src
	}
	var sb strings.Builder
	renderNode(&sb, doc)
	return collapseBlankLines(sb.String())
}

func renderNode(sb *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		text := strings.TrimSpace(n.Data)
		if text != "" {
			sb.WriteString(text)
			sb.WriteString(" ")
		}
		return
	case html.ElementNode:
		switch n.Data {
		case "script", "style", "noscript", "head":
			return
		case "h1", "h2", "h3", "h4", "h5", "h6":
			sb.WriteString("\n\n")
			sb.WriteString(strings.Repeat("#", int(n.Data[1]-'0')))
			sb.WriteString(" ")
		case "p", "div", "section", "article", "tr", "br":
			sb.WriteString("\n")
		case "li":
			sb.WriteString("\n- ")
		case "a":
			if href := attr(n, "href"); href != "" && strings.HasPrefix(href, "http") {
				var inner strings.Builder
				for c := n.FirstChild; c != nil; c = c.NextSibling {
					renderNode(&inner, c)
				}
				fmt.Fprintf(sb, "[%s](%s) ", strings.TrimSpace(inner.String()), href)
				return
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		renderNode(sb, c)
	}
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func collapseBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	var out []string
	blank := 0
	for _, line := range lines {
		line = strings.TrimRight(line, " ")
		if strings.TrimSpace(line) == "" {
			blank++
			if blank > 1 {
				continue
			}
			line = ""
		} else {
			blank = 0
		}
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
