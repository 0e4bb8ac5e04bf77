// Package scraper fetches article pages and extracts their main text.
package scraper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

// ErrNoContent is returned when a page was fetched but no usable article
// text could be extracted from it.
var ErrNoContent = errors.New("no article content found")

const maxBodyBytes = 2 << 20 // refuse to buffer more than 2 MiB of HTML

// Scraper downloads pages and extracts readable article text.
type Scraper struct {
	client *http.Client
}

func New(timeout time.Duration) *Scraper {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Scraper{
		client: &http.Client{Timeout: timeout},
	}
}

// Extract gets the main text of the article at rawURL. Readability is tried
// first; when it yields nothing, generic paragraph selectors are used as a
// fallback. An unreachable page or an empty extraction is an error.
func (s *Scraper) Extract(ctx context.Context, rawURL string) (string, error) {
	pageURL, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}

	body, err := s.fetch(ctx, rawURL)
	if err != nil {
		return "", err
	}

	text := extractReadable(body, pageURL)
	if text == "" {
		text = extractGenericContent(body)
	}

	text = cleanContent(text)
	if text == "" {
		return "", ErrNoContent
	}
	return text, nil
}

func (s *Scraper) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error loading page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read page: %w", err)
	}
	return body, nil
}

func extractReadable(body []byte, pageURL *url.URL) string {
	article, err := readability.FromReader(bytes.NewReader(body), pageURL)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(article.TextContent)
}

// extractGenericContent is a universal paragraph scraper for pages
// readability gives up on.
func extractGenericContent(body []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}

	var paragraphs []string

	// Try most popular selectors
	selectors := []string{
		"article p",
		".article-body p",
		".content p",
		".post-content p",
		".entry-content p",
		"main p",
		"p",
	}

	for _, selector := range selectors {
		doc.Find(selector).Each(func(i int, sel *goquery.Selection) {
			text := strings.TrimSpace(sel.Text())
			if len(text) > 20 {
				paragraphs = append(paragraphs, text)
			}
		})
		if len(paragraphs) >= 3 { // three paragraphs is enough signal
			break
		}
	}

	return strings.Join(paragraphs, "\n\n")
}

// cleanContent normalizes whitespace and drops boilerplate-looking lines.
func cleanContent(content string) string {
	if content == "" {
		return ""
	}

	junkIndicators := []string{
		"cookie", "gdpr", "subscribe to", "sign up for", "newsletter",
		"click here", "follow us", "share this article", "all rights reserved",
	}

	lines := strings.Split(content, "\n")
	var cleanLines []string
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if len(line) < 8 {
			continue
		}

		lower := strings.ToLower(line)
		isJunk := false
		for _, indicator := range junkIndicators {
			if strings.Contains(lower, indicator) {
				isJunk = true
				break
			}
		}
		if isJunk {
			continue
		}

		cleanLines = append(cleanLines, line)
	}

	return strings.TrimSpace(strings.Join(cleanLines, "\n\n"))
}
