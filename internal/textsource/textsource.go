// Package textsource loads raw corpus text from files, JSONL document sets,
// and web pages.
package textsource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// Document is one unit of source text.
type Document struct {
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	Body      string    `json:"text"`
	FetchedAt time.Time `json:"fetched_at"`
}

// LoadFile reads a plain-text corpus file.
func LoadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file %s: %w", path, err)
	}
	return string(data), nil
}

// LoadJSONL loads documents from a JSONL file, skipping malformed lines.
func LoadJSONL(path string) ([]Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}

	var docs []Document
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var doc Document
		if err := json.Unmarshal([]byte(line), &doc); err != nil {
			log.Printf("Warning: skipping malformed JSON at line %d in %s: %v", i+1, path, err)
			continue
		}
		docs = append(docs, doc)
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("no valid documents found in %s", path)
	}
	return docs, nil
}

// Join concatenates document bodies into one corpus text. Bodies are
// separated by a period token so sentences from different documents never
// fall inside each other's windows by accident of adjacency alone.
func Join(docs []Document) string {
	var sb strings.Builder
	for i, d := range docs {
		if i > 0 {
			sb.WriteString(" . ")
		}
		sb.WriteString(d.Body)
	}
	return sb.String()
}

// Fetch downloads a page and returns it as a document with HTML stripped.
func Fetch(ctx context.Context, url string) (Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Document{}, fmt.Errorf("fetch %s: %w", url, err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return Document{}, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Document{}, fmt.Errorf("fetch %s: HTTP %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Document{}, fmt.Errorf("fetch %s: %w", url, err)
	}

	title, text := parsePage(string(body))
	return Document{
		URL:       url,
		Title:     title,
		Body:      text,
		FetchedAt: time.Now().UTC(),
	}, nil
}

// StripHTML extracts the visible text of an HTML fragment. Parse failures
// fall back to the raw input.
func StripHTML(s string) string {
	_, text := parsePage(s)
	if text == "" {
		return strings.TrimSpace(s)
	}
	return text
}

func parsePage(raw string) (title, text string) {
	doc, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return "", ""
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch {
		case n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style"):
			return
		case n.Type == html.ElementNode && n.Data == "title":
			if n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
				title = strings.TrimSpace(n.FirstChild.Data)
			}
			return
		case n.Type == html.TextNode:
			buf.WriteString(n.Data)
			buf.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return title, strings.Join(strings.Fields(buf.String()), " ")
}
