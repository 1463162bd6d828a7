package leetcode

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"
)

const (
	// DefaultGraphQLEndpoint is the origin GraphQL API relays forward to.
	DefaultGraphQLEndpoint = "https://leetcode.com/graphql/"
	// DefaultStatsAPIEndpoint serves the flat per-user stats document.
	DefaultStatsAPIEndpoint = "https://leetcode-stats-api.herokuapp.com"

	maxBodyBytes  = 1 << 20
	maxErrorBytes = 1024
)

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// do performs req and returns the body of a 2xx response.
func do(client *http.Client, req *http.Request) ([]byte, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBytes))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: errorSnippet(resp.Header.Get("Content-Type"), data)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return body, nil
}

// StatusError reports a non-2xx upstream response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

func newRequest(ctx context.Context, method, url string, body io.Reader) (*http.Request, error) {
	if body == nil {
		body = http.NoBody
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// Relays and the stats API often answer errors with an HTML page.
func errorSnippet(contentType string, data []byte) string {
	text := string(data)
	if strings.Contains(contentType, "html") || strings.HasPrefix(strings.TrimSpace(text), "<") {
		text = htmlToText(text)
	}
	return strings.Join(strings.Fields(text), " ")
}

func htmlToText(input string) string {
	if input == "" {
		return ""
	}

	node, err := html.Parse(strings.NewReader(input))
	if err != nil {
		return input
	}

	var builder strings.Builder
	extractText(node, &builder)
	return builder.String()
}

func extractText(node *html.Node, builder *strings.Builder) {
	if node.Type == html.ElementNode && (node.Data == "script" || node.Data == "style") {
		return
	}
	if node.Type == html.TextNode {
		builder.WriteString(node.Data)
		builder.WriteRune(' ')
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		extractText(child, builder)
	}
}
