// Package arbitration implements the external "did you mean" fallback: a
// rate-limited query against a public search index with the misspelled
// word's context, extracting the correction the engine offers when one is
// present. It is best effort; every failure degrades to "no candidate".
package arbitration

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// DefaultDelay is the fixed pause before each search request. Search engines
// block scripted clients that query faster than a human could.
const DefaultDelay = 3 * time.Second

// Phrases that mark the correction anchor on the result page.
var correctionPhrases = []string{"Did you mean", "Showing results for"}

// Client queries the search endpoint for corrections. Calls are serialized
// by the enforced delay; a Client must not be shared across goroutines.
type Client struct {
	httpClient *http.Client
	searchURL  string
	userAgent  string
	delay      time.Duration
}

// NewClient creates a Client using the service configuration and the default
// inter-call delay.
func NewClient() *Client {
	cfg := GetConfig()
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		searchURL:  cfg.SearchURL,
		userAgent:  cfg.UserAgent,
		delay:      DefaultDelay,
	}
}

// NewClientWithDelay creates a Client against a specific endpoint with a
// specific delay. Used by tests and by deployments with a private endpoint.
func NewClientWithDelay(searchURL string, delay time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		searchURL:  searchURL,
		userAgent:  GetConfig().UserAgent,
		delay:      delay,
	}
}

// Lookup queries the search endpoint with the given context string and
// returns the candidate words from the engine's correction anchor. An empty
// slice with a nil error means the page parsed cleanly but offered no
// correction. Errors cover the block/captcha failure modes; callers degrade
// to "no candidate" on them.
func (c *Client) Lookup(ctx context.Context, query string) ([]string, error) {
	// Fixed pause before every call to respect rate limits.
	if c.delay > 0 {
		select {
		case <-time.After(c.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	reqURL := c.searchURL + "?q=" + url.QueryEscape(query)
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %v", err)
	}

	// Set headers to mimic a browser
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search returned status %s; your IP address may be blocked", resp.Status)
	}

	root, err := html.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error parsing result page: %v", err)
	}

	mainContent := findElementByID(root, "main")
	if mainContent == nil {
		return nil, fmt.Errorf("no main content block on result page; you may have hit a spam block or captcha")
	}

	return extractCorrections(mainContent), nil
}

// extractCorrections finds the first anchor under the main content block
// whose target is a search link and whose enclosing text carries one of the
// correction phrases, and returns the emphasized words inside it.
func extractCorrections(mainContent *html.Node) []string {
	var corrections []string

	var walk func(n *html.Node) bool
	walk = func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == "a" &&
			strings.Contains(attrValue(n, "href"), "/search") &&
			enclosingTextHasPhrase(n) {
			corrections = collectBoldText(n)
			return true
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			if walk(child) {
				return true
			}
		}
		return false
	}
	walk(mainContent)

	return corrections
}

// enclosingTextHasPhrase checks the anchor's parent text for the correction
// phrases the result page labels its suggestion with.
func enclosingTextHasPhrase(anchor *html.Node) bool {
	if anchor.Parent == nil {
		return false
	}
	text := nodeText(anchor.Parent)
	for _, phrase := range correctionPhrases {
		if strings.Contains(text, phrase) {
			return true
		}
	}
	return false
}

// collectBoldText gathers the text of every <b> element under a node, in
// document order.
func collectBoldText(n *html.Node) []string {
	var words []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "b" {
			if text := nodeText(n); text != "" {
				words = append(words, text)
			}
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return words
}

// findElementByID does a depth-first search for the element with the given id.
func findElementByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode && attrValue(n, "id") == id {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findElementByID(child, id); found != nil {
			return found
		}
	}
	return nil
}

// nodeText concatenates the text content of a node's subtree.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return sb.String()
}

// attrValue returns the value of the named attribute, or "".
func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
