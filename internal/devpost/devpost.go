// Package devpost fetches a public Devpost profile page and counts
// hackathon participation, submitted projects, and prize wins.
package devpost

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// ErrNotFound indicates the profile page does not exist.
var ErrNotFound = errors.New("devpost: profile not found")

// Stats is the hackathon activity summary for one profile.
type Stats struct {
	HackathonsParticipated int     `json:"hackathons_participated"`
	ProjectsSubmitted      int     `json:"projects_submitted"`
	Wins                   int     `json:"wins"`
	WinRate                float64 `json:"win_rate"`
}

// Client fetches and parses Devpost profile pages.
type Client struct {
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a Devpost client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Profile fetches the profile page at url and extracts its stats.
// WinRate is wins over hackathons as a percentage rounded to one
// decimal, zero when no hackathons were entered.
func (c *Client) Profile(ctx context.Context, url string) (*Stats, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: unexpected status %d", url, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", url, err)
	}

	return parseStats(doc), nil
}

// parseStats counts the profile page's entry, project, and winner
// markers.
func parseStats(doc *goquery.Document) *Stats {
	stats := &Stats{
		HackathonsParticipated: doc.Find("div.software-entry").Length(),
		ProjectsSubmitted:      doc.Find("article.software").Length(),
		Wins:                   doc.Find("span.winner").Length(),
	}
	if stats.HackathonsParticipated > 0 {
		rate := float64(stats.Wins) / float64(stats.HackathonsParticipated) * 100
		stats.WinRate = math.Round(rate*10) / 10
	}
	return stats
}
