// Package github is a minimal GitHub REST client covering the two
// provider contracts the analysis pipeline consumes: repository listing
// and per-repository commit history.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the public GitHub API endpoint.
const DefaultBaseURL = "https://api.github.com"

// ErrNotFound is returned when the requested user does not exist.
// It is the only terminal error in the pipeline: an empty repository
// list is valid, a missing user is not.
var ErrNotFound = errors.New("github: not found")

// Client talks to the GitHub REST API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint (used by tests).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithToken sets a bearer token for authenticated requests. Unauthenticated
// requests work but are heavily rate limited.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a GitHub client with the given options applied.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get performs a GET request and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("github API error: %s - %s", resp.Status, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// User fetches the profile record for a login. A missing user returns
// ErrNotFound.
func (c *Client) User(ctx context.Context, login string) (*User, error) {
	var u User
	if err := c.get(ctx, "/users/"+url.PathEscape(login), &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Repositories lists up to 100 repositories for a login, most recently
// updated first. An empty slice is a valid result for a user with no
// public repositories.
func (c *Client) Repositories(ctx context.Context, login string) ([]Repository, error) {
	var repos []Repository
	path := fmt.Sprintf("/users/%s/repos?per_page=100&sort=updated", url.PathEscape(login))
	if err := c.get(ctx, path, &repos); err != nil {
		return nil, err
	}
	return repos, nil
}

// Commits fetches up to 30 recent commits for owner/repo. Callers treat
// any error here as "no signal" rather than failing their batch.
func (c *Client) Commits(ctx context.Context, owner, repo string) ([]Commit, error) {
	var envelopes []commitEnvelope
	path := fmt.Sprintf("/repos/%s/%s/commits?per_page=30", url.PathEscape(owner), url.PathEscape(repo))
	if err := c.get(ctx, path, &envelopes); err != nil {
		return nil, err
	}

	commits := make([]Commit, 0, len(envelopes))
	for _, e := range envelopes {
		commits = append(commits, Commit{
			Message:    e.Commit.Message,
			AuthorDate: e.Commit.Author.Date,
		})
	}
	return commits, nil
}

// ParseProfileURL extracts the login from a GitHub profile URL. A bare
// username is accepted as-is.
func ParseProfileURL(raw string) (string, error) {
	trimmed := raw
	for len(trimmed) > 0 && trimmed[len(trimmed)-1] == '/' {
		trimmed = trimmed[:len(trimmed)-1]
	}
	if trimmed == "" {
		return "", errors.New("github: empty profile URL")
	}

	// Accept bare usernames without a scheme or host.
	if u, err := url.Parse(trimmed); err == nil && u.Host != "" {
		segments := splitPath(u.Path)
		if len(segments) == 0 {
			return "", fmt.Errorf("github: no username in URL %q", raw)
		}
		return segments[len(segments)-1], nil
	}

	segments := splitPath(trimmed)
	return segments[len(segments)-1], nil
}

func splitPath(p string) []string {
	var segments []string
	start := 0
	for i := 0; i <= len(p); i++ {
		if i == len(p) || p[i] == '/' {
			if i > start {
				segments = append(segments, p[start:i])
			}
			start = i + 1
		}
	}
	return segments
}
