package gist

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v68/github"
	githubauth "github.com/jferrl/go-githubauth"
	"golang.org/x/oauth2"
)

const (
	DefaultBaseURL = "https://api.github.com/"
	DefaultPerPage = 100
	DefaultTimeout = 30 * time.Second
)

// Options tunes how a Client talks to the API. Zero values fall back to the
// package defaults.
type Options struct {
	BaseURL   string
	PerPage   int
	Timeout   time.Duration
	UserAgent string
}

// Client wraps a GitHub API client for the authenticated user's gists.
type Client struct {
	gh      *github.Client
	perPage int
}

// NewClient creates a gist Client that authenticates every request with the
// given personal access token.
func NewClient(token string, opts Options) (*Client, error) {
	if token == "" {
		return nil, errors.New("a GitHub token is required")
	}

	tokenSource := githubauth.NewPersonalAccessTokenSource(token)
	httpClient := oauth2.NewClient(context.Background(), tokenSource)
	httpClient.Timeout = opts.Timeout
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = DefaultTimeout
	}

	gh := github.NewClient(httpClient)

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing api url %q: %w", baseURL, err)
	}
	gh.BaseURL = u

	if opts.UserAgent != "" {
		gh.UserAgent = opts.UserAgent
	}

	perPage := opts.PerPage
	if perPage <= 0 {
		perPage = DefaultPerPage
	}

	return &Client{gh: gh, perPage: perPage}, nil
}

// PerPage reports the page size used by ListPage.
func (c *Client) PerPage() int {
	return c.perPage
}
