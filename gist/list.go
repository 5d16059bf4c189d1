package gist

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-github/v68/github"
)

// ListPage fetches one page of the authenticated user's gists. An empty slice
// means there are no more pages.
func (c *Client) ListPage(ctx context.Context, page int) ([]Gist, error) {
	opts := &github.GistListOptions{
		ListOptions: github.ListOptions{Page: page, PerPage: c.perPage},
	}

	gs, resp, err := c.gh.Gists.List(ctx, "", opts)
	if err := checkStatus(resp, err, http.StatusOK); err != nil {
		return nil, fmt.Errorf("listing gists page %d: %w", page, err)
	}

	out := make([]Gist, 0, len(gs))
	for _, g := range gs {
		out = append(out, fromGitHub(g))
	}
	return out, nil
}

// checkStatus folds the go-github (response, error) pair into a single error.
// Any response whose status differs from want becomes a *StatusError; errors
// without a response are transport failures and pass through unchanged.
func checkStatus(resp *github.Response, err error, want int) error {
	if resp != nil && resp.Response != nil && resp.StatusCode != want {
		return &StatusError{Code: resp.StatusCode, Err: err}
	}
	return err
}
