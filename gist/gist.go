package gist

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/google/go-github/v68/github"
	"github.com/samber/lo"
)

// Gist is the read-only view of a gist that the purge workflow needs.
type Gist struct {
	ID          string
	CreatedAt   time.Time
	Files       []string
	Description string
}

// StatusError reports an API response with an unexpected status code.
type StatusError struct {
	Code int
	Err  error
}

func (e *StatusError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unexpected status %d: %v", e.Code, e.Err)
	}
	return fmt.Sprintf("unexpected status %d (%s)", e.Code, http.StatusText(e.Code))
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status carried by err, or 0 when err did not
// come from an API response.
func StatusCode(err error) int {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code
	}
	return 0
}

func fromGitHub(g *github.Gist) Gist {
	files := lo.Map(lo.Keys(g.Files), func(name github.GistFilename, _ int) string {
		return string(name)
	})
	slices.Sort(files)

	return Gist{
		ID:          g.GetID(),
		CreatedAt:   g.GetCreatedAt().Time.UTC(),
		Files:       files,
		Description: g.GetDescription(),
	}
}
