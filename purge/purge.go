// Package purge lists every gist owned by the authenticated user and, once the
// operator confirms, deletes them one at a time.
package purge

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/dataSPA/gist-purge/console"
	"github.com/dataSPA/gist-purge/gist"
)

// DefaultDeleteDelay is the pause after every delete request. It keeps a large
// purge under the API's secondary rate limits.
const DefaultDeleteDelay = 500 * time.Millisecond

const confirmWord = "yes"

// API is the subset of the gist client the purge needs.
type API interface {
	ListPage(ctx context.Context, page int) ([]gist.Gist, error)
	Delete(ctx context.Context, id string) error
}

// Reporter receives progress updates.
type Reporter interface {
	Report(advance int, message string)
}

// Options configures a Purger. Zero values select the defaults.
type Options struct {
	Delay  time.Duration
	Sleep  func(ctx context.Context, d time.Duration) error
	Logger log.Logger
}

// Purger runs the fetch, confirm, delete sequence.
type Purger struct {
	api    API
	con    *console.Console
	delay  time.Duration
	sleep  func(ctx context.Context, d time.Duration) error
	logger log.Logger
}

func New(api API, con *console.Console, opts Options) *Purger {
	p := &Purger{
		api:    api,
		con:    con,
		delay:  opts.Delay,
		sleep:  opts.Sleep,
		logger: opts.Logger,
	}
	if p.delay <= 0 {
		p.delay = DefaultDeleteDelay
	}
	if p.sleep == nil {
		p.sleep = sleepContext
	}
	if p.logger == nil {
		p.logger = log.NewNopLogger()
	}
	return p
}

// FetchAll pages through the user's gists until the API returns an empty
// page. The first failing page aborts the fetch and nothing is returned.
func (p *Purger) FetchAll(ctx context.Context, r Reporter) ([]gist.Gist, error) {
	var all []gist.Gist
	for page := 1; ; page++ {
		gists, err := p.api.ListPage(ctx, page)
		if err != nil {
			return nil, err
		}
		level.Debug(p.logger).Log("msg", "fetched gists page", "page", page, "count", len(gists))
		if len(gists) == 0 {
			return all, nil
		}
		all = append(all, gists...)
		r.Report(len(gists), "")
	}
}

// IsConfirmed reports whether answer is the confirmation word, ignoring case
// and surrounding whitespace.
func IsConfirmed(answer string) bool {
	return strings.ToLower(strings.TrimSpace(answer)) == confirmWord
}

// Confirm warns that count gists are about to be destroyed and asks the
// operator to type the confirmation word.
func (p *Purger) Confirm(count int) (bool, error) {
	p.con.Println()
	p.con.Warn("Warning: you are about to delete %s gists", humanize.Comma(int64(count)))
	p.con.Error("This operation cannot be undone!")
	p.con.Println()
	answer, err := p.con.Prompt(fmt.Sprintf("Type '%s' to confirm deletion: ", confirmWord))
	if err != nil {
		return false, err
	}
	return IsConfirmed(answer), nil
}

// Run fetches every gist, lists them, and deletes them after confirmation.
// A returned error is fatal: the fetch failed and nothing was deleted.
func (p *Purger) Run(ctx context.Context) error {
	p.con.Title("Fetching your gists...")

	tracker := p.con.Track("Fetching gists", 0)
	gists, err := p.FetchAll(ctx, tracker)
	tracker.Done()
	if err != nil {
		if code := gist.StatusCode(err); code != 0 {
			p.con.Error("Failed to fetch gists: status %d", code)
		} else {
			p.con.Error("Failed to fetch gists: %v", err)
		}
		return fmt.Errorf("fetching gists: %w", err)
	}

	if len(gists) == 0 {
		p.con.Warn("No gists found")
		return nil
	}

	p.con.Println()
	p.con.Success("Found %s gists:", humanize.Comma(int64(len(gists))))
	for _, g := range gists {
		p.con.Println(gist.Format(g))
	}

	ok, err := p.Confirm(len(gists))
	if err != nil {
		return err
	}
	if ok {
		total := len(gists)
		tracker := p.con.Track(fmt.Sprintf("Deleting gists 0/%d", total), total)
		summary := p.DeleteAll(ctx, gists, tracker)
		tracker.Done()
		p.printSummary(summary)
	} else {
		p.con.Warn("Deletion cancelled, nothing was deleted")
	}

	p.con.Success("Done!")
	return nil
}

func (p *Purger) printSummary(s Summary) {
	failures := s.Failures()
	for _, f := range failures {
		switch f.Outcome {
		case HTTPFailure:
			p.con.Warn("Warning: failed to delete gist %s (status %d)", f.ID, f.StatusCode)
		default:
			p.con.Error("Error: could not delete gist %s: %v", f.ID, f.Err)
		}
	}
	if len(failures) > 0 {
		p.con.Warn("Deleted %d of %d gists", s.Deleted(), len(s.Results))
		return
	}
	p.con.Success("Deleted %d of %d gists", s.Deleted(), len(s.Results))
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
