package purge

import (
	"context"
	"fmt"

	"github.com/go-kit/log/level"
	"github.com/samber/lo"

	"github.com/dataSPA/gist-purge/gist"
)

// Outcome classifies a single delete attempt.
type Outcome int

const (
	Deleted Outcome = iota
	HTTPFailure
	TransportFailure
)

func (o Outcome) String() string {
	switch o {
	case Deleted:
		return "deleted"
	case HTTPFailure:
		return "http-failure"
	case TransportFailure:
		return "transport-failure"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result is what happened to one gist.
type Result struct {
	ID         string
	Outcome    Outcome
	StatusCode int // set for HTTPFailure
	Err        error
}

// Summary collects the results of a DeleteAll call in deletion order.
type Summary struct {
	Results []Result
}

// Deleted counts the gists that were removed.
func (s Summary) Deleted() int {
	return lo.CountBy(s.Results, func(r Result) bool { return r.Outcome == Deleted })
}

// Failures returns the results that did not delete their gist.
func (s Summary) Failures() []Result {
	return lo.Filter(s.Results, func(r Result, _ int) bool { return r.Outcome != Deleted })
}

// DeleteAll deletes gists strictly in order, one request at a time. A failed
// delete never stops the batch. Every attempt is followed by the configured
// delay and a single progress step.
func (p *Purger) DeleteAll(ctx context.Context, gists []gist.Gist, r Reporter) Summary {
	total := len(gists)
	s := Summary{Results: make([]Result, 0, total)}

	for i, g := range gists {
		res := classify(g.ID, p.api.Delete(ctx, g.ID))
		s.Results = append(s.Results, res)
		if res.Outcome == Deleted {
			level.Debug(p.logger).Log("msg", "deleted gist", "id", g.ID)
		} else {
			level.Debug(p.logger).Log("msg", "failed to delete gist", "id", g.ID, "outcome", res.Outcome, "err", res.Err)
		}

		if err := p.sleep(ctx, p.delay); err != nil {
			level.Debug(p.logger).Log("msg", "delete delay interrupted", "err", err)
		}

		r.Report(1, fmt.Sprintf("Deleting gists %d/%d", i+1, total))
	}
	return s
}

func classify(id string, err error) Result {
	switch {
	case err == nil:
		return Result{ID: id, Outcome: Deleted}
	case gist.StatusCode(err) != 0:
		return Result{ID: id, Outcome: HTTPFailure, StatusCode: gist.StatusCode(err), Err: err}
	default:
		return Result{ID: id, Outcome: TransportFailure, Err: err}
	}
}
