package console

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/cheggaaa/pb/v3"
)

const barTemplate = `{{string . "prefix"}} {{bar . }} {{counters . }}`

// Tracker follows the progress of one phase of work. On a terminal a known
// total is drawn as a progress bar and an unknown one as a spinner; elsewhere
// nothing is drawn until Done prints a single summary line.
type Tracker struct {
	c *Console

	mu      sync.Mutex
	done    int // only counted when the total is unknown
	message string

	bar  *pb.ProgressBar
	live bool
	spin *spinner.Spinner
}

// Track starts a tracker. A total of zero means the amount of work is not
// known up front.
func (c *Console) Track(title string, total int) *Tracker {
	t := &Tracker{c: c, message: title}
	f, isFile := c.out.(*os.File)
	onTerminal := isFile && c.terminal

	if total > 0 {
		t.bar = newBar(total, title)
		if onTerminal {
			t.bar.SetWriter(f)
			t.bar.Start()
			t.live = true
		}
		return t
	}

	if onTerminal {
		t.spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriterFile(f))
		if c.colored() {
			// Color only rejects unknown colour names.
			_ = t.spin.Color("cyan")
		}
		t.spin.Suffix = " " + t.summary()
		t.spin.Start()
	}
	return t
}

func newBar(total int, prefix string) *pb.ProgressBar {
	bar := pb.New(total)
	bar.SetTemplateString(barTemplate)
	bar.Set("prefix", prefix)
	return bar
}

// Report advances the tracker by advance units and replaces its message when
// message is not empty.
func (t *Tracker) Report(advance int, message string) {
	if t.bar != nil {
		if message != "" {
			t.bar.Set("prefix", message)
		}
		t.bar.Add(advance)
	}

	t.mu.Lock()
	if t.bar == nil {
		t.done += advance
	}
	if message != "" {
		t.message = message
	}
	suffix := " " + t.summary()
	t.mu.Unlock()

	if t.spin != nil {
		t.spin.Lock()
		t.spin.Suffix = suffix
		t.spin.Unlock()
	}
}

// Done stops the tracker and leaves its final state on screen.
func (t *Tracker) Done() {
	t.mu.Lock()
	final := t.summary()
	t.mu.Unlock()

	switch {
	case t.live:
		t.bar.Finish()
	case t.spin != nil:
		t.spin.FinalMSG = "✔ " + final + "\n"
		t.spin.Stop()
	default:
		fmt.Fprintln(t.c.out, final)
	}
}

func (t *Tracker) summary() string {
	if t.bar != nil {
		return fmt.Sprintf("%s: %d/%d", t.message, t.bar.Current(), t.bar.Total())
	}
	return fmt.Sprintf("%s: %d", t.message, t.done)
}
