package session

import (
	"fmt"

	"github.com/verte-zerg/minitype/internal/generator"
	"github.com/verte-zerg/minitype/internal/model"
)

// Event is an input message consumed by a Controller.
type Event interface {
	isEvent()
}

// Keystroke carries the full typed text after a discrete key press.
type Keystroke struct {
	Text string
}

// Submit asks for a completion check.
type Submit struct{}

// Restart discards the current session and draws a new one.
type Restart struct{}

// Paste is a bulk insertion attempt. It never reaches the tracker.
type Paste struct {
	Text string
}

func (Keystroke) isEvent() {}
func (Submit) isEvent()    {}
func (Restart) isEvent()   {}
func (Paste) isEvent()     {}

// Snapshot is everything a rendering surface needs to draw a session.
type Snapshot struct {
	State   State
	Words   []string
	Target  string
	Typed   string
	Classes []Class
	Result  *model.Result
}

// Controller owns the active session. It is not safe for concurrent use;
// surfaces drive it from a single goroutine.
type Controller struct {
	vocabulary []string
	words      int
	gen        *generator.Generator
	clock      Clock

	targetWords []string
	target      string
	tracker     *Tracker
}

// New builds a controller and draws its first session.
func New(vocabulary []string, words int, gen *generator.Generator, clock Clock) (*Controller, error) {
	if words <= 0 {
		return nil, fmt.Errorf("word count must be > 0, got %d", words)
	}
	if gen == nil {
		gen = generator.New()
	}
	if clock == nil {
		clock = SystemClock{}
	}
	c := &Controller{
		vocabulary: vocabulary,
		words:      words,
		gen:        gen,
		clock:      clock,
	}
	if err := c.Restart(); err != nil {
		return nil, err
	}
	return c, nil
}

// Restart replaces the session with a freshly drawn one. Any progress is
// discarded without a result.
func (c *Controller) Restart() error {
	picked, err := c.gen.Pick(c.vocabulary, c.words)
	if err != nil {
		return fmt.Errorf("failed to pick words: %w", err)
	}
	c.targetWords = picked
	c.target = generator.Compose(picked)
	c.tracker = NewTracker(c.target, len(picked))
	return nil
}

// Dispatch applies one event and returns the resulting snapshot.
func (c *Controller) Dispatch(ev Event) (Snapshot, error) {
	switch ev := ev.(type) {
	case Keystroke:
		c.tracker.Input(ev.Text, c.clock.Now())
	case Submit:
		c.tracker.Submit(c.clock.Now())
	case Restart:
		if err := c.Restart(); err != nil {
			return c.Snapshot(), err
		}
	case Paste:
		// Dropped: typed text only grows through keystrokes.
	default:
		return c.Snapshot(), fmt.Errorf("unknown event %T", ev)
	}
	return c.Snapshot(), nil
}

// State returns the state of the active session.
func (c *Controller) State() State { return c.tracker.State() }

// Snapshot returns the current view of the active session.
func (c *Controller) Snapshot() Snapshot {
	snap := Snapshot{
		State:   c.tracker.State(),
		Words:   append([]string(nil), c.targetWords...),
		Target:  c.target,
		Typed:   c.tracker.Typed(),
		Classes: c.tracker.Classes(),
	}
	if res, ok := c.tracker.Result(); ok {
		snap.Result = &res
	}
	return snap
}
