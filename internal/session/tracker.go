// Package session holds the typing test state machine and the controller
// that drives one session at a time.
package session

import (
	"strings"
	"time"
	"unicode"

	"github.com/verte-zerg/minitype/internal/model"
	"github.com/verte-zerg/minitype/internal/stats"
)

// State is the lifecycle stage of a session.
type State int

const (
	// NotStarted means no non-empty input has arrived yet.
	NotStarted State = iota
	// Running means the clock is running.
	Running
	// Finished means the target was reproduced and the result is final.
	Finished
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case Running:
		return "running"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Class tags a single target character.
type Class int

const (
	// Pending means nothing has been typed at this position yet.
	Pending Class = iota
	// Correct means the typed character matches.
	Correct
	// Incorrect means the typed character differs.
	Incorrect
)

func (c Class) String() string {
	switch c {
	case Pending:
		return "pending"
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	default:
		return "unknown"
	}
}

// Classify tags every rune of target against typed.
func Classify(target, typed string) []Class {
	targetRunes := []rune(target)
	typedRunes := []rune(typed)
	out := make([]Class, len(targetRunes))
	for i, want := range targetRunes {
		switch {
		case i >= len(typedRunes):
			out[i] = Pending
		case typedRunes[i] == want:
			out[i] = Correct
		default:
			out[i] = Incorrect
		}
	}
	return out
}

// Tracker follows the typed text of one session.
type Tracker struct {
	target string
	words  int

	state     State
	typed     string
	startedAt time.Time
	result    model.Result
}

// NewTracker returns a tracker for target made of words words.
func NewTracker(target string, words int) *Tracker {
	return &Tracker{target: target, words: words}
}

// State returns the current lifecycle stage.
func (t *Tracker) State() State { return t.state }

// Typed returns the last accepted typed text.
func (t *Tracker) Typed() string { return t.typed }

// Result returns the score; ok is false until the tracker has finished.
func (t *Tracker) Result() (res model.Result, ok bool) {
	if t.state != Finished {
		return model.Result{}, false
	}
	return t.result, true
}

// Classes returns the classification of the current typed text.
func (t *Tracker) Classes() []Class {
	return Classify(t.target, t.typed)
}

// Input records the full typed text after a keystroke.
func (t *Tracker) Input(text string, now time.Time) {
	if t.state == Finished {
		return
	}
	t.typed = text
	if t.state == NotStarted {
		if text == "" {
			return
		}
		t.state = Running
		t.startedAt = now
	}
	t.tryFinish(now)
}

// Submit forces a completion check. A mismatch is a no-op.
func (t *Tracker) Submit(now time.Time) {
	if t.state != Running {
		return
	}
	t.tryFinish(now)
}

func (t *Tracker) tryFinish(now time.Time) {
	typed := strings.TrimRightFunc(t.typed, unicode.IsSpace)
	if typed != t.target {
		return
	}
	t.typed = typed
	t.state = Finished
	t.result = stats.Score(t.target, typed, t.words, now.Sub(t.startedAt))
}
