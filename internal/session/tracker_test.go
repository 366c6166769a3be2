package session

import (
	"testing"
	"time"
)

func TestClassify(t *testing.T) {
	got := Classify("cat dog", "cat dx")
	want := []Class{Correct, Correct, Correct, Correct, Correct, Incorrect, Pending}
	if len(got) != len(want) {
		t.Fatalf("expected %d classes, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("class %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestClassifyIdempotent(t *testing.T) {
	a := Classify("cat dog bat", "cat dig b")
	b := Classify("cat dog bat", "cat dig b")
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("classification differs at %d", i)
		}
	}
}

func TestClassifyIgnoresOverflow(t *testing.T) {
	got := Classify("ab", "abcdef")
	if len(got) != 2 || got[0] != Correct || got[1] != Correct {
		t.Fatalf("unexpected classes %v", got)
	}
}

func TestTrackerStartsOnFirstNonEmptyInput(t *testing.T) {
	start := time.Unix(100, 0)
	tr := NewTracker("cat dog bat", 3)
	tr.Input("", start)
	if tr.State() != NotStarted {
		t.Fatalf("empty input must not start, got %s", tr.State())
	}
	tr.Input("c", start)
	if tr.State() != Running {
		t.Fatalf("expected running, got %s", tr.State())
	}
	if !tr.startedAt.Equal(start) {
		t.Fatalf("unexpected start time %v", tr.startedAt)
	}
	tr.Input("ca", start.Add(time.Second))
	if !tr.startedAt.Equal(start) {
		t.Fatalf("start time must not move")
	}
}

func TestTrackerFinishesOnExactMatch(t *testing.T) {
	start := time.Unix(100, 0)
	tr := NewTracker("cat dog bat", 3)
	tr.Input("c", start)
	tr.Input("cat dog ba", start.Add(time.Second))
	if _, ok := tr.Result(); ok {
		t.Fatalf("result must not exist before finishing")
	}
	tr.Input("cat dog bat", start.Add(2*time.Second))
	if tr.State() != Finished {
		t.Fatalf("expected finished, got %s", tr.State())
	}
	res, ok := tr.Result()
	if !ok {
		t.Fatalf("expected result")
	}
	if res.AccuracyPercent != 100 {
		t.Fatalf("expected 100%% accuracy, got %f", res.AccuracyPercent)
	}
	if res.ElapsedSeconds != 2 {
		t.Fatalf("expected 2s, got %f", res.ElapsedSeconds)
	}
}

func TestTrackerTrailingWhitespaceTolerated(t *testing.T) {
	start := time.Unix(100, 0)
	tr := NewTracker("cat", 1)
	tr.Input("cat ", start)
	if tr.State() != Finished {
		t.Fatalf("expected finished with trailing space, got %s", tr.State())
	}
	if tr.Typed() != "cat" {
		t.Fatalf("expected stripped typed text, got %q", tr.Typed())
	}
	res, _ := tr.Result()
	if res.ElapsedSeconds != 0 || res.WordsPerMinute != 0 {
		t.Fatalf("instant completion must score zero time and rate: %+v", res)
	}
}

func TestTrackerCaseSensitive(t *testing.T) {
	tr := NewTracker("cat", 1)
	tr.Input("Cat", time.Unix(1, 0))
	if tr.State() != Running {
		t.Fatalf("expected running for case mismatch, got %s", tr.State())
	}
}

func TestTrackerIgnoresInputAfterFinish(t *testing.T) {
	start := time.Unix(100, 0)
	tr := NewTracker("cat", 1)
	tr.Input("c", start)
	tr.Input("cat", start.Add(time.Second))
	first, _ := tr.Result()
	tr.Input("catx", start.Add(5*time.Second))
	tr.Submit(start.Add(6 * time.Second))
	second, _ := tr.Result()
	if first != second {
		t.Fatalf("result changed after finish: %+v vs %+v", first, second)
	}
	if tr.Typed() != "cat" {
		t.Fatalf("typed text changed after finish: %q", tr.Typed())
	}
}

func TestTrackerSubmit(t *testing.T) {
	start := time.Unix(100, 0)
	tr := NewTracker("cat dog", 2)
	tr.Input("cat do", start)
	tr.Submit(start.Add(time.Second))
	if tr.State() != Running {
		t.Fatalf("submit on mismatch must be a no-op, got %s", tr.State())
	}
	tr.typed = "cat dog  "
	tr.Submit(start.Add(3 * time.Second))
	if tr.State() != Finished {
		t.Fatalf("expected submit to finish, got %s", tr.State())
	}
	res, _ := tr.Result()
	if res.ElapsedSeconds != 3 {
		t.Fatalf("expected 3s, got %f", res.ElapsedSeconds)
	}
}

func TestTrackerSubmitBeforeStart(t *testing.T) {
	tr := NewTracker("cat", 1)
	tr.Submit(time.Unix(1, 0))
	if tr.State() != NotStarted {
		t.Fatalf("expected not started, got %s", tr.State())
	}
}
