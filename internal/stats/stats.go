// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"math"
	"time"

	"github.com/verte-zerg/minitype/internal/model"
)

// Score computes the result of a finished session. words is the number of
// words in the target text and elapsed the time from first keystroke to
// completion. Degenerate inputs yield zeros, never NaN or Inf.
func Score(target, typed string, words int, elapsed time.Duration) model.Result {
	typedRunes := []rune(typed)
	correct := CorrectChars(target, typed)

	res := model.Result{
		CorrectChars: correct,
		TypedChars:   len(typedRunes),
	}
	if elapsed > 0 {
		res.ElapsedSeconds = elapsed.Seconds()
	}
	minutes := res.ElapsedSeconds / 60
	if minutes > 0 {
		res.WordsPerMinute = float64(words) / minutes
	}
	if len(typedRunes) > 0 {
		res.AccuracyPercent = 100 * float64(correct) / float64(len(typedRunes))
	}
	return res
}

// CorrectChars counts positions where typed matches target, up to the
// shorter of the two.
func CorrectChars(target, typed string) int {
	targetRunes := []rune(target)
	typedRunes := []rune(typed)
	n := min(len(targetRunes), len(typedRunes))
	correct := 0
	for i := 0; i < n; i++ {
		if typedRunes[i] == targetRunes[i] {
			correct++
		}
	}
	return correct
}

// FormatElapsed renders elapsed seconds with two decimals.
func FormatElapsed(res model.Result) string {
	return fmt.Sprintf("%.2f", res.ElapsedSeconds)
}

// FormatWPM renders words per minute rounded to the nearest integer.
func FormatWPM(res model.Result) string {
	return fmt.Sprintf("%d", int64(math.Round(res.WordsPerMinute)))
}

// FormatAccuracy renders accuracy with one decimal and a percent sign.
func FormatAccuracy(res model.Result) string {
	return fmt.Sprintf("%.1f%%", res.AccuracyPercent)
}
