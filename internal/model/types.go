// Package model defines shared data structures.
package model

// DefaultWords is the fixed number of words drawn for every session.
const DefaultWords = 10

// Config defines practice settings.
type Config struct {
	Words        int
	WordListPath string
}

// ServeConfig defines settings for the browser surface.
type ServeConfig struct {
	Addr string
}

// Result captures the score of a finished session. Values keep full
// precision; rounding happens only when formatting for display.
type Result struct {
	ElapsedSeconds  float64
	WordsPerMinute  float64
	AccuracyPercent float64
	CorrectChars    int
	TypedChars      int
}
