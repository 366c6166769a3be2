// Package generator builds typing text sequences.
package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// ErrNotEnoughWords is returned when more words are requested than the
// vocabulary holds.
var ErrNotEnoughWords = errors.New("not enough words in vocabulary")

// Generator produces randomized typing text.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewWithSource returns a Generator drawing from src.
func NewWithSource(src rand.Source) *Generator {
	return &Generator{rnd: rand.New(src)}
}

// Pick selects count distinct words uniformly at random without replacement.
// The vocabulary slice is left untouched.
func (g *Generator) Pick(vocabulary []string, count int) ([]string, error) {
	if count < 0 {
		return nil, fmt.Errorf("word count must be >= 0, got %d", count)
	}
	if count > len(vocabulary) {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrNotEnoughWords, count, len(vocabulary))
	}
	pool := make([]string, len(vocabulary))
	copy(pool, vocabulary)
	for i := 0; i < count; i++ {
		j := i + g.rnd.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:count:count], nil
}

// Compose joins words with single spaces.
func Compose(words []string) string {
	return strings.Join(words, " ")
}
