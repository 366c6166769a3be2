// Package wordlist provides word list filtering helpers.
package wordlist

import "unicode"

// ValidWord reports whether word can be part of a vocabulary. Words joined
// with single spaces must split back into the same words, so whitespace is
// not allowed inside a word.
func ValidWord(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// Dedupe drops repeated words, keeping the first occurrence order.
func Dedupe(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, word := range words {
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		out = append(out, word)
	}
	return out
}
