package wordcount

import (
	"slices"
	"strings"

	"wordfreq/internal/config"
	"wordfreq/internal/textutil"
)

// StopWords is an immutable set of words excluded from counting. The zero
// value is an empty set.
type StopWords struct {
	set map[string]struct{}
}

// NewStopWords builds a set from words, normalizing each one the same way
// tokens are normalized so that "The" and "the" are the same entry.
func NewStopWords(words ...string) StopWords {
	set := make(map[string]struct{}, len(words))
	for _, word := range words {
		normalized := strings.TrimSpace(textutil.Normalize(word))
		if normalized == "" {
			continue
		}
		set[normalized] = struct{}{}
	}
	return StopWords{set: set}
}

// DefaultStopWords returns the built-in stop-word set.
func DefaultStopWords() StopWords {
	return NewStopWords(config.DefaultStopWords()...)
}

// Contains reports whether word is a stop word. word must already be normalized.
func (s StopWords) Contains(word string) bool {
	_, ok := s.set[word]
	return ok
}

func (s StopWords) Len() int {
	return len(s.set)
}

// Words returns the set members in sorted order.
func (s StopWords) Words() []string {
	out := make([]string, 0, len(s.set))
	for word := range s.set {
		out = append(out, word)
	}
	slices.Sort(out)
	return out
}
