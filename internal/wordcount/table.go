package wordcount

import (
	"cmp"
	"maps"
	"slices"
)

// Entry is a word and its occurrence count.
type Entry struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Table maps words to positive occurrence counts and remembers the order in
// which each word was first seen.
type Table struct {
	counts map[string]int
	order  []string
	total  int
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{counts: make(map[string]int)}
}

// Add increments the count for word, initializing it to 1 on first sight.
func (t *Table) Add(word string) {
	if t.counts == nil {
		t.counts = make(map[string]int)
	}
	if _, ok := t.counts[word]; !ok {
		t.order = append(t.order, word)
	}
	t.counts[word]++
	t.total++
}

// Count returns the occurrences recorded for word, zero if absent.
func (t *Table) Count(word string) int {
	if t == nil {
		return 0
	}
	return t.counts[word]
}

// Len returns the number of unique words.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.counts)
}

// Total returns the sum of all counts.
func (t *Table) Total() int {
	if t == nil {
		return 0
	}
	return t.total
}

// Words returns the unique words in first-seen order.
func (t *Table) Words() []string {
	if t == nil {
		return nil
	}
	return slices.Clone(t.order)
}

// Map returns a copy of the word counts.
func (t *Table) Map() map[string]int {
	if t == nil {
		return map[string]int{}
	}
	return maps.Clone(t.counts)
}

// Ranked returns every entry sorted by count descending. Equal counts keep
// first-seen order.
func (t *Table) Ranked() []Entry {
	if t == nil {
		return nil
	}
	entries := make([]Entry, 0, len(t.order))
	for _, word := range t.order {
		entries = append(entries, Entry{Word: word, Count: t.counts[word]})
	}
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return entries
}
