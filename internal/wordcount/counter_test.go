package wordcount_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"wordfreq/internal/logging"
	"wordfreq/internal/testsupport"
	"wordfreq/internal/wordcount"
)

func newDefaultCounter() *wordcount.Counter {
	return wordcount.NewCounter(wordcount.DefaultStopWords(), 3, logging.NewNop())
}

func TestCountFileScenario(t *testing.T) {
	path := testsupport.WriteText(t, "cat.txt", "The cat sat on the mat. The cat was happy.")

	table, err := newDefaultCounter().CountFile(path)
	if err != nil {
		t.Fatalf("CountFile returned error: %v", err)
	}
	want := map[string]int{"cat": 2, "sat": 1, "mat": 1, "happy": 1}
	assertEqualMaps(t, want, table.Map())
	if table.Total() != 5 {
		t.Fatalf("unexpected total: got %d want 5", table.Total())
	}
	if table.Len() != 4 {
		t.Fatalf("unexpected unique count: got %d want 4", table.Len())
	}
}

func TestCountFileErrors(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.txt")
	testsupport.WriteFile(t, empty, nil)
	blank := filepath.Join(dir, "blank.txt")
	testsupport.WriteFile(t, blank, []byte(" \n\t \n"))
	binary := filepath.Join(dir, "binary.bin")
	testsupport.WriteFile(t, binary, []byte{0xff, 0xfe, 0x00, 0x41})

	tests := []struct {
		name    string
		path    string
		want    error
		message string
	}{
		{"missing", filepath.Join(dir, "missing.txt"), wordcount.ErrFileNotFound, "Error: File not found. Please check the path."},
		{"empty path", "", wordcount.ErrFileNotFound, "Error: File not found. Please check the path."},
		{"empty", empty, wordcount.ErrEmptyFile, "Error: The file is empty."},
		{"whitespace only", blank, wordcount.ErrEmptyFile, "Error: The file is empty."},
		{"directory", dir, wordcount.ErrUnexpected, "An unexpected error occurred: "},
		{"invalid utf8", binary, wordcount.ErrUnexpected, "An unexpected error occurred: "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := newDefaultCounter().CountFile(tt.path)
			if table != nil {
				t.Fatalf("expected no table, got %v", table.Map())
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			var countErr *wordcount.Error
			if !errors.As(err, &countErr) {
				t.Fatalf("expected *wordcount.Error, got %T", err)
			}
			if msg := wordcount.UserMessage(err); !strings.HasPrefix(msg, tt.message) {
				t.Fatalf("unexpected user message: got %q want prefix %q", msg, tt.message)
			}
		})
	}
}

func TestCountFileUnexpectedKeepsCause(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can read unreadable files")
	}
	path := testsupport.WriteText(t, "locked.txt", "locked words here")
	if err := os.Chmod(path, 0o000); err != nil {
		t.Fatalf("chmod: %v", err)
	}

	_, err := newDefaultCounter().CountFile(path)
	if !errors.Is(err, wordcount.ErrUnexpected) {
		t.Fatalf("expected ErrUnexpected, got %v", err)
	}
	if !errors.Is(err, os.ErrPermission) {
		t.Fatalf("expected permission cause to be preserved, got %v", err)
	}
	if msg := wordcount.UserMessage(err); !strings.Contains(msg, "permission denied") {
		t.Fatalf("expected cause in message, got %q", msg)
	}
}

func TestCountFileStripsByteOrderMark(t *testing.T) {
	path := testsupport.WriteText(t, "bom.txt", "\ufeffHello hello world")

	table, err := newDefaultCounter().CountFile(path)
	if err != nil {
		t.Fatalf("CountFile returned error: %v", err)
	}
	assertEqualMaps(t, map[string]int{"hello": 2, "world": 1}, table.Map())
}

func TestCountTextFiltersStopWordsAndShortTokens(t *testing.T) {
	text := "A is the IT of to In and FOR on can was. Go go ox! Owl owl? Kitten."
	table := newDefaultCounter().CountText(text)

	assertEqualMaps(t, map[string]int{"owl": 2, "kitten": 1}, table.Map())
	for _, word := range table.Words() {
		if utf8.RuneCountInString(word) < 3 {
			t.Fatalf("short token %q counted", word)
		}
		if wordcount.DefaultStopWords().Contains(word) {
			t.Fatalf("stop word %q counted", word)
		}
	}
}

func TestCountTextCountsCharactersNotBytes(t *testing.T) {
	table := newDefaultCounter().CountText("né né über")
	if table.Count("né") != 0 {
		t.Fatal("two-character word should be filtered even though it is three bytes")
	}
	if table.Count("über") != 1 {
		t.Fatalf("expected über to be counted, got %v", table.Map())
	}
}

func TestCountTextSumMatchesTotal(t *testing.T) {
	table := newDefaultCounter().CountText("alpha beta alpha gamma beta alpha delta")
	sum := 0
	for _, count := range table.Map() {
		sum += count
	}
	if sum != table.Total() {
		t.Fatalf("sum of counts %d != total %d", sum, table.Total())
	}
}

func TestNewCounterFromConfig(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithStopWords("alpha"), testsupport.WithMinWordLength(2))
	cfg.Counting.ExtraStopWords = []string{"Beta"}

	counter := wordcount.NewCounterFromConfig(cfg, nil)
	table := counter.CountText("alpha beta the ox a")

	assertEqualMaps(t, map[string]int{"the": 1, "ox": 1}, table.Map())
	if counter.MinLength() != 2 {
		t.Fatalf("unexpected min length: %d", counter.MinLength())
	}
	if counter.StopWords().Len() != 2 {
		t.Fatalf("unexpected stop word count: %v", counter.StopWords().Words())
	}
}

func TestNewCounterClampsMinLength(t *testing.T) {
	counter := wordcount.NewCounter(wordcount.StopWords{}, 0, nil)
	if counter.MinLength() != 1 {
		t.Fatalf("expected min length clamped to 1, got %d", counter.MinLength())
	}
	if got := counter.CountText("a b a").Count("a"); got != 2 {
		t.Fatalf("expected single-character tokens counted, got %d", got)
	}
}

func assertEqualMaps(t *testing.T, expect, actual map[string]int) {
	t.Helper()
	if len(expect) != len(actual) {
		t.Fatalf("size mismatch: expect=%#v actual=%#v", expect, actual)
	}
	for k, v := range expect {
		if actual[k] != v {
			t.Fatalf("value mismatch for %q: expect=%d actual=%d", k, v, actual[k])
		}
	}
}
