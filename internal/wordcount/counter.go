package wordcount

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dustin/go-humanize"

	"wordfreq/internal/config"
	"wordfreq/internal/logging"
	"wordfreq/internal/textutil"
)

const byteOrderMark = "\ufeff"

// Counter turns text into a frequency Table, skipping stop words and tokens
// shorter than the minimum length.
type Counter struct {
	stopWords StopWords
	minLength int
	logger    *slog.Logger
}

// NewCounter constructs a Counter. A minLength below 1 is treated as 1.
func NewCounter(stopWords StopWords, minLength int, logger *slog.Logger) *Counter {
	if minLength < 1 {
		minLength = 1
	}
	return &Counter{
		stopWords: stopWords,
		minLength: minLength,
		logger:    logging.NewComponentLogger(logger, "counter"),
	}
}

// NewCounterFromConfig builds a Counter from the counting section of cfg.
func NewCounterFromConfig(cfg *config.Config, logger *slog.Logger) *Counter {
	if cfg == nil {
		defaults := config.Default()
		cfg = &defaults
	}
	return NewCounter(NewStopWords(cfg.EffectiveStopWords()...), cfg.Counting.MinWordLength, logger)
}

// StopWords returns the set this counter filters with.
func (c *Counter) StopWords() StopWords {
	return c.stopWords
}

// MinLength returns the shortest token length, in characters, that is counted.
func (c *Counter) MinLength() int {
	return c.minLength
}

// Keep reports whether a normalized token belongs in the table.
func (c *Counter) Keep(token string) bool {
	return utf8.RuneCountInString(token) >= c.minLength && !c.stopWords.Contains(token)
}

// CountText normalizes text and tallies every token that passes Keep.
func (c *Counter) CountText(text string) *Table {
	table := NewTable()
	for _, token := range textutil.Tokenize(textutil.Normalize(text)) {
		if c.Keep(token) {
			table.Add(token)
		}
	}
	return table
}

// CountFile reads path and returns its frequency table. The file must exist,
// be valid UTF-8, and contain at least one non-whitespace character.
func (c *Counter) CountFile(path string) (*Table, error) {
	start := time.Now()
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fail(ErrFileNotFound, path, nil)
		}
		return nil, fail(ErrUnexpected, path, err)
	}
	if info.IsDir() {
		return nil, fail(ErrUnexpected, path, fmt.Errorf("%s is a directory", path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fail(ErrUnexpected, path, err)
	}
	if !utf8.Valid(data) {
		return nil, fail(ErrUnexpected, path, fmt.Errorf("%s is not valid UTF-8 text", path))
	}

	text := strings.TrimPrefix(string(data), byteOrderMark)
	if strings.TrimSpace(text) == "" {
		return nil, fail(ErrEmptyFile, path, nil)
	}

	table := c.CountText(text)
	c.logger.Debug("counted words",
		logging.String("path", path),
		logging.String("size", humanize.Bytes(uint64(len(data)))),
		logging.Int("total", table.Total()),
		logging.Int("unique", table.Len()),
		logging.Duration("elapsed", time.Since(start)),
	)
	return table, nil
}
