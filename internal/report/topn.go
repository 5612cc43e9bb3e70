package report

import (
	"errors"
	"strconv"
	"strings"

	"wordfreq/internal/wordcount"
)

// DefaultTopN is used when no count is given or the given count is unusable.
const DefaultTopN = 10

// ErrInvalidTopN marks a top-N request that is not an integer or is out of range.
var ErrInvalidTopN = errors.New("invalid number for top words")

// Line is one ranked row of the report.
type Line struct {
	Rank  int    `json:"rank"`
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Top returns the n highest-count entries of table, or all of them when the
// table holds fewer than n words.
func Top(table *wordcount.Table, n int) []Line {
	ranked := table.Ranked()
	if n < 0 {
		n = 0
	}
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	lines := make([]Line, 0, len(ranked))
	for i, entry := range ranked {
		lines = append(lines, Line{Rank: i + 1, Word: entry.Word, Count: entry.Count})
	}
	return lines
}

// ResolveTopN returns requested when it lies in [1, unique]. Anything else
// resolves to DefaultTopN together with ErrInvalidTopN, even when unique is
// itself smaller than DefaultTopN.
func ResolveTopN(requested, unique int) (int, error) {
	if requested <= 0 || requested > unique {
		return DefaultTopN, ErrInvalidTopN
	}
	return requested, nil
}

// ParseTopN interprets console input for the top-N prompt. Blank input means
// DefaultTopN; input that is not an integer also yields DefaultTopN, with
// ErrInvalidTopN. Integers too large for an int are clamped and left for
// ResolveTopN to reject as out of range. Single underscores between digits
// are accepted as separators.
func ParseTopN(input string) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return DefaultTopN, nil
	}
	digits, ok := stripDigitSeparators(input)
	if !ok {
		return DefaultTopN, ErrInvalidTopN
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return n, nil
		}
		return DefaultTopN, ErrInvalidTopN
	}
	return n, nil
}

func stripDigitSeparators(input string) (string, bool) {
	if !strings.Contains(input, "_") {
		return input, true
	}
	var b strings.Builder
	b.Grow(len(input))
	for i := 0; i < len(input); i++ {
		c := input[i]
		if c != '_' {
			b.WriteByte(c)
			continue
		}
		if i == 0 || i == len(input)-1 || !isDigit(input[i-1]) || !isDigit(input[i+1]) {
			return "", false
		}
	}
	return b.String(), true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
