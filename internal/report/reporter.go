package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"wordfreq/internal/wordcount"
)

// Format selects how a Reporter renders summaries.
type Format string

const (
	FormatPlain Format = "plain"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// ParseFormat maps a config or flag value to a Format.
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case "", FormatPlain:
		return FormatPlain, nil
	case FormatTable:
		return FormatTable, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("report format: unsupported value %q (want plain, table, or json)", value)
	}
}

// Options configures a Reporter.
type Options struct {
	Format Format
	// Color enables ANSI colour for warnings and errors when out is a terminal.
	Color bool
}

// Reporter writes summaries, warnings, and errors to one output.
type Reporter struct {
	out      io.Writer
	format   Format
	colorize bool
}

// New returns a Reporter writing to out.
func New(out io.Writer, opts Options) *Reporter {
	format := opts.Format
	if format == "" {
		format = FormatPlain
	}
	return &Reporter{
		out:      out,
		format:   format,
		colorize: opts.Color && shouldColorize(out),
	}
}

// Format returns the output format in use.
func (r *Reporter) Format() Format {
	return r.format
}

// Report prints totals and the top requested entries of table. The only
// error returned is a failed write.
func (r *Reporter) Report(table *wordcount.Table, total, requested int) error {
	return r.Write(Summarize(table, total, requested))
}

// Write renders a prepared summary.
func (r *Reporter) Write(summary Summary) error {
	if r.format == FormatJSON {
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		if summary.Words == nil {
			summary.Words = []Line{}
		}
		return enc.Encode(summary)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\nTotal number of words: %d\n", summary.TotalWords)
	fmt.Fprintf(&b, "Total number of unique words: %d\n\n", summary.UniqueWords)
	if summary.Warning != "" {
		b.WriteString(paint(statusWarn, summary.Warning, r.colorize))
		b.WriteByte('\n')
	}

	if r.format == FormatTable {
		b.WriteString(renderTable(topTitle(summary.TopN), summary.Words))
		b.WriteByte('\n')
	} else {
		b.WriteString(topTitle(summary.TopN))
		b.WriteByte('\n')
		for _, line := range summary.Words {
			fmt.Fprintf(&b, "%d. %s: %d\n", line.Rank, line.Word, line.Count)
		}
	}

	_, err := io.WriteString(r.out, b.String())
	return err
}

// Warn writes a single warning line.
func (r *Reporter) Warn(message string) error {
	_, err := fmt.Fprintln(r.out, paint(statusWarn, message, r.colorize))
	return err
}

// Error writes a single error line.
func (r *Reporter) Error(message string) error {
	_, err := fmt.Fprintln(r.out, paint(statusError, message, r.colorize))
	return err
}
