// Package report ranks a frequency table and writes the summary users see.
//
// Top and Summarize are pure: they sort by count descending (ties keep
// first-seen order) and resolve the requested top-N, falling back to
// DefaultTopN with ErrInvalidTopN when the request is out of range. Reporter
// renders the result as plain text, a go-pretty table, or JSON, and colours
// warning and error lines when writing to a terminal.
package report
