package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"wordfreq/internal/logging"
	"wordfreq/internal/report"
	"wordfreq/internal/wordcount"
)

const (
	Banner          = "--- WORD FREQUENCY COUNTER ---"
	PathPrompt      = "Enter the path to a text file (or 'exit' to quit): "
	TopNPrompt      = "How many top words to display? (Press Enter for default 10): "
	InvalidTopNText = "Invalid input. Displaying top 10 words."
	exitCommand     = "exit"
)

// Counter is the part of wordcount.Counter a session needs.
type Counter interface {
	CountFile(path string) (*wordcount.Table, error)
}

// Session is one interactive console conversation.
type Session struct {
	in       *bufio.Reader
	out      io.Writer
	counter  Counter
	reporter *report.Reporter
	logger   *slog.Logger
}

// New builds a session reading answers from in and writing prompts to out.
// Reports and messages go through reporter, which should write to out as well.
func New(in io.Reader, out io.Writer, counter Counter, reporter *report.Reporter, logger *slog.Logger) *Session {
	return &Session{
		in:       bufio.NewReader(in),
		out:      out,
		counter:  counter,
		reporter: reporter,
		logger:   logging.NewComponentLogger(logger, "session"),
	}
}

// Run drives the prompt loop until the user exits, input ends, or ctx is
// cancelled. Only output or input failures are returned.
func (s *Session) Run(ctx context.Context) error {
	if _, err := fmt.Fprintln(s.out, Banner); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		path, ok, err := s.ask(PathPrompt)
		if err != nil || !ok {
			return err
		}
		if strings.EqualFold(path, exitCommand) {
			s.logger.Debug("exit requested")
			return nil
		}
		table, err := s.counter.CountFile(path)
		if err != nil {
			s.logger.Info("count failed", logging.String("path", path), logging.Error(err))
			if werr := s.reporter.Error(wordcount.UserMessage(err)); werr != nil {
				return werr
			}
			continue
		}

		answer, ok, err := s.ask(TopNPrompt)
		if err != nil || !ok {
			return err
		}
		topN, err := report.ParseTopN(answer)
		if errors.Is(err, report.ErrInvalidTopN) {
			s.logger.Debug("top-n input rejected", logging.String("input", answer))
			if werr := s.reporter.Warn(InvalidTopNText); werr != nil {
				return werr
			}
		}

		if err := s.reporter.Report(table, table.Total(), topN); err != nil {
			return err
		}
	}
}

// ask prints prompt and returns the trimmed answer. ok is false once input is
// exhausted with nothing left to read.
func (s *Session) ask(prompt string) (string, bool, error) {
	if _, err := io.WriteString(s.out, prompt); err != nil {
		return "", false, err
	}
	line, err := s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", false, fmt.Errorf("read input: %w", err)
		}
		if line == "" {
			_, werr := fmt.Fprintln(s.out)
			return "", false, werr
		}
	}
	return strings.TrimSpace(line), true, nil
}
