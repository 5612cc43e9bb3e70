package report

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

type statusKind int

const (
	statusWarn statusKind = iota
	statusError
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
)

func paint(kind statusKind, text string, colorize bool) string {
	if !colorize {
		return text
	}
	switch kind {
	case statusWarn:
		return ansiYellow + text + ansiReset
	case statusError:
		return ansiRed + text + ansiReset
	default:
		return text
	}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
