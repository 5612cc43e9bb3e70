package wordcount

import (
	"errors"
	"strings"
)

var (
	ErrFileNotFound = errors.New("file not found")
	ErrEmptyFile    = errors.New("file is empty")
	ErrUnexpected   = errors.New("unexpected error")
)

// Error describes a failed CountFile call. Kind is one of the sentinel errors
// above; Err carries the underlying cause when there is one.
type Error struct {
	Kind error
	Path string
	Err  error
}

func (e *Error) Error() string {
	kind := e.Kind
	if kind == nil {
		kind = ErrUnexpected
	}
	if e.Err != nil {
		return kind.Error() + ": " + e.Err.Error()
	}
	if path := strings.TrimSpace(e.Path); path != "" {
		return kind.Error() + ": " + path
	}
	return kind.Error()
}

func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func fail(kind error, path string, cause error) error {
	return &Error{Kind: kind, Path: path, Err: cause}
}

// UserMessage renders err the way the interactive console reports it.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrFileNotFound):
		return "Error: File not found. Please check the path."
	case errors.Is(err, ErrEmptyFile):
		return "Error: The file is empty."
	}
	cause := err
	var countErr *Error
	if errors.As(err, &countErr) && countErr.Err != nil {
		cause = countErr.Err
	}
	return "An unexpected error occurred: " + cause.Error()
}
