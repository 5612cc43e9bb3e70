// Package wordcount tallies word frequencies for a text file.
//
// A Counter is built once with an immutable StopWords set and a minimum token
// length. CountFile reads a file, normalizes it through textutil, and returns
// a fresh Table holding only tokens that pass the filter. Failures come back
// as *Error values matching ErrFileNotFound, ErrEmptyFile, or ErrUnexpected
// via errors.Is; UserMessage turns them into the console text shown to users.
package wordcount
