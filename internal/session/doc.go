// Package session runs the interactive prompt loop.
//
// A Session repeatedly asks for a file path, counts it, asks how many top
// words to show, and prints the report. Counting errors are printed and the
// loop continues; it ends on "exit", end of input, or context cancellation.
package session
