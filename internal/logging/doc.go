// Package logging assembles structured slog loggers used across wordfreq.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and can tee records into a JSON log file alongside the console.
// Loggers never write to stdout by default so they do not interleave with
// report output.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits records with the same shape.
package logging
