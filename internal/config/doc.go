// Package config loads, normalizes, and validates wordfreq configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the WORDFREQ_LOG_LEVEL environment
// fallback. The Config type centralizes every knob the counter, reporter, and
// CLI need so they can be discovered in one pass.
//
// Always obtain settings through this package so downstream code receives a
// canonical stop-word list, sanitized paths, and clear validation errors.
package config
