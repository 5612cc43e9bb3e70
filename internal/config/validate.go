package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCounting(); err != nil {
		return err
	}
	if err := c.validateReport(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateCounting() error {
	if c.Counting.MinWordLength < 1 {
		return errors.New("counting.min_word_length must be >= 1")
	}
	return nil
}

func (c *Config) validateReport() error {
	if c.Report.DefaultTopN < 1 {
		return errors.New("report.default_top_n must be >= 1")
	}
	switch c.Report.Format {
	case "plain", "table", "json":
	default:
		return fmt.Errorf("report.format: unsupported value %q (want plain, table, or json)", c.Report.Format)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (want console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q (want debug, info, warn, or error)", c.Logging.Level)
	}
	return nil
}
