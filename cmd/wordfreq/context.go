package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"wordfreq/internal/config"
	"wordfreq/internal/logging"
	"wordfreq/internal/report"
	"wordfreq/internal/wordcount"
)

type globalFlags struct {
	config   string
	format   string
	logLevel string
	noColor  bool
}

type commandContext struct {
	flags     *globalFlags
	sessionID string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{
		flags:     flags,
		sessionID: uuid.NewString(),
	}
}

// ensureConfig loads configuration once and layers the global flags on top.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = err
			return
		}
		if err := c.applyFlags(cfg); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) applyFlags(cfg *config.Config) error {
	if value := strings.TrimSpace(c.flags.format); value != "" {
		cfg.Report.Format = strings.ToLower(value)
	}
	if value := strings.TrimSpace(c.flags.logLevel); value != "" {
		cfg.Logging.Level = strings.ToLower(value)
	}
	if c.flags.noColor {
		cfg.Report.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	return nil
}

// commandServices holds what a command needs to count and report. Close
// must be called once the command finishes.
type commandServices struct {
	config   *config.Config
	logger   *slog.Logger
	counter  *wordcount.Counter
	reporter *report.Reporter
	closeLog func() error
}

func (s *commandServices) Close() error {
	if s == nil || s.closeLog == nil {
		return nil
	}
	return s.closeLog()
}

// services builds the logger, counter, and reporter a command needs.
func (c *commandContext) services(cmd *cobra.Command) (*commandServices, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	format, err := report.ParseFormat(cfg.Report.Format)
	if err != nil {
		return nil, err
	}
	logger, closeLog, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr(), c.sessionID)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return &commandServices{
		config:   cfg,
		logger:   logger,
		counter:  wordcount.NewCounterFromConfig(cfg, logger),
		reporter: report.New(cmd.OutOrStdout(), report.Options{Format: format, Color: cfg.Report.Color}),
		closeLog: closeLog,
	}, nil
}
