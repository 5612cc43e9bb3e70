package testsupport

import (
	"path/filepath"
	"testing"

	"wordfreq/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a default config whose log file, when enabled, lives in a
// per-test temp directory. Options are applied in order.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfgVal := config.Default()
	builder := &configBuilder{
		t:       t,
		baseDir: t.TempDir(),
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithStopWords replaces the configured stop words.
func WithStopWords(words ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Counting.StopWords = words
	}
}

// WithMinWordLength overrides the minimum counted token length.
func WithMinWordLength(n int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Counting.MinWordLength = n
	}
}

// WithReportFormat sets the report output format.
func WithReportFormat(format string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Report.Format = format
	}
}

// WithLogFile enables the JSON log file inside the test's temp directory.
func WithLogFile() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.File = filepath.Join(b.baseDir, "logs", "wordfreq.log")
	}
}
