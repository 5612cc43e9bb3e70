package config

const (
	defaultMinWordLength = 3
	defaultTopN          = 10
	defaultReportFormat  = "plain"
	defaultReportColor   = true
	defaultLogFormat     = "console"
	defaultLogLevel      = "warn"
)

// defaultStopWords are the common words excluded from counting unless the
// configuration replaces them.
var defaultStopWords = []string{
	"the", "and", "is", "in", "to", "of", "a", "it", "was", "for", "on", "can",
}

// DefaultStopWords returns a copy of the built-in stop-word list.
func DefaultStopWords() []string {
	out := make([]string, len(defaultStopWords))
	copy(out, defaultStopWords)
	return out
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Counting: Counting{
			MinWordLength: defaultMinWordLength,
			StopWords:     DefaultStopWords(),
		},
		Report: Report{
			DefaultTopN: defaultTopN,
			Format:      defaultReportFormat,
			Color:       defaultReportColor,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
