package report

import "wordfreq/internal/wordcount"

// InvalidTopNWarning is printed when the requested top-N falls back to the default.
const InvalidTopNWarning = "Invalid number for top words. Displaying top 10 instead."

// Summary is the rendered-independent result of a report.
type Summary struct {
	TotalWords  int    `json:"total_words"`
	UniqueWords int    `json:"unique_words"`
	TopN        int    `json:"top_n"`
	Warning     string `json:"warning,omitempty"`
	Words       []Line `json:"words"`
}

// Summarize resolves requested against table and collects the ranked lines.
func Summarize(table *wordcount.Table, total, requested int) Summary {
	unique := table.Len()
	n, err := ResolveTopN(requested, unique)
	summary := Summary{
		TotalWords:  total,
		UniqueWords: unique,
		TopN:        n,
		Words:       Top(table, n),
	}
	if err != nil {
		summary.Warning = InvalidTopNWarning
	}
	return summary
}
