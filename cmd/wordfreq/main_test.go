package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"wordfreq/internal/config"
	"wordfreq/internal/testsupport"
	"wordfreq/internal/wordcount"
)

const sampleText = "The cat sat on the mat. The cat was happy."

// runCLI executes the root command in an isolated HOME and working directory
// so no real configuration file is picked up.
func runCLI(t *testing.T, args []string, input string, configPath string) (string, string, error) {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("WORDFREQ_LOG_LEVEL", "")
	t.Chdir(home)

	if configPath != "" {
		args = append([]string{"--config", configPath}, args...)
	}

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(input))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// writeConfig persists cfg as TOML and returns its path.
func writeConfig(t *testing.T, cfg *config.Config) string {
	t.Helper()
	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("encode config: %v", err)
	}
	path := filepath.Join(t.TempDir(), "config.toml")
	testsupport.WriteFile(t, path, data)
	return path
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q\nfull output:\n%s", needle, haystack)
	}
}

func requireNotContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if strings.Contains(haystack, needle) {
		t.Fatalf("expected output not to contain %q\nfull output:\n%s", needle, haystack)
	}
}

func TestCountCommandPlain(t *testing.T) {
	path := testsupport.WriteText(t, "sample.txt", sampleText)

	out, _, err := runCLI(t, []string{"count", path}, "", "")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	requireContains(t, out, "Total number of words: 5\n")
	requireContains(t, out, "Total number of unique words: 4\n")
	// default_top_n is 10 which exceeds the four unique words.
	requireContains(t, out, "Invalid number for top words. Displaying top 10 instead.\n")
	requireContains(t, out, "1. cat: 2\n2. sat: 1\n3. mat: 1\n4. happy: 1\n")
}

func TestCountCommandTopFlag(t *testing.T) {
	path := testsupport.WriteText(t, "sample.txt", sampleText)

	out, _, err := runCLI(t, []string{"count", path, "--top", "2"}, "", "")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	requireContains(t, out, "Top 2 most common words:\n1. cat: 2\n2. sat: 1\n")
	requireNotContains(t, out, "Invalid number")
	requireNotContains(t, out, "3. ")
}

func TestCountCommandZeroTopFallsBack(t *testing.T) {
	path := testsupport.WriteText(t, "sample.txt", sampleText)

	out, _, err := runCLI(t, []string{"count", path, "-n", "0"}, "", "")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	requireContains(t, out, "Invalid number for top words. Displaying top 10 instead.")
	requireContains(t, out, "Top 10 most common words:")
}

func TestCountCommandJSON(t *testing.T) {
	path := testsupport.WriteText(t, "sample.txt", sampleText)

	out, _, err := runCLI(t, []string{"--format", "json", "count", path, "--top", "1"}, "", "")
	if err != nil {
		t.Fatalf("count: %v", err)
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("decode json output: %v\n%s", err, out)
	}
	if got := payload["total_words"]; got != float64(5) {
		t.Fatalf("unexpected total_words: got %v want 5", got)
	}
	words, ok := payload["words"].([]any)
	if !ok || len(words) != 1 {
		t.Fatalf("unexpected words payload: %v", payload["words"])
	}
}

func TestCountCommandTableFormatFromConfig(t *testing.T) {
	configPath := writeConfig(t, testsupport.NewConfig(t, testsupport.WithReportFormat("table")))
	path := testsupport.WriteText(t, "sample.txt", sampleText)

	out, _, err := runCLI(t, []string{"count", path, "--top", "2"}, "", configPath)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	requireContains(t, out, "Total number of words: 5\n")
	requireContains(t, out, "Top 2 most common words:")
	requireContains(t, out, "cat")
	requireNotContains(t, out, "1. cat: 2")
	requireNotContains(t, out, "happy")
}

func TestCountCommandMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")

	_, _, err := runCLI(t, []string{"count", missing}, "", "")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, wordcount.ErrFileNotFound) {
		t.Fatalf("unexpected error: got %v want %v", err, wordcount.ErrFileNotFound)
	}
}

func TestCountCommandEmptyFile(t *testing.T) {
	path := testsupport.WriteText(t, "empty.txt", " \n\t")

	_, _, err := runCLI(t, []string{"count", path}, "", "")
	if !errors.Is(err, wordcount.ErrEmptyFile) {
		t.Fatalf("unexpected error: got %v want %v", err, wordcount.ErrEmptyFile)
	}
}

func TestInteractiveSession(t *testing.T) {
	path := testsupport.WriteText(t, "sample.txt", sampleText)
	missing := filepath.Join(t.TempDir(), "missing.txt")

	input := strings.Join([]string{missing, path, "2", "EXIT"}, "\n") + "\n"
	out, _, err := runCLI(t, nil, input, "")
	if err != nil {
		t.Fatalf("interactive: %v", err)
	}
	requireContains(t, out, "--- WORD FREQUENCY COUNTER ---\n")
	requireContains(t, out, "Error: File not found. Please check the path.\n")
	requireContains(t, out, "Top 2 most common words:\n1. cat: 2\n2. sat: 1\n")
	if got := strings.Count(out, "Enter the path to a text file (or 'exit' to quit): "); got != 3 {
		t.Fatalf("unexpected prompt count: got %d want 3", got)
	}
}

func TestInteractiveSessionEndsOnEOF(t *testing.T) {
	out, _, err := runCLI(t, nil, "", "")
	if err != nil {
		t.Fatalf("interactive: %v", err)
	}
	requireContains(t, out, "--- WORD FREQUENCY COUNTER ---")
}

func TestStopWordsCommand(t *testing.T) {
	out, _, err := runCLI(t, []string{"stopwords"}, "", "")
	if err != nil {
		t.Fatalf("stopwords: %v", err)
	}
	for _, word := range []string{"the", "and", "can"} {
		requireContains(t, out, word+"\n")
	}
	requireContains(t, out, "12 stop words")
}

func TestStopWordsCommandJSONWithExtras(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	testsupport.WriteFile(t, configPath, []byte("[counting]\nextra_stop_words = [\"Happy\"]\n"))

	out, _, err := runCLI(t, []string{"--format", "json", "stopwords"}, "", configPath)
	if err != nil {
		t.Fatalf("stopwords: %v", err)
	}
	var words []string
	if err := json.Unmarshal([]byte(out), &words); err != nil {
		t.Fatalf("decode json output: %v\n%s", err, out)
	}
	if len(words) != 13 {
		t.Fatalf("unexpected stop word count: got %d want 13 (%v)", len(words), words)
	}
}

func TestConfigFileAppliesToCount(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	testsupport.WriteFile(t, configPath, []byte("[counting]\nextra_stop_words = [\"cat\"]\n\n[report]\ndefault_top_n = 3\n"))
	path := testsupport.WriteText(t, "sample.txt", sampleText)

	out, _, err := runCLI(t, []string{"count", path}, "", configPath)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	requireContains(t, out, "Total number of words: 3\n")
	requireContains(t, out, "Top 3 most common words:\n1. sat: 1\n2. mat: 1\n3. happy: 1\n")
	requireNotContains(t, out, "cat")
}

func TestInvalidFormatFlag(t *testing.T) {
	_, _, err := runCLI(t, []string{"--format", "xml", "stopwords"}, "", "")
	if err == nil {
		t.Fatal("expected invalid format to fail")
	}
	requireContains(t, err.Error(), "invalid flags")
}

func TestDebugLogsGoToStderr(t *testing.T) {
	path := testsupport.WriteText(t, "sample.txt", sampleText)

	out, stderr, err := runCLI(t, []string{"--log-level", "debug", "count", path}, "", "")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if stderr == "" {
		t.Fatal("expected debug logs on stderr")
	}
	requireNotContains(t, out, "DEBUG")
}
