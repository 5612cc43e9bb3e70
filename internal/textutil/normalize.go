package textutil

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Punctuation is the ASCII punctuation set removed by Normalize.
const Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

var punctuationStripper = func() *strings.Replacer {
	pairs := make([]string, 0, len(Punctuation)*2)
	for _, r := range Punctuation {
		pairs = append(pairs, string(r), "")
	}
	return strings.NewReplacer(pairs...)
}()

// Normalize returns text lowercased with ASCII punctuation removed.
// Precomposed and decomposed spellings of the same letters normalize to the
// same string.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	text = norm.NFC.String(text)
	return punctuationStripper.Replace(strings.ToLower(text))
}

// Tokenize splits already-normalized text on runs of whitespace.
func Tokenize(text string) []string {
	return strings.Fields(text)
}

// IsPunctuation reports whether r is in the ASCII punctuation set.
func IsPunctuation(r rune) bool {
	return r < 0x80 && strings.ContainsRune(Punctuation, r)
}
