// Package textutil normalizes raw text into countable tokens.
//
// Normalization composes the input to Unicode NFC, lowercases it, and removes
// every ASCII punctuation character. Tokenization then splits on whitespace.
// Neither step is locale aware.
package textutil
