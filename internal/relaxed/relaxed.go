// Package relaxed parses near-JSON text the way people actually write it:
// with comments, smart quotes pasted from word processors, trailing commas,
// and the occasional BOM. It is a pipeline of text-transform stages feeding
// one strict parser; no lenient partial object is ever produced.
package relaxed

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrEmptyInput is returned when the document text is empty.
	ErrEmptyInput = errors.New("empty menu document")

	// ErrMalformed is returned when every parse strategy has been exhausted.
	// The wrapped message carries the underlying json decoder diagnostic.
	ErrMalformed = errors.New("malformed menu document")
)

var (
	commentRe       = regexp.MustCompile(`(?m)//[^\n\r]*|/\*(?s:.*?)\*/`)
	trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)
	singleQuotedRe  = regexp.MustCompile(`'([^'\\]*(?:\\.[^'\\]*)*)'`)
	smartQuotes     = strings.NewReplacer("“", `"`, "”", `"`, "‘", "'", "’", "'")
)

// Parse tolerantly parses text into a raw value tree. The transform stages
// run in a fixed order over the whole text; a strict parse is attempted
// after them, and once more after rewriting single-quoted string literals.
// It either succeeds fully or fails with ErrEmptyInput / ErrMalformed.
func Parse(text string) (any, error) {
	if text == "" {
		return nil, ErrEmptyInput
	}

	text = StripBOM(text)
	text = StripComments(text)
	text = NormalizeQuotes(text)
	text = StripTrailingCommas(text)

	var v any
	err := json.Unmarshal([]byte(text), &v)
	if err == nil {
		return v, nil
	}

	// Best effort: rewrite single-quoted string literals and retry once.
	requoted := RequoteSingleQuoted(text)
	var retry any
	if retryErr := json.Unmarshal([]byte(requoted), &retry); retryErr == nil {
		return retry, nil
	}

	return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
}

// StripBOM removes a leading byte-order-mark code point if present.
func StripBOM(text string) string {
	return strings.TrimPrefix(text, "\uFEFF")
}

// StripComments removes //-style line comments and non-greedy /* */ block
// comments, including multiline blocks.
func StripComments(text string) string {
	return commentRe.ReplaceAllString(text, "")
}

// NormalizeQuotes replaces curly double and single quotes with their
// straight ASCII equivalents.
func NormalizeQuotes(text string) string {
	return smartQuotes.Replace(text)
}

// StripTrailingCommas removes commas that sit immediately before a closing
// brace or bracket.
func StripTrailingCommas(text string) string {
	return trailingCommaRe.ReplaceAllString(text, "$1")
}

// RequoteSingleQuoted rewrites single-quoted string literals into
// double-quoted form, tolerating escaped quotes inside the literal.
func RequoteSingleQuoted(text string) string {
	return singleQuotedRe.ReplaceAllString(text, `"$1"`)
}
