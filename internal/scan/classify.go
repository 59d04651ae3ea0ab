// Package scan recovers labeled data blocks from loosely structured,
// human-authored text files. Classification is heuristic: a fixed,
// priority-ordered chain of per-line predicates, not a grammar.
package scan

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"aeroxfer/internal/table"
)

// shortTokenMax is the rune-length cutoff below which a single token is
// accepted as a block label on its own.
const shortTokenMax = 20

// summaryKeywords mark derived-quantity lines (slopes, averages) that are
// recognized and discarded. English keywords are matched case-insensitively.
var summaryKeywords = []string{"slope", "derivative", "斜率", "导数", "平均"}

// lineKind is the classification of one trimmed input line.
type lineKind int

const (
	kindNoise lineKind = iota
	kindMetadata
	kindData
	kindSummary
	kindLabel
)

// IsMetadata reports whether a trimmed line is metadata: empty, a
// colon-separated annotation, or CJK prose without a colon that is not a
// single short token.
func IsMetadata(line string) bool {
	if line == "" {
		return true
	}
	if hasColonSeparator(line) {
		return true
	}
	if containsCJK(line) && !strings.ContainsAny(line, ":：") && !isShortSingleToken(line) {
		return true
	}
	return false
}

// IsData reports whether the first whitespace-separated token of the line
// parses as a floating-point number.
func IsData(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	_, err := strconv.ParseFloat(fields[0], 64)
	return err == nil
}

// IsSummary reports whether a non-empty line with a non-numeric first token
// contains one of the summary keywords.
func IsSummary(line string) bool {
	if line == "" || IsData(line) {
		return false
	}
	lower := strings.ToLower(line)
	for _, kw := range summaryKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// IsBlockLabel reports whether a line opens a new block, using exactly one
// line of lookahead. A line qualifies when it is a single short token, or
// when the next line is a header line. Long CJK text (>= 20 runes) stays
// metadata even in front of a header.
func IsBlockLabel(line, next string) bool {
	if line == "" || IsData(line) || IsSummary(line) {
		return false
	}
	if isShortSingleToken(line) {
		return true
	}
	if hasHeaderToken(next) {
		if containsCJK(line) && utf8.RuneCountInString(line) >= shortTokenMax {
			return false
		}
		return true
	}
	return false
}

// classify applies the predicates in their fixed priority order. A line that
// qualifies as a block label is classified as one even when the CJK prose
// rule would also mark it metadata; colon and empty lines always win.
func classify(line, next string) lineKind {
	if line == "" || hasColonSeparator(line) {
		return kindMetadata
	}
	if IsData(line) {
		return kindData
	}
	if IsSummary(line) {
		return kindSummary
	}
	if IsBlockLabel(line, next) {
		return kindLabel
	}
	if containsCJK(line) {
		return kindMetadata
	}
	return kindNoise
}

// hasColonSeparator reports whether the line carries a colon-like separator:
// any full-width colon, or a half-width colon on a line that does not start
// with a digit.
func hasColonSeparator(line string) bool {
	if strings.Contains(line, "：") {
		return true
	}
	if strings.Contains(line, ":") {
		r, _ := utf8.DecodeRuneInString(line)
		return !unicode.IsDigit(r)
	}
	return false
}

// hasHeaderToken reports whether any token of the line normalizes to a
// canonical column name.
func hasHeaderToken(line string) bool {
	for _, tok := range strings.Fields(line) {
		if table.IsHeaderToken(tok) {
			return true
		}
	}
	return false
}

func isShortSingleToken(line string) bool {
	fields := strings.Fields(line)
	return len(fields) == 1 && utf8.RuneCountInString(fields[0]) < shortTokenMax
}

func containsCJK(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Han, r) {
			return true
		}
	}
	return false
}
