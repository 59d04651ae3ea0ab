// Package table turns raw block rows into typed, columnar tables with
// canonical column names.
package table

import "strings"

// Canonical column names. Downstream logic only ever references these.
const (
	ColAlpha = "Alpha"
	ColCL    = "CL"
	ColCD    = "CD"
	ColCm    = "Cm"
	ColCx    = "Cx"
	ColCy    = "Cy"
	ColCzFN  = "Cz/FN"
	ColCMx   = "CMx"
	ColCMy   = "CMy"
	ColCMz   = "CMz"
)

// RequiredColumns are the canonical columns the transfer step needs.
var RequiredColumns = []string{ColCx, ColCy, ColCzFN, ColCMx, ColCMy, ColCMz}

// canonical maps normalized raw header tokens to canonical column names.
var canonical = map[string]string{
	"alpha": ColAlpha,
	"alfa":  ColAlpha,
	"aoa":   ColAlpha,
	"α":     ColAlpha,
	"迎角":    ColAlpha,

	"cl": ColCL,
	"cd": ColCD,
	"cm": ColCm,

	"cx":    ColCx,
	"cy":    ColCy,
	"cz":    ColCzFN,
	"fn":    ColCzFN,
	"cn":    ColCzFN,
	"cz/fn": ColCzFN,

	"cmx": ColCMx,
	"mx":  ColCMx,
	"cmy": ColCMy,
	"my":  ColCMy,
	"cmz": ColCMz,
	"mz":  ColCMz,
}

// normalizeKey lower-cases a raw token, treats "_" as "/", and strips
// whitespace and bracket characters.
func normalizeKey(tok string) string {
	s := strings.ToLower(tok)
	s = strings.ReplaceAll(s, "_", "/")
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '(', ')', '[', ']', '{', '}', '（', '）', '【', '】':
			return -1
		}
		return r
	}, s)
}

// Normalize maps a raw header token to its canonical column name.
// Unrecognized tokens pass through unchanged. Normalizing an already
// canonical name returns it unchanged.
func Normalize(tok string) string {
	if name, ok := canonical[normalizeKey(tok)]; ok {
		return name
	}
	return tok
}

// NormalizeHeader applies Normalize to every token, preserving order.
func NormalizeHeader(tokens []string) []string {
	names := make([]string, len(tokens))
	for i, tok := range tokens {
		names[i] = Normalize(tok)
	}
	return names
}

// IsHeaderToken reports whether the token normalizes to a canonical column
// name, which is what marks a line as a header line.
func IsHeaderToken(tok string) bool {
	_, ok := canonical[normalizeKey(tok)]
	return ok
}
