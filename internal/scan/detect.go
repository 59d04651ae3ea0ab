package scan

import (
	"path/filepath"
	"strings"

	"aeroxfer/internal/domain"
)

// DefaultSniffLines is how many leading lines content sniffing inspects.
const DefaultSniffLines = 50

// LooksLikeBlockFile decides whether a file should be handled by the block
// extractor. A recognized block extension short-circuits to true and a
// spreadsheet extension to false; otherwise the first sniffLines lines must
// contain a header keyword alongside at least one line that is neither
// metadata nor data.
func LooksLikeBlockFile(path string, sniffLines int) (bool, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if domain.BlockFileExtensions[ext] {
		return true, nil
	}
	if domain.SpreadsheetExtensions[ext] {
		return false, nil
	}

	lines, err := ReadLines(path)
	if err != nil {
		return false, err
	}
	return SniffLines(lines, sniffLines), nil
}

// SniffLines applies the content heuristic to already-read lines.
func SniffLines(lines []string, sniffLines int) bool {
	if sniffLines <= 0 {
		sniffLines = DefaultSniffLines
	}
	if len(lines) > sniffLines {
		lines = lines[:sniffLines]
	}

	hasHeader := false
	hasOther := false
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if hasHeaderToken(line) {
			hasHeader = true
			continue
		}
		if line != "" && !IsMetadata(line) && !IsData(line) {
			hasOther = true
		}
	}
	return hasHeader && hasOther
}
