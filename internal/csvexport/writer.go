package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode"

	"aeroxfer/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// Writer wraps csv.Writer for exporting one block's table.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteTable writes the table's header row and all data rows.
func (w *Writer) WriteTable(t *domain.Table) error {
	if err := w.csv.Write(t.ColumnNames()); err != nil {
		return err
	}
	n := t.NumRows()
	row := make([]string, len(t.Columns))
	for i := 0; i < n; i++ {
		for j := range t.Columns {
			row[j] = t.Columns[j].Text[i]
		}
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// WriteFile writes the table to path as a BOM-prefixed CSV file. The write
// is one-shot; each block's output path is unique by construction.
func WriteFile(path string, t *domain.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Write(BOM); err != nil {
		return err
	}
	w := NewWriter(f)
	if err := w.WriteTable(t); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeLabel cleans a block label for use in a filename. Letters, digits,
// hyphens, and CJK runes are kept; bracket runes are dropped, everything else
// becomes _, consecutive underscores collapse, and the result is truncated to
// 100 runes.
func SanitizeLabel(label string) string {
	s := strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			return r
		case r == '-':
			return r
		case unicode.Is(unicode.Han, r):
			return r
		case strings.ContainsRune("()[]{}（）【】", r):
			return -1
		default:
			return '_'
		}
	}, label)
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if runes := []rune(s); len(runes) > 100 {
		s = string(runes[:100])
	}
	return s
}

// OutputPath returns the output filename for one block:
// {stem}_{label}_result_{timestamp}.csv under dir. When a file of that name
// exists and overwrite is false, the smallest unused numeric suffix
// (_1, _2, ...) is appended.
func OutputPath(dir, stem, label string, ts time.Time, tsFormat string, overwrite bool) string {
	base := fmt.Sprintf("%s_%s_result_%s", stem, SanitizeLabel(label), ts.Format(tsFormat))
	path := filepath.Join(dir, base+".csv")
	if overwrite {
		return path
	}
	for n := 1; ; n++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path
		}
		path = filepath.Join(dir, fmt.Sprintf("%s_%d.csv", base, n))
	}
}
