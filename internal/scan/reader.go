package scan

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"

	"aeroxfer/internal/domain"
)

// ReadLines reads the whole file and splits it into lines. Input is decoded
// as UTF-8, falling back to GB18030 when the bytes are not valid UTF-8.
// I/O errors propagate to the caller; they are the only fatal condition.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return SplitLines(data)
}

// SplitLines decodes raw file bytes and splits them into lines, handling
// both LF and CRLF endings.
func SplitLines(data []byte) ([]string, error) {
	if !utf8.Valid(data) {
		decoded, err := simplifiedchinese.GB18030.NewDecoder().Bytes(data)
		if err != nil {
			return nil, domain.ErrUndecodableFile
		}
		data = decoded
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n"), nil
}
