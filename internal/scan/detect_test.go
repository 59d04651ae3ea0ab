package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSniffLines(t *testing.T) {
	blockLines := []string{
		"试验日期：2024-06-01",
		"Wing",
		"Alpha CL CD Cx Cy Cz/FN CMx CMy CMz",
		"0.0 0.1 0.2 1.0 2.0 3.0 0.0 0.1 0.2",
	}
	assert.True(t, SniffLines(blockLines, 0))

	numericOnly := []string{
		"0.0 0.1 0.2",
		"1.0 0.2 0.3",
	}
	assert.False(t, SniffLines(numericOnly, 0), "no header keywords")

	headerButNothingElse := []string{
		"Alpha CL CD",
		"0.0 0.1 0.2",
	}
	assert.False(t, SniffLines(headerButNothingElse, 0), "header alone is not enough")

	// Lines past the sniff window must not count.
	late := append(make([]string, 10), "Wing", "Alpha CL CD")
	assert.False(t, SniffLines(late, 5))
}

func TestLooksLikeBlockFile_Extensions(t *testing.T) {
	dir := t.TempDir()

	datPath := filepath.Join(dir, "run01.dat")
	require.NoError(t, os.WriteFile(datPath, []byte("anything"), 0o644))
	ok, err := LooksLikeBlockFile(datPath, 0)
	require.NoError(t, err)
	assert.True(t, ok, "recognized extension short-circuits sniffing")

	csvPath := filepath.Join(dir, "table.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("Wing\nAlpha CL CD\n0 1 2"), 0o644))
	ok, err = LooksLikeBlockFile(csvPath, 0)
	require.NoError(t, err)
	assert.False(t, ok, "spreadsheet extension is never a block file")
}

func TestLooksLikeBlockFile_Content(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "results")
	content := "Wing\nAlpha CL CD Cx Cy Cz/FN CMx CMy CMz\n0.0 0.1 0.2 1.0 2.0 3.0 0.0 0.1 0.2\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	ok, err := LooksLikeBlockFile(path, 0)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLooksLikeBlockFile_MissingFile(t *testing.T) {
	_, err := LooksLikeBlockFile(filepath.Join(t.TempDir(), "nope"), 0)
	assert.Error(t, err)
}

func TestSplitLines_GB18030Fallback(t *testing.T) {
	// "机翼" encoded as GB18030/GBK bytes: not valid UTF-8.
	gbk := []byte{0xBB, 0xFA, 0xD2, 0xED, '\n', '0', '.', '5'}
	lines, err := SplitLines(gbk)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "机翼", lines[0])
	assert.Equal(t, "0.5", lines[1])
}

func TestSplitLines_CRLF(t *testing.T) {
	lines, err := SplitLines([]byte("a\r\nb\rc\nd"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, lines)
}
