package scan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extractText(t *testing.T, text string) []parsedBlock {
	t.Helper()
	blocks := ExtractBlocks(strings.Split(text, "\n"))
	out := make([]parsedBlock, len(blocks))
	for i, b := range blocks {
		out[i] = parsedBlock{label: b.Label, header: b.HeaderTokens, rows: b.Rows}
	}
	return out
}

type parsedBlock struct {
	label  string
	header []string
	rows   [][]string
}

func TestExtractBlocks_SingleBlock(t *testing.T) {
	text := "Wing\nAlpha CL CD Cx Cy Cz/FN CMx CMy CMz\n0.0 0.1 0.2 1.0 2.0 3.0 0.0 0.1 0.2\n"
	blocks := extractText(t, text)

	require.Len(t, blocks, 1)
	assert.Equal(t, "Wing", blocks[0].label)
	assert.Len(t, blocks[0].header, 9)
	require.Len(t, blocks[0].rows, 1)
	assert.Equal(t, "3.0", blocks[0].rows[0][5])
}

func TestExtractBlocks_MalformedRowDropped(t *testing.T) {
	text := strings.Join([]string{
		"Wing",
		"Alpha Cx Cy Cz CMx CMy CMz",
		"0.0 1 2 3 4 5 6",
		"1.0 1 2 3 4 5",
		"2.0 1 2 3 4 5 6",
		"Tail",
		"Alpha Cx Cy Cz CMx CMy CMz",
		"0.0 1 2 3 4 5 6",
	}, "\n")
	blocks := extractText(t, text)

	require.Len(t, blocks, 2)
	assert.Len(t, blocks[0].rows, 2, "row with wrong token count must be dropped")
	assert.Len(t, blocks[1].rows, 1)
}

func TestExtractBlocks_MetadataAndSummarySkipped(t *testing.T) {
	text := strings.Join([]string{
		"试验日期：2024-06-01",
		"Wing",
		"Alpha Cx Cy Cz CMx CMy CMz",
		"0.0 1 2 3 4 5 6",
		"CL slope 0.11",
		"1.0 1 2 3 4 5 6",
	}, "\n")
	blocks := extractText(t, text)

	require.Len(t, blocks, 1)
	assert.Len(t, blocks[0].rows, 2, "summary line must not end collection")
}

func TestExtractBlocks_OrphanLabelDropped(t *testing.T) {
	// One line of lookahead cannot save a label immediately followed by
	// another label: the first one is silently dropped.
	text := strings.Join([]string{
		"Flap",
		"Wing",
		"Alpha Cx Cy Cz CMx CMy CMz",
		"0.0 1 2 3 4 5 6",
	}, "\n")
	blocks := extractText(t, text)

	require.Len(t, blocks, 1)
	assert.Equal(t, "Wing", blocks[0].label)
}

func TestExtractBlocks_HeaderAfterInterveningMetadata(t *testing.T) {
	// A pending label stays open across metadata lines; the header may
	// arrive several lines later.
	text := strings.Join([]string{
		"Wing",
		"备注：配平状态",
		"状态：待复核",
		"Alpha Cx Cy Cz CMx CMy CMz",
		"0.0 1 2 3 4 5 6",
	}, "\n")
	blocks := extractText(t, text)

	require.Len(t, blocks, 1)
	assert.Equal(t, "Wing", blocks[0].label)
	assert.Len(t, blocks[0].header, 7)
	assert.Len(t, blocks[0].rows, 1)
}

func TestExtractBlocks_LabelWithoutRowsDropped(t *testing.T) {
	text := strings.Join([]string{
		"Wing",
		"Alpha Cx Cy Cz CMx CMy CMz",
		"Tail",
		"Alpha Cx Cy Cz CMx CMy CMz",
		"0.0 1 2 3 4 5 6",
	}, "\n")
	blocks := extractText(t, text)

	require.Len(t, blocks, 1)
	assert.Equal(t, "Tail", blocks[0].label)
}

func TestExtractBlocks_Empty(t *testing.T) {
	assert.Empty(t, extractText(t, ""))
	assert.Empty(t, extractText(t, "just noise lines here\nmore noise"))
}

func TestLabels(t *testing.T) {
	text := strings.Join([]string{
		"Wing",
		"Alpha Cx Cy Cz CMx CMy CMz",
		"0.0 1 2 3 4 5 6",
		"Tail",
		"Alpha Cx Cy Cz CMx CMy CMz",
		"0.0 1 2 3 4 5 6",
	}, "\n")
	blocks := ExtractBlocks(strings.Split(text, "\n"))
	assert.Equal(t, []string{"Wing", "Tail"}, Labels(blocks))
}
